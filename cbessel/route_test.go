// SPDX-License-Identifier: MIT

package cbessel

import "testing"

func TestSelectRouteI_Table(t *testing.T) {
	cases := []struct {
		name string
		z    complex128
		fnu  float64
		n    int
		want iRoute
	}{
		{"small argument", complex(1.2, -0.4), 0, 1, routeSeries},
		{"order dominates argument", complex(3, 0), 5, 3, routeSeries},
		{"large argument low order", complex(30, 0), 0.5, 1, routeAsymptotic},
		{"large argument mid order", complex(25, -9), 2, 3, routeAsymptotic},
		{"mid argument low order", complex(10, 0), 0.5, 1, routeMiller},
		{"mid argument mid order", complex(15, 3), 6, 3, routeMiller},
		{"argument past Rl, order holds", complex(30, 10), 12, 1, routeWronskian},
		{"order past Fnul", complex(30, 5), 120, 1, routeUniform},
		{"argument past Fnul, order holds", complex(100, 0), 20, 1, routeUniform},
	}
	for _, tc := range cases {
		if got := selectRouteI(tc.z, tc.fnu, tc.n); got != tc.want {
			t.Errorf("%s: selectRouteI(%v, %g, %d) = %v; want %v",
				tc.name, tc.z, tc.fnu, tc.n, got, tc.want)
		}
	}
}

func TestIRoute_String(t *testing.T) {
	names := map[iRoute]string{
		routeSeries:     "series",
		routeAsymptotic: "asymptotic",
		routeMiller:     "miller",
		routeWronskian:  "wronskian",
		routeUniform:    "uniform",
		iRoute(9):       "iRoute(?)",
	}
	for r, want := range names {
		if got := r.String(); got != want {
			t.Errorf("iRoute(%d).String() = %q; want %q", int(r), got, want)
		}
	}
}
