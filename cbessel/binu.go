// SPDX-License-Identifier: MIT

package cbessel

import (
	"errors"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// iRoute names the evaluation method picked for an I sequence in the
// right half plane. The selector is split from the driver so the routing
// table can be tested on its own.
type iRoute int

const (
	routeSeries iRoute = iota
	routeAsymptotic
	routeMiller
	routeWronskian
	routeUniform
)

func (r iRoute) String() string {
	switch r {
	case routeSeries:
		return "series"
	case routeAsymptotic:
		return "asymptotic"
	case routeMiller:
		return "miller"
	case routeWronskian:
		return "wronskian"
	case routeUniform:
		return "uniform"
	}
	return "iRoute(?)"
}

// selectRouteI returns the method rightHalfI starts with for a fresh
// request of n orders fnu..fnu+n-1 at z. Underflow rerouting may move a
// run between methods mid-flight, which this table does not model.
func selectRouteI(z complex128, fnu float64, n int) iRoute {
	az := cmplx.Abs(z)
	dfnu := fnu + float64(n-1)
	if az <= 2 || 0.25*az*az <= dfnu+1 {
		return routeSeries
	}
	if az >= machine.Rl {
		if dfnu <= 1 || az+az >= dfnu*dfnu {
			return routeAsymptotic
		}
	} else if dfnu <= 1 {
		return routeMiller
	}
	if dfnu > machine.Fnul || az > machine.Fnul {
		return routeUniform
	}
	if az <= machine.Rl {
		return routeMiller
	}
	return routeWronskian
}

// rightHalfI evaluates I at orders fnu..fnu+len(y)-1 for Re z >= 0,
// choosing between the power series, the large argument expansion, the
// Miller algorithm normalized by the series or by the Wronskian with K,
// and the large order expansions. Trailing members that underflow are
// zeroed and counted in nz, and the survivors rerouted; when the series
// flags its result unusable the window moves to a large parameter method
// the same way. The uniform route can hand back a shortened window whose
// top order fell below Fnul, which then finishes on a mid-range method.
func rightHalfI(z complex128, fnu float64, scaled bool, y []complex128) (nz int, err error) {
	nn := len(y)
	az := cmplx.Abs(z)
	dfnu := fnu + float64(nn-1)
	if az <= 2 || 0.25*az*az <= dfnu+1 {
		nw := seriesI(z, fnu, scaled, y)
		inw := nw
		if inw < 0 {
			inw = -inw
		}
		nz += inw
		nn -= inw
		if nn == 0 || nw >= 0 {
			return nz, nil
		}
		dfnu = fnu + float64(nn-1)
	}
	if az >= machine.Rl && (dfnu <= 1 || az+az >= dfnu*dfnu) {
		nw, aerr := asymptoticI(z, fnu, scaled, y[:nn])
		return nz + nw, aerr
	}
	if az < machine.Rl && dfnu <= 1 {
		nw, merr := millerI(z, fnu, scaled, y[:nn])
		return nz + nw, merr
	}
	nuf, perr := overflowPretest(z, fnu, scaled, kindI, y[:nn])
	if perr != nil {
		return nz, perr
	}
	nz += nuf
	nn -= nuf
	if nn == 0 {
		return nz, nil
	}
	dfnu = fnu + float64(nn-1)
	if dfnu > machine.Fnul || az > machine.Fnul {
		nui := int(machine.Fnul-dfnu) + 1
		if nui < 0 {
			nui = 0
		}
		nw, nlast, uerr := uniformI(z, fnu, scaled, nui, y[:nn])
		if uerr != nil {
			return nz, uerr
		}
		nz += nw
		if nlast == 0 {
			return nz, nil
		}
		nn = nlast
	}
	if az <= machine.Rl {
		nw, merr := millerI(z, fnu, scaled, y[:nn])
		return nz + nw, merr
	}
	// the Wronskian route leans on the K pair at fnu, fnu+1; if that pair
	// overflows the I members all sit under the floor, and if it
	// underflows the I members sit at the overflow limit
	var cw [2]complex128
	kuf, kerr := overflowPretest(z, fnu, scaled, kindK, cw[:])
	if kerr != nil {
		if errors.Is(kerr, ErrOverflow) {
			for i := 0; i < nn; i++ {
				y[i] = 0
			}
			return nz + nn, nil
		}
		return nz, kerr
	}
	if kuf > 0 {
		return nz, ErrOverflow
	}
	nw, werr := wronskianI(z, fnu, scaled, y[:nn])
	return nz + nw, werr
}
