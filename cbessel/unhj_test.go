// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"
	"testing"
)

// TestAiryExpansion_AssemblesJ pits the generated coefficient tables
// against an evaluation that never touches them: at nu = 40 the driver
// routes J through the Wronskian algorithm, so assembling
//
//	J_nu(z) = nu^{-1/3} phi (Ai(arg) asum + nu^{-4/3} Ai'(arg) bsum)
//
// from airyExpansion pieces and comparing checks zeta, phi and both
// correction sums at once. The probe set covers the series region
// |1-(z/nu)^2| <= 1/4, the Laurent region outside it, and a pair
// straddling the switch, where a bad coefficient in either table would
// show up as a jump.
func TestAiryExpansion_AssemblesJ(t *testing.T) {
	const fnu = 40.0
	points := []complex128{
		complex(fnu*0.55, 0),
		complex(fnu*0.7, 0),
		complex(fnu*0.8, 0),
		complex(fnu*0.8654, 0), // just outside the series disk
		complex(fnu*0.8666, 0), // just inside
		complex(fnu*0.88, 0),
		complex(fnu*0.92, 0),
		complex(fnu*0.97, 0),
		complex(25, 10), // Laurent region, complex
		complex(38, 4),  // series region, complex
	}
	for _, z := range points {
		phi, arg, _, _, asum, bsum := airyExpansion(z, fnu, false)

		ai, _, err := airyAi(arg, false, false)
		if err != nil {
			t.Fatalf("airyAi(%v): %v", arg, err)
		}
		dai, _, err := airyAi(arg, true, false)
		if err != nil {
			t.Fatalf("airyAi'(%v): %v", arg, err)
		}
		r13 := 1 / math.Cbrt(fnu)
		t23 := r13 * r13
		got := phi * (ai*asum + complex(t23*t23, 0)*dai*bsum) * complex(r13, 0)

		seq, err := BesselJ(z, fnu, Unscaled, 1)
		if err != nil {
			t.Fatalf("BesselJ(%v, %g): %v", z, fnu, err)
		}
		want := seq.Values[0]

		if d := cmplx.Abs(got - want); d > 1e-9*cmplx.Abs(want) {
			t.Errorf("assembled J_%g(%v) = %v; engine %v (rel %g)",
				fnu, z, got, want, d/cmplx.Abs(want))
		}
	}
}

// TestAiryExpansion_ExponentPair checks the phase bookkeeping that the
// overflow pretests rely on: zeta2 = nu w and zeta1 - zeta2 = nu eta
// with w = sqrt(1-(z/nu)^2), eta = log((1+w)(nu/z)) - w, on both sides
// of the turning point.
func TestAiryExpansion_ExponentPair(t *testing.T) {
	const fnu = 50.0
	for _, z := range []complex128{complex(30, 0), complex(45, 0), complex(20, 35), complex(5, 48)} {
		_, _, zeta1, zeta2, _, _ := airyExpansion(z, fnu, true)

		x := z / complex(fnu, 0)
		w := cmplx.Sqrt(1 - x*x)
		if real(w) < 0 {
			w = -w
		}
		eta := cmplx.Log((1+w)/x) - w

		if d := cmplx.Abs(zeta2 - complex(fnu, 0)*w); d > 1e-10*fnu {
			t.Errorf("z = %v: zeta2 = %v, want nu w = %v", z, zeta2, complex(fnu, 0)*w)
		}
		if d := cmplx.Abs(zeta1 - zeta2 - complex(fnu, 0)*eta); d > 1e-10*fnu {
			t.Errorf("z = %v: zeta1 - zeta2 = %v, want nu eta = %v",
				z, zeta1-zeta2, complex(fnu, 0)*eta)
		}
	}
}
