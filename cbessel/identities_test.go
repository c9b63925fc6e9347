// SPDX-License-Identifier: MIT

package cbessel_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/zbessel/cbessel"
	"github.com/stretchr/testify/require"
)

// TestHalfOrder_ClosedForms checks every family against its elementary
// closed form at order 1/2, which exercises the kernels without any
// reference tables:
//
//	J_{1/2} = sqrt(2/(pi z)) sin z      Y_{1/2} = -sqrt(2/(pi z)) cos z
//	I_{1/2} = sqrt(2/(pi z)) sinh z     K_{1/2} = sqrt(pi/(2 z)) exp(-z)
//	H1_{1/2} = -i sqrt(2/(pi z)) exp(iz)
func TestHalfOrder_ClosedForms(t *testing.T) {
	points := []complex128{
		complex(1.5, 0.5),
		complex(2, -3),
		complex(-1, 2),
		complex(7, 0),
	}
	for _, z := range points {
		f := cmplx.Sqrt(2 / (math.Pi * z))

		j, err := cbessel.J(0.5, z)
		require.NoError(t, err, "J_{1/2}(%v)", z)
		approxC(t, f*cmplx.Sin(z), j, 1e-10, "J_{1/2}")

		y, err := cbessel.Y(0.5, z)
		require.NoError(t, err, "Y_{1/2}(%v)", z)
		approxC(t, -f*cmplx.Cos(z), y, 1e-10, "Y_{1/2}")

		i, err := cbessel.I(0.5, z)
		require.NoError(t, err, "I_{1/2}(%v)", z)
		approxC(t, f*cmplx.Sinh(z), i, 1e-10, "I_{1/2}")

		k, err := cbessel.K(0.5, z)
		require.NoError(t, err, "K_{1/2}(%v)", z)
		approxC(t, cmplx.Sqrt(math.Pi/(2*z))*cmplx.Exp(-z), k, 1e-10, "K_{1/2}")

		h1, err := cbessel.Hankel1(z, 0.5, cbessel.Unscaled, 1)
		require.NoError(t, err, "H1_{1/2}(%v)", z)
		approxC(t, complex(0, -1)*f*cmplx.Exp(complex(0, 1)*z), h1.Values[0], 1e-10, "H1_{1/2}")
	}
}

// TestCrossProduct_JY verifies J_{v+1} Y_v - J_v Y_{v+1} = 2/(pi z),
// the standard Wronskian-type identity between the two kinds, across
// orders and quadrants.
func TestCrossProduct_JY(t *testing.T) {
	orders := []float64{0, 0.5, 1.3, 7}
	points := []complex128{
		complex(2, 0),
		complex(3, -4),
		complex(-2, 5),
	}
	for _, nu := range orders {
		for _, z := range points {
			js, err := cbessel.BesselJ(z, nu, cbessel.Unscaled, 2)
			require.NoError(t, err, "J nu=%g z=%v", nu, z)
			ys, err := cbessel.BesselY(z, nu, cbessel.Unscaled, 2)
			require.NoError(t, err, "Y nu=%g z=%v", nu, z)

			got := js.Values[1]*ys.Values[0] - js.Values[0]*ys.Values[1]
			approxC(t, 2/(math.Pi*z), got, 1e-9, "J/Y cross product")
		}
	}
}

// TestCrossProduct_IK verifies I_v K_{v+1} + I_{v+1} K_v = 1/z across
// orders and quadrants, tying the two modified kinds together.
func TestCrossProduct_IK(t *testing.T) {
	orders := []float64{0, 0.5, 1.3, 7}
	points := []complex128{
		complex(2, 0),
		complex(3, -4),
		complex(-2, 5),
	}
	for _, nu := range orders {
		for _, z := range points {
			is, err := cbessel.BesselI(z, nu, cbessel.Unscaled, 2)
			require.NoError(t, err, "I nu=%g z=%v", nu, z)
			ks, err := cbessel.BesselK(z, nu, cbessel.Unscaled, 2)
			require.NoError(t, err, "K nu=%g z=%v", nu, z)

			got := is.Values[0]*ks.Values[1] + is.Values[1]*ks.Values[0]
			approxC(t, 1/z, got, 1e-9, "I/K cross product")
		}
	}
}

// TestRecurrence_SelfConsistency runs the three-term recurrences across
// a batch of five orders; each middle member must satisfy its relation
// to the neighbors within roundoff of the largest member involved.
func TestRecurrence_SelfConsistency(t *testing.T) {
	z := complex(5, 3)
	const nu = 0.3

	js, err := cbessel.BesselJ(z, nu, cbessel.Unscaled, 5)
	require.NoError(t, err)
	is, err := cbessel.BesselI(z, nu, cbessel.Unscaled, 5)
	require.NoError(t, err)
	ks, err := cbessel.BesselK(z, nu, cbessel.Unscaled, 5)
	require.NoError(t, err)

	for k := 1; k <= 3; k++ {
		mu := complex(2*(nu+float64(k)), 0) / z

		approxC(t, mu*js.Values[k], js.Values[k-1]+js.Values[k+1], 1e-10,
			"J recurrence")
		approxC(t, mu*is.Values[k], is.Values[k-1]-is.Values[k+1], 1e-10,
			"I recurrence")
		approxC(t, mu*ks.Values[k], ks.Values[k+1]-ks.Values[k-1], 1e-10,
			"K recurrence")
	}
}

// TestHankel_Decomposition verifies H1 = J + iY, H2 = J - iY and the
// resulting J = (H1+H2)/2 in three quadrants.
func TestHankel_Decomposition(t *testing.T) {
	points := []complex128{
		complex(3, 2),
		complex(2, -5),
		complex(-4, 1),
	}
	const nu = 1.6
	for _, z := range points {
		j, err := cbessel.J(nu, z)
		require.NoError(t, err)
		y, err := cbessel.Y(nu, z)
		require.NoError(t, err)
		h1, err := cbessel.Hankel1(z, nu, cbessel.Unscaled, 1)
		require.NoError(t, err)
		h2, err := cbessel.Hankel2(z, nu, cbessel.Unscaled, 1)
		require.NoError(t, err)

		approxC(t, j+complex(0, 1)*y, h1.Values[0], 1e-9, "H1 = J + iY")
		approxC(t, j-complex(0, 1)*y, h2.Values[0], 1e-9, "H2 = J - iY")
		approxC(t, j, (h1.Values[0]+h2.Values[0])/2, 1e-9, "J from the Hankel pair")
	}
}

// TestLargeOrder_SelfConsistency exercises the uniform large-order
// expansions, both the Debye regime and the transition region near
// order = |z|, through the same recurrence and cross product identities.
func TestLargeOrder_SelfConsistency(t *testing.T) {
	// well past Fnul, order dominating |z|: Debye expansions
	z := complex(60, 10)
	js, err := cbessel.BesselJ(z, 119, cbessel.Unscaled, 3)
	require.NoError(t, err)
	mu := complex(2*120, 0) / z
	approxC(t, mu*js.Values[1], js.Values[0]+js.Values[2], 1e-9,
		"J recurrence at order 120")

	is, err := cbessel.BesselI(z, 119.5, cbessel.Unscaled, 2)
	require.NoError(t, err)
	ks, err := cbessel.BesselK(z, 119.5, cbessel.Unscaled, 2)
	require.NoError(t, err)
	got := is.Values[0]*ks.Values[1] + is.Values[1]*ks.Values[0]
	approxC(t, 1/z, got, 1e-9, "I/K cross product at order 119.5")

	// order comparable to |z| near the imaginary axis, where the modified
	// equation has its turning points: the Airy-type expansions take over
	z = complex(2, 100)
	is, err = cbessel.BesselI(z, 99.7, cbessel.Unscaled, 2)
	require.NoError(t, err)
	ks, err = cbessel.BesselK(z, 99.7, cbessel.Unscaled, 2)
	require.NoError(t, err)
	got = is.Values[0]*ks.Values[1] + is.Values[1]*ks.Values[0]
	approxC(t, 1/z, got, 1e-8, "I/K cross product near the turning point")
}

// TestLargeOrder_AirySector ties the transition-region expansions to the
// cross products at orders well past the uniform threshold, with the
// argument near the imaginary axis so the Airy-type forms carry the
// whole computation. The 3+200i point pushes |z| far beyond the order,
// where the Airy argument of the expansions crosses into the
// oscillatory sector.
func TestLargeOrder_AirySector(t *testing.T) {
	cases := []struct {
		nu float64
		z  complex128
	}{
		{130.25, complex(5, 40)},
		{250.5, complex(5, 40)},
		{130.25, complex(-5, 40)},
		{90.5, complex(3, 200)},
	}
	for _, c := range cases {
		is, err := cbessel.BesselI(c.z, c.nu, cbessel.Unscaled, 2)
		require.NoError(t, err, "I nu=%g z=%v", c.nu, c.z)
		ks, err := cbessel.BesselK(c.z, c.nu, cbessel.Unscaled, 2)
		require.NoError(t, err, "K nu=%g z=%v", c.nu, c.z)

		got := is.Values[0]*ks.Values[1] + is.Values[1]*ks.Values[0]
		approxC(t, 1/c.z, got, 1e-8, "I/K cross product in the Airy sector")
	}

	// left of the imaginary axis the Hankel pair reaches the same
	// expansions along both rotation directions at once
	z := complex(-200, 3)
	const nu = 90.25
	js, err := cbessel.BesselJ(z, nu, cbessel.Unscaled, 2)
	require.NoError(t, err)
	ys, err := cbessel.BesselY(z, nu, cbessel.Unscaled, 2)
	require.NoError(t, err)

	got := js.Values[1]*ys.Values[0] - js.Values[0]*ys.Values[1]
	approxC(t, 2/(math.Pi*z), got, 1e-8, "J/Y cross product left of the axis")
}

// TestAiry_Wronskian verifies Ai Bi' - Ai' Bi = 1/pi in several sectors,
// including the oscillatory negative axis.
func TestAiry_Wronskian(t *testing.T) {
	points := []complex128{
		0,
		complex(2, 0),
		complex(-2, 0),
		complex(-6, 0),
		complex(1, 1),
		complex(-3, 0.5),
		complex(5, -5),
	}
	for _, z := range points {
		ai, _, err := cbessel.AiryAi(z, false, cbessel.Unscaled)
		require.NoError(t, err, "Ai(%v)", z)
		aid, _, err := cbessel.AiryAi(z, true, cbessel.Unscaled)
		require.NoError(t, err, "Ai'(%v)", z)
		bi, err := cbessel.AiryBi(z, false, cbessel.Unscaled)
		require.NoError(t, err, "Bi(%v)", z)
		bid, err := cbessel.AiryBi(z, true, cbessel.Unscaled)
		require.NoError(t, err, "Bi'(%v)", z)

		approxC(t, complex(1/math.Pi, 0), ai*bid-aid*bi, 1e-10,
			"Airy Wronskian")
	}
}
