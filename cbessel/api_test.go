// SPDX-License-Identifier: MIT

package cbessel_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/zbessel/cbessel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approxC asserts that got agrees with want to a relative tolerance,
// falling back to absolute when want is exactly zero.
func approxC(t *testing.T, want, got complex128, tol float64, msg string) {
	t.Helper()
	d := cmplx.Abs(got - want)
	if want == 0 {
		assert.LessOrEqual(t, d, tol, "%s: |got| = %g", msg, d)
		return
	}
	assert.LessOrEqual(t, d/cmplx.Abs(want), tol, "%s: want %v, got %v", msg, want, got)
}

// TestBesselJ_KnownValue pins J_1(10+20i) against an independently
// computed reference.
func TestBesselJ_KnownValue(t *testing.T) {
	want := complex(-1.3869150348751683e7, -3.785203660760742e7)

	got, err := cbessel.J(1, complex(10, 20))
	require.NoError(t, err, "J(1, 10+20i) should evaluate")
	approxC(t, want, got, 1e-8, "J_1(10+20i)")
}

// TestBesselY_KnownValue pins Y_1(10+20i).
func TestBesselY_KnownValue(t *testing.T) {
	want := complex(3.785203660760742e7, -1.3869150348751685e7)

	got, err := cbessel.Y(1, complex(10, 20))
	require.NoError(t, err, "Y(1, 10+20i) should evaluate")
	approxC(t, want, got, 1e-8, "Y_1(10+20i)")
}

// TestBesselI_KnownValue pins I_1(10+20i).
func TestBesselI_KnownValue(t *testing.T) {
	want := complex(1509.8283640825061, 1060.1232442308794)

	got, err := cbessel.I(1, complex(10, 20))
	require.NoError(t, err, "I(1, 10+20i) should evaluate")
	approxC(t, want, got, 1e-8, "I_1(10+20i)")
}

// TestBesselK_KnownValue pins K_1(10+20i).
func TestBesselK_KnownValue(t *testing.T) {
	want := complex(-1.7871627759052974e-6, -1.1993686627062101e-5)

	got, err := cbessel.K(1, complex(10, 20))
	require.NoError(t, err, "K(1, 10+20i) should evaluate")
	approxC(t, want, got, 1e-8, "K_1(10+20i)")
}

// TestBesselJ_RealAxis checks the first three integer orders at z = 1
// against classical table values.
func TestBesselJ_RealAxis(t *testing.T) {
	seq, err := cbessel.BesselJ(complex(1, 0), 0, cbessel.Unscaled, 3)
	require.NoError(t, err)
	require.Len(t, seq.Values, 3)

	approxC(t, complex(0.7651976865579666, 0), seq.Values[0], 1e-12, "J_0(1)")
	approxC(t, complex(0.4400505857449335, 0), seq.Values[1], 1e-12, "J_1(1)")
	approxC(t, complex(0.1149034849319005, 0), seq.Values[2], 1e-12, "J_2(1)")
	assert.Zero(t, seq.Underflowed, "no member underflows at z = 1")
}

// TestBesselJ_Origin verifies the exact values at z = 0: one for order
// zero, zero for every positive order.
func TestBesselJ_Origin(t *testing.T) {
	j0, err := cbessel.J(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), j0, "J_0(0) = 1 exactly")

	j, err := cbessel.J(2.5, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), j, "J_nu(0) = 0 for nu > 0")
}

// TestSequence_MatchesSingleCalls verifies that a batch of n orders
// agrees with n independent single-order calls.
func TestSequence_MatchesSingleCalls(t *testing.T) {
	z := complex(3, -4)
	const nu = 1.7

	seq, err := cbessel.BesselJ(z, nu, cbessel.Unscaled, 4)
	require.NoError(t, err)
	for k, v := range seq.Values {
		single, err := cbessel.J(nu+float64(k), z)
		require.NoError(t, err)
		approxC(t, single, v, 1e-11, "batch member vs single call")
	}
}

// TestConjugateSymmetry verifies f(conj z) = conj(f(z)) for the four
// conjugate-symmetric families, and the corresponding pairing that swaps
// the two Hankel kinds.
func TestConjugateSymmetry(t *testing.T) {
	z := complex(2.3, 3.1)
	const nu = 1.4
	type family struct {
		name string
		eval func(float64, complex128) (complex128, error)
	}
	for _, f := range []family{
		{"J", cbessel.J},
		{"Y", cbessel.Y},
		{"I", cbessel.I},
		{"K", cbessel.K},
	} {
		a, err := f.eval(nu, z)
		require.NoError(t, err, f.name)
		b, err := f.eval(nu, cmplx.Conj(z))
		require.NoError(t, err, f.name)
		approxC(t, cmplx.Conj(a), b, 1e-12, f.name+" conjugate symmetry")
	}

	h1, err := cbessel.Hankel1(z, nu, cbessel.Unscaled, 1)
	require.NoError(t, err)
	h2c, err := cbessel.Hankel2(cmplx.Conj(z), nu, cbessel.Unscaled, 1)
	require.NoError(t, err)
	approxC(t, cmplx.Conj(h1.Values[0]), h2c.Values[0], 1e-12, "H2(conj z) = conj(H1(z))")
}

// TestValidation_InvalidParameter walks the rejection table: bad n, bad
// order, bad mode, non-finite z, and origin arguments for the singular
// families.
func TestValidation_InvalidParameter(t *testing.T) {
	z := complex(1, 1)

	_, err := cbessel.BesselJ(z, 0, cbessel.Unscaled, 0)
	assert.ErrorIs(t, err, cbessel.ErrInvalidParameter, "n = 0 must be rejected")

	_, err = cbessel.BesselJ(z, -1, cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrInvalidParameter, "negative order must be rejected")

	_, err = cbessel.BesselJ(z, math.NaN(), cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrInvalidParameter, "NaN order must be rejected")

	_, err = cbessel.BesselJ(z, 0, cbessel.ScalingMode(7), 1)
	assert.ErrorIs(t, err, cbessel.ErrInvalidParameter, "unknown mode must be rejected")

	_, err = cbessel.BesselJ(complex(math.NaN(), 0), 0, cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrInvalidParameter, "non-finite z must be rejected")

	for name, call := range map[string]func() error{
		"Y":  func() error { _, err := cbessel.Y(0, 0); return err },
		"K":  func() error { _, err := cbessel.K(0, 0); return err },
		"H1": func() error { _, err := cbessel.Hankel1(0, 0, cbessel.Unscaled, 1); return err },
		"H2": func() error { _, err := cbessel.Hankel2(0, 0, cbessel.Unscaled, 1); return err },
	} {
		assert.ErrorIs(t, call(), cbessel.ErrInvalidParameter, name+" at z = 0 must be rejected")
	}
}

// TestValidation_PrecisionLoss verifies that arguments or orders past the
// reduction limits fail with ErrPrecisionLoss instead of degrading.
func TestValidation_PrecisionLoss(t *testing.T) {
	_, err := cbessel.BesselJ(complex(5.0e4, 0), 0, cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrPrecisionLoss, "|z| past WarnArg")

	_, err = cbessel.BesselJ(complex(2.0e9, 0), 0, cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrPrecisionLoss, "|z| past MaxArg")

	_, err = cbessel.BesselJ(complex(1, 1), 5.0e4, cbessel.Unscaled, 1)
	assert.ErrorIs(t, err, cbessel.ErrPrecisionLoss, "order past WarnArg")

	_, _, err = cbessel.AiryAi(complex(1.2e3, 0), false, cbessel.Unscaled)
	assert.ErrorIs(t, err, cbessel.ErrPrecisionLoss, "|z|^(3/2) past WarnArg for Airy")
}

// TestOverflow_Unscaled verifies the overflow taxonomy: I in deep
// exponential growth and K against its origin singularity.
func TestOverflow_Unscaled(t *testing.T) {
	_, err := cbessel.I(0, complex(800, 0))
	assert.ErrorIs(t, err, cbessel.ErrOverflow, "I_0(800) exceeds the double range")

	_, err = cbessel.BesselK(complex(1e-160, 0), 0, cbessel.Unscaled, 3)
	assert.ErrorIs(t, err, cbessel.ErrOverflow, "K_2 near the origin exceeds the double range")

	scaled, err := cbessel.IScaled(0, complex(800, 0))
	require.NoError(t, err, "scaled I stays representable")
	assert.Greater(t, cmplx.Abs(scaled), 0.0)
}

// TestUnderflow_Bookkeeping verifies that flushed members come back as
// exact zeros with a correct count and no error.
func TestUnderflow_Bookkeeping(t *testing.T) {
	// K decays like exp(-z): at z = 750 the unscaled values vanish.
	seq, err := cbessel.BesselK(complex(750, 0), 0, cbessel.Unscaled, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Underflowed, "both members flush at z = 750")
	assert.Equal(t, complex(0, 0), seq.Values[0])
	assert.Equal(t, complex(0, 0), seq.Values[1])

	ks, err := cbessel.KScaled(0, complex(750, 0))
	require.NoError(t, err)
	approxC(t, complex(0.045756939, 0), ks, 1e-6, "exp(z) K_0(z) at z = 750")

	// J at fixed z decays superexponentially in the order: the tail of a
	// long batch underflows while the head stays exact.
	jseq, err := cbessel.BesselJ(complex(2, 0), 0, cbessel.Unscaled, 200)
	require.NoError(t, err)
	assert.Greater(t, jseq.Underflowed, 0, "high orders at z = 2 must flush")
	approxC(t, complex(0.2238907791412357, 0), jseq.Values[0], 1e-12, "J_0(2)")
	for k := 200 - jseq.Underflowed; k < 200; k++ {
		assert.Equal(t, complex(0, 0), jseq.Values[k], "flushed members are exact zeros")
	}
}

// TestScalingMode_String covers the mode names.
func TestScalingMode_String(t *testing.T) {
	assert.Equal(t, "Unscaled", cbessel.Unscaled.String())
	assert.Equal(t, "Scaled", cbessel.Scaled.String())
	assert.Equal(t, "ScalingMode(?)", cbessel.ScalingMode(3).String())
}

// TestWrappers_MatchSequenceForms verifies the one-liner wrappers are
// exactly the n=1 sequence calls.
func TestWrappers_MatchSequenceForms(t *testing.T) {
	z := complex(4, 2)
	const nu = 0.9

	seq, err := cbessel.BesselK(z, nu, cbessel.Scaled, 1)
	require.NoError(t, err)
	w, err := cbessel.KScaled(nu, z)
	require.NoError(t, err)
	assert.Equal(t, seq.Values[0], w, "KScaled is BesselK with n=1, Scaled")

	yseq, err := cbessel.BesselY(z, nu, cbessel.Unscaled, 1)
	require.NoError(t, err)
	yw, err := cbessel.Y(nu, z)
	require.NoError(t, err)
	assert.Equal(t, yseq.Values[0], yw, "Y is BesselY with n=1, Unscaled")
}
