// SPDX-License-Identifier: MIT

package cbessel

// Single-value wrappers named by math notation, order first. They discard
// the underflow count: a member flushed to zero still comes back as zero
// with a nil error. Callers who need the count, a batch of consecutive
// orders, or an explicit mode use the Bessel*/Hankel*/Airy* forms.

// J returns the Bessel function of the first kind J_nu(z).
func J(nu float64, z complex128) (complex128, error) {
	return first(BesselJ(z, nu, DefaultMode, 1))
}

// JScaled returns exp(-|Im z|) * J_nu(z).
func JScaled(nu float64, z complex128) (complex128, error) {
	return first(BesselJ(z, nu, Scaled, 1))
}

// Y returns the Bessel function of the second kind Y_nu(z).
func Y(nu float64, z complex128) (complex128, error) {
	return first(BesselY(z, nu, DefaultMode, 1))
}

// YScaled returns exp(-|Im z|) * Y_nu(z).
func YScaled(nu float64, z complex128) (complex128, error) {
	return first(BesselY(z, nu, Scaled, 1))
}

// I returns the modified Bessel function of the first kind I_nu(z).
func I(nu float64, z complex128) (complex128, error) {
	return first(BesselI(z, nu, DefaultMode, 1))
}

// IScaled returns exp(-|Re z|) * I_nu(z).
func IScaled(nu float64, z complex128) (complex128, error) {
	return first(BesselI(z, nu, Scaled, 1))
}

// K returns the modified Bessel function of the second kind K_nu(z).
func K(nu float64, z complex128) (complex128, error) {
	return first(BesselK(z, nu, DefaultMode, 1))
}

// KScaled returns exp(z) * K_nu(z).
func KScaled(nu float64, z complex128) (complex128, error) {
	return first(BesselK(z, nu, Scaled, 1))
}

// Ai returns the Airy function Ai(z).
func Ai(z complex128) (complex128, error) {
	ai, _, err := AiryAi(z, false, DefaultMode)
	return ai, err
}

// AiScaled returns exp(zeta) * Ai(z), zeta = (2/3) z^(3/2).
func AiScaled(z complex128) (complex128, error) {
	ai, _, err := AiryAi(z, false, Scaled)
	return ai, err
}

// AiDeriv returns the derivative Ai'(z).
func AiDeriv(z complex128) (complex128, error) {
	ai, _, err := AiryAi(z, true, DefaultMode)
	return ai, err
}

// AiDerivScaled returns exp(zeta) * Ai'(z), zeta = (2/3) z^(3/2).
func AiDerivScaled(z complex128) (complex128, error) {
	ai, _, err := AiryAi(z, true, Scaled)
	return ai, err
}

// Bi returns the Airy function Bi(z).
func Bi(z complex128) (complex128, error) {
	return AiryBi(z, false, DefaultMode)
}

// BiScaled returns exp(-|Re zeta|) * Bi(z), zeta = (2/3) z^(3/2).
func BiScaled(z complex128) (complex128, error) {
	return AiryBi(z, false, Scaled)
}

// BiDeriv returns the derivative Bi'(z).
func BiDeriv(z complex128) (complex128, error) {
	return AiryBi(z, true, DefaultMode)
}

// BiDerivScaled returns exp(-|Re zeta|) * Bi'(z), zeta = (2/3) z^(3/2).
func BiDerivScaled(z complex128) (complex128, error) {
	return AiryBi(z, true, Scaled)
}

func first(seq Sequence, err error) (complex128, error) {
	if err != nil {
		return 0, err
	}
	return seq.Values[0], nil
}
