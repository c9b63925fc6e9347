// SPDX-License-Identifier: MIT

// Package zbessel is a pure-Go numerical engine for Bessel, Hankel and
// Airy functions of complex argument: J, Y, I, K, H1, H2, Ai and Bi for
// any finite complex z and real order nu ≥ 0.
//
// 🚀 What is zbessel?
//
//	A double-precision port of the classic slatec-era complex Bessel
//	machinery that brings together:
//		• All six cylinder families: J, Y, I, K and the Hankel pair H1, H2
//		• Airy functions Ai, Bi and their first derivatives
//		• Batch evaluation of n consecutive orders in a single call
//		• Scaled modes that strip the dominant exponential per family
//		• Exact-zero underflow accounting instead of denormal noise
//
// ✨ Why choose zbessel?
//
//   - Whole-plane coverage – analytic continuation handles every quadrant
//   - Rock-solid edges – graduated rescaling keeps recurrences on scale
//     within a few binary orders of the float64 rails
//   - Pure Go – no cgo, no Fortran runtime, safe for concurrent use
//   - Honest failures – a sentinel error taxonomy instead of quiet garbage
//
// Under the hood, everything is organized under two subpackages:
//
//	cbessel/ - the evaluation engine and public API (BesselJ..Hankel2,
//	           AiryAi, AiryBi, plus one-liner wrappers J, Y, I, K, Ai, Bi)
//	machine/ - the float64 working regime: precision and exponent budgets,
//	           region boundaries, rescaling and underflow tooling
//
// Quick example:
//
//	seq, err := cbessel.BesselJ(complex(10, 20), 1, cbessel.Unscaled, 3)
//	// seq.Values[k] = J_{1+k}(10+20i), k = 0..2
//
// Dive into cbessel's package documentation for the full API surface,
// scaling conventions and the error taxonomy.
//
//	go get github.com/katalvlaran/zbessel
package zbessel
