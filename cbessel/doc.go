// SPDX-License-Identifier: MIT

// Package cbessel evaluates Bessel and Airy functions of complex argument
// and nonnegative real order in double precision.
//
// 🚀 What is cbessel?
//
//	A pure-Go port of the classic slatec-era algorithms for the complete
//	cylinder family and the Airy pair:
//	  • J, Y: Bessel functions of the first and second kind
//	  • I, K: modified Bessel functions
//	  • H1, H2: the Hankel fundamental system
//	  • Ai, Bi: Airy functions and their derivatives
//
// ✨ Key features:
//   - batch evaluation: n consecutive orders nu..nu+n-1 in one call
//   - Scaled mode removes the dominant exponential per family, so values
//     stay representable deep into the growth and decay regions
//   - deterministic underflow accounting: members below the floor come
//     back as exact zeros with a count, never as denormal noise
//   - sentinel error taxonomy (ErrInvalidParameter, ErrOverflow,
//     ErrPrecisionLoss, ErrNoConvergence), matched with errors.Is
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/zbessel/cbessel"
//
//	// one value, math notation, order first
//	j, err := cbessel.J(1, complex(10, 20))
//
//	// five consecutive orders K_2..K_6, premultiplied by exp(z)
//	seq, err := cbessel.BesselK(complex(-3, 7), 2, cbessel.Scaled, 5)
//	// seq.Values[k] holds exp(z)*K_{2+k}(z); seq.Underflowed counts zeros
//
// Under the hood the evaluation region picks the method: power series near
// the origin, Miller backward recurrence and Wronskian normalization at
// moderate |z|, large-|z| asymptotics past that, and uniform large-order
// expansions (Debye away from the turning point, Airy type near it) once
// the order dominates. Left half plane values come from one-directional
// analytic continuation of the right half plane kernels.
//
// Performance:
//
//   - Time: O(n) per batch after an O(1) region dispatch; the expansions
//     themselves are fixed-length
//   - Memory: O(n) for the result slice, small fixed scratch otherwise
//   - No shared mutable state; every call is safe for concurrent use
//
// Accuracy degrades gracefully with |z| and order: past WarnArg argument
// reduction has consumed half the significand and calls fail with
// ErrPrecisionLoss instead of returning quietly degraded values.
//
// See example_test.go for worked examples.
package cbessel
