// SPDX-License-Identifier: MIT

package cbessel_test

import (
	"testing"

	"github.com/katalvlaran/zbessel/cbessel"
)

// BenchmarkBesselJ_Series measures the small-argument route: power series
// seed plus backward recurrence over 8 orders.
func BenchmarkBesselJ_Series(b *testing.B) {
	z := complex(1.5, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.BesselJ(z, 0, cbessel.Unscaled, 8)
	}
}

// BenchmarkBesselJ_Asymptotic measures the large-argument route, where a
// single asymptotic seed replaces the series.
func BenchmarkBesselJ_Asymptotic(b *testing.B) {
	z := complex(40, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.BesselJ(z, 0.5, cbessel.Unscaled, 4)
	}
}

// BenchmarkBesselJ_LargeOrder measures the uniform-expansion route taken
// once the order passes the crossover, the most expensive seed.
func BenchmarkBesselJ_LargeOrder(b *testing.B) {
	z := complex(30, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.BesselJ(z, 120, cbessel.Unscaled, 2)
	}
}

// BenchmarkBesselK_RightHalf measures the Wronskian-backed K evaluation
// at a moderate right-half argument.
func BenchmarkBesselK_RightHalf(b *testing.B) {
	z := complex(5, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.BesselK(z, 0.3, cbessel.Unscaled, 4)
	}
}

// BenchmarkBesselK_LeftHalf measures the analytic continuation across the
// cut, which stacks an I evaluation on top of the K kernel.
func BenchmarkBesselK_LeftHalf(b *testing.B) {
	z := complex(-5, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.BesselK(z, 0.3, cbessel.Unscaled, 4)
	}
}

// BenchmarkAiryAi measures Ai outside the series disk, one K kernel call
// behind the Bessel connection.
func BenchmarkAiryAi(b *testing.B) {
	z := complex(3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = cbessel.AiryAi(z, false, cbessel.Unscaled)
	}
}

// BenchmarkIScaled measures the scaled single-value path at a large real
// argument, the common fixed point of stability-sensitive callers.
func BenchmarkIScaled(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cbessel.IScaled(2.5, 600)
	}
}
