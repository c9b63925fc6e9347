// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/big"
	"math/cmplx"
	"sync"

	"github.com/katalvlaran/zbessel/machine"
)

// expKind selects which function a uniform expansion is shaped for. The
// I form sums u_k(t)/nu^k, the K form alternates signs.
type expKind int

const (
	kindI expKind = 1
	kindK expKind = 2
)

// debyeU[k] holds the coefficients of u_k(t) over the powers t^{k+2j},
// j = 0..k. The polynomials satisfy
//
//	u_{k+1}(t) = t^2 (1 - t^2) u_k'(t) / 2 + (1/8) Int_0^t (1 - 5 s^2) u_k(s) ds
//
// and are generated once in exact rational arithmetic.
var (
	debyeOnce sync.Once
	debyeU    [16][]float64
)

// debyeRatPolys generates u_0..u_{n-1} exactly.
func debyeRatPolys(n int) [][]*big.Rat {
	u := make([][]*big.Rat, n)
	u[0] = []*big.Rat{big.NewRat(1, 1)}
	for k := 0; k+1 < n; k++ {
		next := make([]*big.Rat, k+2)
		for j := 0; j <= k+1; j++ {
			c := new(big.Rat)
			if j <= k {
				p := int64(k + 2*j)
				t := new(big.Rat).SetFrac64(p, 2)
				t.Add(t, new(big.Rat).SetFrac64(1, 8*(p+1)))
				t.Mul(t, u[k][j])
				c.Add(c, t)
			}
			if j >= 1 {
				p := int64(k + 2*(j-1))
				t := new(big.Rat).SetFrac64(p, 2)
				t.Add(t, new(big.Rat).SetFrac64(5, 8*(p+3)))
				t.Mul(t, u[k][j-1])
				c.Sub(c, t)
			}
			next[j] = c
		}
		u[k+1] = next
	}
	return u
}

func debyeTables() {
	u := debyeRatPolys(len(debyeU))
	for k := range u {
		debyeU[k] = make([]float64, len(u[k]))
		for j, r := range u[k] {
			debyeU[k][j], _ = r.Float64()
		}
	}
}

// debyeExpansion evaluates the pieces of the large-order expansions
//
//	I_nu(z) ~ phi * exp(zeta2 - zeta1) * sum
//	K_nu(z) ~ phi * exp(zeta1 - zeta2) * sum
//
// at w = z/nu away from the turning points w = +-i, for Re z >= 0. Here
// zeta1 = nu log((1+s)/w), zeta2 = nu s with s = sqrt(1+w^2), and sum
// runs over u_k(1/s)/nu^k. With exponentOnly set, only phi and the two
// zeta values are produced.
func debyeExpansion(z complex128, fnu float64, kind expKind, exponentOnly bool) (phi, zeta1, zeta2, sum complex128) {
	debyeOnce.Do(debyeTables)
	rfn := 1 / fnu
	// z/nu under the floor: report an exponent gap large enough that the
	// caller's overflow and underflow tests fire
	test := 1.0e3 * machine.Tiny
	if math.Abs(real(z)) <= fnu*test && math.Abs(imag(z)) <= fnu*test {
		zeta1 = complex(2*math.Abs(math.Log(test))+fnu, 0)
		zeta2 = complex(fnu, 0)
		phi = 1
		sum = 1
		return
	}
	w := z * complex(rfn, 0)
	s := cmplx.Sqrt(1 + w*w)
	zeta1 = complex(fnu, 0) * cmplx.Log((1+s)/w)
	zeta2 = complex(fnu, 0) * s
	t := 1 / s
	con := [2]float64{0.398942280401432678, 1.25331413731550025}
	phi = cmplx.Sqrt(t*complex(rfn, 0)) * complex(con[kind-1], 0)
	if exponentOnly {
		return
	}
	t2 := t * t
	sum = 1
	tk := t
	crfn := rfn
	for k := 1; k < len(debyeU); k++ {
		cs := debyeU[k]
		p := complex(cs[len(cs)-1], 0)
		for j := len(cs) - 2; j >= 0; j-- {
			p = p*t2 + complex(cs[j], 0)
		}
		term := p * tk * complex(crfn, 0)
		if kind == kindK && k%2 == 1 {
			term = -term
		}
		sum += term
		if cmplx.Abs(term) < machine.Tol {
			break
		}
		tk *= t
		crfn *= rfn
	}
	return
}
