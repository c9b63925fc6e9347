// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/big"
	"math/cmplx"
	"sync"

	"github.com/katalvlaran/zbessel/machine"
)

// Series tables for the turning-point expansion. With x = z/nu and
// Y = 1 - x^2, the variable zeta satisfying (2/3) zeta^{3/2} =
// log((1+w)/x) - w, w = sqrt(Y), is analytic at Y = 0:
//
//	zeta = 2^{-2/3} Y (1+v)^{2/3},  v = sum_{j>=1} 3 Y^j / (2j+3),
//
// and the amplitude corrections a_s, b_s of the Airy-type expansion are
// analytic there as well, although each is assembled from Laurent parts
// whose principal coefficients cancel. The cancellation is performed
// once in exact rational arithmetic, so the stored series are clean.
const airyTerms = 30

var (
	airyOnce sync.Once
	airyG    [airyTerms]float64    // zeta/Y as a series in Y
	airyA    [6][airyTerms]float64 // a_s(Y), s = 1..6
	airyB    [7][airyTerms]float64 // b_s(Y), s = 0..6
	airyLam  [14]float64
	airyMu   [14]float64
)

// ratPowSeries returns the series of p^alpha to length n, where p has
// constant term one. From q'p = alpha p'q,
//
//	m q_m = sum_{j=1..m} (alpha j - (m-j)) p_j q_{m-j}.
func ratPowSeries(p []*big.Rat, alpha *big.Rat, n int) []*big.Rat {
	q := make([]*big.Rat, n)
	q[0] = big.NewRat(1, 1)
	for m := 1; m < n; m++ {
		acc := new(big.Rat)
		for j := 1; j <= m && j < len(p); j++ {
			t := new(big.Rat).SetInt64(int64(j))
			t.Mul(t, alpha)
			t.Sub(t, new(big.Rat).SetInt64(int64(m-j)))
			t.Mul(t, p[j])
			t.Mul(t, q[m-j])
			acc.Add(acc, t)
		}
		acc.Quo(acc, new(big.Rat).SetInt64(int64(m)))
		q[m] = acc
	}
	return q
}

func convSeries(a, b []*big.Rat, n int) []*big.Rat {
	c := make([]*big.Rat, n)
	for m := range c {
		c[m] = new(big.Rat)
	}
	for i, ai := range a {
		if i >= n {
			break
		}
		for j, bj := range b {
			if i+j >= n {
				break
			}
			t := new(big.Rat).Mul(ai, bj)
			c[i+j].Add(c[i+j], t)
		}
	}
	return c
}

func airyTables() {
	debyeOnce.Do(debyeTables)
	const n = airyTerms + 21
	u := debyeRatPolys(14)
	p := make([]*big.Rat, n)
	p[0] = big.NewRat(1, 1)
	for j := 1; j < n; j++ {
		p[j] = big.NewRat(3, int64(2*j+3))
	}
	q := ratPowSeries(p, big.NewRat(2, 3), airyTerms)
	con := math.Cbrt(0.25)
	for l := range airyG {
		f, _ := q[l].Float64()
		airyG[l] = con * f
	}

	inv := ratPowSeries(p, big.NewRat(-1, 1), n)
	ipow := make([][]*big.Rat, 15)
	ipow[0] = make([]*big.Rat, n)
	ipow[0][0] = big.NewRat(1, 1)
	for m := 1; m < n; m++ {
		ipow[0][m] = new(big.Rat)
	}
	for j := 1; j < len(ipow); j++ {
		ipow[j] = convSeries(ipow[j-1], inv, n)
	}
	q13 := ratPowSeries(p, big.NewRat(-1, 3), n)

	lam := make([]*big.Rat, len(airyLam))
	mu := make([]*big.Rat, len(airyMu))
	lam[0] = big.NewRat(1, 1)
	mu[0] = big.NewRat(1, 1)
	for j := 1; j < len(lam); j++ {
		jj := int64(j)
		num := (6*jj - 5) * (6*jj - 3) * (6*jj - 1)
		den := (2*jj - 1) * 144 * jj
		lam[j] = new(big.Rat).Mul(lam[j-1], big.NewRat(num, den))
		mu[j] = new(big.Rat).Mul(lam[j], big.NewRat(-(6*jj + 1), 6*jj-1))
	}
	for j := range airyLam {
		airyLam[j], _ = lam[j].Float64()
		airyMu[j], _ = mu[j].Float64()
	}

	// a_s = sum_{j=0..2s} mu_j Z^j u_{2s-j}(1/w), Z = 2 (1+v)^{-1} Y^{-3/2}·w^0,
	// collected over even powers of w; indices run over exponents of Y
	// shifted by the principal-part depth 3s, which cancels identically.
	for s := 1; s <= 6; s++ {
		depth := 3 * s
		d := make([]*big.Rat, depth+airyTerms)
		for m := range d {
			d[m] = new(big.Rat)
		}
		pw2 := big.NewRat(1, 1)
		for j := 0; j <= 2*s; j++ {
			k := 2*s - j
			base := make([]*big.Rat, k+1)
			for i := 0; i <= k; i++ {
				base[k-i] = u[k][i]
			}
			t := convSeries(base, ipow[j], len(d))
			coef := new(big.Rat).Mul(mu[j], pw2)
			for m := range t {
				tm := new(big.Rat).Mul(t[m], coef)
				d[m].Add(d[m], tm)
			}
			pw2.Mul(pw2, big.NewRat(2, 1))
		}
		for r := 0; r < airyTerms; r++ {
			airyA[s-1][r], _ = d[depth+r].Float64()
		}
	}

	// b_s carries one more u polynomial, an overall -zeta^{-1/2}, and the
	// scalar 2^{1/3}, which is folded into the floats here.
	cb := math.Cbrt(2)
	for s := 0; s <= 6; s++ {
		depth := 3*s + 2
		e := make([]*big.Rat, depth+airyTerms)
		for m := range e {
			e[m] = new(big.Rat)
		}
		pw2 := big.NewRat(1, 1)
		for j := 0; j <= 2*s+1; j++ {
			k := 2*s + 1 - j
			base := make([]*big.Rat, k+1)
			for i := 0; i <= k; i++ {
				base[k-i] = u[k][i]
			}
			t := convSeries(base, ipow[j], len(e))
			coef := new(big.Rat).Mul(lam[j], pw2)
			coef.Neg(coef)
			for m := range t {
				tm := new(big.Rat).Mul(t[m], coef)
				e[m].Add(e[m], tm)
			}
			pw2.Mul(pw2, big.NewRat(2, 1))
		}
		eq := convSeries(e, q13, len(e))
		for r := 0; r < airyTerms; r++ {
			f, _ := eq[depth+r].Float64()
			airyB[s][r] = cb * f
		}
	}
}

func hornerC(cs []float64, x complex128) complex128 {
	s := complex(cs[len(cs)-1], 0)
	for j := len(cs) - 2; j >= 0; j-- {
		s = s*x + complex(cs[j], 0)
	}
	return s
}

// airyExpansion evaluates the pieces of the large-order expansions of
// Airy type, which stay uniform through the turning points z = +-i nu:
//
//	J_nu(z) ~ nu^{-1/3} phi (Ai(arg) asum + nu^{-4/3} Ai'(arg) bsum)
//
// with arg = nu^{2/3} zeta and exp(zeta2-zeta1) = exp(-nu eta) carried
// by the Airy factor itself. The Hankel forms follow by rotating the
// Airy argument; the caller owns those phases. Valid for Re z >= 0.
// With exponentOnly set only phi, arg and the zeta pair are produced.
//
// Within |1 - (z/nu)^2| <= 1/4 everything comes from the series tables;
// outside, zeta is taken in the continuation of the positive real
// branch at 0 < z/nu < 1, which sweeps arg(1.5 eta) through [0, 3pi/2]
// as z/nu crosses into the oscillatory region, and the correction sums
// are assembled from their Laurent parts directly.
func airyExpansion(z complex128, fnu float64, exponentOnly bool) (phi, arg, zeta1, zeta2, asum, bsum complex128) {
	airyOnce.Do(airyTables)
	// the branch rules below are written for Im z <= 0; an upper half
	// plane argument goes through by conjugation, and +0 counts as upper
	// so that real z lands on the sheet the angle window expects
	if !math.Signbit(imag(z)) {
		phi, arg, zeta1, zeta2, asum, bsum = airyExpansion(cmplx.Conj(z), fnu, exponentOnly)
		return cmplx.Conj(phi), cmplx.Conj(arg), cmplx.Conj(zeta1), cmplx.Conj(zeta2),
			cmplx.Conj(asum), cmplx.Conj(bsum)
	}
	rfn := 1 / fnu
	test := 1.0e3 * machine.Tiny
	if math.Abs(real(z)) <= fnu*test && math.Abs(imag(z)) <= fnu*test {
		zeta1 = complex(2*math.Abs(math.Log(test))+fnu, 0)
		zeta2 = complex(fnu, 0)
		phi = 1
		arg = 1
		asum = 1
		return
	}
	xt := z * complex(rfn, 0)
	w2 := 1 - xt*xt
	cr := math.Cbrt(fnu)
	fn23 := cr * cr
	rfn2 := rfn * rfn

	if cmplx.Abs(w2) <= 0.25 {
		g := hornerC(airyG[:], w2)
		zeta := w2 * g
		arg = zeta * complex(fn23, 0)
		szeta := cmplx.Sqrt(zeta)
		eta := complex(2.0/3.0, 0) * zeta * szeta
		w := cmplx.Sqrt(w2)
		zeta2 = complex(fnu, 0) * w
		zeta1 = complex(fnu, 0)*eta + zeta2
		phi = complex(math.Sqrt2, 0) * cmplx.Sqrt(cmplx.Sqrt(g))
		if exponentOnly {
			return
		}
		asum = 1
		bsum = hornerC(airyB[0][:], w2)
		pw := rfn2
		for s := 1; s <= 6; s++ {
			ta := hornerC(airyA[s-1][:], w2) * complex(pw, 0)
			tb := hornerC(airyB[s][:], w2) * complex(pw, 0)
			asum += ta
			bsum += tb
			if cmplx.Abs(ta) < machine.Tol && cmplx.Abs(tb) < machine.Tol {
				break
			}
			pw *= rfn2
		}
		return
	}

	w := cmplx.Sqrt(w2)
	if real(w) < 0 {
		w = complex(0, imag(w))
	}
	zc := cmplx.Log((1 + w) / xt)
	// Re zc >= 0 and 0 <= Im zc <= pi/2 hold throughout the region; the
	// trims only strip roundoff that crosses a boundary
	if real(zc) < 0 {
		zc = complex(0, imag(zc))
	}
	if imag(zc) < 0 {
		zc = complex(real(zc), 0)
	} else if imag(zc) > 0.5*math.Pi {
		zc = complex(real(zc), 0.5*math.Pi)
	}
	zeta2 = complex(fnu, 0) * w
	zeta1 = complex(fnu, 0) * zc
	eta := zc - w
	zth := 1.5 * eta
	ang := math.Atan2(imag(zth), real(zth))
	if ang < 0 {
		if real(zth) >= 0 {
			// boundary below the oscillatory axis
			ang = 1.5 * math.Pi
		} else {
			ang += 2 * math.Pi
		}
	}
	pp := math.Pow(cmplx.Abs(zth), 2.0/3.0)
	r := cmplx.Rect(math.Sqrt(pp), ang/3)
	arg = cmplx.Rect(pp, 2*ang/3) * complex(fn23, 0)
	phi = complex(math.Sqrt2, 0) * cmplx.Sqrt(r/w)
	if exponentOnly {
		return
	}

	t := 1 / w
	t2 := t * t
	var uv [14]complex128
	tp := complex(1, 0)
	for k := range uv {
		cs := debyeU[k]
		p := complex(cs[len(cs)-1], 0)
		for j := len(cs) - 2; j >= 0; j-- {
			p = p*t2 + complex(cs[j], 0)
		}
		uv[k] = p * tp
		tp *= t
	}
	x3 := complex(2.0/3.0, 0) / eta
	var x3p [14]complex128
	x3p[0] = 1
	for j := 1; j < len(x3p); j++ {
		x3p[j] = x3p[j-1] * x3
	}
	asum = 1
	bsum = 0
	pw := complex(1, 0)
	for s := 0; s <= 6; s++ {
		var sa, sb complex128
		if s >= 1 {
			for j := 0; j <= 2*s; j++ {
				sa += complex(airyMu[j], 0) * x3p[j] * uv[2*s-j]
			}
			sa *= pw
			asum += sa
		}
		for j := 0; j <= 2*s+1; j++ {
			sb += complex(airyLam[j], 0) * x3p[j] * uv[2*s+1-j]
		}
		sb *= pw
		bsum += sb
		if s >= 1 && cmplx.Abs(sa) < machine.Tol && cmplx.Abs(sb) < machine.Tol {
			break
		}
		pw *= complex(rfn2, 0)
	}
	bsum = -bsum / r
	return
}
