// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// bessely fills y with Y_{fnu+k}(z) for k = 0..len(y)-1 from the Hankel
// pair, Y = (H1 - H2)/(2i). In scaled mode both Hankel sequences arrive
// with their own exponential removed, so the recombination reinstates
// the difference of the two factors against the common exp(-|Im z|):
// the H member on the growing side keeps weight one and the other is
// damped by exp(-2|Im z|), which flushes to zero past the exponent
// range. The count is the smaller of the two Hankel underflow counts:
// a member flushed in only one sequence still gets a nonzero Y from the
// surviving half of the difference, so only members lost on both sides
// are genuine Y underflows.
func bessely(z complex128, fnu float64, scaled bool, y []complex128) (int, error) {
	n := len(y)
	nz1, err := besselh(1, z, fnu, scaled, y)
	if err != nil {
		return 0, err
	}
	cw := make([]complex128, n)
	nz2, err := besselh(2, z, fnu, scaled, cw)
	if err != nil {
		return 0, err
	}
	nz := nz1
	if nz2 < nz {
		nz = nz2
	}
	if !scaled {
		for i := range y {
			y[i] = (cw[i] - y[i]) * complex(0, 0.5)
		}
		return nz, nil
	}
	ey := 0.0
	tay := math.Abs(2 * imag(z))
	if tay < machine.Elim {
		ey = math.Exp(-tay)
	}
	c1 := cmplx.Rect(1, real(z))
	c2 := cmplx.Rect(1, -real(z))
	if imag(z) >= 0 {
		c1 *= complex(ey, 0)
	} else {
		c2 *= complex(ey, 0)
	}
	for i := range y {
		h1 := machine.SafeMul(y[i], c1)
		h2 := machine.SafeMul(cw[i], c2)
		y[i] = (h2 - h1) * complex(0, 0.5)
	}
	return nz, nil
}
