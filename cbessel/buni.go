// SPDX-License-Identifier: MIT

package cbessel

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/zbessel/machine"
)

// uniformI evaluates I at orders fnu..fnu+len(y)-1 through the uniform
// large-order expansions. With nui = 0 the orders are already above Fnul
// and the sector-appropriate expansion fills y directly. Otherwise two
// seeds are formed at the boosted orders fnu+len(y)-1+nui and up, and the
// stable downward recurrence walks them back into the window. A nonzero
// nlast means the low orders fell out of expansion range (or the boosted
// seeds underflowed) and the first nlast members are left for the caller
// to produce another way.
func uniformI(z complex128, fnu float64, scaled bool, nui int, y []complex128) (nz, nlast int, err error) {
	n := len(y)
	iform := 1
	if math.Abs(imag(z)) > math.Abs(real(z))*1.7321 {
		iform = 2
	}
	uni := uniformI1
	if iform == 2 {
		uni = uniformI2
	}
	if nui == 0 {
		return uni(z, fnu, scaled, y)
	}

	dfnu := fnu + float64(n-1)
	gnu := dfnu + float64(nui)
	var cy [2]complex128
	nw, _, uerr := uni(z, gnu, scaled, cy[:])
	if uerr != nil {
		return 0, 0, uerr
	}
	if nw != 0 {
		// the boosted seeds are under the floor; recurring them down
		// would fabricate the whole window out of noise
		return 0, n, nil
	}
	sc := machine.NewRescaler(cmplx.Abs(cy[0]))
	f := complex(sc.Factor(), 0)
	s1 := cy[1] * f
	s2 := cy[0] * f
	rz := 2 / z
	ord := gnu
	for i := 0; i < nui; i++ {
		st := s2
		s2 = complex(ord, 0)*rz*s2 + s1
		s1 = st
		ord--
		sc.Adjust(&s1, &s2)
	}
	y[n-1] = s2 * complex(sc.Recip(), 0)
	for k := n - 2; k >= 0; k-- {
		st := s2
		s2 = complex(ord, 0)*rz*s2 + s1
		s1 = st
		ord--
		sc.Adjust(&s1, &s2)
		y[k] = s2 * complex(sc.Recip(), 0)
	}
	return 0, 0, nil
}
