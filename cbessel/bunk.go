// SPDX-License-Identifier: MIT

package cbessel

import "math"

// uniformK evaluates K at orders fnu..fnu+len(y)-1 for fnu > Fnul by one
// of the two large-order expansions, split on the sector boundary
// |Im z| = sqrt(3) Re z of the reflected argument. The boundary test
// uses magnitudes, so the same split serves both half planes. mr = 0
// keeps z as is; mr = +1 continues across the cut for Re z < 0 with
// Im z >= 0.
func uniformK(z complex128, fnu float64, scaled bool, mr int, y []complex128) (nz int, err error) {
	if math.Abs(imag(z)) > math.Abs(real(z))*1.7321 {
		return uniformK2(z, fnu, scaled, mr, y)
	}
	return uniformK1(z, fnu, scaled, mr, y)
}
