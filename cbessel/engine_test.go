// SPDX-License-Identifier: MIT

package cbessel_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/zbessel/cbessel"
)

// EngineSuite exercises batch evaluation end to end: two windows of the
// same family that overlap in order are seeded independently, so their
// agreement on the shared orders checks the whole seed-plus-recurrence
// pipeline, not just a single call.
type EngineSuite struct {
	suite.Suite
}

// seqFunc is any of the sequence entry points.
type seqFunc func(z complex128, nu float64, mode cbessel.ScalingMode, n int) (cbessel.Sequence, error)

// splice evaluates fn on the window nu..nu+5 and on nu+2..nu+5, then
// compares the four shared members.
func (s *EngineSuite) splice(fn seqFunc, z complex128, nu float64, mode cbessel.ScalingMode, tol float64) {
	s.T().Helper()
	wide, err := fn(z, nu, mode, 6)
	require.NoError(s.T(), err)
	require.Zero(s.T(), wide.Underflowed)

	narrow, err := fn(z, nu+2, mode, 4)
	require.NoError(s.T(), err)
	require.Zero(s.T(), narrow.Underflowed)

	for k := 0; k < 4; k++ {
		want := wide.Values[k+2]
		got := narrow.Values[k]
		d := cmplx.Abs(got - want)
		require.LessOrEqual(s.T(), d, tol*cmplx.Abs(want),
			"order %g at %v: windows disagree, %v vs %v", nu+2+float64(k), z, want, got)
	}
}

// TestBesselJWindows splices J windows at a generic complex point.
func (s *EngineSuite) TestBesselJWindows() {
	s.splice(cbessel.BesselJ, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
}

// TestBesselYWindows splices Y windows, whose members grow in order.
func (s *EngineSuite) TestBesselYWindows() {
	s.splice(cbessel.BesselY, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
}

// TestBesselIWindows splices I windows in the right half plane and across
// the cut.
func (s *EngineSuite) TestBesselIWindows() {
	s.splice(cbessel.BesselI, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
	s.splice(cbessel.BesselI, complex(-4, 3), 0.7, cbessel.Unscaled, 1e-11)
}

// TestBesselKWindows splices K windows in the right half plane and across
// the cut.
func (s *EngineSuite) TestBesselKWindows() {
	s.splice(cbessel.BesselK, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
	s.splice(cbessel.BesselK, complex(-4, 3), 0.7, cbessel.Unscaled, 1e-11)
}

// TestHankelWindows splices both Hankel kinds above and below the axis.
func (s *EngineSuite) TestHankelWindows() {
	s.splice(cbessel.Hankel1, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
	s.splice(cbessel.Hankel1, complex(4, -3), 0.7, cbessel.Unscaled, 1e-11)
	s.splice(cbessel.Hankel2, complex(4, 3), 0.7, cbessel.Unscaled, 1e-11)
	s.splice(cbessel.Hankel2, complex(4, -3), 0.7, cbessel.Unscaled, 1e-11)
}

// TestScaledWindows splices in scaled mode at arguments far beyond the
// unscaled exponent range.
func (s *EngineSuite) TestScaledWindows() {
	s.splice(cbessel.BesselK, complex(300, 100), 0.7, cbessel.Scaled, 1e-11)
	s.splice(cbessel.BesselI, complex(300, 100), 0.7, cbessel.Scaled, 1e-11)
	s.splice(cbessel.BesselJ, complex(100, 300), 0.7, cbessel.Scaled, 1e-11)
}

// TestEngineSuite runs the window coherence suite.
func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}
