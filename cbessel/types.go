// SPDX-License-Identifier: MIT

package cbessel

// ScalingMode selects between true function values and values damped by a
// family-specific exponential, so that magnitudes stay representable deep
// into the growth regions:
//
//   - Unscaled: the mathematically exact value f(z).
//   - Scaled: the value premultiplied by exp(-|Im z|) for J and Y,
//     exp(-iz) for H1, exp(+iz) for H2, exp(-|Re z|) for I, exp(z) for K,
//     exp(zeta) for Ai and exp(-|Re zeta|) for Bi, zeta = (2/3)z^(3/2).
//
// The factor is fixed by z and the family; it is not a tunable.
type ScalingMode int

const (
	// Unscaled returns true function values.
	Unscaled ScalingMode = iota

	// Scaled returns exponentially damped values (see ScalingMode).
	Scaled
)

// DefaultMode is the mode used by the single-value convenience wrappers.
const DefaultMode = Unscaled

// String returns a human-readable mode name.
func (m ScalingMode) String() string {
	switch m {
	case Unscaled:
		return "Unscaled"
	case Scaled:
		return "Scaled"
	}
	return "ScalingMode(?)"
}

func (m ScalingMode) valid() bool { return m == Unscaled || m == Scaled }

// scaled converts the mode to the flag threaded through the kernels.
func (m ScalingMode) scaled() bool { return m == Scaled }

// Sequence holds one function family evaluated at n consecutive orders:
// Values[i] is the value at order nu+i.
//
// Underflowed counts the members returned as exact zeros because their
// magnitude fell below the representable floor during scaled arithmetic,
// not because the value is mathematically zero. For the families that
// decay in order (J, I) these are the trailing members; for K, which grows
// in order, the leading ones.
type Sequence struct {
	Values      []complex128
	Underflowed int
}
