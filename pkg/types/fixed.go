package types

import (
	"fmt"
	"math"
)

// FixedPrecision is the number of fractional bits of a Fixed.
const FixedPrecision = 12

// levelShift converts a Fixed into a 5-bit effect level.
const levelShift = FixedPrecision - 5

// Fixed is a signed 20.12 fixed point number. Effect strengths are Fixed
// values in [0, 1].
type Fixed int32

const (
	// FixedZero is 0.0.
	FixedZero Fixed = 0

	// FixedOne is 1.0.
	FixedOne Fixed = 1 << FixedPrecision
)

// FixedFromInt returns v as a Fixed.
func FixedFromInt(v int) Fixed { return Fixed(v << FixedPrecision) }

// FixedFromFloat returns the Fixed nearest to v.
func FixedFromFloat(v float64) Fixed {
	return Fixed(math.Round(v * float64(FixedOne)))
}

// Data returns the raw fixed point representation.
func (f Fixed) Data() int32 { return int32(f) }

// Float returns f as a float64.
func (f Fixed) Float() float64 { return float64(f) / float64(FixedOne) }

// Level quantizes f to the 5-bit effect strength scale: 0 for 0.0, 32 for 1.0.
// Two strengths with the same level produce identical colors.
func (f Fixed) Level() int { return int(f >> levelShift) }

// InUnitRange reports whether f is within [0, 1].
func (f Fixed) InUnitRange() bool { return f >= 0 && f <= FixedOne }

func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float())
}

// CheckUnit returns ErrInvalidParameter when f is outside [0, 1].
func CheckUnit(name string, f Fixed) error {
	if !f.InUnitRange() {
		return &Error{Kind: ErrKindInvalidParameter, Msg: fmt.Sprintf("invalid %s: %s", name, f)}
	}
	return nil
}
