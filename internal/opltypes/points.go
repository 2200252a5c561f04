package opltypes

import (
	"fmt"
	"strconv"
)

// Points is a fixed-point points value (Wilks, Dots, IPFPoints, ...) with
// two decimal places. Zero means "not applicable" — disqualified entries
// have zero for every points column.
type Points int32

// ParsePoints parses a decimal points string, following the same rules as
// ParseWeightKg: empty is zero, malformed text is an error.
func ParsePoints(s string) (Points, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid points %q: %w", s, err)
	}
	return Points(int32(f*100 + sign(f)*0.5)), nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

// IsApplicable reports whether the points value represents a real result.
func (p Points) IsApplicable() bool { return p > 0 }

// Float64 returns the points as a plain decimal value.
func (p Points) Float64() float64 { return float64(p) / 100 }

// String formats the points to two decimal places, or the empty string
// when not applicable.
func (p Points) String() string {
	if p == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", p.Float64())
}
