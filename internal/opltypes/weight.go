package opltypes

import (
	"fmt"
	"math"
	"strconv"
)

// WeightKg is a weight in kilograms, stored as a fixed-point integer with
// two decimal places (hundredths of a kilogram). Negative values denote a
// failed attempt; the sign carries information, the magnitude is still the
// attempted weight. Zero means "no lift recorded."
type WeightKg int32

// WeightAny is a WeightKg converted to its final display unit (kg or lbs).
// Once converted, the unit is forgotten; WeightAny values from different
// units are not comparable to each other.
type WeightAny int32

// lbsPerKg is the published kg-to-lbs multiplier used throughout the
// corpus, matching the original compiler's constant.
const lbsPerKg = 2.20462262

// WeightFromI32 constructs a WeightKg from a whole-kilogram integer.
func WeightFromI32(kg int32) WeightKg {
	return WeightKg(kg * 100)
}

// WeightFromF32 constructs a WeightKg from a floating-point kilogram value,
// rounding to the nearest hundredth. Non-finite inputs (Inf, NaN) produce
// zero rather than propagating garbage through the rest of the pipeline.
func WeightFromF32(f float64) WeightKg {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return WeightKg(math.Round(f * 100))
}

// ParseWeightKg parses a decimal weight string as it appears in the CSV
// corpus. The empty string means "no lift recorded" and parses to zero.
// Malformed tokens ("..", "--", non-numeric text) are parse errors; a
// syntactically valid but non-finite float (which cannot actually arise
// from strconv.ParseFloat, but is handled for symmetry with the original
// implementation) collapses to zero instead of erroring.
func ParseWeightKg(s string) (WeightKg, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q: %w", s, err)
	}
	return WeightFromF32(f), nil
}

// IsFailed reports whether the weight represents a failed attempt.
func (w WeightKg) IsFailed() bool { return w < 0 }

// IsNonZero reports whether any lift was recorded (attempted, whether made
// or missed).
func (w WeightKg) IsNonZero() bool { return w != 0 }

// Abs returns the absolute value of the weight.
func (w WeightKg) Abs() WeightKg {
	if w < 0 {
		return -w
	}
	return w
}

// Add returns the sum of two weights.
func (w WeightKg) Add(o WeightKg) WeightKg { return w + o }

// Sub returns the difference of two weights.
func (w WeightKg) Sub(o WeightKg) WeightKg { return w - o }

// AsKg returns the weight formatted for kilogram display.
func (w WeightKg) AsKg() WeightAny { return WeightAny(w) }

// AsLbs converts the weight to pounds, applying the rounding-drift
// correction: meets that were originally reported in pounds and then
// converted to kilograms for storage sometimes round to a value one
// hundredth short (e.g. 1709.99 instead of 1710.00) when converted back.
// If the converted hundredths digit is 99, round up by one.
func (w WeightKg) AsLbs() WeightAny {
	f := float64(w) * lbsPerKg
	rounded := int32(math.Round(f))
	if mod := rounded % 100; mod == 99 || mod == -99 {
		if rounded >= 0 {
			rounded++
		} else {
			rounded--
		}
	}
	return WeightAny(rounded)
}

// String formats the weight, dropping the trailing ".0" for whole numbers
// and never printing a bare "-0".
func (w WeightKg) String() string {
	return WeightAny(w).String()
}

// String formats a WeightAny to a single decimal place, omitting the
// decimal entirely when it would be zero, and printing nothing at all for
// a zero weight (spec: "no lift recorded" must round-trip to the empty
// CSV cell).
func (a WeightAny) String() string {
	if a == 0 {
		return ""
	}
	integer := int32(a) / 100
	decimal := (int32(a)) % 100
	if decimal < 0 {
		decimal = -decimal
	}
	tenth := decimal / 10
	if tenth == 0 {
		return strconv.Itoa(int(integer))
	}
	return fmt.Sprintf("%d.%d", integer, tenth)
}

// Float64 returns the weight as kilograms.
func (w WeightKg) Float64() float64 { return float64(w) / 100 }

// WeightClassKg is a lifter's reported weight class: either an upper
// bound ("under or equal to w") or, for a superheavyweight class, an open
// lower bound ("over w"), written in the CSV with a trailing "+".
type WeightClassKg struct {
	value WeightAny
	over  bool
}

// ParseWeightClassKg parses a WeightClassKg CSV cell. The empty string
// means no class was reported.
func ParseWeightClassKg(s string) (WeightClassKg, error) {
	if s == "" {
		return WeightClassKg{}, nil
	}
	over := false
	if s[len(s)-1] == '+' {
		over = true
		s = s[:len(s)-1]
	}
	w, err := ParseWeightKg(s)
	if err != nil {
		return WeightClassKg{}, fmt.Errorf("invalid weight class %q: %w", s, err)
	}
	return WeightClassKg{value: w.AsKg(), over: over}, nil
}

// Value returns the class's bound in kilograms.
func (c WeightClassKg) Value() WeightAny { return c.value }

// IsOver reports whether the class is an open-ended superheavyweight
// class ("w+").
func (c WeightClassKg) IsOver() bool { return c.over }

// IsZero reports whether no class was reported.
func (c WeightClassKg) IsZero() bool { return c.value == 0 && !c.over }

func (c WeightClassKg) String() string {
	if c.IsZero() {
		return ""
	}
	if c.over {
		return c.value.String() + "+"
	}
	return c.value.String()
}
