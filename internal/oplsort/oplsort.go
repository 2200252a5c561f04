// Package oplsort implements the comparator and filter algebra behind
// every ranked list in the database: one "best-of" comparator per
// rankable column, all sharing a single tie-break chain, plus the
// per-column filter that excludes entries that can never rank under it.
//
// The comparator shape is grounded on internal/search's RRFFusion.compare
// in the retrieved corpus: a primary metric compared first, each
// tie-break checked only when the previous ones were equal, the whole
// chain collapsing to a single bool ("does a rank before b").
package oplsort

import (
	"fmt"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

// Ordering names one of the ten precomputed rankable columns.
type Ordering uint8

const (
	OrderSquat Ordering = iota
	OrderBench
	OrderDeadlift
	OrderTotal
	OrderDots
	OrderGlossbrenner
	OrderGoodlift
	OrderIPFPoints
	OrderMcCulloch
	OrderWilks
)

var allOrderings = [...]Ordering{
	OrderSquat, OrderBench, OrderDeadlift, OrderTotal, OrderDots,
	OrderGlossbrenner, OrderGoodlift, OrderIPFPoints, OrderMcCulloch, OrderWilks,
}

// AllOrderings returns every precomputed ordering, in a stable order.
func AllOrderings() []Ordering {
	out := make([]Ordering, len(allOrderings))
	copy(out, allOrderings[:])
	return out
}

func (o Ordering) String() string {
	switch o {
	case OrderSquat:
		return "Squat"
	case OrderBench:
		return "Bench"
	case OrderDeadlift:
		return "Deadlift"
	case OrderTotal:
		return "Total"
	case OrderDots:
		return "Dots"
	case OrderGlossbrenner:
		return "Glossbrenner"
	case OrderGoodlift:
		return "Goodlift"
	case OrderIPFPoints:
		return "IPFPoints"
	case OrderMcCulloch:
		return "McCulloch"
	case OrderWilks:
		return "Wilks"
	default:
		return "Unknown"
	}
}

// ParseOrdering parses an ordering name as used in CLI flags and config
// files (case-sensitive, matching String's output).
func ParseOrdering(s string) (Ordering, error) {
	for _, o := range allOrderings {
		if o.String() == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unrecognized ordering %q", s)
}

// isLiftOrdering reports whether an ordering ranks one of the three
// individual lifts rather than a total or a points system — only lift
// orderings include the "bigger total wins the same-day tie" step.
func (o Ordering) isLiftOrdering() bool {
	return o == OrderSquat || o == OrderBench || o == OrderDeadlift
}

// primary extracts the column value an ordering ranks by, higher-is-better.
func (o Ordering) primary(e *opltypes.Entry) int32 {
	switch o {
	case OrderSquat:
		return int32(e.HighestSquatKg())
	case OrderBench:
		return int32(e.HighestBenchKg())
	case OrderDeadlift:
		return int32(e.HighestDeadliftKg())
	case OrderTotal:
		return int32(e.TotalKg)
	case OrderDots:
		return int32(e.Dots)
	case OrderGlossbrenner:
		return int32(e.Glossbrenner)
	case OrderGoodlift:
		return int32(e.Goodlift)
	case OrderIPFPoints:
		return int32(e.IPFPoints)
	case OrderMcCulloch:
		return int32(e.McCulloch)
	case OrderWilks:
		return int32(e.Wilks)
	default:
		return 0
	}
}

// Less returns the comparator for an ordering: true when a ranks strictly
// before (better than) b, per spec.md §4.4's tie-break chain:
//  1. the ranked column, descending
//  2. meet date, ascending
//  3. bodyweight, ascending
//  4. for lift orderings only, total descending
//
// Less takes the meets table so the date tie-break can look up
// each entry's meet.
func Less(o Ordering, meets []opltypes.Meet) func(a, b *opltypes.Entry) bool {
	return func(a, b *opltypes.Entry) bool {
		pa, pb := o.primary(a), o.primary(b)
		if pa != pb {
			return pa > pb
		}

		da, db := meets[a.MeetID].Date, meets[b.MeetID].Date
		if da != db {
			return da < db
		}

		if a.BodyweightKg != b.BodyweightKg {
			return a.BodyweightKg < b.BodyweightKg
		}

		if o.isLiftOrdering() && a.TotalKg != b.TotalKg {
			return a.TotalKg > b.TotalKg
		}

		return false
	}
}

// Filter returns the eligibility predicate for an ordering: entries that
// would otherwise sort "infinitely low" are excluded outright rather than
// merely sorted last, per spec.md §4.4.
func Filter(o Ordering) func(e *opltypes.Entry) bool {
	switch o {
	case OrderSquat:
		return func(e *opltypes.Entry) bool { return e.HighestSquatKg() > 0 && !e.Place.IsDQ() }
	case OrderBench:
		return func(e *opltypes.Entry) bool { return e.HighestBenchKg() > 0 && !e.Place.IsDQ() }
	case OrderDeadlift:
		return func(e *opltypes.Entry) bool { return e.HighestDeadliftKg() > 0 && !e.Place.IsDQ() }
	case OrderTotal:
		return func(e *opltypes.Entry) bool { return e.TotalKg > 0 }
	case OrderDots:
		return func(e *opltypes.Entry) bool { return e.Dots > 0 }
	case OrderGlossbrenner:
		return func(e *opltypes.Entry) bool { return e.Glossbrenner > 0 }
	case OrderGoodlift:
		return func(e *opltypes.Entry) bool { return e.Goodlift > 0 }
	case OrderIPFPoints:
		return func(e *opltypes.Entry) bool { return e.IPFPoints > 0 }
	case OrderMcCulloch:
		return func(e *opltypes.Entry) bool { return e.McCulloch > 0 }
	case OrderWilks:
		return func(e *opltypes.Entry) bool { return e.Wilks > 0 }
	default:
		return func(*opltypes.Entry) bool { return false }
	}
}
