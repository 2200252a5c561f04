// Package query implements the RankingsQuery planner from spec.md §4.6:
// the fast-path/slow-path decision tree that turns a filter conjunction
// into a ranked list, reusing the precomputed static cache whenever the
// query's shape allows it and falling back to an on-the-fly index-set
// pipeline otherwise.
package query

import (
	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// FederationFilterKind selects how a query constrains federation.
type FederationFilterKind uint8

const (
	FederationAll FederationFilterKind = iota
	FederationOne
	FederationMeta
)

// FederationFilter constrains a query to all federations, a single named
// one, or a MetaFederation by name.
type FederationFilter struct {
	Kind FederationFilterKind
	One  opltypes.Federation
	Meta string
}

// Weightclass is a half-open weight class range (Lo, Hi], matching
// spec.md §4.6's SHW convention when OpenHi is set: an OpenHi class also
// matches entries whose own recorded class is itself open-ended ("w+")
// with a floor at or above Lo.
type Weightclass struct {
	Lo     opltypes.WeightAny
	Hi     opltypes.WeightAny
	OpenHi bool
}

// Matches reports whether an entry's weight class falls within this
// range.
func (w Weightclass) Matches(cls opltypes.WeightClassKg) bool {
	if cls.IsZero() {
		return false
	}
	if cls.IsOver() {
		if !w.OpenHi {
			return false
		}
		return cls.Value() >= w.Lo
	}
	if w.OpenHi {
		return cls.Value() > w.Lo
	}
	return cls.Value() > w.Lo && cls.Value() <= w.Hi
}

// RankingsQuery is the conjunction of filters spec.md §4.6 defines. A nil
// pointer field (Sex, Year, AgeClass, Event, State) means that axis is
// unconstrained ("All"/"None"); a nil Weightclasses means "All" too.
type RankingsQuery struct {
	Equipment     opltypes.EquipmentBucket
	Ordering      oplsort.Ordering
	Sex           *opltypes.Sex
	Year          *int
	AgeClass      *opltypes.AgeClass
	Event         *opltypes.Event
	Weightclasses []Weightclass
	Federation    FederationFilter
	State         *opltypes.State
}

// isFastPath reports whether q matches spec.md §4.6's fast-path guard:
// every axis except equipment, ordering, and sex is unconstrained.
func (q *RankingsQuery) isFastPath() bool {
	return q.Federation.Kind == FederationAll &&
		len(q.Weightclasses) == 0 &&
		q.Year == nil &&
		q.AgeClass == nil &&
		q.Event == nil &&
		q.State == nil
}
