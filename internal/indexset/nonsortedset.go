// Package indexset implements the two index-set representations spec.md
// §4.3 calls the monotone index set and the ranked list, plus the
// PossiblyOwned wrapper that lets a query return either a borrowed cache
// entry or a freshly materialized vector through the same type.
package indexset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

// NonSortedNonUnique is a set of EntryIDs with no ordering guarantee
// beyond what the underlying bitmap iterates in (ascending by value).
// Backed by a Roaring bitmap rather than a hand-rolled sorted slice: the
// corpus's own search-engine driver (the fineweb FTS production driver)
// reaches for RoaringBitmap for exactly this "large, mostly-dense,
// frequently unioned/intersected integer set" shape, and its compressed
// containers make the log-linear layer (one set per equipment/sex/year)
// cheap to keep resident for the whole process lifetime.
type NonSortedNonUnique struct {
	bitmap *roaring.Bitmap
}

// NewNonSortedNonUnique builds an empty set.
func NewNonSortedNonUnique() NonSortedNonUnique {
	return NonSortedNonUnique{bitmap: roaring.New()}
}

// FromIDs builds a set from a slice of EntryIDs, not required to be
// sorted or unique.
func FromIDs(ids []opltypes.EntryID) NonSortedNonUnique {
	b := roaring.New()
	for _, id := range ids {
		b.Add(uint32(id))
	}
	b.RunOptimize()
	return NonSortedNonUnique{bitmap: b}
}

// Add inserts an EntryID.
func (s NonSortedNonUnique) Add(id opltypes.EntryID) { s.bitmap.Add(uint32(id)) }

// Contains reports set membership.
func (s NonSortedNonUnique) Contains(id opltypes.EntryID) bool { return s.bitmap.Contains(uint32(id)) }

// Len returns the number of members.
func (s NonSortedNonUnique) Len() int { return int(s.bitmap.GetCardinality()) }

// Union returns a new set containing members of either input.
func Union(a, b NonSortedNonUnique) NonSortedNonUnique {
	return NonSortedNonUnique{bitmap: roaring.Or(a.bitmap, b.bitmap)}
}

// Intersect returns a new set containing members of both inputs.
func Intersect(a, b NonSortedNonUnique) NonSortedNonUnique {
	return NonSortedNonUnique{bitmap: roaring.And(a.bitmap, b.bitmap)}
}

// ToSlice materializes the set as an ascending slice of EntryIDs.
func (s NonSortedNonUnique) ToSlice() []opltypes.EntryID {
	vals := s.bitmap.ToArray()
	out := make([]opltypes.EntryID, len(vals))
	for i, v := range vals {
		out[i] = opltypes.EntryID(v)
	}
	return out
}

// Iterate calls fn for every member in ascending order, stopping early if
// fn returns false.
func (s NonSortedNonUnique) Iterate(fn func(opltypes.EntryID) bool) {
	it := s.bitmap.Iterator()
	for it.HasNext() {
		if !fn(opltypes.EntryID(it.Next())) {
			return
		}
	}
}
