package indexset

import (
	"sort"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

// SortedUnique is a ranked list: EntryIDs in presentation order, each
// lifter appearing at most once.
type SortedUnique []opltypes.EntryID

// Less reports whether entry a should be ordered before entry b under a
// comparator, matching the "best-first" convention spec.md §4.4 describes
// (the comparator returns true when a ranks strictly better than b).
type Less func(a, b *opltypes.Entry) bool

// Filter reports whether an entry is eligible at all for a given ranking;
// entries failing it are excluded before the per-lifter reduction runs.
type Filter func(e *opltypes.Entry) bool

// SortAndUniqueBy implements spec.md §4.3's sort_and_unique_by: drop
// entries failing filter, reduce contiguous runs of the same lifter down
// to the single best entry under less, then stably sort the reduced set
// by less.
//
// Correctness depends on ids enumerating positions into entries that are
// already grouped by LifterID — true here because the loader leaves
// entries globally sorted by LifterID, so any subset of its positions
// visited in ascending order is also grouped by lifter.
func SortAndUniqueBy(entries []opltypes.Entry, ids NonSortedNonUnique, less Less, filter Filter) SortedUnique {
	var result SortedUnique
	var curLifter opltypes.LifterID
	var curBest *opltypes.Entry
	started := false

	flush := func() {
		if started {
			result = append(result, curBest.ID)
		}
	}

	ids.Iterate(func(id opltypes.EntryID) bool {
		e := &entries[id]
		if !filter(e) {
			return true
		}
		if !started || e.LifterID != curLifter {
			flush()
			curLifter = e.LifterID
			curBest = e
			started = true
		} else if less(e, curBest) {
			curBest = e
		}
		return true
	})
	flush()

	sort.SliceStable(result, func(i, j int) bool {
		return less(&entries[result[i]], &entries[result[j]])
	})
	return result
}

// Filtered applies an O(n) filter over an already-materialized list,
// preserving order — used by the query planner's fast path when sex is
// constrained but every other axis hit the precomputed cache.
func (s SortedUnique) Filtered(entries []opltypes.Entry, keep Filter) SortedUnique {
	out := make(SortedUnique, 0, len(s))
	for _, id := range s {
		if keep(&entries[id]) {
			out = append(out, id)
		}
	}
	return out
}
