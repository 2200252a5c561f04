package query

import (
	"github.com/gingerlifts/opldb/internal/indexset"
	"github.com/gingerlifts/opldb/internal/metafed"
	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
	"github.com/gingerlifts/opldb/internal/staticcache"
)

// Engine holds everything the planner needs to turn a RankingsQuery into
// a ranked list: the loaded tables and the two caches built over them.
type Engine struct {
	Entries []opltypes.Entry
	Meets   []opltypes.Meet
	Cache   *staticcache.StaticCache
	MetaFed *metafed.Cache
}

// Rankings executes q and returns the page [start, end) of the resulting
// ranked list. The fast path returns a borrow of the precomputed cache
// list, or an owned O(n)-filtered copy of it when sex narrows the result;
// the slow path always returns a freshly materialized list.
func (eng *Engine) Rankings(q *RankingsQuery, start, end int) indexset.PossiblyOwned[opltypes.EntryID] {
	var full indexset.SortedUnique
	var owned bool

	if q.isFastPath() {
		full, owned = eng.fastPath(q)
	} else {
		full, owned = eng.slowPath(q), true
	}

	page := paginate(full, start, end)
	if owned {
		return indexset.Owned(page)
	}
	return indexset.Borrow(page)
}

func paginate(full []opltypes.EntryID, start, end int) []opltypes.EntryID {
	if start < 0 {
		start = 0
	}
	if end > len(full) {
		end = len(full)
	}
	if start >= end {
		return nil
	}
	return full[start:end]
}

func (eng *Engine) fastPath(q *RankingsQuery) (indexset.SortedUnique, bool) {
	list, _ := eng.Cache.Ranked(q.Ordering, q.Equipment)
	if q.Sex == nil {
		return list, false
	}
	sex := *q.Sex
	return list.Filtered(eng.Entries, func(e *opltypes.Entry) bool { return e.Sex == sex }), true
}

func (eng *Engine) slowPath(q *RankingsQuery) indexset.SortedUnique {
	set := eng.Cache.EquipmentBucketSet(q.Equipment)

	if q.Sex != nil {
		set = indexset.Intersect(set, eng.Cache.Sex(*q.Sex))
	}

	if q.Year != nil {
		if cached, ok := eng.Cache.Year(*q.Year); ok {
			set = indexset.Intersect(set, cached)
		} else {
			year := *q.Year
			set = eng.filterSet(set, func(e *opltypes.Entry) bool {
				return int(eng.Meets[e.MeetID].Date.Year()) == year
			})
		}
	}

	if q.State != nil {
		state := *q.State
		set = eng.filterSet(set, func(e *opltypes.Entry) bool { return e.LifterState == state })
	}

	switch q.Federation.Kind {
	case FederationOne:
		fed := q.Federation.One
		set = eng.filterSet(set, func(e *opltypes.Entry) bool { return eng.Meets[e.MeetID].Federation == fed })
	case FederationMeta:
		name := q.Federation.Meta
		set = eng.filterSet(set, func(e *opltypes.Entry) bool {
			return eng.MetaFed.Matches(name, e, &eng.Meets[e.MeetID])
		})
	}

	if q.AgeClass != nil {
		ac := *q.AgeClass
		set = eng.filterSet(set, func(e *opltypes.Entry) bool { return e.AgeClass == ac })
	}

	if q.Event != nil {
		event := *q.Event
		set = eng.filterSet(set, func(e *opltypes.Entry) bool { return e.Event == event })
	}

	if len(q.Weightclasses) > 0 {
		classes := q.Weightclasses
		set = eng.filterSet(set, func(e *opltypes.Entry) bool {
			for _, wc := range classes {
				if wc.Matches(e.WeightClassKg) {
					return true
				}
			}
			return false
		})
	}

	less := oplsort.Less(q.Ordering, eng.Meets)
	filt := oplsort.Filter(q.Ordering)
	return indexset.SortAndUniqueBy(eng.Entries, set, less, filt)
}

// filterSet applies an O(n) predicate over a monotone set and returns the
// surviving members as a fresh monotone set, per spec.md §4.6's slow path
// ("apply remaining filters ... each producing a new monotone set").
func (eng *Engine) filterSet(set indexset.NonSortedNonUnique, keep func(*opltypes.Entry) bool) indexset.NonSortedNonUnique {
	var ids []opltypes.EntryID
	set.Iterate(func(id opltypes.EntryID) bool {
		if keep(&eng.Entries[id]) {
			ids = append(ids, id)
		}
		return true
	})
	return indexset.FromIDs(ids)
}
