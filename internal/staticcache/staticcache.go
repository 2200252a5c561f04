// Package staticcache builds the two-tier cache spec.md §4.5 describes: a
// log-linear layer of per-axis monotone index sets, and a constant-time
// layer of precomputed ranked lists for every (ordering, equipment
// bucket) pair the query planner's fast path can serve directly.
//
// Build parallelizes its independent ranked-list computations with
// golang.org/x/sync/errgroup as a worker pool, bounded by runtime.GOMAXPROCS so a large corpus doesn't
// oversubscribe the machine it's loaded on.
package staticcache

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/gingerlifts/opldb/internal/indexset"
	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// Options configures Build. Years resolves spec.md §9's Open Question 1
// ("which years get a cached monotone set"): left nil, every year that
// appears in the corpus is cached; callers with very wide year ranges and
// tight memory budgets can pass an explicit subset instead.
type Options struct {
	Years []int
}

type rankedKey struct {
	ordering oplsort.Ordering
	bucket   opltypes.EquipmentBucket
}

// StaticCache is the immutable, fully-built two-tier cache for one loaded
// database. It is safe for concurrent read access from many goroutines:
// nothing mutates after Build returns.
type StaticCache struct {
	equipment map[opltypes.Equipment]indexset.NonSortedNonUnique
	sex       map[opltypes.Sex]indexset.NonSortedNonUnique
	year      map[int]indexset.NonSortedNonUnique
	years     []int // ascending, mirrors the keys of year

	ranked map[rankedKey]indexset.SortedUnique
}

// Build constructs the full cache from a loaded entries/meets pair.
// ctx is checked between the two build phases and before each ranked-list
// job of the second phase.
func Build(ctx context.Context, entries []opltypes.Entry, meets []opltypes.Meet, opts Options) (*StaticCache, error) {
	c := &StaticCache{
		equipment: make(map[opltypes.Equipment]indexset.NonSortedNonUnique),
		sex:       make(map[opltypes.Sex]indexset.NonSortedNonUnique),
		year:      make(map[int]indexset.NonSortedNonUnique),
		ranked:    make(map[rankedKey]indexset.SortedUnique),
	}

	years := opts.Years
	if years == nil {
		years = distinctYears(entries, meets)
	}
	c.years = append([]int(nil), years...)
	sort.Ints(c.years)

	buildLogLinearLayer(c, entries, meets)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := buildConstantTimeLayer(ctx, c, entries, meets); err != nil {
		return nil, err
	}

	return c, nil
}

func distinctYears(entries []opltypes.Entry, meets []opltypes.Meet) []int {
	seen := make(map[int]bool)
	for _, e := range entries {
		if e.Place.IsDQ() {
			continue
		}
		seen[int(meets[e.MeetID].Date.Year())] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	return years
}

func buildLogLinearLayer(c *StaticCache, entries []opltypes.Entry, meets []opltypes.Meet) {
	equipmentIDs := make(map[opltypes.Equipment][]opltypes.EntryID)
	sexIDs := make(map[opltypes.Sex][]opltypes.EntryID)
	yearIDs := make(map[int][]opltypes.EntryID)

	cachedYear := make(map[int]bool, len(c.years))
	for _, y := range c.years {
		cachedYear[y] = true
	}

	for i := range entries {
		e := &entries[i]
		if e.Place.IsDQ() {
			continue
		}
		equipmentIDs[e.Equipment] = append(equipmentIDs[e.Equipment], e.ID)
		sexIDs[e.Sex] = append(sexIDs[e.Sex], e.ID)

		year := int(meets[e.MeetID].Date.Year())
		if cachedYear[year] {
			yearIDs[year] = append(yearIDs[year], e.ID)
		}
	}

	for eq, ids := range equipmentIDs {
		c.equipment[eq] = indexset.FromIDs(ids)
	}
	for sex, ids := range sexIDs {
		c.sex[sex] = indexset.FromIDs(ids)
	}
	for y, ids := range yearIDs {
		c.year[y] = indexset.FromIDs(ids)
	}
}

func buildConstantTimeLayer(ctx context.Context, c *StaticCache, entries []opltypes.Entry, meets []opltypes.Meet) error {
	bucketSets := make(map[opltypes.EquipmentBucket]indexset.NonSortedNonUnique)
	for _, bucket := range opltypes.AllEquipmentBuckets() {
		set := indexset.NewNonSortedNonUnique()
		for _, member := range bucket.Members() {
			if members, ok := c.equipment[member]; ok {
				set = indexset.Union(set, members)
			}
		}
		bucketSets[bucket] = set
	}

	type job struct {
		key  rankedKey
		set  indexset.NonSortedNonUnique
		less indexset.Less
		filt indexset.Filter
	}

	var jobs []job
	for _, ordering := range oplsort.AllOrderings() {
		less := oplsort.Less(ordering, meets)
		filt := oplsort.Filter(ordering)
		for _, bucket := range opltypes.AllEquipmentBuckets() {
			jobs = append(jobs, job{
				key:  rankedKey{ordering: ordering, bucket: bucket},
				set:  bucketSets[bucket],
				less: less,
				filt: filt,
			})
		}
	}

	results := make([]indexset.SortedUnique, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = indexset.SortAndUniqueBy(entries, j.set, j.less, j.filt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, j := range jobs {
		c.ranked[j.key] = results[i]
	}
	return nil
}

// Ranked returns the precomputed ranked list for an (ordering, bucket)
// pair, and whether one exists (it always does for the six precomputed
// buckets; false only indicates a programming error in the caller).
func (c *StaticCache) Ranked(ordering oplsort.Ordering, bucket opltypes.EquipmentBucket) (indexset.SortedUnique, bool) {
	r, ok := c.ranked[rankedKey{ordering: ordering, bucket: bucket}]
	return r, ok
}

// Equipment returns the log-linear non-DQ index set for a single
// per-entry Equipment value.
func (c *StaticCache) Equipment(e opltypes.Equipment) indexset.NonSortedNonUnique {
	return c.equipment[e]
}

// Sex returns the log-linear non-DQ index set for a Sex value.
func (c *StaticCache) Sex(s opltypes.Sex) indexset.NonSortedNonUnique {
	return c.sex[s]
}

// Year returns the log-linear non-DQ index set for a calendar year and
// whether that year was cached.
func (c *StaticCache) Year(y int) (indexset.NonSortedNonUnique, bool) {
	s, ok := c.year[y]
	return s, ok
}

// CachedYears returns every year with a precomputed index set, ascending.
func (c *StaticCache) CachedYears() []int {
	return append([]int(nil), c.years...)
}

// EquipmentBucketSet returns the union index set for an equipment bucket,
// used by the query planner's slow path as its starting point.
func (c *StaticCache) EquipmentBucketSet(bucket opltypes.EquipmentBucket) indexset.NonSortedNonUnique {
	set := indexset.NewNonSortedNonUnique()
	for _, member := range bucket.Members() {
		set = indexset.Union(set, c.equipment[member])
	}
	return set
}
