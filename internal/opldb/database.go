// Package opldb is the top-level façade: Database ties the loader, the
// two caches, and the query planner into the single value spec.md §6.2's
// programmatic surface describes. Nothing outside this package other than
// internal/loader/loaderr sees a load-time error type, and nothing
// outside internal/query sees a planner internal.
package opldb

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/gingerlifts/opldb/internal/loader"
	"github.com/gingerlifts/opldb/internal/loader/loaderr"
	"github.com/gingerlifts/opldb/internal/metafed"
	"github.com/gingerlifts/opldb/internal/namesearch"
	"github.com/gingerlifts/opldb/internal/opltypes"
	"github.com/gingerlifts/opldb/internal/query"
	"github.com/gingerlifts/opldb/internal/staticcache"
)

// Database is the fully loaded, immutable in-memory OpenPowerlifting
// corpus. A *Database is safe for concurrent read access from any number
// of goroutines once FromCSV returns; nothing mutates it afterward.
type Database struct {
	lifters []opltypes.Lifter
	meets   []opltypes.Meet
	entries []opltypes.Entry

	usernameIndex map[string][]opltypes.LifterID
	pathIndex     map[string]opltypes.MeetID

	cache   *staticcache.StaticCache
	metaFed *metafed.Cache
	engine  *query.Engine
	qcache  *query.Cache
}

// Config configures FromCSV.
type Config struct {
	Progress       loader.Progress
	CachedYears    []int         // nil means "every year present in the corpus"
	MetaFedDefs    []metafed.Def // nil means the standard roster in internal/metafed.Defs()
	QueryCacheSize int           // 0 disables the read-through rankings cache
}

// Source names one CSV input to FromCSV: a reader plus the filename used
// to attribute load errors.
type Source struct {
	Name   string
	Reader io.Reader
}

// FromCSV loads the three CSV tables and builds every index and cache
// needed to serve queries. ctx governs load-phase cancellation only.
func FromCSV(ctx context.Context, lifters, meets, entries Source, cfg Config) (*Database, error) {
	src := loader.Sources{
		LiftersName: lifters.Name, Lifters: lifters.Reader,
		MeetsName: meets.Name, Meets: meets.Reader,
		EntriesName: entries.Name, Entries: entries.Reader,
	}

	var loadOpts []loader.Option
	if cfg.Progress != nil {
		loadOpts = append(loadOpts, loader.WithProgress(cfg.Progress))
	}

	result, err := loader.FromCSV(ctx, src, loadOpts...)
	if err != nil {
		return nil, err
	}

	if err := validateInvariants(result); err != nil {
		return nil, err
	}

	db := &Database{
		lifters: result.Lifters,
		meets:   result.Meets,
		entries: result.Entries,
	}
	db.buildUsernameIndex()
	db.buildPathIndex()

	cache, err := staticcache.Build(ctx, db.entries, db.meets, staticcache.Options{Years: cfg.CachedYears})
	if err != nil {
		return nil, err
	}
	db.cache = cache

	defs := cfg.MetaFedDefs
	if defs == nil {
		defs = metafed.Defs()
	}
	db.metaFed = metafed.Build(db.meets, defs)

	db.engine = &query.Engine{Entries: db.entries, Meets: db.meets, Cache: db.cache, MetaFed: db.metaFed}

	if cfg.QueryCacheSize > 0 {
		qc, err := query.NewCache(db.engine, cfg.QueryCacheSize)
		if err != nil {
			return nil, err
		}
		db.qcache = qc
	}

	return db, nil
}

func (db *Database) buildUsernameIndex() {
	db.usernameIndex = make(map[string][]opltypes.LifterID, len(db.lifters))
	for i := range db.lifters {
		u := db.lifters[i].Username
		db.usernameIndex[u] = append(db.usernameIndex[u], db.lifters[i].ID)
	}
}

func (db *Database) buildPathIndex() {
	db.pathIndex = make(map[string]opltypes.MeetID, len(db.meets))
	for i := range db.meets {
		db.pathIndex[db.meets[i].Path] = db.meets[i].ID
	}
}

func validateInvariants(r *loader.Result) error {
	for i := 1; i < len(r.Entries); i++ {
		if r.Entries[i].LifterID < r.Entries[i-1].LifterID {
			return loaderr.Invariant("entries are not sorted by LifterID after load")
		}
	}

	counts := make(map[opltypes.MeetID]map[opltypes.LifterID]bool, len(r.Meets))
	for _, e := range r.Entries {
		if counts[e.MeetID] == nil {
			counts[e.MeetID] = make(map[opltypes.LifterID]bool)
		}
		counts[e.MeetID][e.LifterID] = true
	}
	for i, m := range r.Meets {
		if uint32(len(counts[m.ID])) != m.NumUniqueLifters {
			return loaderr.Invariant("num_unique_lifters mismatch for meet " + strconv.Itoa(i))
		}
	}

	for _, e := range r.Entries {
		if (e.TotalKg > 0) == e.Place.IsDQ() {
			return loaderr.Invariant("totalkg>0 iff place!=DQ violated for entry referencing meet " + strconv.Itoa(int(e.MeetID)))
		}
	}

	return nil
}

// Lifter returns the lifter with the given ID.
func (db *Database) Lifter(id opltypes.LifterID) (*opltypes.Lifter, bool) {
	if int(id) >= len(db.lifters) {
		return nil, false
	}
	return &db.lifters[id], true
}

// Meet returns the meet with the given ID.
func (db *Database) Meet(id opltypes.MeetID) (*opltypes.Meet, bool) {
	if int(id) >= len(db.meets) {
		return nil, false
	}
	return &db.meets[id], true
}

// Entry returns the entry with the given ID.
func (db *Database) Entry(id opltypes.EntryID) (*opltypes.Entry, bool) {
	if int(id) >= len(db.entries) {
		return nil, false
	}
	return &db.entries[id], true
}

// LifterID looks up a lifter by exact username.
func (db *Database) LifterID(username string) (opltypes.LifterID, bool) {
	ids, ok := db.usernameIndex[username]
	if !ok || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

// LiftersUnderUsername returns every lifter whose username equals base or
// equals base followed by a decimal integer (the disambiguation scheme
// used when two different people would otherwise collide on one
// username).
func (db *Database) LiftersUnderUsername(base string) []opltypes.LifterID {
	var out []opltypes.LifterID
	out = append(out, db.usernameIndex[base]...)
	for suffix := 1; ; suffix++ {
		candidate := base + strconv.Itoa(suffix)
		ids, ok := db.usernameIndex[candidate]
		if !ok {
			break
		}
		out = append(out, ids...)
	}
	return out
}

// MeetID looks up a meet by its unique path slug.
func (db *Database) MeetID(path string) (opltypes.MeetID, bool) {
	id, ok := db.pathIndex[path]
	return id, ok
}

// EntriesForLifter returns every entry belonging to a lifter, using the
// lifter_id-sorted invariant: binary search to any matching entry, then a
// bidirectional scan to the edges of that lifter's run.
func (db *Database) EntriesForLifter(id opltypes.LifterID) []*opltypes.Entry {
	n := len(db.entries)
	i := sort.Search(n, func(j int) bool { return db.entries[j].LifterID >= id })
	if i >= n || db.entries[i].LifterID != id {
		return nil
	}
	lo, hi := i, i
	for lo > 0 && db.entries[lo-1].LifterID == id {
		lo--
	}
	for hi+1 < n && db.entries[hi+1].LifterID == id {
		hi++
	}
	out := make([]*opltypes.Entry, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		out = append(out, &db.entries[k])
	}
	return out
}

// EntriesForMeet returns every entry recorded at a meet, via linear scan.
func (db *Database) EntriesForMeet(id opltypes.MeetID) []*opltypes.Entry {
	var out []*opltypes.Entry
	for i := range db.entries {
		if db.entries[i].MeetID == id {
			out = append(out, &db.entries[i])
		}
	}
	return out
}

// Rankings executes a RankingsQuery and materializes the page [start,end).
func (db *Database) Rankings(q *query.RankingsQuery, start, end int) []opltypes.EntryID {
	if db.qcache != nil {
		return db.qcache.Rankings(q, start, end).Slice()
	}
	return db.engine.Rankings(q, start, end).Slice()
}

// Search finds the first index i >= start in ranking whose entry matches
// a free-text query, per spec.md §4.8.
func (db *Database) Search(ranking []opltypes.EntryID, start int, q string) (int, bool) {
	return namesearch.FindFirst(db.lifters, db.entries, ranking, start, q)
}

// NumLifters, NumMeets, and NumEntries report the size of each table, for
// CLI stats output and test assertions.
func (db *Database) NumLifters() int { return len(db.lifters) }
func (db *Database) NumMeets() int   { return len(db.meets) }
func (db *Database) NumEntries() int { return len(db.entries) }
