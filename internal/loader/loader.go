// Package loader reads the three-CSV OpenPowerlifting export format into
// plain opltypes row slices, performing the strict per-cell parsing and
// post-load backfill spec.md §4.2 describes. It has no knowledge of
// indices, caches, or queries — internal/opldb builds those on top of a
// loader.Result.
package loader

import (
	"context"
	"io"
	"sort"

	"github.com/gingerlifts/opldb/internal/loader/loaderr"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

// Result is the three parsed tables, ready for internal/opldb to index.
type Result struct {
	Lifters []opltypes.Lifter
	Meets   []opltypes.Meet
	Entries []opltypes.Entry
}

// Sources names the three CSV readers FromCSV consumes, along with the
// filenames used to attribute errors (a reader has no name of its own).
type Sources struct {
	LiftersName string
	Lifters     io.Reader
	MeetsName   string
	Meets       io.Reader
	EntriesName string
	Entries     io.Reader
}

// Option configures a FromCSV call.
type Option func(*options)

type options struct {
	progress Progress
}

// WithProgress registers a callback invoked as each table is read.
func WithProgress(p Progress) Option {
	return func(o *options) { o.progress = p }
}

// FromCSV loads and validates the three CSV tables. ctx is checked for
// cancellation between stages only; an in-flight CSV read is not
// interrupted mid-row.
func FromCSV(ctx context.Context, src Sources, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if src.LiftersName == "" {
		src.LiftersName = "lifters.csv"
	}
	if src.MeetsName == "" {
		src.MeetsName = "meets.csv"
	}
	if src.EntriesName == "" {
		src.EntriesName = "entries.csv"
	}

	lifters, err := loadLifters(src.LiftersName, src.Lifters, o.progress)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, loaderr.IO(src.LiftersName, err)
	}

	meets, err := loadMeets(src.MeetsName, src.Meets, o.progress)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, loaderr.IO(src.MeetsName, err)
	}

	entries, err := loadEntries(src.EntriesName, src.Entries, len(lifters), len(meets), o.progress)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, loaderr.IO(src.EntriesName, err)
	}

	if err := backfillUniqueLifters(meets, entries); err != nil {
		return nil, err
	}

	sortEntriesByLifter(entries)

	lifters = shrink(lifters)
	meets = shrink(meets)
	entries = shrink(entries)

	return &Result{Lifters: lifters, Meets: meets, Entries: entries}, nil
}

// backfillUniqueLifters fills Meet.NumUniqueLifters by exploiting the fact
// that entries.csv arrives sorted by MeetID: for each meet it binary
// searches the (contiguous) range of entries belonging to that meet, then
// counts distinct LifterIDs within the range via sort+group.
func backfillUniqueLifters(meets []opltypes.Meet, entries []opltypes.Entry) error {
	n := len(entries)
	for i := 1; i < n; i++ {
		if entries[i].MeetID < entries[i-1].MeetID {
			return loaderr.Invariant("entries.csv is not sorted by MeetID")
		}
	}
	for i := range meets {
		id := opltypes.MeetID(i)
		lo := sort.Search(n, func(j int) bool { return entries[j].MeetID >= id })
		hi := sort.Search(n, func(j int) bool { return entries[j].MeetID > id })

		ids := make([]opltypes.LifterID, hi-lo)
		copy(ids, lifterIDsIn(entries[lo:hi]))
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

		count := uint32(0)
		for j, id := range ids {
			if j == 0 || id != ids[j-1] {
				count++
			}
		}
		meets[i].NumUniqueLifters = count
	}
	return nil
}

func lifterIDsIn(entries []opltypes.Entry) []opltypes.LifterID {
	ids := make([]opltypes.LifterID, len(entries))
	for i, e := range entries {
		ids[i] = e.LifterID
	}
	return ids
}

// sortEntriesByLifter stably reorders entries by LifterID and reassigns
// EntryID to match the new position, since EntryID is defined as "index
// into the entries vector" rather than an independent identifier.
func sortEntriesByLifter(entries []opltypes.Entry) {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].LifterID < entries[j].LifterID })
	for i := range entries {
		entries[i].ID = opltypes.EntryID(i)
	}
}

func shrink[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
