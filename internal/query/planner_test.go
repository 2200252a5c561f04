package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerlifts/opldb/internal/metafed"
	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
	"github.com/gingerlifts/opldb/internal/staticcache"
)

func buildEngine(t *testing.T) *Engine {
	t.Helper()
	meets := []opltypes.Meet{
		{ID: 0, Date: opltypes.DateFromParts(2020, 3, 1), Federation: opltypes.FedIPF},
		{ID: 1, Date: opltypes.DateFromParts(2021, 6, 1), Federation: opltypes.FedWRPF},
	}

	entries := make([]opltypes.Entry, 0, 4)
	add := func(lifter uint32, meet uint32, total int32, sex opltypes.Sex) {
		e := opltypes.Entry{}
		e.ID = opltypes.EntryID(len(entries))
		e.LifterID = opltypes.LifterID(lifter)
		e.MeetID = opltypes.MeetID(meet)
		e.TotalKg = opltypes.WeightKg(total)
		e.Equipment = opltypes.EquipmentRaw
		e.Sex = sex
		entries = append(entries, e)
	}
	add(0, 0, 50000, opltypes.SexM)
	add(1, 0, 30000, opltypes.SexF)
	add(2, 1, 40000, opltypes.SexM)
	add(3, 1, 20000, opltypes.SexF)

	cache, err := staticcache.Build(context.Background(), entries, meets, staticcache.Options{})
	require.NoError(t, err)

	mf := metafed.Build(meets, metafed.Defs())

	return &Engine{Entries: entries, Meets: meets, Cache: cache, MetaFed: mf}
}

// --- Testable property 6: for any RankingsQuery satisfying the fast-path
// guard, the planner's output equals the slow-path output entry-for-entry ---

func TestRankings_FastPathMatchesSlowPath_Unfiltered(t *testing.T) {
	eng := buildEngine(t)
	q := &RankingsQuery{Equipment: opltypes.BucketRaw, Ordering: oplsort.OrderTotal}
	require.True(t, q.isFastPath())

	slow := eng.slowPath(q)
	fastList, _ := eng.fastPath(q)
	assert.Equal(t, []opltypes.EntryID(slow), []opltypes.EntryID(fastList))
}

func TestRankings_FastPathMatchesSlowPath_WithSex(t *testing.T) {
	eng := buildEngine(t)
	sexM := opltypes.SexM
	q := &RankingsQuery{Equipment: opltypes.BucketRaw, Ordering: oplsort.OrderTotal, Sex: &sexM}
	require.True(t, q.isFastPath())

	fastList, _ := eng.fastPath(q)
	slow := eng.slowPath(q)
	assert.Equal(t, []opltypes.EntryID(slow), []opltypes.EntryID(fastList))
}

func TestRankings_NonFastPathQueryUsesSlowPath(t *testing.T) {
	eng := buildEngine(t)
	q := &RankingsQuery{
		Equipment:  opltypes.BucketRaw,
		Ordering:   oplsort.OrderTotal,
		Federation: FederationFilter{Kind: FederationOne, One: opltypes.FedIPF},
	}
	assert.False(t, q.isFastPath())

	page := eng.Rankings(q, 0, 10)
	require.Len(t, page.Slice(), 2)
	e := eng.Entries[page.Slice()[0]]
	assert.Equal(t, opltypes.MeetID(0), e.MeetID)
}

func TestRankings_Paginate_ClampsAndHandlesEmptyRange(t *testing.T) {
	eng := buildEngine(t)
	q := &RankingsQuery{Equipment: opltypes.BucketRaw, Ordering: oplsort.OrderTotal}

	all := eng.Rankings(q, 0, 100)
	require.Len(t, all.Slice(), 4)

	empty := eng.Rankings(q, 10, 20)
	assert.Empty(t, empty.Slice())
}

func TestWeightclass_Matches_HalfOpenRangeAndSHWConvention(t *testing.T) {
	wc := Weightclass{Lo: opltypes.WeightAny(9000), Hi: opltypes.WeightAny(10500)}
	open := Weightclass{Lo: opltypes.WeightAny(12000), OpenHi: true}

	within, err := opltypes.ParseWeightClassKg("105")
	require.NoError(t, err)
	assert.True(t, wc.Matches(within))

	atLo, err := opltypes.ParseWeightClassKg("90")
	require.NoError(t, err)
	assert.False(t, wc.Matches(atLo)) // half-open: excludes the floor

	over, err := opltypes.ParseWeightClassKg("125+")
	require.NoError(t, err)
	assert.True(t, open.Matches(over))
}
