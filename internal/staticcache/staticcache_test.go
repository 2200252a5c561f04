package staticcache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerlifts/opldb/internal/oplsort"
	"github.com/gingerlifts/opldb/internal/opltypes"
)

func buildMeets() []opltypes.Meet {
	return []opltypes.Meet{
		{ID: 0, Date: opltypes.DateFromParts(2020, 1, 1), Federation: opltypes.FedIPF},
		{ID: 1, Date: opltypes.DateFromParts(2019, 1, 1), Federation: opltypes.FedWRPF},
	}
}

func entryAt(id, lifter uint32, meet uint32, total int32, eq opltypes.Equipment, sex opltypes.Sex) opltypes.Entry {
	e := opltypes.Entry{}
	e.ID = opltypes.EntryID(id)
	e.LifterID = opltypes.LifterID(lifter)
	e.MeetID = opltypes.MeetID(meet)
	e.TotalKg = opltypes.WeightKg(total)
	e.Equipment = eq
	e.Sex = sex
	return e
}

// --- Testable property 1: a cached ranked list has at most one entry per
// lifter, and contains each lifter's actual best under that ordering ---

func TestBuild_ConstantTimeLayer_OnePerLifterAndIsBest(t *testing.T) {
	entries := []opltypes.Entry{
		entryAt(0, 0, 0, 10000, opltypes.EquipmentRaw, opltypes.SexM), // lifter 0, worse
		entryAt(1, 0, 0, 20000, opltypes.EquipmentRaw, opltypes.SexM), // lifter 0, best
		entryAt(2, 1, 1, 15000, opltypes.EquipmentRaw, opltypes.SexM), // lifter 1
	}
	meets := buildMeets()

	c, err := Build(context.Background(), entries, meets, Options{})
	require.NoError(t, err)

	ranked, ok := c.Ranked(oplsort.OrderTotal, opltypes.BucketRaw)
	require.True(t, ok)
	require.Len(t, ranked, 2)

	lifterSeen := make(map[opltypes.LifterID]bool)
	for _, id := range ranked {
		lifter := entries[id].LifterID
		assert.False(t, lifterSeen[lifter], "lifter %d appears more than once", lifter)
		lifterSeen[lifter] = true
	}
	// lifter 0's best entry (ID 1, total 200) must be the one present, not ID 0.
	assert.Contains(t, ranked, opltypes.EntryID(1))
	assert.NotContains(t, ranked, opltypes.EntryID(0))
}

func TestBuild_LogLinearLayer_ExcludesDQ(t *testing.T) {
	entries := []opltypes.Entry{
		entryAt(0, 0, 0, 10000, opltypes.EquipmentRaw, opltypes.SexM),
	}
	entries[0].Place = opltypes.PlaceDQ
	meets := buildMeets()

	c, err := Build(context.Background(), entries, meets, Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, c.Equipment(opltypes.EquipmentRaw).Len())
}

func TestBuild_YearsOptionRestrictsLogLinearCache(t *testing.T) {
	entries := []opltypes.Entry{
		entryAt(0, 0, 0, 10000, opltypes.EquipmentRaw, opltypes.SexM),
		entryAt(1, 1, 1, 10000, opltypes.EquipmentRaw, opltypes.SexM),
	}
	meets := buildMeets()

	c, err := Build(context.Background(), entries, meets, Options{Years: []int{2020}})
	require.NoError(t, err)

	_, ok2020 := c.Year(2020)
	assert.True(t, ok2020)
	_, ok2019 := c.Year(2019)
	assert.False(t, ok2019)
}

func TestEquipmentBucketSet_UnionsMembers(t *testing.T) {
	entries := []opltypes.Entry{
		entryAt(0, 0, 0, 10000, opltypes.EquipmentRaw, opltypes.SexM),
		entryAt(1, 1, 0, 10000, opltypes.EquipmentWraps, opltypes.SexM),
	}
	meets := buildMeets()

	c, err := Build(context.Background(), entries, meets, Options{})
	require.NoError(t, err)

	set := c.EquipmentBucketSet(opltypes.BucketRawAndWraps)
	assert.Equal(t, 2, set.Len())
}
