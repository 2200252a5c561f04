package metafed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

func TestBuild_AllTested_MatchesOnPerEntryTestedFlag(t *testing.T) {
	meets := []opltypes.Meet{
		{ID: 0, Federation: opltypes.FedIPF},
		{ID: 1, Federation: opltypes.FedWRPF},
	}
	c := Build(meets, Defs())

	tested := opltypes.Entry{MeetID: 0, Tested: true}
	untested := opltypes.Entry{MeetID: 0, Tested: false}

	assert.True(t, c.Matches("AllTested", &tested, &meets[0]))
	assert.False(t, c.Matches("AllTested", &untested, &meets[0]))
}

func TestBuild_AllIPFAffiliated_GatesOnFederation(t *testing.T) {
	meets := []opltypes.Meet{
		{ID: 0, Federation: opltypes.FedIPF},
		{ID: 1, Federation: opltypes.FedWRPF},
	}
	c := Build(meets, Defs())

	ipfEntry := opltypes.Entry{MeetID: 0}
	wrpfEntry := opltypes.Entry{MeetID: 1}

	assert.True(t, c.Matches("AllIPFAffiliated", &ipfEntry, &meets[0]))
	assert.False(t, c.Matches("AllIPFAffiliated", &wrpfEntry, &meets[1]))
}

func TestMatches_UnknownNameIsFalseNotError(t *testing.T) {
	meets := []opltypes.Meet{{ID: 0, Federation: opltypes.FedIPF}}
	c := Build(meets, Defs())
	e := opltypes.Entry{MeetID: 0}
	assert.False(t, c.Matches("NotARealMetafed", &e, &meets[0]))
}

func TestMeetMayMatch_ReflectsGate(t *testing.T) {
	meets := []opltypes.Meet{
		{ID: 0, Federation: opltypes.FedIPF},
		{ID: 1, Federation: opltypes.FedWRPF},
	}
	c := Build(meets, Defs())

	assert.True(t, c.MeetMayMatch("AllIPFAffiliated", 0))
	assert.False(t, c.MeetMayMatch("AllIPFAffiliated", 1))
}

func TestNames_ListsEveryRegisteredDef(t *testing.T) {
	meets := []opltypes.Meet{{ID: 0, Federation: opltypes.FedIPF}}
	c := Build(meets, Defs())
	names := c.Names()
	require.Len(t, names, 3)
	assert.Contains(t, names, "AllTested")
	assert.Contains(t, names, "AllIPFAffiliated")
	assert.Contains(t, names, "AllIPFSanctionedOnDate")
}
