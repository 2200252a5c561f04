package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex_RoundTrip(t *testing.T) {
	for _, s := range []Sex{SexM, SexF} {
		parsed, err := ParseSex(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := ParseSex("X")
	assert.Error(t, err)
}

func TestParseEquipment_RoundTripAndCaseInsensitive(t *testing.T) {
	eq, err := ParseEquipment("single-ply")
	require.NoError(t, err)
	assert.Equal(t, EquipmentSingle, eq)

	_, err = ParseEquipment("exosuit")
	assert.Error(t, err)
}

func TestParseEvent_BitsetAndClassification(t *testing.T) {
	e, err := ParseEvent("SBD")
	require.NoError(t, err)
	assert.True(t, e.IsFullPower())
	assert.Equal(t, "SBD", e.String())

	bd, err := ParseEvent("BD")
	require.NoError(t, err)
	assert.True(t, bd.IsPushPull())

	_, err = ParseEvent("")
	assert.Error(t, err)
	_, err = ParseEvent("X")
	assert.Error(t, err)
}

func TestParsePlace_AllKinds(t *testing.T) {
	cases := map[string]Place{
		"1":  PlaceNumbered(1),
		"23": PlaceNumbered(23),
		"G":  PlaceGuest,
		"DQ": PlaceDQ,
		"DD": PlaceDopingDQ,
		"NS": PlaceNotStarted,
	}
	for raw, want := range cases {
		got, err := ParsePlace(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, raw, got.String())
	}

	assert.True(t, PlaceDQ.IsDQ())
	assert.True(t, PlaceDopingDQ.IsDQ())
	assert.False(t, PlaceNumbered(1).IsDQ())

	_, err := ParsePlace("not-a-place")
	assert.Error(t, err)
}
