package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEquipmentBucket_RoundTrip(t *testing.T) {
	for _, b := range AllEquipmentBuckets() {
		parsed, err := ParseEquipmentBucket(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}

func TestParseEquipmentBucket_Unrecognized(t *testing.T) {
	_, err := ParseEquipmentBucket("Exosuit")
	assert.Error(t, err)
}

func TestEquipmentBucket_Members_RawAndWrapsMergesBoth(t *testing.T) {
	assert.ElementsMatch(t, []Equipment{EquipmentRaw, EquipmentWraps}, BucketRawAndWraps.Members())
	assert.ElementsMatch(t, []Equipment{EquipmentRaw}, BucketRaw.Members())
}
