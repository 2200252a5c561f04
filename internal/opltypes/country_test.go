package opltypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCountry_RoundTrip(t *testing.T) {
	for c := CountryUSA; c <= CountryWales; c++ {
		parsed, err := ParseCountry(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseCountry_EmptyIsUnknown(t *testing.T) {
	c, err := ParseCountry("")
	require.NoError(t, err)
	assert.Equal(t, CountryUnknown, c)
}

func TestParseCountry_Unrecognized(t *testing.T) {
	_, err := ParseCountry("Atlantis")
	assert.Error(t, err)
}

func TestParseState_ValidatesAgainstCountry(t *testing.T) {
	s, err := ParseState("CA", CountryUSA)
	require.NoError(t, err)
	assert.Equal(t, "CA", s.Code)
	assert.False(t, s.IsZero())

	_, err = ParseState("CA", CountryCanada)
	assert.Error(t, err)

	empty, err := ParseState("", CountryUSA)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}
