package opltypes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- E2: lbs rounding-drift correction ---

func TestWeightKg_AsLbs_RoundingDriftCorrection_E2(t *testing.T) {
	w, err := ParseWeightKg("775.64")
	require.NoError(t, err)

	lbs := w.AsLbs()
	assert.Equal(t, "1710", lbs.String())
}

func TestWeightKg_ParseFormatRoundTrip(t *testing.T) {
	// zero means "no lift recorded", so "0" formats back as ""
	cases := []struct{ in, want string }{
		{"100", "100"}, {"100.5", "100.5"}, {"-100.5", "-100.5"}, {"0", ""}, {"", ""},
	}
	for _, c := range cases {
		w, err := ParseWeightKg(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, w.String(), c.in)
	}
}

func TestWeightKg_ParseRejectsMalformed(t *testing.T) {
	cases := []string{"..", "--", "not-a-number"}
	for _, s := range cases {
		_, err := ParseWeightKg(s)
		assert.Error(t, err, s)
	}
}

func TestWeightKg_IsFailedAndAbs(t *testing.T) {
	w, err := ParseWeightKg("-140")
	require.NoError(t, err)
	assert.True(t, w.IsFailed())
	assert.Equal(t, "140", w.Abs().String())
}

func TestWeightKg_NeverPrintsBareNegativeZero(t *testing.T) {
	w := WeightKg(0)
	assert.Equal(t, "", w.String())
}

func TestWeightKg_AddSub(t *testing.T) {
	a, _ := ParseWeightKg("100")
	b, _ := ParseWeightKg("40")
	assert.Equal(t, "140", a.Add(b).String())
	assert.Equal(t, "60", a.Sub(b).String())
}

func TestWeightFromF32_NonFiniteCollapsesToZero(t *testing.T) {
	assert.Equal(t, WeightKg(0), WeightFromF32(math.NaN()))
	assert.Equal(t, WeightKg(0), WeightFromF32(math.Inf(1)))
}

func TestParseWeightClassKg(t *testing.T) {
	c, err := ParseWeightClassKg("93")
	require.NoError(t, err)
	assert.False(t, c.IsOver())
	assert.Equal(t, "93", c.String())

	shw, err := ParseWeightClassKg("120+")
	require.NoError(t, err)
	assert.True(t, shw.IsOver())
	assert.Equal(t, "120+", shw.String())

	none, err := ParseWeightClassKg("")
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}
