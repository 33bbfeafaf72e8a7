package colstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNumericStats(t *testing.T) {
	stats := ComputeNumericStats([]string{"1", "2", "3", "4", "5"})
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 5.0, stats.Max)
	assert.Equal(t, 3.0, stats.Median)
	assert.InDelta(t, 1.5811, stats.StdDev, 0.001)
}

func TestComputeNumericStatsSingleValue(t *testing.T) {
	stats := ComputeNumericStats([]string{"7"})
	assert.Equal(t, 0.0, stats.StdDev)
}

func TestComputeNumericStatsStripsCurrencyMarkers(t *testing.T) {
	stats := ComputeNumericStats([]string{"$1,234.56", "$2,345.67"})
	require.True(t, stats.HasValue)
	assert.Equal(t, 1234.56, stats.Min)
}

func TestComputeTextStatsMostCommonTieBreak(t *testing.T) {
	stats := ComputeTextStats([]string{"b", "a", "a", "b", "c"})
	require.Len(t, stats.MostCommon, 3)
	assert.Equal(t, "a", stats.MostCommon[0].Value)
	assert.Equal(t, 2, stats.MostCommon[0].Count)
	assert.Equal(t, "b", stats.MostCommon[1].Value)
	assert.Equal(t, 2, stats.MostCommon[1].Count)
}

func TestMajorityFormatTag(t *testing.T) {
	assert.Equal(t, "a", MajorityFormatTag([]string{"a", "a", "a", "b"}))
	assert.Equal(t, "UNKNOWN", MajorityFormatTag([]string{"a", "b", "c"}))
}
