package anomaly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabinfer/internal/coltype"
)

func TestDetectIgnoresLowConfidenceDisagreement(t *testing.T) {
	rows := []Row{
		{Index: 0, Value: "123"},
		{Index: 1, Value: "456"},
		{Index: 2, Value: "random text"},
	}
	anomalies := Detect(coltype.Integer, rows)
	assert.Empty(t, anomalies, "a non-matching but low-confidence value should not be flagged")
}

func TestDetectEmailAgainstIntegerColumn(t *testing.T) {
	rows := []Row{
		{Index: 0, Value: "123"},
		{Index: 1, Value: "user@example.com"},
	}
	anomalies := Detect(coltype.Integer, rows)
	require.Len(t, anomalies, 1)
	assert.Equal(t, coltype.Email, anomalies[0].FoundType)
	assert.Equal(t, 1, anomalies[0].RowIndex)
}

func TestDetectTextExpectedTypeNeverAnomalous(t *testing.T) {
	rows := []Row{{Index: 0, Value: "123"}}
	anomalies := Detect(coltype.Text, rows)
	assert.Nil(t, anomalies)
}

func TestDetectSuggestsNormalization(t *testing.T) {
	rows := []Row{{Index: 0, Value: "1234"}}
	anomalies := Detect(coltype.Currency, rows)
	require.Len(t, anomalies, 1)
	assert.True(t, anomalies[0].HasSuggestion)
	assert.Equal(t, "$1234.00", anomalies[0].Suggestion)
}
