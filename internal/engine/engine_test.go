package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabinfer/internal/coltype"
)

func TestAnalyzePureIntegerColumn(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "n", Values: []string{"1", "2", "3", "4", "5"}}}, nil)
	require.Len(t, results, 1)
	col := results[0]

	assert.Equal(t, coltype.Integer, col.DataType)
	assert.Equal(t, 1.0, col.Confidence)
	assert.Equal(t, "SMALLINT UNSIGNED NOT NULL", col.SQLType)
	require.NotNil(t, col.NumericStats)
	assert.Equal(t, 1.0, col.NumericStats.Min)
	assert.Equal(t, 5.0, col.NumericStats.Max)
	assert.Equal(t, 3.0, col.NumericStats.Median)
	assert.InDelta(t, 1.5811, col.NumericStats.StdDev, 0.001)
}

func TestAnalyzeMixedIntegerAndStringIsText(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "n", Values: []string{"1", "2", "three", "4", "5", "VI", "7"}}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Text, col.DataType)
	assert.Empty(t, col.Anomalies)
}

func TestAnalyzeCurrencyDominance(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "price", Values: []string{"$1,234.56", "$2,345.67", "$3,456.78"}}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Currency, col.DataType)
	assert.Equal(t, 1.0, col.Confidence)
	assert.Equal(t, "DECIMAL(19, 4) NOT NULL", col.SQLType)
	assert.Equal(t, "$#,###.##", col.FormatPattern)
}

func TestAnalyzeCategoricalPromotion(t *testing.T) {
	statuses := []string{"active", "pending", "inactive", "completed"}
	values := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		values = append(values, statuses[i%len(statuses)])
	}

	results, _ := Analyze([]Column{{Header: "status", Values: values}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Categorical, col.DataType)
	assert.Greater(t, col.Confidence, 0.7)
	assert.Contains(t, col.SQLType, "ENUM(")
}

func TestAnalyzeDateMixedFormatsDoesNotCrash(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "d", Values: []string{"2024-01-01", "01/15/2024", "2024/01/30"}}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Date, col.DataType)
	assert.Equal(t, 1.0, col.Confidence)
	assert.NotEmpty(t, col.FormatPattern)
}

func TestAnalyzeNullableInteger(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "age", Values: []string{"123", "", "456", "\t", "789", "  "}}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Integer, col.DataType)
	assert.Equal(t, 1.0, col.Confidence)
	assert.Equal(t, 3, col.NullCount)
	assert.Equal(t, "SMALLINT UNSIGNED NULL", col.SQLType)
}

func TestAnalyzeEmptyColumnIsText(t *testing.T) {
	results, _ := Analyze([]Column{{Header: "blank", Values: []string{"", "  ", "\t"}}}, nil)
	col := results[0]
	assert.Equal(t, coltype.Text, col.DataType)
	assert.Equal(t, 0.0, col.Confidence)
	assert.Nil(t, col.NumericStats)
}

func TestAnalyzeEmptyTableRendersEmptyCreateTable(t *testing.T) {
	results, schemaSQL := Analyze(nil, nil)
	assert.Empty(t, results)
	assert.Equal(t, "CREATE TABLE `analyzed_data` ();", schemaSQL)
}

func TestAnalyzeWorkerPoolMatchesSequential(t *testing.T) {
	cols := []Column{
		{Header: "n", Values: []string{"1", "2", "3"}},
		{Header: "price", Values: []string{"$1.00", "$2.00"}},
		{Header: "email", Values: []string{"a@example.com", "b@example.com"}},
	}

	sequential, sequentialSQL := Analyze(cols, SequentialExecutor{})
	parallel, parallelSQL := Analyze(cols, NewWorkerPoolExecutor(4))

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		assert.Equal(t, sequential[i].DataType, parallel[i].DataType)
		assert.Equal(t, sequential[i].Confidence, parallel[i].Confidence)
	}
	assert.Equal(t, sequentialSQL, parallelSQL)
}

func TestAnalyzeInvariantsHoldAcrossColumns(t *testing.T) {
	cols := []Column{
		{Header: "n", Values: []string{"1", "2", "", "4"}},
		{Header: "mixed", Values: []string{"1", "two", "3"}},
	}
	results, _ := Analyze(cols, nil)
	for _, col := range results {
		assert.GreaterOrEqual(t, col.Confidence, 0.0)
		assert.LessOrEqual(t, col.Confidence, 1.0)
		assert.LessOrEqual(t, len(col.SampleValues), 5)
		if col.NumericStats != nil {
			ns := col.NumericStats
			assert.LessOrEqual(t, ns.Min, ns.Q1)
			assert.LessOrEqual(t, ns.Q1, ns.Median)
			assert.LessOrEqual(t, ns.Median, ns.Q3)
			assert.LessOrEqual(t, ns.Q3, ns.Max)
			assert.GreaterOrEqual(t, ns.StdDev, 0.0)
		}
	}
}
