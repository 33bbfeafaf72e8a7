package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabinfer/internal/coltype"
	"tabinfer/internal/engine"
)

func sampleColumns() []engine.ColumnMetadata {
	results, _ := engine.Analyze([]engine.Column{
		{Header: "n", Values: []string{"1", "2", "3"}},
	}, nil)
	return results
}

func TestNewFormatterUnknownNameErrors(t *testing.T) {
	_, err := NewFormatter("yaml")
	assert.Error(t, err)
}

func TestNewFormatterDefaultsToHuman(t *testing.T) {
	f, err := NewFormatter("")
	require.NoError(t, err)
	assert.IsType(t, humanFormatter{}, f)
}

func TestJSONFormatterProducesValidStructure(t *testing.T) {
	f, err := NewFormatter("json")
	require.NoError(t, err)

	out, err := f.Format(sampleColumns(), "CREATE TABLE `analyzed_data` ();")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "n"`)
	assert.Contains(t, out, string(coltype.Integer))
	assert.Contains(t, out, "schemaSql")
}

func TestHumanFormatterIncludesSchemaSQL(t *testing.T) {
	f, err := NewFormatter("human")
	require.NoError(t, err)

	out, err := f.Format(sampleColumns(), "CREATE TABLE `analyzed_data` ();")
	require.NoError(t, err)
	assert.Contains(t, out, "n: Integer")
	assert.Contains(t, out, "CREATE TABLE")
}

func TestSQLFormatterReturnsOnlySchemaSQL(t *testing.T) {
	f, err := NewFormatter("sql")
	require.NoError(t, err)

	out, err := f.Format(sampleColumns(), "CREATE TABLE `analyzed_data` ();")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE `analyzed_data` ();\n", out)
}
