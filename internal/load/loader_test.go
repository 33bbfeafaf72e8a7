package load

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatementsSplitsOnSemicolons(t *testing.T) {
	loader := NewLoader(Options{})
	schema := "CREATE TABLE `analyzed_data` (`id` BIGINT UNSIGNED NOT NULL);\n" +
		"CREATE INDEX `idx_analyzed_data_id` ON `analyzed_data` (`id`);\n"

	statements := loader.ParseStatements(schema)
	require.Len(t, statements, 2)
	assert.Contains(t, statements[0], "CREATE TABLE")
	assert.Contains(t, statements[1], "CREATE INDEX")
}

func TestPreflightChecksFlagsCreateTableAsNonTransactional(t *testing.T) {
	loader := NewLoader(Options{})
	statements := loader.ParseStatements("CREATE TABLE `analyzed_data` (`id` BIGINT UNSIGNED NOT NULL);")

	result := loader.PreflightChecks(statements, false)
	assert.False(t, result.IsTransactional)
	assert.NotEmpty(t, result.NonTxReasons)
}

func TestPreflightChecksFlagsDropTableAsDestructive(t *testing.T) {
	loader := NewLoader(Options{})
	statements := loader.ParseStatements("DROP TABLE `analyzed_data`;")

	result := loader.PreflightChecks(statements, false)
	assert.True(t, HasDestructiveOperations(result))
}

func TestValidatePreflightRejectsDestructiveWithoutUnsafe(t *testing.T) {
	loader := NewLoader(Options{})
	statements := loader.ParseStatements("DROP TABLE `analyzed_data`;")
	preflight := loader.PreflightChecks(statements, false)

	err := loader.validatePreflight(preflight)
	assert.Error(t, err)
}

func TestValidatePreflightAllowsDestructiveWithUnsafe(t *testing.T) {
	loader := NewLoader(Options{Unsafe: true})
	statements := loader.ParseStatements("DROP TABLE `analyzed_data`;")
	preflight := loader.PreflightChecks(statements, true)

	err := loader.validatePreflight(preflight)
	assert.NoError(t, err)
}
