package load

import (
	"fmt"
	"strings"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
)

// StatementAnalysis is what a single statement implies for a pending
// load: whether it locks the table, destroys data, or commits outside
// of any surrounding transaction.
type StatementAnalysis struct {
	StatementType     string
	IsBlocking        bool
	BlockingReasons   []string
	IsDestructive     bool
	DestructiveReason string
	IsTransactionSafe bool
	TxUnsafeReason    string
}

// StatementAnalyzer classifies statements using TiDB's AST parser,
// which speaks MySQL's DDL grammar natively. schema_sql only ever
// emits CREATE TABLE and CREATE INDEX statements, so those two get a
// dedicated, precise classification; anything else reaches the loader
// only through a hand-edited or externally sourced file and is
// classified generically, by keyword, as foreign to a generated
// schema.
type StatementAnalyzer struct {
	parser *parser.Parser
}

// NewStatementAnalyzer creates a new AST-based statement analyzer.
func NewStatementAnalyzer() *StatementAnalyzer {
	return &StatementAnalyzer{
		parser: parser.New(),
	}
}

// AnalyzeStatement parses a single SQL statement and returns its analysis.
func (a *StatementAnalyzer) AnalyzeStatement(sql string) (*StatementAnalysis, error) {
	stmtNodes, _, err := a.parser.Parse(sql, "", "")
	if err != nil || len(stmtNodes) == 0 {
		return analyzeForeign(sql), nil
	}
	return analyzeNode(stmtNodes[0], sql), nil
}

// AnalyzeStatements analyzes a batch of statements and returns a PreflightResult.
func (a *StatementAnalyzer) AnalyzeStatements(statements []string, unsafeAllowed bool) *PreflightResult {
	result := &PreflightResult{IsTransactional: true}
	for _, stmt := range statements {
		analysis, _ := a.AnalyzeStatement(stmt)
		result.absorb(stmt, analysis, unsafeAllowed)
	}
	return result
}

// analyzeNode classifies the two statement kinds schema_sql actually
// emits. Both cause an implicit commit in MySQL regardless of any
// surrounding transaction, so neither ever reports transaction-safe.
func analyzeNode(node ast.StmtNode, raw string) *StatementAnalysis {
	switch node.(type) {
	case *ast.CreateTableStmt:
		return &StatementAnalysis{
			StatementType:  "CREATE TABLE",
			TxUnsafeReason: "CREATE TABLE causes an implicit commit in MySQL",
		}
	case *ast.CreateIndexStmt:
		return &StatementAnalysis{
			StatementType:   "CREATE INDEX",
			IsBlocking:      true,
			BlockingReasons: []string{"CREATE INDEX may lock the table for the duration of index creation"},
			TxUnsafeReason:  "CREATE INDEX causes an implicit commit in MySQL",
		}
	default:
		return analyzeForeign(raw)
	}
}

// analyzeForeign classifies a statement schema_sql never produces
// itself, from the raw SQL text rather than the AST: a statement the
// parser rejected outright gets the same treatment as one it parsed
// into something other than CREATE TABLE/INDEX, since both cases
// reach the loader only via a file a human touched after generation.
func analyzeForeign(raw string) *StatementAnalysis {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	analysis := &StatementAnalysis{StatementType: "OTHER", IsTransactionSafe: true}

	switch {
	case strings.HasPrefix(upper, "DROP TABLE"):
		analysis.IsDestructive = true
		analysis.DestructiveReason = "DROP TABLE will permanently delete the table and all its data"
	case strings.HasPrefix(upper, "TRUNCATE"):
		analysis.IsDestructive = true
		analysis.DestructiveReason = "TRUNCATE will delete all rows from the table"
	case strings.HasPrefix(upper, "DELETE"):
		analysis.IsDestructive = true
		analysis.DestructiveReason = "DELETE will remove rows from the table"
	case strings.HasPrefix(upper, "DROP INDEX"):
		analysis.IsBlocking = true
		analysis.BlockingReasons = append(analysis.BlockingReasons, "DROP INDEX may briefly lock the table")
	case strings.HasPrefix(upper, "ALTER TABLE"):
		analysis.IsBlocking = true
		analysis.BlockingReasons = append(analysis.BlockingReasons, "ALTER TABLE may require a table rebuild depending on the change and MySQL version")
	}

	for _, prefix := range []string{"CREATE ", "DROP ", "ALTER ", "TRUNCATE "} {
		if strings.HasPrefix(upper, prefix) {
			analysis.IsTransactionSafe = false
			analysis.TxUnsafeReason = "DDL statement causes an implicit commit in MySQL"
			break
		}
	}

	return analysis
}

// absorb folds one statement's analysis into the running preflight
// result, formatting its warnings against the statement's own
// (truncated) text.
func (r *PreflightResult) absorb(stmt string, a *StatementAnalysis, unsafeAllowed bool) {
	if a == nil {
		return
	}

	for _, reason := range a.BlockingReasons {
		r.Warnings = append(r.Warnings, Warning{
			Level:   WarnCaution,
			Message: fmt.Sprintf("Potentially blocking DDL: %s", reason),
			SQL:     truncateSQL(stmt, 60),
		})
	}

	if a.IsDestructive {
		msg := a.DestructiveReason
		if !unsafeAllowed {
			msg = fmt.Sprintf("%s (requires --unsafe flag)", msg)
		}
		r.Warnings = append(r.Warnings, Warning{
			Level:   WarnDanger,
			Message: msg,
			SQL:     truncateSQL(stmt, 60),
		})
	}

	if !a.IsTransactionSafe {
		r.IsTransactional = false
		reason := a.TxUnsafeReason
		if reason == "" {
			reason = "DDL statement causes an implicit commit in MySQL"
		}
		r.NonTxReasons = append(r.NonTxReasons, fmt.Sprintf("%s: %s", reason, truncateSQL(stmt, 60)))
	}
}
