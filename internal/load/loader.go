// Package load connects to a user's MySQL database and executes the
// schema_sql document produced by one internal/engine.Analyze
// invocation. The user can choose how cautious the load should be —
// dry run, transactional, requiring confirmation — so the suggested
// schema can be adopted as safely as the caller wants.
package load

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pingcap/tidb/pkg/parser/format"
)

// PreflightResult contains a list of warnings and transactionality info
// about a pending schema load.
type PreflightResult struct {
	Warnings        []Warning
	IsTransactional bool
	NonTxReasons    []string
}

// Warning contains a Level of a warning, message, and the SQL it concerns.
type Warning struct {
	Level   WarningLevel
	Message string
	SQL     string
}

// WarningLevel is expandable for later and contains different levels of danger.
type WarningLevel string

const (
	WarnCaution WarningLevel = "CAUTION"
	WarnDanger  WarningLevel = "DANGER"
)

// Options struct contains all settings available for a caller to
// choose when loading a schema_sql document.
type Options struct {
	DSN                   string
	FilePath              string
	DryRun                bool
	Transaction           bool
	AllowNonTransactional bool
	Unsafe                bool
	Out                   io.Writer
	In                    io.Reader
	SkipConfirmation      bool
}

// Loader connects to a database and loads a generated schema_sql
// document against it.
type Loader struct {
	db         *sql.DB
	statements []string
	options    Options
	analyzer   *StatementAnalyzer
	out        io.Writer
	in         io.Reader
}

// NewLoader returns a Loader ready for use with the given options.
func NewLoader(options Options) *Loader {
	out := options.Out
	if out == nil {
		out = io.Discard
	}
	in := options.In
	if in == nil {
		in = os.Stdin
	}
	return &Loader{
		options:  options,
		analyzer: NewStatementAnalyzer(),
		out:      out,
		in:       in,
	}
}

func (l *Loader) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}

func (l *Loader) println(args ...any) {
	_, _ = fmt.Fprintln(l.out, args...)
}

// Load checks the dry-run option, runs preflight checks, and depending
// on the transactional option, executes the statements appropriately.
// If something goes wrong, returns an error, otherwise nil.
func (l *Loader) Load(ctx context.Context, statements []string, preflight *PreflightResult) error {
	l.displayPreflightChecks(preflight)
	l.displayStatements(statements)

	if l.options.DryRun {
		l.println("\n=== DRY RUN ===")
		l.println("Run without DryRun to load.")
		return l.validatePreflight(preflight)
	}

	if l.options.Transaction && !preflight.IsTransactional && !l.options.AllowNonTransactional {
		return fmt.Errorf("schema_sql contains non-transactional DDL statements; set AllowNonTransactional to proceed")
	}

	if err := l.validatePreflight(preflight); err != nil {
		return err
	}

	if !l.options.SkipConfirmation {
		if !l.askConfirmation() {
			l.println("\nLoad canceled.")
			return nil
		}
	}

	l.println("\nExecuting...")

	if l.options.Transaction && preflight.IsTransactional {
		return l.loadWithTransaction(ctx, statements)
	}

	return l.loadWithoutTransaction(ctx, statements)
}

// Connect establishes a connection with the target database and pings
// it to confirm it is reachable. If something goes wrong, returns an
// error, otherwise nil.
func (l *Loader) Connect(ctx context.Context) error {
	db, err := sql.Open("mysql", l.options.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if pingErr := db.PingContext(ctx); pingErr != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database: %w; additionally failed to close connection: %w", pingErr, closeErr)
		}
		return fmt.Errorf("failed to ping database: %w", pingErr)
	}

	l.db = db
	return nil
}

// Close closes the connection held by the Loader.
// If something went wrong, returns an error, otherwise nil.
func (l *Loader) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// ParseStatements splits a schema_sql document's text into individual
// executable statements.
func (l *Loader) ParseStatements(content string) []string {
	content = strings.TrimSpace(content)
	statements := l.splitStatementsWithParser(content)
	l.statements = statements
	return statements
}

// PreflightChecks uses the AST-based analyzer to detect dangerous
// operations and transaction-safety issues in the provided statements.
func (l *Loader) PreflightChecks(statements []string, unsafe bool) *PreflightResult {
	return l.analyzer.AnalyzeStatements(statements, unsafe)
}

func (l *Loader) splitStatementsWithParser(content string) []string {
	content = strings.TrimSpace(content)
	if statements := l.splitStatementsUsingTiDBParser(content); len(statements) > 0 {
		return statements
	}
	return splitStatementsBySemicolon(content)
}

func (l *Loader) splitStatementsUsingTiDBParser(content string) []string {
	stmtNodes, _, err := l.analyzer.parser.Parse(content, "", "")
	if err != nil || len(stmtNodes) == 0 {
		return nil
	}

	statements := make([]string, 0, len(stmtNodes))
	for _, node := range stmtNodes {
		if node == nil {
			continue
		}
		var sb strings.Builder
		ctx := format.NewRestoreCtx(format.DefaultRestoreFlags, &sb)
		if restoreErr := node.Restore(ctx); restoreErr != nil {
			continue
		}
		stmt := strings.TrimSpace(sb.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}

	if len(statements) == 0 {
		return nil
	}
	return statements
}

func splitStatementsBySemicolon(content string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.SplitSeq(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") || trimmed == "" {
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}
	return statements
}

func truncateSQL(stmt string, maxLen int) string {
	stmt = strings.TrimSpace(stmt)
	if maxLen <= 0 {
		maxLen = 60
	}
	if len(stmt) > maxLen {
		return stmt[:maxLen-3] + "..."
	}
	return stmt
}

func (l *Loader) displayPreflightChecks(preflight *PreflightResult) {
	l.println("Preflight checks:")

	if l.db != nil {
		l.println("  OK: Database is accessible")
	}
	l.println("  OK: schema_sql parsed into", len(l.statements), "statement(s)")

	for _, w := range preflight.Warnings {
		if w.Level == WarnDanger {
			l.printf("  DANGER: %s\n", w.Message)
		} else {
			l.printf("  WARNING: %s\n", w.Message)
		}
	}

	if !preflight.IsTransactional {
		l.println("  WARNING: schema_sql is NOT transaction-safe")
		for _, reason := range preflight.NonTxReasons {
			l.printf("    - %s\n", reason)
		}
	}
}

func (l *Loader) displayStatements(statements []string) {
	l.println("\nStatements to execute:")
	for i, stmt := range statements {
		l.printf("  %d. %s\n", i+1, stmt)
	}
}

func (l *Loader) validatePreflight(preflight *PreflightResult) error {
	hasDestructive := false
	for _, w := range preflight.Warnings {
		if w.Level == WarnDanger && !l.options.Unsafe {
			hasDestructive = true
			break
		}
	}

	if hasDestructive {
		return fmt.Errorf("preflight checks failed: destructive operations detected without Unsafe set")
	}

	if l.options.Transaction && !preflight.IsTransactional && !l.options.AllowNonTransactional {
		return fmt.Errorf("preflight checks failed: non-transactional DDL detected without AllowNonTransactional set")
	}

	return nil
}

func (l *Loader) askConfirmation() bool {
	l.printf("\nExecute? [y/n]: ")
	reader := bufio.NewReader(l.in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

// execer is satisfied by both *sql.DB and *sql.Tx, letting
// execStatements drive either a transactional or a bare connection
// load through one shared loop.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execStatements runs statements in order against exec, printing each
// one's outcome. It returns the number of statements that completed
// successfully before either finishing or hitting the first failure.
func (l *Loader) execStatements(ctx context.Context, exec execer, statements []string) (int, error) {
	total := len(statements)
	for i, stmt := range statements {
		start := time.Now()
		if _, err := exec.ExecContext(ctx, stmt); err != nil {
			l.printf("  [%d/%d] FAILED: %s\n", i+1, total, truncateSQL(stmt, 50))
			return i, fmt.Errorf("statement %d failed: %w\n  Statement: %s", i+1, err, truncateSQL(stmt, 80))
		}
		l.printf("  [%d/%d] OK: %s (%.2fs)\n", i+1, total, truncateSQL(stmt, 50), time.Since(start).Seconds())
	}
	return total, nil
}

func (l *Loader) loadWithTransaction(ctx context.Context, statements []string) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := l.execStatements(ctx, tx, statements); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("execute failed: %w; rollback also failed: %w", err, rbErr)
		}
		return fmt.Errorf("execute failed (rolled back): %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	l.println("\nLoad complete!")
	return nil
}

func (l *Loader) loadWithoutTransaction(ctx context.Context, statements []string) error {
	applied, err := l.execStatements(ctx, l.db, statements)
	if err != nil {
		return fmt.Errorf("%w\n  %d statements were already applied and cannot be automatically rolled back", err, applied)
	}

	l.println("\nLoad complete!")
	return nil
}

// HasDestructiveOperations reports whether a preflight result contains
// a DANGER-level warning.
func HasDestructiveOperations(preflight *PreflightResult) bool {
	for _, w := range preflight.Warnings {
		if w.Level == WarnDanger {
			return true
		}
	}
	return false
}
