// Package report formats the engine's analysis result for a CLI
// caller: one per-column inference report plus the synthesized
// schema_sql, rendered as JSON, a human-readable summary, or the raw
// SQL.
package report

import (
	"fmt"
	"strings"

	"tabinfer/internal/engine"
)

// Format names an output rendering.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatSQL   Format = "sql"
)

// Formatter renders an analysis result.
type Formatter interface {
	Format(columns []engine.ColumnMetadata, schemaSQL string) (string, error)
}

// NewFormatter resolves name to a Formatter. An empty name defaults to
// human.
func NewFormatter(name string) (Formatter, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	switch format {
	case "", FormatHuman:
		return humanFormatter{}, nil
	case FormatJSON:
		return jsonFormatter{}, nil
	case FormatSQL:
		return sqlFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s; use 'human', 'json', or 'sql'", name)
	}
}
