package schema

import (
	"fmt"
	"strings"
)

const tableName = "analyzed_data"

// NoteInput carries the per-column facts the Data Quality Notes section
// summarizes: low-confidence columns and a handful of example anomaly
// descriptions.
type NoteInput struct {
	Name       string
	Confidence float64
	Anomalies  []string // human-readable anomaly descriptions; Render lists only the first 3
}

// Column pairs a column's name with its synthesized declaration, in
// input order, for Render.
type Column struct {
	Name        string
	Declaration ColumnDeclaration
}

// Render assembles the full schema_sql text: a single CREATE TABLE
// statement, zero or more CREATE INDEX statements, and an optional
// Data Quality Notes comment block (§4.6, §6).
func Render(columns []Column, notes []NoteInput) string {
	var sb strings.Builder

	sb.WriteString(renderCreateTable(columns))

	for _, c := range columns {
		if !c.Declaration.IndexRecommend {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(renderCreateIndex(c.Name))
	}

	if block := renderDataQualityNotes(notes); block != "" {
		sb.WriteString("\n\n")
		sb.WriteString(block)
	}

	return sb.String()
}

func renderCreateTable(columns []Column) string {
	if len(columns) == 0 {
		return fmt.Sprintf("CREATE TABLE %s ();", QuoteIdentifier(tableName))
	}

	lines := make([]string, 0, len(columns))
	for _, c := range columns {
		lines = append(lines, "  "+QuoteIdentifier(c.Name)+" "+c.Declaration.SQLType)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", QuoteIdentifier(tableName), strings.Join(lines, ",\n"))
}

func renderCreateIndex(column string) string {
	return fmt.Sprintf("CREATE INDEX %s ON %s (%s);",
		QuoteIdentifier(IndexName(column)), QuoteIdentifier(tableName), QuoteIdentifier(column))
}

func renderDataQualityNotes(notes []NoteInput) string {
	var flagged []NoteInput
	for _, n := range notes {
		if n.Confidence < 0.9 || len(n.Anomalies) > 0 {
			flagged = append(flagged, n)
		}
	}
	if len(flagged) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("-- Data Quality Notes")
	for _, n := range flagged {
		sb.WriteString(fmt.Sprintf("\n-- %s: confidence = %.2f", n.Name, n.Confidence))
		examples := n.Anomalies
		if len(examples) > 3 {
			examples = examples[:3]
		}
		for _, a := range examples {
			sb.WriteString(fmt.Sprintf("\n--   %s", a))
		}
	}
	return sb.String()
}
