package report

import (
	"fmt"
	"strings"

	"tabinfer/internal/engine"
)

type humanFormatter struct{}

func (humanFormatter) Format(columns []engine.ColumnMetadata, schemaSQL string) (string, error) {
	var sb strings.Builder
	for _, c := range columns {
		fmt.Fprintf(&sb, "%s: %s (confidence %.2f)\n", c.Name, c.DataType, c.Confidence)
		fmt.Fprintf(&sb, "  rows=%d null=%d distinct=%d sql_type=%s\n", c.RowCount, c.NullCount, c.DistinctCount, c.SQLType)
		if c.HasFormatPattern {
			fmt.Fprintf(&sb, "  format_pattern=%s\n", c.FormatPattern)
		}
		if ns := c.NumericStats; ns != nil {
			fmt.Fprintf(&sb, "  min=%.2f max=%.2f mean=%.2f median=%.2f std_dev=%.2f\n", ns.Min, ns.Max, ns.Mean, ns.Median, ns.StdDev)
		}
		if ts := c.TextStats; ts != nil {
			fmt.Fprintf(&sb, "  min_length=%d max_length=%d avg_length=%.2f\n", ts.MinLength, ts.MaxLength, ts.AvgLength)
		}
		if len(c.Anomalies) > 0 {
			fmt.Fprintf(&sb, "  anomalies: %d\n", len(c.Anomalies))
			for _, a := range c.Anomalies {
				fmt.Fprintf(&sb, "    row %d: %q looked like %s, not %s\n", a.RowIndex, a.Value, a.FoundType, a.ExpectedType)
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(schemaSQL)
	sb.WriteString("\n")

	return sb.String(), nil
}
