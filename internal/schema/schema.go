// Package schema synthesizes a concrete relational declaration from an
// inferred column type plus its derived statistics (§4.6), and renders
// the full schema_sql text against a fixed table named analyzed_data.
package schema

import (
	"fmt"
	"strings"

	"tabinfer/internal/coltype"
)

// ColumnInput is the subset of a column's analysis schema synthesis
// needs to produce a declaration and an index recommendation.
type ColumnInput struct {
	Name          string
	DataType      coltype.DataType
	RowCount      int
	NullCount     int
	DistinctCount int

	// Numeric fields, populated when DataType.IsNumeric().
	Min, Max float64
	// MaxFractionDigits is the largest number of digits observed after
	// the decimal point across accepted values, used to size Decimal's
	// DECIMAL(p, s).
	MaxFractionDigits int

	// MaxLength is the longest trimmed value, used by Email, Categorical
	// and Text declarations.
	MaxLength int

	// DistinctValues, sorted by frequency descending, used by the
	// Categorical ENUM rendering. Unused by other types.
	DistinctValues []string
}

// ColumnDeclaration is a single column's rendered SQL type and whether
// an index was recommended for it.
type ColumnDeclaration struct {
	SQLType        string
	IndexRecommend bool
}

// Declare maps a ColumnInput to its §4.6 SQL type string, including the
// trailing NULL/NOT NULL suffix, and decides whether to recommend an
// index for the column.
func Declare(c ColumnInput) ColumnDeclaration {
	sqlType := baseType(c)
	if c.NullCount > 0 {
		sqlType += " NULL"
	} else {
		sqlType += " NOT NULL"
	}
	return ColumnDeclaration{
		SQLType:        sqlType,
		IndexRecommend: recommendIndex(c),
	}
}

func baseType(c ColumnInput) string {
	switch c.DataType {
	case coltype.Integer:
		return integerType(c.Min, c.Max)
	case coltype.Decimal:
		return decimalType(c.Min, c.Max, c.MaxFractionDigits)
	case coltype.Currency:
		return "DECIMAL(19, 4)"
	case coltype.Date:
		return "DATE"
	case coltype.Email:
		return fmt.Sprintf("VARCHAR(%d)", clamp(c.MaxLength, 255))
	case coltype.Phone:
		return "VARCHAR(20)"
	case coltype.Categorical:
		return categoricalType(c)
	default:
		return textType(c.MaxLength)
	}
}

func integerType(min, max float64) string {
	const int32Min, int32Max = -2147483648, 2147483647
	if min >= 0 {
		if max <= 65535 {
			return "SMALLINT UNSIGNED"
		}
		if max <= int32Max {
			return "INT UNSIGNED"
		}
		return "BIGINT"
	}
	if min >= int32Min && max <= int32Max {
		return "INT"
	}
	return "BIGINT"
}

func decimalType(min, max float64, fractionDigits int) string {
	s := fractionDigits
	if s > 30 {
		s = 30
	}
	whole := wholeDigitCount(min, max)
	p := whole + s
	if p > 65 {
		p = 65
	}
	if p < s {
		p = s
	}
	return fmt.Sprintf("DECIMAL(%d, %d)", p, s)
}

func wholeDigitCount(min, max float64) int {
	abs := max
	if -min > abs {
		abs = -min
	}
	n := fmt.Sprintf("%.0f", abs)
	n = strings.TrimPrefix(n, "-")
	if n == "" || n == "0" {
		return 1
	}
	return len(n)
}

func categoricalType(c ColumnInput) string {
	if c.MaxLength <= 1 {
		return "CHAR(1)"
	}
	if len(c.DistinctValues) <= 10 && c.MaxLength <= 50 {
		var quoted []string
		for _, v := range c.DistinctValues {
			quoted = append(quoted, "'"+strings.ReplaceAll(v, "'", "''")+"'")
		}
		return fmt.Sprintf("ENUM(%s)", strings.Join(quoted, ", "))
	}
	return fmt.Sprintf("VARCHAR(%d)", clamp(c.MaxLength, 255))
}

func textType(maxLength int) string {
	switch {
	case maxLength <= 255:
		return fmt.Sprintf("VARCHAR(%d)", maxLength)
	case maxLength <= 65535:
		return "TEXT"
	case maxLength <= 16777215:
		return "MEDIUMTEXT"
	default:
		return "LONGTEXT"
	}
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	if n < 1 {
		return 1
	}
	return n
}

// recommendIndex applies the §4.6 per-type index recommendation
// thresholds. A zero-row column never recommends an index.
func recommendIndex(c ColumnInput) bool {
	if c.RowCount == 0 {
		return false
	}
	distinctRatio := float64(c.DistinctCount) / float64(c.RowCount)
	nullRatio := float64(c.NullCount) / float64(c.RowCount)

	switch c.DataType {
	case coltype.Integer, coltype.Date, coltype.Email:
		return distinctRatio > 0.1 && nullRatio < 0.5
	case coltype.Categorical:
		return c.DistinctCount > 1 && c.DistinctCount <= 1000 && nullRatio < 0.3
	case coltype.Text:
		return distinctRatio > 0.5 && c.DistinctCount > 1 && c.DistinctCount <= 10000 && nullRatio < 0.1
	default:
		return false
	}
}

// QuoteIdentifier encloses name in backticks, doubling any internal
// backtick.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// IndexName derives idx_<normalized_name> from a column name: every
// non-alphanumeric run becomes a single underscore and the result is
// lowercased.
func IndexName(column string) string {
	var b strings.Builder
	b.WriteString("idx_")
	prevUnderscore := false
	for _, r := range column {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case !prevUnderscore:
			b.WriteByte('_')
			prevUnderscore = true
		}
	}
	return strings.ToLower(b.String())
}
