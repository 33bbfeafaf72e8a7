// Package anomaly implements per-row anomaly detection (§4.5): for a
// column's already-chosen expected type, it flags values whose
// single-value best type disagrees with high confidence, and attaches
// a normalization suggestion.
package anomaly

import (
	"tabinfer/internal/coltype"
	"tabinfer/internal/recognize"
)

// Anomaly records one value whose best single-value type disagreed
// with the column's expected type.
type Anomaly struct {
	RowIndex      int
	Value         string
	ExpectedType  coltype.DataType
	FoundType     coltype.DataType
	Suggestion    string
	HasSuggestion bool
}

const disagreementThreshold = 0.7

// Detect scans the column's non-null values (paired with their
// original row index) and returns anomalies against expectedType. A
// Text expected type never produces anomalies (§9 open question,
// resolved: Text yields an empty anomaly list).
func Detect(expectedType coltype.DataType, rows []Row) []Anomaly {
	if expectedType == coltype.Text {
		return nil
	}

	var anomalies []Anomaly
	for _, row := range rows {
		foundType, foundConf := bestSingleValueType(row.Value)
		if foundType == expectedType || foundConf <= disagreementThreshold {
			continue
		}

		suggestion, ok := normalize(expectedType, row.Value)
		anomalies = append(anomalies, Anomaly{
			RowIndex:      row.Index,
			Value:         row.Value,
			ExpectedType:  expectedType,
			FoundType:     foundType,
			Suggestion:    suggestion,
			HasSuggestion: ok,
		})
	}
	return anomalies
}

// Row is a non-null column value paired with its original row index.
type Row struct {
	Index int
	Value string
}

// bestSingleValueType returns the first recognizer (in priority order)
// with confidence exactly 1.0 for value, or (Text, 0.5) if none do.
func bestSingleValueType(value string) (coltype.DataType, float64) {
	for _, c := range recognize.Priority {
		if c.Recognizer.Confidence(value) == 1.0 {
			return c.Type, 1.0
		}
	}
	return coltype.Text, 0.5
}

// normalize applies expectedType's normalizer to value, using the
// lenient two-digit-year date parser for Date (§4.5).
func normalize(expectedType coltype.DataType, value string) (string, bool) {
	switch expectedType {
	case coltype.Integer, coltype.Decimal:
		return recognize.Numeric.Normalize(value)
	case coltype.Currency:
		return recognize.CurrencyRecognizer.Normalize(value)
	case coltype.Date:
		return recognize.NormalizeLenient(value)
	case coltype.Email:
		return recognize.Email.Normalize(value)
	case coltype.Phone:
		return recognize.Phone.Normalize(value)
	case coltype.Categorical:
		return recognize.Categorical.Normalize(value)
	default:
		return "", false
	}
}
