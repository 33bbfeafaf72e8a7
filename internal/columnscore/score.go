// Package columnscore aggregates per-value recognizer confidences into
// a per-column type score (§4.2) and runs the categorical promotion
// post-analysis (§4.3) when no recognizer reaches a unanimous match.
package columnscore

import (
	"tabinfer/internal/coltype"
	"tabinfer/internal/recognize"
)

// Score computes the §4.2 column-level type and confidence for the
// trimmed non-null values of a column. An empty V yields (Text, 0.0).
// Decimal is not scored here — internal/engine resolves Integer vs.
// Decimal from a winning Integer column by checking whether any
// accepted value carried a fractional part.
func Score(values []string) (coltype.DataType, float64) {
	if len(values) == 0 {
		return coltype.Text, 0.0
	}

	for _, c := range recognize.Priority {
		if columnScoreFor(c.Recognizer, values) == 1.0 {
			return c.Type, 1.0
		}
	}
	return coltype.Text, 0.0
}

// columnScoreFor computes the §4.2 per-type column score: 1.0 iff
// every value is a definite match, otherwise the mean confidence.
func columnScoreFor(r recognize.Recognizer, values []string) float64 {
	unanimous := true
	var sum float64
	for _, v := range values {
		conf := r.Confidence(v)
		sum += conf
		if conf != 1.0 {
			unanimous = false
		}
	}
	if unanimous {
		return 1.0
	}
	return sum / float64(len(values))
}
