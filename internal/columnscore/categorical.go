package columnscore

import (
	"math"
	"regexp"
	"strings"

	"tabinfer/internal/recognize"
)

var reColumnNameHint = regexp.MustCompile(`(?i)type|category|status|level|grade|rating|priority`)

// CategoricalResult is the outcome of the §4.3 promotion check.
type CategoricalResult struct {
	Promoted   bool
	Confidence float64
}

// Thresholds holds the §4.3 gating/scoring constants. DefaultThresholds
// reproduces spec.md's hardcoded values; a caller wiring in a
// tabinfer.toml override (internal/config) builds its own Thresholds
// and calls PromoteCategoricalWithThresholds instead.
type Thresholds struct {
	MinValues          int
	MinNonNullRatio    float64
	MaxUniqueRatio     float64
	MaxAverageLength   float64
	MinFrequencyRatio  float64
	PromotionThreshold float64
}

// DefaultThresholds are the values spec.md §4.3 hardcodes.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinValues:          20,
		MinNonNullRatio:    0.5,
		MaxUniqueRatio:     0.05,
		MaxAverageLength:   50,
		MinFrequencyRatio:  0.7,
		PromotionThreshold: 0.7,
	}
}

// PromoteCategorical runs the §4.3 promotion check with spec.md's
// default thresholds. values are the column's trimmed non-null values;
// rowCount is the column's total row count including nulls.
func PromoteCategorical(header string, values []string, rowCount int) CategoricalResult {
	return PromoteCategoricalWithThresholds(header, values, rowCount, DefaultThresholds())
}

// PromoteCategoricalWithThresholds runs the §4.3 promotion check using
// caller-supplied gating/scoring thresholds.
func PromoteCategoricalWithThresholds(header string, values []string, rowCount int, t Thresholds) CategoricalResult {
	n := len(values)
	if n < t.MinValues {
		return CategoricalResult{}
	}

	nonNullRatio := float64(n) / float64(rowCount)
	if nonNullRatio < t.MinNonNullRatio {
		return CategoricalResult{}
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[strings.TrimSpace(v)]++
	}
	distinctCount := len(counts)
	uniqueRatio := float64(distinctCount) / float64(n)
	if uniqueRatio >= t.MaxUniqueRatio {
		return CategoricalResult{}
	}

	var totalLen int
	for v := range counts {
		totalLen += len(v)
	}
	avgLen := float64(totalLen) / float64(distinctCount)
	if avgLen >= t.MaxAverageLength {
		return CategoricalResult{}
	}

	frequent := 0
	for _, c := range counts {
		if c >= 3 {
			frequent++
		}
	}
	freqRatio := float64(frequent) / float64(distinctCount)
	if freqRatio < t.MinFrequencyRatio {
		return CategoricalResult{}
	}

	score := 0.4*cardinalityScore(uniqueRatio) +
		0.2*tieredScore(nonNullRatio, 0.9, 0.5) +
		0.1*tieredScore(freqRatio, 0.9, 0.7) +
		0.1*patternMatchScore(counts) +
		0.1*lengthConsistencyScore(counts) +
		0.1*columnNameScore(header)

	return CategoricalResult{Promoted: score > t.PromotionThreshold, Confidence: score}
}

func cardinalityScore(uniqueRatio float64) float64 {
	switch {
	case uniqueRatio <= 0.05:
		return 1.0
	case uniqueRatio <= 0.10:
		return 0.5
	default:
		return 0
	}
}

// tieredScore mirrors cardinality_score's two-tier shape for the other
// "defined analogously" sub-scores §4.3 leaves unspecified: 1.0 at or
// above hi, 0.5 at or above lo, else 0.
func tieredScore(ratio, hi, lo float64) float64 {
	switch {
	case ratio >= hi:
		return 1.0
	case ratio >= lo:
		return 0.5
	default:
		return 0
	}
}

func patternMatchScore(counts map[string]int) float64 {
	matching := 0
	for v := range counts {
		if recognize.Categorical.Definite(v) {
			matching++
		}
	}
	ratio := float64(matching) / float64(len(counts))
	switch {
	case ratio >= 0.9:
		return 1.0
	case ratio > 0:
		return 0.5
	default:
		return 0
	}
}

func lengthConsistencyScore(counts map[string]int) float64 {
	if len(counts) == 0 {
		return 0
	}
	lens := make([]float64, 0, len(counts))
	var sum float64
	for v := range counts {
		l := float64(len(v))
		lens = append(lens, l)
		sum += l
	}
	avg := sum / float64(len(lens))
	if avg == 0 {
		return 1.0
	}

	var sumSq float64
	for _, l := range lens {
		d := l - avg
		sumSq += d * d
	}
	ratio := math.Sqrt(sumSq/float64(len(lens))) / avg

	switch {
	case ratio < 0.25:
		return 1.0
	case ratio < 0.5:
		return 0.5
	default:
		return 0
	}
}

func columnNameScore(header string) float64 {
	if reColumnNameHint.MatchString(header) {
		return 1.0
	}
	return 0
}
