// Package colstats computes the numeric and text summary statistics
// attached to each column's metadata, plus the dominant surface
// format_pattern for types that carry one.
package colstats

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NumericStats summarizes the non-null values of a numeric column
// (Integer, Decimal, or Currency).
type NumericStats struct {
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	StdDev   float64
	Q1       float64
	Q3       float64
	HasValue bool
}

var reCurrencyMarker = regexp.MustCompile(`[$€£,]`)

// ParseNumeric strips currency markers and thousand separators from
// value and parses the remainder as a real number.
func ParseNumeric(value string) (float64, bool) {
	stripped := reCurrencyMarker.ReplaceAllString(strings.TrimSpace(value), "")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ComputeNumericStats parses every value, drops parse failures, and
// computes the summary. HasValue is false when no value parsed.
func ComputeNumericStats(values []string) NumericStats {
	var nums []float64
	for _, v := range values {
		if f, ok := ParseNumeric(v); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return NumericStats{}
	}

	sort.Float64s(nums)
	n := len(nums)

	var sum float64
	for _, x := range nums {
		sum += x
	}
	mean := sum / float64(n)

	var stdDev float64
	if n > 1 {
		var sumSq float64
		for _, x := range nums {
			d := x - mean
			sumSq += d * d
		}
		stdDev = math.Sqrt(sumSq / float64(n-1))
	}

	return NumericStats{
		Min:      nums[0],
		Max:      nums[n-1],
		Mean:     mean,
		Median:   nums[n/2],
		StdDev:   stdDev,
		Q1:       nums[n/4],
		Q3:       nums[(3*n)/4],
		HasValue: true,
	}
}
