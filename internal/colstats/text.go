package colstats

import (
	"sort"
	"strings"
)

// ValueCount is one entry in TextStats.MostCommon.
type ValueCount struct {
	Value string
	Count int
}

// TextStats summarizes the non-null trimmed values of a text-like
// column (Text, Email, Phone, Categorical).
type TextStats struct {
	MinLength  int
	MaxLength  int
	AvgLength  float64
	MostCommon []ValueCount
}

// ComputeTextStats computes length statistics and the top-5
// most-common values, sorted by count descending then value ascending
// for deterministic tie-break.
func ComputeTextStats(values []string) TextStats {
	if len(values) == 0 {
		return TextStats{}
	}

	counts := make(map[string]int, len(values))
	minLen, maxLen := -1, 0
	var totalLen int
	for _, raw := range values {
		v := strings.TrimSpace(raw)
		l := len(v)
		if minLen == -1 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
		totalLen += l
		counts[v]++
	}
	if minLen == -1 {
		minLen = 0
	}

	distinct := make([]string, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return distinct[i] < distinct[j]
	})

	top := distinct
	if len(top) > 5 {
		top = top[:5]
	}
	mostCommon := make([]ValueCount, 0, len(top))
	for _, v := range top {
		mostCommon = append(mostCommon, ValueCount{Value: v, Count: counts[v]})
	}

	return TextStats{
		MinLength:  minLen,
		MaxLength:  maxLen,
		AvgLength:  float64(totalLen) / float64(len(values)),
		MostCommon: mostCommon,
	}
}
