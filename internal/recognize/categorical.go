package recognize

import "strings"

// categoricalTokens are the known small pattern sets a single value can
// match with full confidence. The decisive categorical decision is
// made at the column level in internal/columnscore; this recognizer
// only supplies low-signal per-value evidence.
var categoricalTokens = map[string]bool{
	// booleans
	"true": true, "false": true, "yes": true, "no": true, "y": true, "n": true, "t": true, "f": true,
	// ratings
	"high": true, "medium": true, "low": true, "critical": true, "major": true, "minor": true,
	// statuses
	"active": true, "inactive": true, "pending": true, "completed": true, "cancelled": true,
	"failed": true, "success": true,
	// levels
	"beginner": true, "intermediate": true, "advanced": true, "expert": true,
}

type categoricalRecognizer struct{}

func (categoricalRecognizer) Confidence(value string) float64 {
	v := trimmed(value)
	if v == "" {
		return 0
	}
	if categoricalTokens[strings.ToLower(v)] {
		return 1.0
	}
	return 0.3
}

func (c categoricalRecognizer) Definite(value string) bool {
	return c.Confidence(value) == 1.0
}

func (c categoricalRecognizer) Normalize(value string) (string, bool) {
	v := trimmed(value)
	lower := strings.ToLower(v)
	if categoricalTokens[lower] {
		return lower, true
	}
	return "", false
}
