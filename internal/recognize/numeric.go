package recognize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reInteger        = regexp.MustCompile(`^-?\d+$`)
	reIntegerGrouped = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)
	reDecimalPlain   = regexp.MustCompile(`^-?(\d*\.\d+|\d+\.\d*)$`)
	reDecimalGrouped = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+\.\d*$`)
)

type numericRecognizer struct{}

// HasFraction reports whether value is a definite numeric match whose
// accepted shape carried a decimal point, the signal internal/engine
// uses to report a numeric column as Decimal rather than Integer.
func HasFraction(value string) bool {
	v := strings.ReplaceAll(trimmed(value), " ", "")
	return reDecimalPlain.MatchString(v) || reDecimalGrouped.MatchString(v)
}

func (numericRecognizer) Confidence(value string) float64 {
	v := strings.ReplaceAll(trimmed(value), " ", "")
	if v == "" {
		return 0
	}
	if reInteger.MatchString(v) || reIntegerGrouped.MatchString(v) ||
		reDecimalPlain.MatchString(v) || reDecimalGrouped.MatchString(v) {
		return 1.0
	}
	return 0
}

func (n numericRecognizer) Definite(value string) bool {
	return n.Confidence(value) == 1.0
}

func (numericRecognizer) Normalize(value string) (string, bool) {
	v := strings.ReplaceAll(trimmed(value), " ", "")
	v = strings.ReplaceAll(v, ",", "")
	if v == "" {
		return "", false
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return strconv.FormatInt(n, 10), true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
