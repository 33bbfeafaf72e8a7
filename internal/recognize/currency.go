package recognize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reDollarPrefix  = regexp.MustCompile(`^\$\s*-?(\d{1,3}(,\d{3})*|\d+)(\.\d{2})?$`)
	reUSDSuffix     = regexp.MustCompile(`(?i)^-?(\d{1,3}(,\d{3})*|\d+)(\.\d{2})?\s*USD$`)
	reUSDPrefix     = regexp.MustCompile(`(?i)^USD\s*-?(\d{1,3}(,\d{3})*|\d+)(\.\d{2})?$`)
	reTwoDecimals   = regexp.MustCompile(`^-?\d+\.\d{2}$`)
	reStripCurrency = regexp.MustCompile(`(?i)[$,]|USD`)
)

type currencyRecognizer struct{}

func (currencyRecognizer) Confidence(value string) float64 {
	v := trimmed(value)
	if v == "" {
		return 0
	}
	if reDollarPrefix.MatchString(v) || reUSDSuffix.MatchString(v) || reUSDPrefix.MatchString(v) {
		return 1.0
	}
	if reTwoDecimals.MatchString(v) {
		return 0.5
	}
	return 0
}

func (c currencyRecognizer) Definite(value string) bool {
	return c.Confidence(value) == 1.0
}

// CurrencyFormatTag names the surface shape a recognized currency value
// took, for the column-level format_pattern majority vote.
func CurrencyFormatTag(value string) string {
	v := trimmed(value)
	switch {
	case reDollarPrefix.MatchString(v):
		if strings.Contains(v, ",") {
			return "$#,###.##"
		}
		return "$#.##"
	case reUSDSuffix.MatchString(v):
		return "#.## USD"
	case reUSDPrefix.MatchString(v):
		return "USD #.##"
	default:
		return "UNKNOWN"
	}
}

func (currencyRecognizer) Normalize(value string) (string, bool) {
	v := trimmed(value)
	if v == "" {
		return "", false
	}
	stripped := strings.TrimSpace(reStripCurrency.ReplaceAllString(v, ""))
	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("$%.2f", f), true
}
