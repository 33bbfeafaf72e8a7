package recognize

import (
	"fmt"
	"regexp"
	"strconv"
)

// FormatTag names a recognized surface shape for date values, used for
// the column-level format_pattern majority vote.
type FormatTag string

const (
	FormatISO           FormatTag = "YYYY-MM-DD"
	FormatUSSlash       FormatTag = "M/D/YYYY"
	FormatEuropeanDash  FormatTag = "D-M-YYYY"
	FormatEuropeanSlash FormatTag = "D/M/YYYY"
	FormatJapaneseSlash FormatTag = "YYYY/MM/DD"
	FormatUSDash        FormatTag = "M-D-YYYY"
	FormatUnknown       FormatTag = "UNKNOWN"
)

var (
	reYMDDash          = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reYMDSlash         = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`)
	reDMorMDSep        = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})\2(\d{4})$`)
	reDMorMDSepLenient = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})\2(\d{2}|\d{4})$`)
)

// dateShape is one candidate parse of a matched regex: which
// components are year/month/day, in the preference order used both
// for format-tag reporting and for resolving M/D vs D/M ambiguity.
type dateShape struct {
	tag              FormatTag
	year, month, day int
}

// tryParseShapes attempts every supported shape against value in the
// column-format preference order (Japanese, ISO, US-slash,
// European-slash, European-dash, US-dash), returning the first shape
// whose extracted (year, month, day) is a valid calendar date.
func tryParseShapes(value string) (dateShape, bool) {
	if m := reYMDSlash.FindStringSubmatch(value); m != nil {
		if y, mo, d, ok := parseYMD(m[1], m[2], m[3]); ok {
			return dateShape{tag: FormatJapaneseSlash, year: y, month: mo, day: d}, true
		}
	}
	if m := reYMDDash.FindStringSubmatch(value); m != nil {
		if y, mo, d, ok := parseYMD(m[1], m[2], m[3]); ok {
			return dateShape{tag: FormatISO, year: y, month: mo, day: d}, true
		}
	}
	if m := reDMorMDSep.FindStringSubmatch(value); m != nil {
		a, _ := strconv.Atoi(m[1])
		sep := m[2]
		b, _ := strconv.Atoi(m[3])
		year, _ := strconv.Atoi(m[4])

		if sep == "/" {
			// US-slash (M/D/YYYY) takes preference over European-slash (D/M/YYYY).
			if validDate(year, a, b) {
				return dateShape{tag: FormatUSSlash, year: year, month: a, day: b}, true
			}
			if validDate(year, b, a) {
				return dateShape{tag: FormatEuropeanSlash, year: year, month: b, day: a}, true
			}
		} else {
			// European-dash (D-M-YYYY) takes preference over US-dash (M-D-YYYY).
			if validDate(year, b, a) {
				return dateShape{tag: FormatEuropeanDash, year: year, month: b, day: a}, true
			}
			if validDate(year, a, b) {
				return dateShape{tag: FormatUSDash, year: year, month: a, day: b}, true
			}
		}
	}
	return dateShape{}, false
}

func parseYMD(ys, ms, ds string) (int, int, int, bool) {
	y, err1 := strconv.Atoi(ys)
	mo, err2 := strconv.Atoi(ms)
	d, err3 := strconv.Atoi(ds)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return y, mo, d, validDate(y, mo, d)
}

func validDate(year, month, day int) bool {
	if year < 1000 || year > 9999 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysInMonth(month, year) {
		return false
	}
	return true
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

type dateRecognizer struct{}

func (dateRecognizer) Confidence(value string) float64 {
	v := trimmed(value)
	if v == "" {
		return 0
	}
	if _, ok := tryParseShapes(v); ok {
		return 1.0
	}
	return 0
}

func (r dateRecognizer) Definite(value string) bool {
	return r.Confidence(value) == 1.0
}

func (dateRecognizer) Normalize(value string) (string, bool) {
	v := trimmed(value)
	shape, ok := tryParseShapes(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", shape.year, shape.month, shape.day), true
}

// FormatTagOf returns the surface format tag for value, or
// FormatUnknown if value does not match any supported shape.
func FormatTagOf(value string) FormatTag {
	shape, ok := tryParseShapes(trimmed(value))
	if !ok {
		return FormatUnknown
	}
	return shape.tag
}

// NormalizeLenient parses value with a more forgiving two-digit-year
// rule, used only for anomaly normalization suggestions (§4.5): years
// under 50 map to 2000+year, otherwise 1900+year, and day-vs-month
// disambiguation prefers a first component that is a valid month when
// the second component exceeds 12.
func NormalizeLenient(value string) (string, bool) {
	v := trimmed(value)
	if shape, ok := tryParseShapes(v); ok {
		return fmt.Sprintf("%04d-%02d-%02d", shape.year, shape.month, shape.day), true
	}

	m := reDMorMDSepLenient.FindStringSubmatch(v)
	if m == nil {
		return "", false
	}
	a, _ := strconv.Atoi(m[1])
	b, _ := strconv.Atoi(m[3])
	yearRaw, _ := strconv.Atoi(m[4])

	if len(m[4]) == 2 {
		if yearRaw < 50 {
			yearRaw += 2000
		} else {
			yearRaw += 1900
		}
	}

	// Prefer interpreting the first component as the month when that
	// makes the date valid and the alternative does not.
	if validDate(yearRaw, a, b) {
		return fmt.Sprintf("%04d-%02d-%02d", yearRaw, a, b), true
	}
	if validDate(yearRaw, b, a) {
		return fmt.Sprintf("%04d-%02d-%02d", yearRaw, b, a), true
	}
	return "", false
}
