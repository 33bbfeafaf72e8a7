package recognize

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	rePhoneIntl  = regexp.MustCompile(`^\+?\d{1,3}[-. ]?\d{3}[-. ]?\d{3}[-. ]?\d{4}$`)
	rePhoneParen = regexp.MustCompile(`^\(\d{3}\)\s?\d{3}[-. ]?\d{4}$`)
	rePhonePlain = regexp.MustCompile(`^\d{3}[-. ]?\d{3}[-. ]?\d{4}$`)
)

type phoneRecognizer struct{}

func (phoneRecognizer) Confidence(value string) float64 {
	v := trimmed(value)
	if v == "" {
		return 0
	}
	stripped := strings.ReplaceAll(v, " ", "")
	if rePhoneIntl.MatchString(stripped) || rePhoneParen.MatchString(stripped) || rePhonePlain.MatchString(stripped) {
		return 1.0
	}

	digits := digitsOnly(stripped)
	if len(digits) < 10 || len(digits) > 15 {
		return 0
	}
	if onlyPhoneChars(stripped) {
		return 0.7
	}
	return 0.3
}

func (p phoneRecognizer) Definite(value string) bool {
	return p.Confidence(value) == 1.0
}

func (phoneRecognizer) Normalize(value string) (string, bool) {
	digits := digitsOnly(trimmed(value))
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10]), true
	case len(digits) >= 11 && len(digits) <= 15:
		cc := digits[:len(digits)-10]
		rest := digits[len(digits)-10:]
		return fmt.Sprintf("+%s-%s-%s-%s", cc, rest[0:3], rest[3:6], rest[6:10]), true
	default:
		return "", false
	}
}

// PhoneFormatTag names the surface shape a recognized phone value took,
// for the column-level format_pattern majority vote.
func PhoneFormatTag(value string) string {
	v := strings.ReplaceAll(trimmed(value), " ", "")
	switch {
	case rePhoneParen.MatchString(v):
		return "(AAA) BBB-CCCC"
	case rePhonePlain.MatchString(v):
		return "AAA-BBB-CCCC"
	case rePhoneIntl.MatchString(v):
		return "+C AAA-BBB-CCCC"
	default:
		return "UNKNOWN"
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func onlyPhoneChars(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}
