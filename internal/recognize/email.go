package recognize

import (
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[a-zA-Z0-9_+-]+(\.[a-zA-Z0-9_+-]+)*@([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

type emailRecognizer struct{}

func (emailRecognizer) Confidence(value string) float64 {
	v := strings.ToLower(trimmed(value))
	if v == "" {
		return 0
	}
	if reEmail.MatchString(v) {
		return 1.0
	}

	at := strings.Index(v, "@")
	if at < 0 {
		return 0
	}

	local, domain := v[:at], v[at+1:]
	if local != "" && strings.Contains(domain, ".") {
		labels := strings.Split(domain, ".")
		allNonEmpty := true
		for _, label := range labels {
			if label == "" {
				allNonEmpty = false
				break
			}
		}
		if allNonEmpty {
			return 0.7
		}
	}
	return 0.3
}

func (e emailRecognizer) Definite(value string) bool {
	return e.Confidence(value) == 1.0
}

func (e emailRecognizer) Normalize(value string) (string, bool) {
	if !e.Definite(value) {
		return "", false
	}
	return strings.ToLower(trimmed(value)), true
}
