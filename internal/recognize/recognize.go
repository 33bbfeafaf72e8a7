// Package recognize implements the per-value type recognizers: one per
// candidate semantic type, each exposing a confidence score, a
// definite-match predicate, and an optional normalizer. The column
// scorer in internal/columnscore depends on this interface, not on
// concrete recognizer identities, so new types can be added without
// touching the scorer as long as they take a position in its priority
// list.
package recognize

import "strings"

// Recognizer is the uniform three-method contract every per-type
// recognizer implements.
type Recognizer interface {
	// Confidence returns a score in [0, 1] for how well value matches
	// this recognizer's type. value is assumed already trimmed.
	Confidence(value string) float64
	// Definite reports whether Confidence(value) == 1.0.
	Definite(value string) bool
	// Normalize returns a canonical string form of value, or ok=false
	// if value cannot be coerced into this type.
	Normalize(value string) (string, bool)
}

// Numeric recognizes both Integer and Decimal surface forms;
// internal/engine later distinguishes Integer from Decimal by
// checking whether any accepted value carries a fractional part.
var Numeric Recognizer = numericRecognizer{}

// CurrencyRecognizer recognizes USD-style surface forms.
var CurrencyRecognizer Recognizer = currencyRecognizer{}

// DateRecognizer recognizes the six supported calendar date shapes.
var DateRecognizer Recognizer = dateRecognizer{}

// Email recognizes RFC-ish email addresses.
var Email Recognizer = emailRecognizer{}

// Phone recognizes the three supported phone number shapes.
var Phone Recognizer = phoneRecognizer{}

// Categorical carries low per-value signal; the decisive categorical
// decision is made at the column level in internal/columnscore.
var Categorical Recognizer = categoricalRecognizer{}

// trimmed reports the value with surrounding whitespace removed; every
// recognizer treats its input as already trimmed, but callers that
// forward raw cell text can use this instead of duplicating the call.
func trimmed(value string) string {
	return strings.TrimSpace(value)
}
