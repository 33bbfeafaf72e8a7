package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericConfidence(t *testing.T) {
	cases := map[string]float64{
		"123":       1.0,
		"-45":       1.0,
		"1,234":     1.0,
		"3.14":      1.0,
		"-1,234.56": 1.0,
		"":          0,
		"abc":       0,
		"1.2.3":     0,
	}
	for value, want := range cases {
		assert.Equal(t, want, Numeric.Confidence(value), "Confidence(%q)", value)
	}
}

func TestNumericNormalize(t *testing.T) {
	got, ok := Numeric.Normalize("1,234")
	require.True(t, ok)
	assert.Equal(t, "1234", got)

	got, ok = Numeric.Normalize("3.140")
	require.True(t, ok)
	assert.Equal(t, "3.14", got)
}

func TestCurrencyConfidence(t *testing.T) {
	assert.Equal(t, 1.0, CurrencyRecognizer.Confidence("$1,234.56"))
	assert.Equal(t, 1.0, CurrencyRecognizer.Confidence("1234.56 USD"))
	assert.Equal(t, 0.5, CurrencyRecognizer.Confidence("1234.56"))
	assert.Equal(t, 0.0, CurrencyRecognizer.Confidence("1234"))
}

func TestCurrencyNormalize(t *testing.T) {
	got, ok := CurrencyRecognizer.Normalize("$1,234.5")
	require.True(t, ok)
	assert.Equal(t, "$1234.50", got)
}

func TestDateConfidenceAndNormalize(t *testing.T) {
	cases := []string{"2024-01-01", "01/15/2024", "2024/01/30", "15-1-2024", "1-15-2024"}
	for _, v := range cases {
		assert.Equal(t, 1.0, DateRecognizer.Confidence(v), "Confidence(%q)", v)
	}
	assert.Equal(t, 0.0, DateRecognizer.Confidence("2024-13-01"), "invalid month")
	assert.Equal(t, 0.0, DateRecognizer.Confidence("2023-02-29"), "non-leap Feb 29")

	got, ok := DateRecognizer.Normalize("2024-01-01")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got)
}

func TestDateFormatTagPreference(t *testing.T) {
	assert.Equal(t, FormatJapaneseSlash, FormatTagOf("2024/01/30"))
	assert.Equal(t, FormatISO, FormatTagOf("2024-01-01"))
}

func TestNormalizeLenientTwoDigitYear(t *testing.T) {
	got, ok := NormalizeLenient("01/02/45")
	require.True(t, ok)
	assert.Equal(t, "2045", got[:4])

	got, ok = NormalizeLenient("01/02/78")
	require.True(t, ok)
	assert.Equal(t, "1978", got[:4])
}

func TestEmailConfidence(t *testing.T) {
	assert.Equal(t, 1.0, Email.Confidence("User@Example.com"))
	assert.Equal(t, 0.7, Email.Confidence("bad@sub.d"))
	assert.Equal(t, 0.3, Email.Confidence("just@"))
	assert.Equal(t, 0.0, Email.Confidence("notanemail"))
}

func TestEmailNormalizeLowercases(t *testing.T) {
	got, ok := Email.Normalize("User@Example.com")
	require.True(t, ok)
	assert.Equal(t, "user@example.com", got)
}

func TestPhoneConfidenceAndNormalize(t *testing.T) {
	cases := []string{"(555) 123-4567", "555-123-4567", "+1 555-123-4567"}
	for _, v := range cases {
		assert.Equal(t, 1.0, Phone.Confidence(v), "Confidence(%q)", v)
	}

	got, ok := Phone.Normalize("5551234567")
	require.True(t, ok)
	assert.Equal(t, "(555) 123-4567", got)
}

func TestPhoneConfidenceToleratesIrregularSpacing(t *testing.T) {
	assert.Equal(t, 1.0, Phone.Confidence("+1  202 555 0173"))
}

func TestCategoricalConfidence(t *testing.T) {
	assert.Equal(t, 1.0, Categorical.Confidence("Active"))
	assert.Equal(t, 0.3, Categorical.Confidence("something else"))
	assert.Equal(t, 0.0, Categorical.Confidence(""))
}
