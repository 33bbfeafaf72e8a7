package recognize

import "tabinfer/internal/coltype"

// PriorityEntry pairs a candidate DataType with its recognizer.
type PriorityEntry struct {
	Type       coltype.DataType
	Recognizer Recognizer
}

// Priority is the canonical recognizer priority ordering used both by
// column scoring (§4.2) and single-value anomaly detection (§4.5):
// most restrictive / least ambiguous first.
var Priority = []PriorityEntry{
	{coltype.Integer, Numeric},
	{coltype.Currency, CurrencyRecognizer},
	{coltype.Date, DateRecognizer},
	{coltype.Email, Email},
	{coltype.Phone, Phone},
	{coltype.Categorical, Categorical},
}
