// Package coltype defines the closed set of semantic column types the
// inference engine chooses among and the capability predicates derived
// from them.
package coltype

// DataType is the closed set of semantic types a column can be
// inferred as. Text is the terminal fallback when no recognizer wins.
type DataType string

const (
	Integer     DataType = "Integer"
	Decimal     DataType = "Decimal"
	Currency    DataType = "Currency"
	Date        DataType = "Date"
	Email       DataType = "Email"
	Phone       DataType = "Phone"
	Categorical DataType = "Categorical"
	Text        DataType = "Text"
)

// IsNumeric reports whether values of this type are numeric quantities.
func (t DataType) IsNumeric() bool {
	switch t {
	case Integer, Decimal, Currency:
		return true
	default:
		return false
	}
}

// IsTemporal reports whether values of this type represent calendar dates.
func (t DataType) IsTemporal() bool {
	return t == Date
}

// IsIndexable reports whether a column of this type is a reasonable
// index candidate, independent of the cardinality heuristics applied
// in internal/schema.
func (t DataType) IsIndexable() bool {
	switch t {
	case Integer, Date, Email, Phone, Categorical:
		return true
	default:
		return false
	}
}

// String returns the type's name.
func (t DataType) String() string {
	return string(t)
}
