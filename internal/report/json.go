package report

import (
	"encoding/json"

	"tabinfer/internal/anomaly"
	"tabinfer/internal/coltype"
	"tabinfer/internal/colstats"
	"tabinfer/internal/engine"
)

type jsonFormatter struct{}

type columnPayload struct {
	Name          string                 `json:"name"`
	DataType      coltype.DataType       `json:"dataType"`
	Confidence    float64                `json:"confidence"`
	RowCount      int                    `json:"rowCount"`
	NullCount     int                    `json:"nullCount"`
	DistinctCount int                    `json:"distinctCount"`
	NumericStats  *colstats.NumericStats `json:"numericStats,omitempty"`
	TextStats     *colstats.TextStats    `json:"textStats,omitempty"`
	FormatPattern string                 `json:"formatPattern,omitempty"`
	Anomalies     []anomaly.Anomaly      `json:"anomalies,omitempty"`
	SQLType       string                 `json:"sqlType"`
	SampleValues  []string               `json:"sampleValues,omitempty"`
}

type reportPayload struct {
	Columns   []columnPayload `json:"columns"`
	SchemaSQL string           `json:"schemaSql"`
}

func (jsonFormatter) Format(columns []engine.ColumnMetadata, schemaSQL string) (string, error) {
	payload := reportPayload{SchemaSQL: schemaSQL}
	for _, c := range columns {
		cp := columnPayload{
			Name:          c.Name,
			DataType:      c.DataType,
			Confidence:    c.Confidence,
			RowCount:      c.RowCount,
			NullCount:     c.NullCount,
			DistinctCount: c.DistinctCount,
			NumericStats:  c.NumericStats,
			TextStats:     c.TextStats,
			Anomalies:     c.Anomalies,
			SQLType:       c.SQLType,
			SampleValues:  c.SampleValues,
		}
		if c.HasFormatPattern {
			cp.FormatPattern = c.FormatPattern
		}
		payload.Columns = append(payload.Columns, cp)
	}
	return marshalJSON(payload)
}

func marshalJSON(payload reportPayload) (string, error) {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
