package report

import "tabinfer/internal/engine"

type sqlFormatter struct{}

func (sqlFormatter) Format(_ []engine.ColumnMetadata, schemaSQL string) (string, error) {
	return schemaSQL + "\n", nil
}
