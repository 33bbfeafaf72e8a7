// Package engine ties the recognizer, scoring, statistics, anomaly and
// schema packages together into the single entry point described by
// the column type inference engine: Analyze takes a column-major
// dataset and returns per-column metadata plus a rendered schema_sql.
package engine

import (
	"sort"
	"strconv"
	"strings"

	"tabinfer/internal/anomaly"
	"tabinfer/internal/coltype"
	"tabinfer/internal/colstats"
	"tabinfer/internal/columnscore"
	"tabinfer/internal/config"
	"tabinfer/internal/recognize"
	"tabinfer/internal/schema"
)

// Column is a single input column: a header and its raw, untrimmed
// cell values in row order. An empty or whitespace-only value is a
// null.
type Column struct {
	Header string
	Values []string
}

// ColumnMetadata is the engine's per-column output (§3).
type ColumnMetadata struct {
	Name          string
	DataType      coltype.DataType
	Confidence    float64
	RowCount      int
	NullCount     int
	DistinctCount int

	NumericStats     *colstats.NumericStats
	TextStats        *colstats.TextStats
	FormatPattern    string
	HasFormatPattern bool

	Anomalies []anomaly.Anomaly
	SQLType   string

	SampleValues []string

	// distinctByFrequency lists every distinct non-null value sorted by
	// occurrence count descending (ties broken by value ascending), used
	// only to render a Categorical column's ENUM declaration.
	distinctByFrequency []string
	// maxFractionDigits is the widest decimal fraction observed, used
	// only to size a Decimal column's DECIMAL(p, s) declaration.
	maxFractionDigits int
}

// Analyze infers a type, statistics, anomalies and a SQL declaration
// for every column using spec.md's default thresholds, then renders
// the combined schema_sql. If exec is nil, columns are analyzed
// sequentially on the calling goroutine.
func Analyze(columns []Column, exec Executor) ([]ColumnMetadata, string) {
	return AnalyzeWithConfig(columns, exec, config.Default())
}

// AnalyzeWithConfig is Analyze with the categorical promotion
// thresholds taken from cfg instead of spec.md's hardcoded defaults,
// for callers that loaded a tabinfer.toml override.
func AnalyzeWithConfig(columns []Column, exec Executor, cfg config.Config) ([]ColumnMetadata, string) {
	if exec == nil {
		exec = SequentialExecutor{}
	}

	thresholds := columnscore.Thresholds{
		MinValues:          cfg.Categorical.MinValues,
		MinNonNullRatio:    cfg.Categorical.MinNonNullRatio,
		MaxUniqueRatio:     cfg.Categorical.MaxUniqueRatio,
		MaxAverageLength:   cfg.Categorical.MaxAverageLength,
		MinFrequencyRatio:  cfg.Categorical.MinFrequencyRatio,
		PromotionThreshold: cfg.Categorical.PromotionThreshold,
	}

	jobs := make([]func() ColumnMetadata, len(columns))
	for i, c := range columns {
		c := c
		jobs[i] = func() ColumnMetadata { return analyzeColumn(c, thresholds) }
	}
	results := exec.Run(jobs)

	return results, renderSchema(results)
}

func analyzeColumn(col Column, thresholds columnscore.Thresholds) ColumnMetadata {
	meta := ColumnMetadata{
		Name:     col.Header,
		RowCount: len(col.Values),
	}

	nonNull := make([]string, 0, len(col.Values))
	nonNullIndex := make([]int, 0, len(col.Values))
	for i, raw := range col.Values {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			meta.NullCount++
			continue
		}
		nonNull = append(nonNull, trimmed)
		nonNullIndex = append(nonNullIndex, i)
	}

	counts := make(map[string]int, len(nonNull))
	for _, v := range nonNull {
		counts[v]++
	}
	meta.DistinctCount = len(counts)
	meta.SampleValues = sampleValues(counts, 5)
	meta.distinctByFrequency = distinctByFrequency(counts)

	dataType, confidence := columnscore.Score(nonNull)
	if dataType == coltype.Text {
		if promoted := columnscore.PromoteCategoricalWithThresholds(col.Header, nonNull, meta.RowCount, thresholds); promoted.Promoted {
			dataType, confidence = coltype.Categorical, promoted.Confidence
		}
	}
	if dataType == coltype.Integer && hasAnyFraction(nonNull) {
		dataType = coltype.Decimal
	}

	meta.DataType = dataType
	meta.Confidence = confidence

	if dataType.IsNumeric() {
		stats := colstats.ComputeNumericStats(nonNull)
		meta.NumericStats = &stats
	}
	if dataType == coltype.Decimal {
		meta.maxFractionDigits = maxFractionDigits(nonNull)
	}
	if dataType == coltype.Text || dataType == coltype.Email || dataType == coltype.Phone || dataType == coltype.Categorical {
		stats := colstats.ComputeTextStats(nonNull)
		meta.TextStats = &stats
	}
	if dataType == coltype.Date || dataType == coltype.Phone || dataType == coltype.Currency {
		meta.FormatPattern = majorityFormatTag(dataType, nonNull)
		meta.HasFormatPattern = true
	}

	rows := make([]anomaly.Row, len(nonNull))
	for i, v := range nonNull {
		rows[i] = anomaly.Row{Index: nonNullIndex[i], Value: v}
	}
	meta.Anomalies = anomaly.Detect(dataType, rows)

	meta.SQLType = schema.Declare(schemaInput(meta)).SQLType

	return meta
}

func hasAnyFraction(values []string) bool {
	for _, v := range values {
		if recognize.HasFraction(v) {
			return true
		}
	}
	return false
}

func majorityFormatTag(dataType coltype.DataType, values []string) string {
	tags := make([]string, 0, len(values))
	for _, v := range values {
		switch dataType {
		case coltype.Date:
			if tag := recognize.FormatTagOf(v); tag != "" {
				tags = append(tags, string(tag))
			}
		case coltype.Phone:
			if tag := recognize.PhoneFormatTag(v); tag != "" {
				tags = append(tags, tag)
			}
		case coltype.Currency:
			if tag := recognize.CurrencyFormatTag(v); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return colstats.MajorityFormatTag(tags)
}

func sampleValues(counts map[string]int, limit int) []string {
	samples := make([]string, 0, len(counts))
	for v := range counts {
		samples = append(samples, v)
	}
	sort.Strings(samples)
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return samples
}

// distinctByFrequency sorts counts' keys by count descending, then
// value ascending for tie-break stability.
func distinctByFrequency(counts map[string]int) []string {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})
	return values
}

func schemaInput(meta ColumnMetadata) schema.ColumnInput {
	in := schema.ColumnInput{
		Name:          meta.Name,
		DataType:      meta.DataType,
		RowCount:      meta.RowCount,
		NullCount:     meta.NullCount,
		DistinctCount: meta.DistinctCount,
	}
	if meta.NumericStats != nil {
		in.Min = meta.NumericStats.Min
		in.Max = meta.NumericStats.Max
	}
	if meta.TextStats != nil {
		in.MaxLength = meta.TextStats.MaxLength
	}
	if meta.DataType == coltype.Categorical {
		in.DistinctValues = meta.distinctByFrequency
	}
	in.MaxFractionDigits = meta.maxFractionDigits
	return in
}

func maxFractionDigits(values []string) int {
	max := 0
	for _, v := range values {
		if n := fractionDigits(v); n > max {
			max = n
		}
	}
	return max
}

func fractionDigits(value string) int {
	idx := strings.IndexByte(value, '.')
	if idx < 0 {
		return 0
	}
	return len(value[idx+1:])
}

func renderSchema(results []ColumnMetadata) string {
	columns := make([]schema.Column, len(results))
	notes := make([]schema.NoteInput, 0, len(results))
	for i, m := range results {
		columns[i] = schema.Column{
			Name:        m.Name,
			Declaration: schema.Declare(schemaInput(m)),
		}
		if m.Confidence < 0.9 || len(m.Anomalies) > 0 {
			notes = append(notes, schema.NoteInput{
				Name:       m.Name,
				Confidence: m.Confidence,
				Anomalies:  anomalyDescriptions(m.Anomalies),
			})
		}
	}
	return schema.Render(columns, notes)
}

func anomalyDescriptions(anomalies []anomaly.Anomaly) []string {
	descriptions := make([]string, 0, len(anomalies))
	for _, a := range anomalies {
		descriptions = append(descriptions, "row "+strconv.Itoa(a.RowIndex)+": \""+a.Value+"\" looked like "+string(a.FoundType)+", not "+string(a.ExpectedType))
	}
	return descriptions
}
