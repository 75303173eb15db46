package model

// KPI aggregate keywords.
const (
	AggregateTotalCases      = "total_cases"
	AggregateAvgMessageCount = "avg_message_count"
)

// KPI display formats.
const (
	FormatPercent  = "percent"
	FormatDuration = "duration"
	FormatCompact  = "compact"
)

// SignalsKPIConfig is a declarative KPI spec. Either Aggregate names a
// built-in aggregate, or Metric+Signal select a "{metric}__{signal}" field,
// optionally with an Aggregation method for numeric signals. Without an
// Aggregation the signal is treated as a boolean rate.
type SignalsKPIConfig struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label,omitempty" yaml:"label"`
	Aggregate   string `json:"aggregate,omitempty" yaml:"aggregate"`
	Metric      string `json:"metric,omitempty" yaml:"metric"`
	Signal      string `json:"signal,omitempty" yaml:"signal"`
	Aggregation string `json:"aggregation,omitempty" yaml:"aggregation"`
	Format      string `json:"format,omitempty" yaml:"format"`
}

// SparklinePoint is one weekly bucket of a KPI sparkline. Date is the
// Monday of the bucket's ISO week as YYYY-MM-DD.
type SparklinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// SignalsKPIResult is a computed KPI ready for rendering. Value is the
// display string; RawValue the number behind it.
type SignalsKPIResult struct {
	ID         string           `json:"id"`
	Label      string           `json:"label,omitempty"`
	Value      string           `json:"value"`
	RawValue   float64          `json:"rawValue"`
	Sparkline  []SparklinePoint `json:"sparkline,omitempty"`
	TotalCases int              `json:"totalCases"`
	MetricName string           `json:"metricName,omitempty"`
}
