package model

// MonitoringRecord is one evaluation or production event as loaded by the
// ingestion layer. Records are immutable once loaded; the analytics core
// never mutates them.
type MonitoringRecord struct {
	Metric          string   `json:"metric"`
	Score           *float64 `json:"score,omitempty"` // normalized to [0,1] when present
	Timestamp       string   `json:"timestamp"`
	SourceName      string   `json:"source_name,omitempty"`
	SourceComponent string   `json:"source_component,omitempty"`
	Environment     string   `json:"environment,omitempty"`
	LatencyMs       *float64 `json:"latency_ms,omitempty"`
	Error           bool     `json:"error,omitempty"`
}

// MonitoringTrendData is one pre-aggregated per-(timestamp, metric) point.
// The anomaly detectors treat Avg as the series value.
type MonitoringTrendData struct {
	Timestamp string  `json:"timestamp"`
	Metric    string  `json:"metric"`
	Avg       float64 `json:"avg"`
	P50       float64 `json:"p50"`
	P95       float64 `json:"p95"`
	P99       float64 `json:"p99"`
	Count     int     `json:"count"`
}

// MonitoringSummary holds dataset-wide quality metrics consumed by the
// threshold alert generator. PassRate and ErrorRate are percentages in
// [0,100]; AvgScore is in [0,1].
type MonitoringSummary struct {
	TotalRecords int     `json:"totalRecords"`
	AvgScore     float64 `json:"avgScore"`
	PassRate     float64 `json:"passRate"`
	ErrorRate    float64 `json:"errorRate"`
	P95LatencyMs float64 `json:"p95LatencyMs"`
}

// SignalsCaseRecord is one case with dynamically keyed signal fields named
// "{metric}__{signal}". Signal values may be booleans, numbers, strings or
// arrays depending on the upstream classifier.
type SignalsCaseRecord struct {
	ID           string         `json:"id"`
	Timestamp    string         `json:"timestamp"`
	MessageCount float64        `json:"message_count,omitempty"`
	Signals      map[string]any `json:"signals,omitempty"`
}
