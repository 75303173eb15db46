package model

import "time"

// Alert severities.
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Alert categories.
const (
	CategoryThreshold = "threshold"
	CategoryAnomaly   = "anomaly"
)

// Detection methods carried on alerts.
const (
	MethodThreshold     = "threshold"
	MethodZScore        = "z-score"
	MethodMovingAverage = "moving-average"
	MethodRateOfChange  = "rate-of-change"
)

// Alert directions.
const (
	DirectionAbove     = "above"
	DirectionBelow     = "below"
	DirectionIncreased = "increased"
	DirectionDecreased = "decreased"
)

// AlertMetadata carries the numeric context behind an alert. Optional fields
// are set only by the detector that produces them.
type AlertMetadata struct {
	CurrentValue  float64  `json:"currentValue"`
	Threshold     float64  `json:"threshold"`
	Deviation     float64  `json:"deviation"`
	Direction     string   `json:"direction"`
	Unit          string   `json:"unit"`
	ZScore        *float64 `json:"zScore,omitempty"`
	MovingAverage *float64 `json:"movingAverage,omitempty"`
	PreviousValue *float64 `json:"previousValue,omitempty"`
}

// Alert is the normalized output of every detector and threshold check.
// ID is deterministic per (method, metric) so recomputation replaces an
// alert for the same cause instead of duplicating it; the UI uses it as a
// list key.
type Alert struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"` // warning|error
	Title     string        `json:"title"`
	Message   string        `json:"message"`
	Timestamp time.Time     `json:"timestamp"`
	Category  string        `json:"category"` // threshold|anomaly
	Method    string        `json:"method"`
	Metric    string        `json:"metric,omitempty"`
	Metadata  AlertMetadata `json:"metadata"`
}
