package analytics

import (
	"fmt"
	"time"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// Fixed cutoffs for the pass-rate, error-rate and latency checks. Only the
// avg-score check reads the caller's thresholds; the other three predate the
// configurable thresholds and still use these literals. Kept as observed
// upstream rather than unified (see DESIGN.md).
const (
	passRateFloorPct = 70.0
	errorRateCeilPct = 5.0
	p95LatencyCeilMs = 1000.0
)

// GenerateThresholdAlerts compares a precomputed summary against fixed
// quality thresholds. Each check is independent and yields at most one
// alert; an empty dataset yields none.
func GenerateThresholdAlerts(summary model.MonitoringSummary, thresholds model.QualityThresholds) []model.Alert {
	alerts := []model.Alert{}
	if summary.TotalRecords == 0 {
		return alerts
	}
	now := time.Now().UTC()

	if summary.AvgScore < thresholds.Good {
		alerts = append(alerts, model.Alert{
			ID:        "threshold-avg-score",
			Type:      model.SeverityWarning,
			Title:     "Average score below target",
			Message:   fmt.Sprintf("Average score %.3f is below the quality target of %.2f", summary.AvgScore, thresholds.Good),
			Timestamp: now,
			Category:  model.CategoryThreshold,
			Method:    model.MethodThreshold,
			Metadata: model.AlertMetadata{
				CurrentValue: summary.AvgScore,
				Threshold:    thresholds.Good,
				Deviation:    summary.AvgScore - thresholds.Good,
				Direction:    model.DirectionBelow,
				Unit:         "score",
			},
		})
	}

	if summary.PassRate < passRateFloorPct {
		alerts = append(alerts, model.Alert{
			ID:        "threshold-pass-rate",
			Type:      model.SeverityError,
			Title:     "Pass rate below threshold",
			Message:   fmt.Sprintf("Pass rate %.1f%% is below the %.0f%% floor", summary.PassRate, passRateFloorPct),
			Timestamp: now,
			Category:  model.CategoryThreshold,
			Method:    model.MethodThreshold,
			Metadata: model.AlertMetadata{
				CurrentValue: summary.PassRate,
				Threshold:    passRateFloorPct,
				Deviation:    summary.PassRate - passRateFloorPct,
				Direction:    model.DirectionBelow,
				Unit:         "%",
			},
		})
	}

	if summary.ErrorRate > errorRateCeilPct {
		alerts = append(alerts, model.Alert{
			ID:        "threshold-error-rate",
			Type:      model.SeverityError,
			Title:     "Error rate above threshold",
			Message:   fmt.Sprintf("Error rate %.1f%% exceeds the %.0f%% ceiling", summary.ErrorRate, errorRateCeilPct),
			Timestamp: now,
			Category:  model.CategoryThreshold,
			Method:    model.MethodThreshold,
			Metadata: model.AlertMetadata{
				CurrentValue: summary.ErrorRate,
				Threshold:    errorRateCeilPct,
				Deviation:    summary.ErrorRate - errorRateCeilPct,
				Direction:    model.DirectionAbove,
				Unit:         "%",
			},
		})
	}

	if summary.P95LatencyMs > p95LatencyCeilMs {
		alerts = append(alerts, model.Alert{
			ID:        "threshold-p95-latency",
			Type:      model.SeverityWarning,
			Title:     "p95 latency above threshold",
			Message:   fmt.Sprintf("p95 latency %.0fms exceeds the %.0fms ceiling", summary.P95LatencyMs, p95LatencyCeilMs),
			Timestamp: now,
			Category:  model.CategoryThreshold,
			Method:    model.MethodThreshold,
			Metadata: model.AlertMetadata{
				CurrentValue: summary.P95LatencyMs,
				Threshold:    p95LatencyCeilMs,
				Deviation:    summary.P95LatencyMs - p95LatencyCeilMs,
				Direction:    model.DirectionAbove,
				Unit:         "ms",
			},
		})
	}

	return alerts
}
