package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// detectMovingAverage compares each metric's latest value against the simple
// mean of the points immediately preceding it. The window shrinks to
// len(points)-1 when history is short; a window below 1 is a no-op.
func detectMovingAverage(grouped map[string][]model.MonitoringTrendData, cfg model.MovingAverageConfig, minDataPoints int) []model.Alert {
	alerts := []model.Alert{}
	for _, metric := range sortedMetricNames(grouped) {
		if !metricSelected(cfg.Metrics, metric) {
			continue
		}
		points := grouped[metric]
		if len(points) < minDataPoints {
			continue
		}
		windowSize := cfg.WindowSize
		if windowSize > len(points)-1 {
			windowSize = len(points) - 1
		}
		if windowSize < 1 {
			continue
		}

		latest := points[len(points)-1].Avg
		window := points[len(points)-1-windowSize : len(points)-1]
		ma := mean(seriesValues(window))

		deviation := math.Abs(latest - ma)
		if deviation <= cfg.DeviationThreshold {
			continue
		}

		direction := model.DirectionBelow
		if latest > ma {
			direction = model.DirectionAbove
		}
		maCopy := ma
		alerts = append(alerts, model.Alert{
			ID:        fmt.Sprintf("anomaly-moving-average-%s", metric),
			Type:      cfg.Severity,
			Title:     fmt.Sprintf("%s drifted from its moving average", metric),
			Message:   fmt.Sprintf("%s is %.3f %s its %d-point moving average (latest %.3f, average %.3f)", metric, deviation, direction, windowSize, latest, ma),
			Timestamp: time.Now().UTC(),
			Category:  model.CategoryAnomaly,
			Method:    model.MethodMovingAverage,
			Metric:    metric,
			Metadata: model.AlertMetadata{
				CurrentValue:  latest,
				Threshold:     cfg.DeviationThreshold,
				Deviation:     latest - ma,
				Direction:     direction,
				Unit:          "score",
				MovingAverage: &maCopy,
			},
		})
	}
	return alerts
}
