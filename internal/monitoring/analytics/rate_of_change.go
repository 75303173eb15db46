package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// detectRateOfChange compares only the two most recent points of each metric.
// Direction is increased/decreased from the sign of the step itself rather
// than above/below a baseline.
func detectRateOfChange(grouped map[string][]model.MonitoringTrendData, cfg model.RateOfChangeConfig, minDataPoints int) []model.Alert {
	required := minDataPoints
	if required < 2 {
		required = 2
	}
	alerts := []model.Alert{}
	for _, metric := range sortedMetricNames(grouped) {
		if !metricSelected(cfg.Metrics, metric) {
			continue
		}
		points := grouped[metric]
		if len(points) < required {
			continue
		}

		latest := points[len(points)-1].Avg
		previous := points[len(points)-2].Avg
		change := math.Abs(latest - previous)
		if change <= cfg.Threshold {
			continue
		}

		direction := model.DirectionDecreased
		if latest > previous {
			direction = model.DirectionIncreased
		}
		prevCopy := previous
		alerts = append(alerts, model.Alert{
			ID:        fmt.Sprintf("anomaly-rate-of-change-%s", metric),
			Type:      cfg.Severity,
			Title:     fmt.Sprintf("Sudden change in %s", metric),
			Message:   fmt.Sprintf("%s %s by %.3f between the last two points (%.3f → %.3f)", metric, direction, change, previous, latest),
			Timestamp: time.Now().UTC(),
			Category:  model.CategoryAnomaly,
			Method:    model.MethodRateOfChange,
			Metric:    metric,
			Metadata: model.AlertMetadata{
				CurrentValue:  latest,
				Threshold:     cfg.Threshold,
				Deviation:     latest - previous,
				Direction:     direction,
				Unit:          "score",
				PreviousValue: &prevCopy,
			},
		})
	}
	return alerts
}
