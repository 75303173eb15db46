package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// detectZScore flags metrics whose latest value sits more than the configured
// number of standard deviations from the lookback window's mean. A zero
// stddev window (constant series) never alerts.
func detectZScore(grouped map[string][]model.MonitoringTrendData, cfg model.ZScoreConfig, minDataPoints int) []model.Alert {
	alerts := []model.Alert{}
	for _, metric := range sortedMetricNames(grouped) {
		if !metricSelected(cfg.Metrics, metric) {
			continue
		}
		points := grouped[metric]
		if len(points) < minDataPoints {
			continue
		}

		lookback := points
		if cfg.LookbackWindow > 0 && len(points) > cfg.LookbackWindow {
			lookback = points[len(points)-cfg.LookbackWindow:]
		}
		values := seriesValues(lookback)
		m := mean(values)
		sd := populationStdDev(values)
		if sd == 0 {
			continue
		}

		latest := points[len(points)-1].Avg
		z := (latest - m) / sd
		if math.Abs(z) <= cfg.Threshold {
			continue
		}

		direction := model.DirectionBelow
		if z > 0 {
			direction = model.DirectionAbove
		}
		zCopy := z
		alerts = append(alerts, model.Alert{
			ID:        fmt.Sprintf("anomaly-zscore-%s", metric),
			Type:      cfg.Severity,
			Title:     fmt.Sprintf("Unusual value for %s", metric),
			Message:   fmt.Sprintf("%s is %.2f standard deviations %s its recent mean (latest %.3f, mean %.3f)", metric, math.Abs(z), direction, latest, m),
			Timestamp: time.Now().UTC(),
			Category:  model.CategoryAnomaly,
			Method:    model.MethodZScore,
			Metric:    metric,
			Metadata: model.AlertMetadata{
				CurrentValue: latest,
				Threshold:    cfg.Threshold,
				Deviation:    latest - m,
				Direction:    direction,
				Unit:         "score",
				ZScore:       &zCopy,
			},
		})
	}
	return alerts
}

func seriesValues(points []model.MonitoringTrendData) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Avg
	}
	return values
}
