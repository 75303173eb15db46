package analytics

import (
	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// DetectAnomalies runs every enabled detector over the trend data and
// concatenates their alerts in a fixed order: z-score, moving-average,
// rate-of-change. It returns an empty slice when detection is disabled or
// there is no data. Alert IDs are deterministic per (method, metric), so a
// recomputation replaces rather than duplicates an alert for the same cause.
func DetectAnomalies(trendData []model.MonitoringTrendData, cfg model.AnomalyDetectionConfig) []model.Alert {
	alerts := []model.Alert{}
	if !cfg.Enabled || len(trendData) == 0 {
		return alerts
	}

	grouped := GroupByMetric(trendData)

	if cfg.ZScore.Enabled {
		alerts = append(alerts, detectZScore(grouped, cfg.ZScore, cfg.MinDataPoints)...)
	}
	if cfg.MovingAverage.Enabled {
		alerts = append(alerts, detectMovingAverage(grouped, cfg.MovingAverage, cfg.MinDataPoints)...)
	}
	if cfg.RateOfChange.Enabled {
		alerts = append(alerts, detectRateOfChange(grouped, cfg.RateOfChange, cfg.MinDataPoints)...)
	}
	return alerts
}
