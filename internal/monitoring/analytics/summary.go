package analytics

import (
	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// Summarize reduces raw records to the dataset-wide summary the threshold
// checks consume. Records without a score are excluded from the average and
// the pass rate; records without a latency are excluded from the p95. Scores
// stay in [0,1] here; rates are percentages.
func Summarize(records []model.MonitoringRecord) model.MonitoringSummary {
	summary := model.MonitoringSummary{TotalRecords: len(records)}
	if len(records) == 0 {
		return summary
	}

	passCutoff := model.DefaultQualityThresholds().Pass
	scores := make([]float64, 0, len(records))
	latencies := make([]float64, 0, len(records))
	passed := 0
	errored := 0
	for _, r := range records {
		if r.Score != nil && isFinite(*r.Score) {
			scores = append(scores, *r.Score)
			if *r.Score >= passCutoff {
				passed++
			}
		}
		if r.LatencyMs != nil && isFinite(*r.LatencyMs) {
			latencies = append(latencies, *r.LatencyMs)
		}
		if r.Error {
			errored++
		}
	}

	summary.AvgScore = mean(scores)
	if len(scores) > 0 {
		summary.PassRate = float64(passed) / float64(len(scores)) * 100
	}
	summary.ErrorRate = float64(errored) / float64(len(records)) * 100
	summary.P95LatencyMs = percentile(latencies, 0.95)
	return summary
}
