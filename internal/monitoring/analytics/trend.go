package analytics

import (
	"sort"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// BuildTrend rolls raw records up into per-(day, metric) trend points, the
// series form the detectors and the trends view consume. Records without a
// parseable timestamp or a score are dropped. Points come back sorted by
// timestamp, then metric.
func BuildTrend(records []model.MonitoringRecord) []model.MonitoringTrendData {
	type bucket struct {
		day    string
		metric string
		scores []float64
	}
	buckets := make(map[string]*bucket)
	for _, r := range records {
		if r.Score == nil {
			continue
		}
		t, ok := parseTimestamp(r.Timestamp)
		if !ok {
			continue
		}
		day := t.Format(dayKeyLayout)
		key := day + "|" + r.Metric
		b, exists := buckets[key]
		if !exists {
			b = &bucket{day: day, metric: r.Metric}
			buckets[key] = b
		}
		b.scores = append(b.scores, *r.Score)
	}

	points := make([]model.MonitoringTrendData, 0, len(buckets))
	for _, b := range buckets {
		scores := finiteOnly(b.scores)
		if len(scores) == 0 {
			continue
		}
		points = append(points, model.MonitoringTrendData{
			Timestamp: b.day,
			Metric:    b.metric,
			Avg:       mean(scores),
			P50:       percentile(scores, 0.50),
			P95:       percentile(scores, 0.95),
			P99:       percentile(scores, 0.99),
			Count:     len(scores),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Timestamp != points[j].Timestamp {
			return points[i].Timestamp < points[j].Timestamp
		}
		return points[i].Metric < points[j].Metric
	})
	return points
}
