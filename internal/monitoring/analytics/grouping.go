package analytics

import (
	"sort"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// GroupByMetric groups trend points by metric name, each group sorted
// ascending by parsed timestamp. Fresh slices are allocated; the input is
// never reordered. Points with unparseable timestamps sort first.
func GroupByMetric(points []model.MonitoringTrendData) map[string][]model.MonitoringTrendData {
	grouped := make(map[string][]model.MonitoringTrendData)
	for _, p := range points {
		grouped[p.Metric] = append(grouped[p.Metric], p)
	}
	for metric, series := range grouped {
		sorted := make([]model.MonitoringTrendData, len(series))
		copy(sorted, series)
		sort.SliceStable(sorted, func(i, j int) bool {
			ti, _ := parseTimestamp(sorted[i].Timestamp)
			tj, _ := parseTimestamp(sorted[j].Timestamp)
			return ti.Before(tj)
		})
		grouped[metric] = sorted
	}
	return grouped
}

// sortedMetricNames returns the map's keys in ascending order so detector
// output order does not depend on map iteration.
func sortedMetricNames(grouped map[string][]model.MonitoringTrendData) []string {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// metricSelected reports whether metric passes an allow-list; an empty list
// selects every metric.
func metricSelected(allow []string, metric string) bool {
	if len(allow) == 0 {
		return true
	}
	for _, m := range allow {
		if m == metric {
			return true
		}
	}
	return false
}
