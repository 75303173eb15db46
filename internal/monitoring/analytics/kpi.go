package analytics

import (
	"fmt"
	"math"
	"strings"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// ComputeKPIs resolves each declarative KPI spec against the loaded cases.
// Resolution is a priority chain: built-in aggregate, numeric signal
// aggregation, boolean signal rate, then a placeholder. The first matching
// branch wins.
func ComputeKPIs(cases []model.SignalsCaseRecord, configs []model.SignalsKPIConfig) []model.SignalsKPIResult {
	results := make([]model.SignalsKPIResult, 0, len(configs))
	for _, kpi := range configs {
		results = append(results, computeKPI(cases, kpi))
	}
	return results
}

func computeKPI(cases []model.SignalsCaseRecord, kpi model.SignalsKPIConfig) model.SignalsKPIResult {
	result := model.SignalsKPIResult{
		ID:         kpi.ID,
		Label:      kpi.Label,
		TotalCases: len(cases),
		MetricName: titleCase(kpi.Metric),
	}

	switch {
	case kpi.Aggregate == model.AggregateTotalCases:
		result.RawValue = float64(len(cases))
		result.Value = formatLocale(result.RawValue)
		result.Sparkline = weeklyCaseCounts(cases)

	case kpi.Aggregate == model.AggregateAvgMessageCount:
		counts := make([]float64, 0, len(cases))
		for _, c := range cases {
			counts = append(counts, c.MessageCount)
		}
		result.RawValue = mean(finiteOnly(counts))
		result.Value = formatLocale(result.RawValue)
		result.Sparkline = weeklyNumericSparkline(cases, func(c model.SignalsCaseRecord) (float64, bool) {
			return c.MessageCount, true
		}, AggMean)

	case kpi.Metric != "" && kpi.Signal != "" && kpi.Aggregation != "":
		field := signalField(kpi.Metric, kpi.Signal)
		values := numericSignalValues(cases, field)
		result.RawValue = Aggregate(values, kpi.Aggregation)
		result.Value = formatValue(result.RawValue, kpi.Format)
		result.Sparkline = weeklyNumericSparkline(cases, func(c model.SignalsCaseRecord) (float64, bool) {
			return numericValue(c.Signals[field])
		}, kpi.Aggregation)

	case kpi.Metric != "" && kpi.Signal != "":
		field := signalField(kpi.Metric, kpi.Signal)
		trueCount := 0
		for _, c := range cases {
			if truthy(c.Signals[field]) {
				trueCount++
			}
		}
		asPercent := kpi.Format == model.FormatPercent
		if asPercent {
			var rate float64
			if len(cases) > 0 {
				rate = float64(trueCount) / float64(len(cases)) * 100
			}
			result.RawValue = rate
			result.Value = fmt.Sprintf("%.1f%%", rate)
		} else {
			result.RawValue = float64(trueCount)
			result.Value = formatLocale(result.RawValue)
		}
		result.Sparkline = weeklyBooleanSparkline(cases, field, asPercent)

	default:
		result.Value = "—"
	}

	return result
}

func signalField(metric, signal string) string {
	return metric + "__" + signal
}

// titleCase renders a metric key for display: underscores to spaces, first
// letter of each word upper-cased.
func titleCase(metric string) string {
	if metric == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(metric, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func numericSignalValues(cases []model.SignalsCaseRecord, field string) []float64 {
	values := make([]float64, 0, len(cases))
	for _, c := range cases {
		if v, ok := numericValue(c.Signals[field]); ok {
			values = append(values, v)
		}
	}
	return finiteOnly(values)
}

// numericValue coerces a dynamic signal value to a float64. Booleans and
// strings do not count as numbers here; the boolean-rate branch handles
// those.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// truthy mirrors the loose truthiness the upstream classifiers rely on:
// true booleans, non-zero finite numbers, non-empty strings other than
// "false"/"0", and non-empty arrays.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t) && !math.IsInf(t, 0)
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s != "" && s != "false" && s != "0"
	case []any:
		return len(t) > 0
	default:
		return false
	}
}

func weeklyCaseCounts(cases []model.SignalsCaseRecord) []model.SparklinePoint {
	buckets, keys := weekBuckets(caseTimestamps(cases))
	points := make([]model.SparklinePoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, model.SparklinePoint{Date: key, Value: float64(len(buckets[key]))})
	}
	return points
}

func weeklyNumericSparkline(cases []model.SignalsCaseRecord, extract func(model.SignalsCaseRecord) (float64, bool), method string) []model.SparklinePoint {
	buckets, keys := weekBuckets(caseTimestamps(cases))
	points := make([]model.SparklinePoint, 0, len(keys))
	for _, key := range keys {
		values := make([]float64, 0, len(buckets[key]))
		for _, idx := range buckets[key] {
			if v, ok := extract(cases[idx]); ok {
				values = append(values, v)
			}
		}
		points = append(points, model.SparklinePoint{Date: key, Value: Aggregate(finiteOnly(values), method)})
	}
	return points
}

func weeklyBooleanSparkline(cases []model.SignalsCaseRecord, field string, asPercent bool) []model.SparklinePoint {
	buckets, keys := weekBuckets(caseTimestamps(cases))
	points := make([]model.SparklinePoint, 0, len(keys))
	for _, key := range keys {
		trueCount := 0
		for _, idx := range buckets[key] {
			if truthy(cases[idx].Signals[field]) {
				trueCount++
			}
		}
		value := float64(trueCount)
		if asPercent && len(buckets[key]) > 0 {
			value = float64(trueCount) / float64(len(buckets[key])) * 100
		}
		points = append(points, model.SparklinePoint{Date: key, Value: value})
	}
	return points
}

func caseTimestamps(cases []model.SignalsCaseRecord) []string {
	timestamps := make([]string, len(cases))
	for i, c := range cases {
		timestamps[i] = c.Timestamp
	}
	return timestamps
}

// formatValue renders a numeric KPI for display. Percent values are stored
// in [0,1] and multiplied by 100 here, at presentation time only.
func formatValue(v float64, format string) string {
	switch format {
	case model.FormatPercent:
		return fmt.Sprintf("%.1f%%", v*100)
	case model.FormatDuration:
		return formatDuration(v)
	case model.FormatCompact:
		return formatCompact(v)
	default:
		return formatLocale(v)
	}
}

// formatDuration renders seconds as "H h M m", "M m S s" or "S s".
func formatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%d h %d m", h, m)
	case m > 0:
		return fmt.Sprintf("%d m %d s", m, s)
	default:
		return fmt.Sprintf("%d s", s)
	}
}

// formatCompact abbreviates large values with K/M suffixes.
func formatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return formatLocale(v)
	}
}

// formatLocale renders a number the way toLocaleString does with default
// options: thousands separators, at most three fraction digits, trailing
// zeros trimmed.
func formatLocale(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	neg := v < 0
	abs := math.Abs(v)
	rounded := math.Round(abs*1000) / 1000
	intPart := math.Trunc(rounded)
	frac := rounded - intPart

	intStr := groupThousands(fmt.Sprintf("%.0f", intPart))
	if frac > 0 {
		fracStr := strings.TrimRight(fmt.Sprintf("%.3f", frac)[2:], "0")
		if fracStr != "" {
			intStr += "." + fracStr
		}
	}
	if neg && intStr != "0" {
		intStr = "-" + intStr
	}
	return intStr
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
