package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

func healthySummary() model.MonitoringSummary {
	return model.MonitoringSummary{
		TotalRecords: 100,
		AvgScore:     0.85,
		PassRate:     92,
		ErrorRate:    1,
		P95LatencyMs: 250,
	}
}

func TestThresholdAlertsEmptyDataset(t *testing.T) {
	summary := model.MonitoringSummary{TotalRecords: 0, AvgScore: 0, PassRate: 0}
	assert.Empty(t, GenerateThresholdAlerts(summary, model.DefaultQualityThresholds()))
}

func TestThresholdAlertsHealthySummary(t *testing.T) {
	assert.Empty(t, GenerateThresholdAlerts(healthySummary(), model.DefaultQualityThresholds()))
}

func TestAvgScoreBelowGood(t *testing.T) {
	summary := healthySummary()
	summary.AvgScore = 0.62
	alerts := GenerateThresholdAlerts(summary, model.DefaultQualityThresholds())
	require.Len(t, alerts, 1)

	alert := alerts[0]
	assert.Equal(t, "threshold-avg-score", alert.ID)
	assert.Equal(t, model.SeverityWarning, alert.Type)
	assert.Equal(t, model.CategoryThreshold, alert.Category)
	assert.Equal(t, model.MethodThreshold, alert.Method)
	assert.Equal(t, model.DirectionBelow, alert.Metadata.Direction)
	assert.InDelta(t, -0.08, alert.Metadata.Deviation, 1e-9)
	assert.Equal(t, 0.7, alert.Metadata.Threshold)
}

func TestPassRateUsesHardcodedFloor(t *testing.T) {
	summary := healthySummary()
	summary.PassRate = 65

	// The pass-rate floor is the literal 70, not thresholds.Pass.
	custom := model.QualityThresholds{Good: 0.7, Pass: 0.1}
	alerts := GenerateThresholdAlerts(summary, custom)
	require.Len(t, alerts, 1)
	assert.Equal(t, "threshold-pass-rate", alerts[0].ID)
	assert.Equal(t, model.SeverityError, alerts[0].Type)
	assert.Equal(t, 70.0, alerts[0].Metadata.Threshold)
	assert.InDelta(t, -5.0, alerts[0].Metadata.Deviation, 1e-9)
}

func TestErrorRateAndLatencyChecks(t *testing.T) {
	summary := healthySummary()
	summary.ErrorRate = 7.5
	summary.P95LatencyMs = 1800

	alerts := GenerateThresholdAlerts(summary, model.DefaultQualityThresholds())
	require.Len(t, alerts, 2)

	assert.Equal(t, "threshold-error-rate", alerts[0].ID)
	assert.Equal(t, model.SeverityError, alerts[0].Type)
	assert.Equal(t, model.DirectionAbove, alerts[0].Metadata.Direction)
	assert.Equal(t, "%", alerts[0].Metadata.Unit)

	assert.Equal(t, "threshold-p95-latency", alerts[1].ID)
	assert.Equal(t, model.SeverityWarning, alerts[1].Type)
	assert.Equal(t, "ms", alerts[1].Metadata.Unit)
	assert.InDelta(t, 800, alerts[1].Metadata.Deviation, 1e-9)
}

func TestAllChecksAreIndependent(t *testing.T) {
	summary := model.MonitoringSummary{
		TotalRecords: 10,
		AvgScore:     0.3,
		PassRate:     20,
		ErrorRate:    50,
		P95LatencyMs: 5000,
	}
	alerts := GenerateThresholdAlerts(summary, model.DefaultQualityThresholds())
	require.Len(t, alerts, 4)
	ids := make([]string, len(alerts))
	for i, a := range alerts {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"threshold-avg-score", "threshold-pass-rate", "threshold-error-rate", "threshold-p95-latency"}, ids)
}
