package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/evaldeck/evaldeck/internal/monitoring/analytics"
	"github.com/evaldeck/evaldeck/internal/monitoring/dataset"
	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

func (api *Api) Healthz(c *gin.Context) {
	snap := api.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"records":  len(snap.Records),
		"cases":    len(snap.Cases),
		"loadedAt": snap.LoadedAt,
	})
}

// GetSummary returns the dataset-wide quality summary (GET /v1/monitoring/summary).
func (api *Api) GetSummary(c *gin.Context) {
	snap := api.store.Snapshot()
	c.JSON(http.StatusOK, analytics.Summarize(snap.Records))
}

// GetTrends returns per-(day, metric) trend points, optionally filtered by
// ?metric= (GET /v1/monitoring/trends).
func (api *Api) GetTrends(c *gin.Context) {
	snap := api.store.Snapshot()
	points := analytics.BuildTrend(snap.Records)
	if metric := c.Query("metric"); metric != "" {
		filtered := make([]model.MonitoringTrendData, 0, len(points))
		for _, p := range points {
			if p.Metric == metric {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}
	c.JSON(http.StatusOK, gin.H{"items": points})
}

// GetAlerts recomputes threshold and anomaly alerts over the current
// snapshot (GET /v1/monitoring/alerts). Threshold alerts come first.
func (api *Api) GetAlerts(c *gin.Context) {
	snap := api.store.Snapshot()

	summary := analytics.Summarize(snap.Records)
	alerts := analytics.GenerateThresholdAlerts(summary, api.cfg.Monitoring.Thresholds)

	trend := analytics.BuildTrend(snap.Records)
	alerts = append(alerts, analytics.DetectAnomalies(trend, api.cfg.Monitoring.Anomaly)...)

	c.JSON(http.StatusOK, gin.H{"items": alerts})
}

// GetKPIs resolves the configured KPI specs against the loaded cases
// (GET /v1/monitoring/kpis).
func (api *Api) GetKPIs(c *gin.Context) {
	snap := api.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"items": analytics.ComputeKPIs(snap.Cases, snap.KPIConfigs)})
}

// Reload re-reads the configured dataset files and swaps the snapshot
// (POST /v1/monitoring/reload).
func (api *Api) Reload(c *gin.Context) {
	if err := dataset.LoadIntoStore(api.store, api.cfg.Dataset.DataFile, api.cfg.Dataset.KPIFile); err != nil {
		log.Error().Err(err).Msg("dataset reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "RELOAD_FAILED", "message": err.Error()}})
		return
	}
	snap := api.store.Snapshot()
	log.Info().Int("records", len(snap.Records)).Int("cases", len(snap.Cases)).Msg("dataset reloaded")
	c.JSON(http.StatusOK, gin.H{"records": len(snap.Records), "cases": len(snap.Cases), "loadedAt": snap.LoadedAt})
}
