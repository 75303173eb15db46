// Package api exposes the dashboard's read API. Handlers are thin: each
// request takes the current dataset snapshot, runs the pure analytics core
// over it, and returns the result verbatim.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/evaldeck/evaldeck/internal/config"
	"github.com/evaldeck/evaldeck/internal/monitoring/dataset"
)

type Api struct {
	store *dataset.Store
	cfg   *config.Config
}

func NewApi(router *gin.Engine, store *dataset.Store, cfg *config.Config) *Api {
	api := &Api{store: store, cfg: cfg}
	api.setupRouters(router)
	return api
}

func (api *Api) setupRouters(router *gin.Engine) {
	router.GET("/healthz", api.Healthz)
	router.GET("/v1/monitoring/summary", api.GetSummary)
	router.GET("/v1/monitoring/trends", api.GetTrends)
	router.GET("/v1/monitoring/alerts", api.GetAlerts)
	router.GET("/v1/monitoring/kpis", api.GetKPIs)
	router.POST("/v1/monitoring/reload", api.Reload)
}
