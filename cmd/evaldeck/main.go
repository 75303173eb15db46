package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evaldeck/evaldeck/internal/config"
	"github.com/evaldeck/evaldeck/internal/middleware"
	monitoringapi "github.com/evaldeck/evaldeck/internal/monitoring/api"
	"github.com/evaldeck/evaldeck/internal/monitoring/dataset"
)

func main() {
	// load config first
	log.Info().Msg("Starting evaldeck api server")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// configure log level from config
	switch strings.ToLower(cfg.Logging.Level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	store := dataset.NewStore()
	if cfg.Dataset.DataFile != "" || cfg.Dataset.KPIFile != "" {
		if err := dataset.LoadIntoStore(store, cfg.Dataset.DataFile, cfg.Dataset.KPIFile); err != nil {
			log.Error().Err(err).Msg("initial dataset load failed; serving empty dataset")
		} else {
			snap := store.Snapshot()
			log.Info().Int("records", len(snap.Records)).Int("cases", len(snap.Cases)).
				Int("kpis", len(snap.KPIConfigs)).Msg("dataset loaded")
		}
	} else {
		log.Warn().Msg("no dataset files configured; serving empty dataset")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Authentication)
	router.Use(middleware.RequestID)
	router.Use(middleware.Metrics)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	monitoringapi.NewApi(router, store, cfg)

	log.Info().Str("addr", cfg.Server.BindAddr).Msg("listening")
	if err := router.Run(cfg.Server.BindAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
