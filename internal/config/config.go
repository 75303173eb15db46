package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

type Config struct {
	Server     ServerConfig     `json:"server"`
	Logging    LoggingConfig    `json:"logging"`
	Dataset    DatasetConfig    `json:"dataset"`
	Monitoring MonitoringConfig `json:"monitoring"`
}

type ServerConfig struct {
	BindAddr string `json:"bindAddr"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

type DatasetConfig struct {
	DataFile string `json:"dataFile"` // JSON export with records and cases
	KPIFile  string `json:"kpiFile"`  // YAML/JSON KPI definitions
}

type MonitoringConfig struct {
	Anomaly    model.AnomalyDetectionConfig `json:"anomaly"`
	Thresholds model.QualityThresholds      `json:"thresholds"`
}

func Load() (*Config, error) {
	configFile := flag.String("f", "", "Path to configuration file")
	flag.Parse()

	cfg := &Config{
		Server: ServerConfig{
			BindAddr: getEnv("SERVER_BIND_ADDR", "0.0.0.0:8080"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
		},
		Dataset: DatasetConfig{
			DataFile: getEnv("DATASET_FILE", ""),
			KPIFile:  getEnv("KPI_CONFIG_FILE", ""),
		},
		Monitoring: MonitoringConfig{
			Anomaly:    model.DefaultAnomalyDetectionConfig(),
			Thresholds: model.DefaultQualityThresholds(),
		},
	}
	if getEnvBool("ANOMALY_DETECTION_ENABLED", false) {
		cfg.Monitoring.Anomaly.Enabled = true
	}
	if v := getEnvInt("ANOMALY_MIN_DATA_POINTS", 0); v > 0 {
		cfg.Monitoring.Anomaly.MinDataPoints = v
	}

	if *configFile != "" {
		if err := loadFromFile(cfg, *configFile); err != nil {
			log.Err(err)
			return nil, err
		}
	}

	// fill reasonable defaults when fields omitted in file
	if cfg.Server.BindAddr == "" {
		cfg.Server.BindAddr = "0.0.0.0:8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "debug"
	}
	if cfg.Monitoring.Anomaly.MinDataPoints == 0 {
		cfg.Monitoring.Anomaly.MinDataPoints = 5
	}
	if cfg.Monitoring.Thresholds.Good == 0 {
		cfg.Monitoring.Thresholds.Good = 0.7
	}
	if cfg.Monitoring.Thresholds.Pass == 0 {
		cfg.Monitoring.Thresholds.Pass = 0.5
	}

	return cfg, nil
}

func loadFromFile(cfg *Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
