package model

// ZScoreConfig configures the z-score detector. Metrics empty means the
// detector applies to every metric.
type ZScoreConfig struct {
	Enabled        bool     `json:"enabled" yaml:"enabled"`
	Threshold      float64  `json:"threshold" yaml:"threshold"`
	Severity       string   `json:"severity" yaml:"severity"`
	LookbackWindow int      `json:"lookback_window" yaml:"lookback_window"` // 0 means all points
	Metrics        []string `json:"metrics" yaml:"metrics"`
}

// MovingAverageConfig configures the moving-average detector.
type MovingAverageConfig struct {
	Enabled            bool     `json:"enabled" yaml:"enabled"`
	WindowSize         int      `json:"window_size" yaml:"window_size"`
	DeviationThreshold float64  `json:"deviation_threshold" yaml:"deviation_threshold"`
	Severity           string   `json:"severity" yaml:"severity"`
	Metrics            []string `json:"metrics" yaml:"metrics"`
}

// RateOfChangeConfig configures the rate-of-change detector.
type RateOfChangeConfig struct {
	Enabled   bool     `json:"enabled" yaml:"enabled"`
	Threshold float64  `json:"threshold" yaml:"threshold"`
	Severity  string   `json:"severity" yaml:"severity"`
	Metrics   []string `json:"metrics" yaml:"metrics"`
}

// AnomalyDetectionConfig is the top-level anomaly gate plus one sub-config
// per detector.
type AnomalyDetectionConfig struct {
	Enabled       bool                `json:"enabled" yaml:"enabled"`
	MinDataPoints int                 `json:"min_data_points" yaml:"min_data_points"`
	ZScore        ZScoreConfig        `json:"z_score" yaml:"z_score"`
	MovingAverage MovingAverageConfig `json:"moving_average" yaml:"moving_average"`
	RateOfChange  RateOfChangeConfig  `json:"rate_of_change" yaml:"rate_of_change"`
}

// DefaultAnomalyDetectionConfig returns the documented defaults. Detection
// as a whole ships disabled; each method is pre-enabled so flipping the top
// gate activates all three.
func DefaultAnomalyDetectionConfig() AnomalyDetectionConfig {
	return AnomalyDetectionConfig{
		Enabled:       false,
		MinDataPoints: 5,
		ZScore: ZScoreConfig{
			Enabled:        true,
			Threshold:      2.0,
			Severity:       SeverityWarning,
			LookbackWindow: 20,
			Metrics:        []string{},
		},
		MovingAverage: MovingAverageConfig{
			Enabled:            true,
			WindowSize:         5,
			DeviationThreshold: 0.15,
			Severity:           SeverityWarning,
			Metrics:            []string{},
		},
		RateOfChange: RateOfChangeConfig{
			Enabled:   true,
			Threshold: 0.3,
			Severity:  SeverityError,
			Metrics:   []string{},
		},
	}
}

// QualityThresholds are the fixed score cutoffs for threshold alerts.
type QualityThresholds struct {
	Good float64 `json:"good" yaml:"good"`
	Pass float64 `json:"pass" yaml:"pass"`
}

// DefaultQualityThresholds returns the standard good/pass cutoffs.
func DefaultQualityThresholds() QualityThresholds {
	return QualityThresholds{Good: 0.7, Pass: 0.5}
}
