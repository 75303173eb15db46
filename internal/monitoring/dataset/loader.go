package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// DataFile is the on-disk shape of an exported dataset: raw monitoring
// records plus the signal cases the KPI pipeline reads.
type DataFile struct {
	Records []model.MonitoringRecord  `json:"records"`
	Cases   []model.SignalsCaseRecord `json:"cases"`
}

// KPIFile is the on-disk shape of the KPI definitions file.
type KPIFile struct {
	KPIs []model.SignalsKPIConfig `json:"kpis" yaml:"kpis"`
}

// LoadDataFile reads a JSON dataset export.
func LoadDataFile(path string) (*DataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file %s: %w", path, err)
	}
	var df DataFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse dataset file %s: %w", path, err)
	}
	return &df, nil
}

// LoadKPIFile reads KPI definitions from a YAML or JSON file, chosen by
// extension; anything that is not .json is parsed as YAML.
func LoadKPIFile(path string) (*KPIFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read kpi file %s: %w", path, err)
	}
	var kf KPIFile
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(data, &kf); err != nil {
			return nil, fmt.Errorf("parse kpi file %s: %w", path, err)
		}
		return &kf, nil
	}
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse kpi file %s: %w", path, err)
	}
	return &kf, nil
}

// LoadIntoStore loads the configured files and swaps them into the store.
// Either path may be empty, leaving that part of the snapshot nil.
func LoadIntoStore(store *Store, dataPath, kpiPath string) error {
	var snap Snapshot
	if dataPath != "" {
		df, err := LoadDataFile(dataPath)
		if err != nil {
			return err
		}
		snap.Records = df.Records
		snap.Cases = df.Cases
	}
	if kpiPath != "" {
		kf, err := LoadKPIFile(kpiPath)
		if err != nil {
			return err
		}
		snap.KPIConfigs = kf.KPIs
	}
	store.Replace(snap)
	return nil
}
