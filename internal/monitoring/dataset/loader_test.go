package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataFile(t *testing.T) {
	path := writeFile(t, "data.json", `{
		"records": [
			{"metric": "faithfulness", "score": 0.9, "timestamp": "2025-03-03T09:00:00Z"},
			{"metric": "faithfulness", "timestamp": "2025-03-04T09:00:00Z", "error": true}
		],
		"cases": [
			{"id": "c1", "timestamp": "2025-03-03T10:00:00Z", "signals": {"safety__flagged": true}}
		]
	}`)

	df, err := LoadDataFile(path)
	require.NoError(t, err)
	require.Len(t, df.Records, 2)
	require.NotNil(t, df.Records[0].Score)
	assert.Equal(t, 0.9, *df.Records[0].Score)
	assert.Nil(t, df.Records[1].Score)
	assert.True(t, df.Records[1].Error)
	require.Len(t, df.Cases, 1)
	assert.Equal(t, true, df.Cases[0].Signals["safety__flagged"])
}

func TestLoadDataFileErrors(t *testing.T) {
	_, err := LoadDataFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeFile(t, "bad.json", "{not json")
	_, err = LoadDataFile(path)
	assert.Error(t, err)
}

func TestLoadKPIFileYAML(t *testing.T) {
	path := writeFile(t, "kpis.yaml", `
kpis:
  - id: total
    label: Total Cases
    aggregate: total_cases
  - id: faith
    metric: faithfulness
    signal: score
    aggregation: mean
    format: percent
`)
	kf, err := LoadKPIFile(path)
	require.NoError(t, err)
	require.Len(t, kf.KPIs, 2)
	assert.Equal(t, "total_cases", kf.KPIs[0].Aggregate)
	assert.Equal(t, "faithfulness", kf.KPIs[1].Metric)
	assert.Equal(t, "percent", kf.KPIs[1].Format)
}

func TestLoadKPIFileJSON(t *testing.T) {
	path := writeFile(t, "kpis.json", `{"kpis":[{"id":"total","aggregate":"total_cases"}]}`)
	kf, err := LoadKPIFile(path)
	require.NoError(t, err)
	require.Len(t, kf.KPIs, 1)
}

func TestLoadIntoStore(t *testing.T) {
	dataPath := writeFile(t, "data.json", `{"records":[{"metric":"m","timestamp":"2025-03-03"}]}`)
	kpiPath := writeFile(t, "kpis.yaml", "kpis:\n  - id: total\n    aggregate: total_cases\n")

	store := NewStore()
	require.NoError(t, LoadIntoStore(store, dataPath, kpiPath))

	snap := store.Snapshot()
	assert.Len(t, snap.Records, 1)
	assert.Len(t, snap.KPIConfigs, 1)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Snapshot().Records)

	store.Replace(Snapshot{})
	first := store.Snapshot().LoadedAt
	store.Replace(Snapshot{})
	assert.False(t, store.Snapshot().LoadedAt.Before(first))
}
