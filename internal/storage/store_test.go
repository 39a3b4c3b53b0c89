package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arpitban/ljmc/internal/geom"
	"github.com/arpitban/ljmc/internal/mc"
)

func sampleResult() *mc.Result {
	return &mc.Result{
		SampleSteps:     []int{100, 200, 300},
		Energies:        []float64{-2.51, -2.63, -2.70},
		Trials:          300,
		Accepts:         120,
		AcceptanceRate:  0.4,
		MaxDisplacement: 0.12,
		Metrics:         map[string]float64{"energy_mean": -2.613333333, "acceptance": 0.4},
	}
}

func sampleParams() RunParams {
	return RunParams{
		Particles: 2, BoxLength: 10, Cutoff: 3, Temperature: 0.9,
		Steps: 300, MaxDisplacement: 0.1, Seed: 42,
	}
}

func sampleFinal() []geom.Vec3 {
	return []geom.Vec3{{0.5, -1.25, 3}, {-4, 0, 2}}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("liquid", sampleParams(), sampleResult(), sampleFinal())
	require.NoError(t, err)
	assert.Contains(t, runID, "liquid_")

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, runID, meta.ID)
	assert.Equal(t, "liquid", meta.Name)
	assert.Equal(t, 2, meta.Params.Particles)
	assert.InDelta(t, 0.4, meta.Metrics["acceptance"], 1e-12)
}

func TestLoadSeries(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("run", sampleParams(), sampleResult(), sampleFinal())
	require.NoError(t, err)

	steps, energies, err := st.LoadSeries(runID)
	require.NoError(t, err)
	require.Equal(t, []int{100, 200, 300}, steps)
	require.Len(t, energies, 3)
	assert.InDelta(t, -2.51, energies[0], 1e-9)
	assert.InDelta(t, -2.70, energies[2], 1e-9)
}

func TestLoadFinal(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	final := sampleFinal()
	runID, err := st.Save("run", sampleParams(), sampleResult(), final)
	require.NoError(t, err)

	coords, err := st.LoadFinal(runID)
	require.NoError(t, err)
	require.Len(t, coords, len(final))
	for i := range final {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, final[i][k], coords[i][k], 1e-9)
		}
	}
}

func TestListEmptyAndPopulated(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, st.Init())
	_, err = st.Save("a", sampleParams(), sampleResult(), sampleFinal())
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("absent_0")
	assert.Error(t, err)
}

func TestExportJSONTo(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("export", sampleParams(), sampleResult(), sampleFinal())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportJSONTo(&buf, runID))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, runID, data.ID)
	assert.Equal(t, 3, data.Samples)
	assert.Equal(t, []int{100, 200, 300}, data.Steps)
	assert.InDelta(t, -2.63, data.Energies[1], 1e-9)
}
