// Package storage persists Monte Carlo runs as directories: run
// metadata as json, the sampled energy series as csv, and the final
// configuration as xyz.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arpitban/ljmc/internal/geom"
	"github.com/arpitban/ljmc/internal/mc"
	"github.com/arpitban/ljmc/internal/xyz"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunParams are the physical and sampling parameters recorded with a
// run.
type RunParams struct {
	Particles       int     `json:"particles"`
	BoxLength       float64 `json:"box_length"`
	Cutoff          float64 `json:"cutoff"`
	Temperature     float64 `json:"temperature"`
	Steps           int     `json:"steps"`
	MaxDisplacement float64 `json:"max_displacement"`
	Seed            int64   `json:"seed"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Params    RunParams          `json:"params"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory <name>_<unix> under the base dir:
// metadata.json, energies.csv and final.xyz. Returns the run id.
func (s *Store) Save(name string, params RunParams, result *mc.Result, final []geom.Vec3) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Params:    params,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "energies.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "unit_energy"}); err != nil {
		return "", err
	}
	for i := range result.Energies {
		row := []string{
			strconv.Itoa(result.SampleSteps[i]),
			strconv.FormatFloat(result.Energies[i], 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	comment := fmt.Sprintf("final configuration of %s", runID)
	if err := xyz.WriteFile(filepath.Join(runDir, "final.xyz"), comment, final); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads the sampled energy series back from energies.csv.
func (s *Store) LoadSeries(runID string) (steps []int, energies []float64, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "energies.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		step, err := strconv.Atoi(records[i][0])
		if err != nil {
			continue
		}
		e, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		steps = append(steps, step)
		energies = append(energies, e)
	}
	return steps, energies, nil
}

// LoadFinal reads the final configuration snapshot.
func (s *Store) LoadFinal(runID string) ([]geom.Vec3, error) {
	return xyz.ReadFile(filepath.Join(s.baseDir, runID, "final.xyz"))
}
