package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the full-series json export of a run.
type ExportData struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Params   RunParams          `json:"params"`
	Samples  int                `json:"samples"`
	Steps    []int              `json:"steps"`
	Energies []float64          `json:"energies"`
	Metrics  map[string]float64 `json:"metrics"`
}

// ExportJSONTo writes the export document for a stored run to w.
func (s *Store) ExportJSONTo(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	steps, energies, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		ID:       meta.ID,
		Name:     meta.Name,
		Params:   meta.Params,
		Samples:  len(steps),
		Steps:    steps,
		Energies: energies,
		Metrics:  meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes the export document to a file.
func (s *Store) ExportJSON(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ExportJSONTo(file, runID)
}
