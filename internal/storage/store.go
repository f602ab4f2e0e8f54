package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ecisneros/cosmofig/internal/export"
	"github.com/ecisneros/cosmofig/internal/valley"
)

// Store keeps one directory per evaluated grid: metadata.json with the
// run's provenance and variance.csv with the sampled surface.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	GridRows    int       `json:"grid_rows"`
	GridCols    int       `json:"grid_cols"`
	TauMin      float64   `json:"tau_min"`
	TauMax      float64   `json:"tau_max"`
	OmegaMin    float64   `json:"omega_min"`
	OmegaMax    float64   `json:"omega_max"`
	MinTau      float64   `json:"min_tau"`
	MinOmega    float64   `json:"min_omega"`
	MinVariance float64   `json:"min_variance"`
}

func (s *Store) Save(f *valley.Field, seed int64) (string, error) {
	runID := fmt.Sprintf("grid_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	cols, rows := f.Dims()
	minTau, minOmega, minVar := f.Min()

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Seed:        seed,
		GridRows:    rows,
		GridCols:    cols,
		TauMin:      f.Tau[0],
		TauMax:      f.Tau[cols-1],
		OmegaMin:    f.Omega[0],
		OmegaMax:    f.Omega[rows-1],
		MinTau:      minTau,
		MinOmega:    minOmega,
		MinVariance: minVar,
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

	csvFile, err := os.Create(filepath.Join(runDir, "variance.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.FieldCSV(csvFile, f); err != nil {
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

// LoadField reads variance.csv back into a Field. The header row carries
// the tau axis and the first column the omega axis.
func (s *Store) LoadField(runID string) (*valley.Field, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "variance.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("storage: run %s has no grid data", runID)
	}

	tau := make([]float64, 0, len(records[0])-1)
	for _, cell := range records[0][1:] {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, err
		}
		tau = append(tau, v)
	}

	omega := make([]float64, 0, len(records)-1)
	data := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(tau)+1 {
			return nil, fmt.Errorf("storage: run %s has a ragged grid row", runID)
		}
		w, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, err
		}
		omega = append(omega, w)

		row := make([]float64, 0, len(tau))
		for _, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		data = append(data, row)
	}

	return &valley.Field{Tau: tau, Omega: omega, Data: data}, nil
}
