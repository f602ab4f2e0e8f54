package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ecisneros/cosmofig/internal/valley"
)

// FieldCSV writes the variance matrix with a tau*H0 header row and an
// omega label column, so the file round-trips through spreadsheet tools
// without losing the axes.
func FieldCSV(w io.Writer, f *valley.Field) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(f.Tau)+1)
	header = append(header, "omega\\tau_h0")
	for _, t := range f.Tau {
		header = append(header, strconv.FormatFloat(t, 'f', 6, 64))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, omega := range f.Omega {
		row := make([]string, 0, len(f.Tau)+1)
		row = append(row, strconv.FormatFloat(omega, 'f', 6, 64))
		for _, v := range f.Data[i] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// FieldData is the JSON export shape for a sampled variance surface,
// including enough provenance to regenerate it.
type FieldData struct {
	Seed         int64       `json:"seed"`
	ValleyCenter float64     `json:"valley_center"`
	ValleyWidth  float64     `json:"valley_width"`
	BaseVariance float64     `json:"base_variance"`
	ValleyDepth  float64     `json:"valley_depth"`
	Tau          []float64   `json:"tau_h0"`
	Omega        []float64   `json:"omega"`
	Variance     [][]float64 `json:"variance"`
}

// FieldJSON writes the field and its generating parameters as indented JSON.
func FieldJSON(w io.Writer, f *valley.Field, a *valley.Attractor, seed int64) error {
	data := FieldData{
		Seed:         seed,
		ValleyCenter: a.ValleyCenter,
		ValleyWidth:  a.ValleyWidth,
		BaseVariance: a.BaseVariance,
		ValleyDepth:  a.ValleyDepth,
		Tau:          f.Tau,
		Omega:        f.Omega,
		Variance:     f.Data,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
