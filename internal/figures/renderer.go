package figures

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renderer writes figures to an output directory, one file per format.
// Formats are gonum/plot save extensions: pdf, png, svg, eps, tif.
type Renderer struct {
	OutDir  string
	Formats []string
}

func NewRenderer(outDir string, formats []string) *Renderer {
	if len(formats) == 0 {
		formats = []string{"pdf", "png"}
	}
	return &Renderer{OutDir: outDir, Formats: formats}
}

func (r *Renderer) save(p *plot.Plot, name string, w, h vg.Length) ([]string, error) {
	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(r.Formats))
	for _, format := range r.Formats {
		path := filepath.Join(r.OutDir, fmt.Sprintf("%s.%s", name, format))
		if err := p.Save(w, h, path); err != nil {
			return paths, fmt.Errorf("figures: saving %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
