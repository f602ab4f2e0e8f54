package figures

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ecisneros/cosmofig/internal/config"
	"github.com/ecisneros/cosmofig/internal/cosmo"
	"github.com/ecisneros/cosmofig/internal/valley"
)

// EvaluateValley samples the variance surface for the configured grid.
// The generator is seeded here and consumed in a fixed traversal order,
// so the same seed always reproduces the published surface.
func EvaluateValley(cfg config.ValleyConfig, seed int64) (*valley.Field, *valley.Attractor, error) {
	a := valley.NewAttractor()
	if cfg.Amplitude != 0 {
		a.Amplitude = cfg.Amplitude
	}

	tau := cosmo.Linspace(cfg.TauMin, cfg.TauMax, cfg.GridSize)
	omega := cosmo.Linspace(cfg.OmegaMin, cfg.OmegaMax, cfg.GridSize)

	rng := rand.New(rand.NewSource(seed))
	f, err := valley.Evaluate(a, tau, omega, rng)
	if err != nil {
		return nil, nil, err
	}
	return f, a, nil
}

// ValleyFigure renders the variance surface as a heatmap with the
// optimal-coupling ridge tau*H0 * omega = 2 overlaid.
func (r *Renderer) ValleyFigure(f *valley.Field, a *valley.Attractor) ([]string, error) {
	p := plot.New()
	p.Title.Text = "Resilience Valley: Stability in (tau H0, omega) Space"
	p.X.Label.Text = "Memory Time tau H0"
	p.Y.Label.Text = "Frequency omega"

	hm := plotter.NewHeatMap(f, palette.Heat(16, 1))
	p.Add(hm)

	curve := valley.ValleyCurve(a, a.ValleyCenter, 0.3, 4.0, 100)
	pts := make(plotter.XYs, 0, len(curve))
	cols, rows := f.Dims()
	omegaMax := f.Omega[rows-1]
	for _, cp := range curve {
		if cp.Omega > omegaMax || cp.Omega < f.Omega[0] {
			continue
		}
		pts = append(pts, plotter.XY{X: cp.Tau, Y: cp.Omega})
	}

	ridge, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	ridge.LineStyle.Width = vg.Points(2.5)
	ridge.LineStyle.Color = color.RGBA{R: 220, A: 255}
	p.Add(ridge)
	p.Legend.Add("tau H0 * omega = 2 (optimal)", ridge)
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Min, p.X.Max = f.Tau[0], f.Tau[cols-1]
	p.Y.Min, p.Y.Max = f.Omega[0], omegaMax

	return r.save(p, "figure3_resilience_valley", 10*vg.Inch, 7*vg.Inch)
}
