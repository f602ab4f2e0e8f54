package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ecisneros/cosmofig/internal/config"
	"github.com/ecisneros/cosmofig/internal/cosmo"
)

// CutoffFigure renders the nominal suppression window S(z) plus the
// configured center variants, with the half-height reference line.
func (r *Renderer) CutoffFigure(cfg config.CutoffConfig) ([]string, error) {
	p := plot.New()
	p.Title.Text = "Geometric Noise Suppression Window"
	p.X.Label.Text = "Redshift z"
	p.Y.Label.Text = "Cutoff Function S(z)"

	zs := cosmo.Linspace(0, cfg.ZMax, cfg.Samples)

	nominal := cosmo.Cutoff{Center: cfg.Center, Width: cfg.Width}
	if err := nominal.Validate(); err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(xys(zs, nominal.Eval(zs)))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{B: 200, A: 255}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("z_c=%.1f, dz=%.1f", cfg.Center, cfg.Width), line)

	for i, center := range cfg.Variants {
		variant := cosmo.Cutoff{Center: center, Width: cfg.Width}
		vline, err := plotter.NewLine(xys(zs, variant.Eval(zs)))
		if err != nil {
			return nil, err
		}
		vline.LineStyle.Width = vg.Points(1)
		vline.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		vline.LineStyle.Color = curveColors[(i+2)%len(curveColors)]
		p.Add(vline)
		p.Legend.Add(fmt.Sprintf("z_c=%.1f", center), vline)
	}

	// half-height reference: S(z_c) = 0.5
	half, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0.5}, {X: cfg.ZMax, Y: 0.5}})
	if err != nil {
		return nil, err
	}
	half.LineStyle.Width = vg.Points(0.5)
	half.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	half.LineStyle.Color = color.Gray{Y: 128}
	p.Add(half)

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.X.Min, p.X.Max = 0, cfg.ZMax
	p.Y.Min, p.Y.Max = -0.05, 1.05

	return r.save(p, "figure2_cutoff_geometric", 7*vg.Inch, 4.5*vg.Inch)
}
