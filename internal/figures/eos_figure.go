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

var curveColors = []color.Color{
	color.RGBA{A: 255},                 // black
	color.RGBA{B: 200, A: 255},         // blue
	color.RGBA{G: 150, A: 255},         // green
	color.RGBA{R: 200, A: 255},         // red
	color.RGBA{R: 150, B: 150, A: 255}, // purple
	color.RGBA{R: 200, G: 130, A: 255}, // orange
}

// EOSFigure renders w(z) for each configured amplitude. The A = 0 curve
// is the cosmological-constant baseline and is drawn dashed.
func (r *Renderer) EOSFigure(cfg config.EOSConfig) ([]string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Log-Oscillatory Dark Energy (omega=%.1f, z_tau=%.1f)", cfg.Omega, cfg.ZTau)
	p.X.Label.Text = "Redshift z"
	p.Y.Label.Text = "Equation of State w(z)"

	zs := cosmo.Linspace(0, cfg.ZMax, cfg.Samples)

	for i, amp := range cfg.Amplitudes {
		eos := cosmo.EquationOfState{
			Amplitude: amp,
			Omega:     cfg.Omega,
			Delta:     cfg.Delta,
			ZTau:      cfg.ZTau,
		}
		if err := eos.Validate(); err != nil {
			return nil, err
		}

		line, err := plotter.NewLine(xys(zs, eos.Eval(zs)))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = curveColors[i%len(curveColors)]

		label := fmt.Sprintf("A=%.2f", amp)
		if amp == 0 {
			label = "LCDM (A=0)"
			line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}

		p.Add(line)
		p.Legend.Add(label, line)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.X.Min, p.X.Max = 0, cfg.ZMax
	p.Y.Min, p.Y.Max = -1.04, -0.96

	return r.save(p, "figure1_wz_amplitudes", 7*vg.Inch, 4.5*vg.Inch)
}
