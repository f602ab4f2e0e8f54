package viz

import (
	"math"
	"sort"

	"github.com/ecisneros/cosmofig/internal/valley"
)

// Vec3 is a point in normalized surface coordinates: x along tau*H0,
// y along omega, z along variance.
type Vec3 struct {
	X, Y, Z float64
}

// Camera is an orthographic elevation/azimuth view of the unit surface
// box, matching the published figure's viewing angle by default.
type Camera struct {
	Elev float64 // degrees above the x/y plane
	Azim float64 // degrees around the vertical axis
	Zoom float64
}

func NewCamera() *Camera {
	return &Camera{Elev: 25, Azim: 135, Zoom: 1.0}
}

func (c *Camera) RotateUp(deg float64)    { c.Elev = clamp(c.Elev+deg, -89, 89) }
func (c *Camera) RotateRight(deg float64) { c.Azim = math.Mod(c.Azim+deg, 360) }
func (c *Camera) ZoomIn()                 { c.Zoom = math.Min(8, c.Zoom*1.2) }
func (c *Camera) ZoomOut()                { c.Zoom = math.Max(0.2, c.Zoom/1.2) }

// Project maps a normalized point to sub-pixel canvas coordinates,
// returning screen position and depth (larger depth is nearer).
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64) {
	az := c.Azim * math.Pi / 180
	el := c.Elev * math.Pi / 180

	ca, sa := math.Cos(az), math.Sin(az)
	x := p.X*ca + p.Y*sa
	y := -p.X*sa + p.Y*ca

	ce, se := math.Cos(el), math.Sin(el)
	sx := x
	sy := -y*se + p.Z*ce
	depth := y*ce + p.Z*se

	scale := c.Zoom * float64(min(sw, sh)) / 2.6
	px := int(sx*scale) + sw/2
	py := sh/2 - int(sy*scale)
	return px, py, depth
}

type edge struct {
	a, b  Vec3
	depth float64
}

// Surface holds a variance field normalized into the unit box together
// with the valley overlay curve.
type Surface struct {
	mesh  []edge
	curve []edge
}

// stride thins the mesh so an 80x80 grid stays legible on a terminal.
func stride(n int) int {
	s := n / 26
	if s < 1 {
		s = 1
	}
	return s
}

// NewSurface builds wireframe geometry from a sampled field. The valley
// curve is drawn as a separate edge set so callers can style it.
func NewSurface(f *valley.Field, curve []valley.CurvePoint) *Surface {
	cols, rows := f.Dims()
	lo, hi := f.Range()
	if hi == lo {
		hi = lo + 1
	}

	tau0, tau1 := f.Tau[0], f.Tau[cols-1]
	om0, om1 := f.Omega[0], f.Omega[rows-1]

	norm := func(tau, omega, v float64) Vec3 {
		return Vec3{
			X: 2*(tau-tau0)/(tau1-tau0) - 1,
			Y: 2*(omega-om0)/(om1-om0) - 1,
			Z: 0.9 * (v - lo) / (hi - lo),
		}
	}

	s := &Surface{}
	rs, cs := stride(rows), stride(cols)

	// row-direction edges
	for i := 0; i < rows; i += rs {
		for j := 0; j+cs < cols; j += cs {
			a := norm(f.Tau[j], f.Omega[i], f.Data[i][j])
			b := norm(f.Tau[j+cs], f.Omega[i], f.Data[i][j+cs])
			s.mesh = append(s.mesh, edge{a: a, b: b})
		}
	}
	// column-direction edges
	for j := 0; j < cols; j += cs {
		for i := 0; i+rs < rows; i += rs {
			a := norm(f.Tau[j], f.Omega[i], f.Data[i][j])
			b := norm(f.Tau[j], f.Omega[i+rs], f.Data[i+rs][j])
			s.mesh = append(s.mesh, edge{a: a, b: b})
		}
	}

	for i := 0; i+1 < len(curve); i++ {
		p, q := curve[i], curve[i+1]
		if p.Tau < tau0 || p.Tau > tau1 || p.Omega < om0 || p.Omega > om1 {
			continue
		}
		if q.Tau < tau0 || q.Tau > tau1 || q.Omega < om0 || q.Omega > om1 {
			continue
		}
		s.curve = append(s.curve, edge{
			a: norm(p.Tau, p.Omega, p.Variance),
			b: norm(q.Tau, q.Omega, q.Variance),
		})
	}
	return s
}

// Render draws the surface to the canvas, far edges first so near
// geometry overwrites. The valley curve is drawn last so it stays
// visible on top of the mesh.
func (s *Surface) Render(c *Canvas, cam *Camera) {
	sw, sh := c.Width*2, c.Height*4

	draw := func(edges []edge) {
		proj := make([]edge, len(edges))
		copy(proj, edges)
		for i := range proj {
			_, _, d1 := cam.Project(proj[i].a, sw, sh)
			_, _, d2 := cam.Project(proj[i].b, sw, sh)
			proj[i].depth = (d1 + d2) / 2
		}
		sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
		for _, e := range proj {
			x1, y1, _ := cam.Project(e.a, sw, sh)
			x2, y2, _ := cam.Project(e.b, sw, sh)
			c.Line(x1, y1, x2, y2)
		}
	}

	draw(s.mesh)
	draw(s.curve)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
