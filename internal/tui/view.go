package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ecisneros/cosmofig/internal/valley"
	"github.com/ecisneros/cosmofig/internal/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)

// Model is the interactive variance-surface viewer: the sampled field
// rendered as a rotatable braille wireframe.
type Model struct {
	field   *valley.Field
	surface *viz.Surface
	camera  *viz.Camera
	seed    int64
	width   int
	height  int
}

func NewModel(f *valley.Field, a *valley.Attractor, seed int64) Model {
	curve := valley.ValleyCurve(a, a.ValleyCenter, 0.3, 4.0, 100)
	return Model{
		field:   f,
		surface: viz.NewSurface(f, curve),
		camera:  viz.NewCamera(),
		seed:    seed,
		width:   100,
		height:  30,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h", "left":
			m.camera.RotateRight(-10)
		case "l", "right":
			m.camera.RotateRight(10)
		case "k", "up":
			m.camera.RotateUp(5)
		case "j", "down":
			m.camera.RotateUp(-5)
		case "+", "=":
			m.camera.ZoomIn()
		case "-":
			m.camera.ZoomOut()
		case "r":
			m.camera = viz.NewCamera()
		}
	}
	return m, nil
}

func (m Model) View() string {
	cw := m.width - 2
	ch := m.height - 4
	if cw < 20 {
		cw = 20
	}
	if ch < 8 {
		ch = 8
	}

	canvas := viz.NewCanvas(cw, ch)
	m.surface.Render(canvas, m.camera)

	cols, rows := m.field.Dims()
	minTau, minOmega, minVar := m.field.Min()

	header := titleStyle.Render("resilience valley") + statusStyle.Render(
		fmt.Sprintf("  %dx%d grid  seed %d  elev %.0f azim %.0f",
			rows, cols, m.seed, m.camera.Elev, m.camera.Azim))
	status := statusStyle.Render("min variance ") +
		valueStyle.Render(fmt.Sprintf("%.4f", minVar)) +
		statusStyle.Render(fmt.Sprintf(" at tau*H0=%.2f omega=%.2f", minTau, minOmega))
	hints := hintStyle.Render("h/l rotate  j/k tilt  +/- zoom  r reset  q quit")

	return header + "\n" + canvas.String() + status + "\n" + hints
}

// Run starts the viewer and blocks until the user quits.
func Run(f *valley.Field, a *valley.Attractor, seed int64) error {
	p := tea.NewProgram(NewModel(f, a, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
