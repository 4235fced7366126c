package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/scenecore/internal/sim"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	historyCapacity = 300
	particleLimit   = 400
	frameInterval   = time.Second / 60
)

type viewMode int

const (
	viewCarousel viewMode = iota
	viewGraph
)

func (v viewMode) String() string {
	if v == viewGraph {
		return "graph"
	}
	return "carousel"
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Preview is a bubbletea model that renders a live session.
type Preview struct {
	session  *sim.Session
	dt       float64
	canvas   *Canvas
	wire     *Wireframe
	view     viewMode
	running  bool
	showHelp bool
	cursor   int

	last      sim.Frame
	residual  []float64
	rotation  []float64
	lastError error
}

func NewPreview(s *sim.Session, dt float64) Preview {
	if dt <= 0 {
		dt = frameInterval.Seconds()
	}
	return Preview{
		session:  s,
		dt:       dt,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		wire:     NewWireframe(),
		running:  true,
		cursor:   -1,
		residual: make([]float64, 0, historyCapacity),
		rotation: make([]float64, 0, historyCapacity),
	}
}

func (m Preview) Init() tea.Cmd {
	return tick()
}

func (m Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "left", "h":
			m.move(-1)
		case "right", "l":
			m.move(1)
		case "esc":
			m.cursor = -1
			m.lastError = m.session.Select(-1)
		case "tab":
			m.view = (m.view + 1) % 2
		case "+", "=":
			m.lastError = m.session.SetProjects(len(m.session.Cards()) + 1)
			m.cursor = -1
		case "-", "_":
			if n := len(m.session.Cards()); n > 0 {
				m.lastError = m.session.SetProjects(n - 1)
				m.cursor = -1
			}
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// move shifts the selection by dir, wrapping around the carousel.
func (m *Preview) move(dir int) {
	n := len(m.session.Cards())
	if n == 0 {
		return
	}
	if m.cursor < 0 {
		if dir > 0 {
			m.cursor = 0
		} else {
			m.cursor = n - 1
		}
	} else {
		m.cursor = ((m.cursor+dir)%n + n) % n
	}
	m.lastError = m.session.Select(m.cursor)
}

func (m *Preview) step() {
	m.last = m.session.Tick(m.dt)
	m.residual = appendCapped(m.residual, m.last.Pose.Position.Distance(m.last.Pose.Target))
	m.rotation = appendCapped(m.rotation, m.last.Pose.GroupRotation)
}

func appendCapped(s []float64, v float64) []float64 {
	if len(s) == historyCapacity {
		copy(s, s[1:])
		s = s[:len(s)-1]
	}
	return append(s, v)
}

// Draw renders the current view into the canvas.
func (m *Preview) Draw() {
	m.canvas.Clear()
	m.wire.Clear()

	var cam *Camera
	switch m.view {
	case viewGraph:
		g := m.session.Graph()
		GraphWireframe(m.wire, g)
		cam = OrbitCamera(m.session.Elapsed(), 3*m.session.Config().Scene.GraphRadius, 20)
	default:
		CarouselWireframe(m.wire, m.session.Cards(), m.last.Pose.GroupRotation, m.session.Selected())
		cam = NewCamera()
		if m.last.Index > 0 {
			cam.Follow(m.last.Pose)
		} else {
			cam.Follow(m.session.Rig().Pose())
		}
	}
	ParticleWireframe(m.wire, m.session.Particles(), particleLimit)
	Render3D(m.canvas, m.wire, cam)
}

func (m Preview) View() string {
	m.Draw()
	theme := CurrentTheme

	canvas := Panel.BorderForeground(theme.Muted).Render(m.canvas.String())

	report := m.session.Report()
	settings := m.session.Settings()

	var s strings.Builder
	s.WriteString(GradientText("SCENECORE", theme.Primary, theme.Secondary) + "  " + TierBadge(report.Tier) + "\n\n")
	s.WriteString(KeyValue("Renderer", short(report.Renderer, 28)) + "\n")
	s.WriteString(KeyValue("Context", renderVersion(report.RenderVersion)) + "\n")
	if !report.Supported {
		s.WriteString(KeyValue("Fallback", report.Reason) + "\n")
	}
	s.WriteString(KeyValue("Particles", settings.ParticleCount) + "\n")
	s.WriteString(KeyValue("Max FPS", settings.MaxFPS) + "\n")
	s.WriteString(KeyValue("Shadows", settings.Shadows) + "\n\n")

	s.WriteString(KeyValue("View", m.view) + "\n")
	s.WriteString(KeyValue("Cards", fmt.Sprintf("%d (%s)", len(m.session.Cards()), layoutName(m.session))) + "\n")
	s.WriteString(KeyValue("Selected", selection(m.session.Selected())) + "\n")
	s.WriteString(KeyValue("Time", fmt.Sprintf("%.2fs", m.session.Elapsed())) + "\n")
	if !m.running {
		s.WriteString(KeyValue("Status", "paused") + "\n")
	}
	if m.lastError != nil {
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Tiers[0]).Render(m.lastError.Error()) + "\n")
	}

	if chart := Plot("camera residual", m.residual, 30, 5); chart != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(chart) + "\n")
	}
	s.WriteString(Subtle.Render("rotation ") + Sparkline(m.rotation, 30) + "\n")

	s.WriteString("\n" + Separator(32) + "\n")
	s.WriteString(KeyHint.Render("←/→ select  esc overview  tab view\n+/- cards  space pause  t theme  q quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, Panel.BorderForeground(theme.Muted).Render(s.String()))
	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
  ←/h  →/l   select previous / next card
  esc        return to overview
  tab        switch carousel / graph view
  + / -      add or remove a card
  space      pause
  t          cycle themes
  ?          toggle this help
  q          quit
`

func layoutName(s *sim.Session) string {
	if s.Rig().Spiral() {
		return "spiral"
	}
	return "ring"
}

func selection(k int) string {
	if k < 0 {
		return "overview"
	}
	return fmt.Sprintf("#%d", k)
}

func renderVersion(v int) string {
	if v == 0 {
		return "none"
	}
	return fmt.Sprintf("v%d", v)
}

func short(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// Run starts the preview on the alternate screen.
func Run(s *sim.Session, dt float64) error {
	_, err := tea.NewProgram(NewPreview(s, dt), tea.WithAltScreen()).Run()
	return err
}
