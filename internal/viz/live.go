package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coulomb/internal/charge"
	"github.com/san-kum/coulomb/internal/physics"
	"github.com/san-kum/coulomb/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600

	// trailWindow caps how many recorded positions are drawn per particle.
	// The recorder itself is unbounded; this only limits the view.
	trailWindow = 400
)

// worldCenter is the focal point of every built-in preset; the camera
// rotates around it.
var worldCenter = charge.Vec3{X: 5, Y: 5, Z: 5}

// WorldCenter returns the focal point of the built-in presets.
func WorldCenter() charge.Vec3 { return worldCenter }

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	runStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	pauseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea program driving the live view. It owns the frame
// timer; the simulation itself has none, each frame calls Advance exactly
// once while running.
type Model struct {
	sim           *sim.Simulation
	camera        *Camera
	canvas        *Canvas
	fps           int
	energyHistory []float64
	showEnergy    bool
	showHelp      bool
}

func NewModel(s *sim.Simulation, fps int) Model {
	return Model{
		sim:           s,
		camera:        NewCamera(),
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		fps:           fps,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.Running = !m.sim.Running
		case "r":
			m.reset(m.sim.PresetIndex())
		case "]":
			m.reset((m.sim.PresetIndex() + 1) % m.sim.PresetCount())
		case "[":
			m.reset((m.sim.PresetIndex() + m.sim.PresetCount() - 1) % m.sim.PresetCount())
		// The core accepts any positive dt; the view keeps the reference
		// slider's range.
		case "+", "=":
			m.sim.Dt = math.Min(0.01, m.sim.Dt*1.25)
		case "-":
			m.sim.Dt = math.Max(0.0005, m.sim.Dt/1.25)
		case "up", "k":
			m.camera.RotateX(-0.1)
		case "down", "j":
			m.camera.RotateX(0.1)
		case "left", "h":
			m.camera.RotateY(-0.1)
		case "right", "l":
			m.camera.RotateY(0.1)
		case "z":
			m.camera.ZoomIn()
		case "x":
			m.camera.ZoomOut()
		case "e":
			m.showEnergy = !m.showEnergy
		case "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if m.sim.Running {
			m.sim.Advance()
			m.energyHistory = append(m.energyHistory, physics.Energy(m.sim.Charges))
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) reset(presetIndex int) {
	running := m.sim.Running
	// Reset only fails on an out-of-range index; ours are always valid.
	_ = m.sim.Reset(presetIndex)
	m.sim.Running = running
	m.energyHistory = m.energyHistory[:0]
}

func (m Model) View() string {
	m.renderScene()

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(m.renderStats()),
	)

	help := "space pause · r reset · [/] preset · +/- dt · arrows rotate · z/x zoom · e energy · ? help · q quit"
	if m.showHelp {
		help = strings.Join([]string{
			"space    pause/resume",
			"r        reset current preset",
			"[ / ]    previous/next preset",
			"+ / -    increase/decrease time step",
			"arrows   rotate camera (hjkl also work)",
			"z / x    zoom in/out",
			"e        toggle energy graph",
			"q        quit",
		}, "\n")
	}

	return view + "\n" + helpStyle.Render(help)
}

func (m Model) renderScene() {
	m.canvas.Clear()
	sw, sh := canvasWidth*2, canvasHeight*4

	DrawBox(m.canvas, m.camera, 5)

	for i := range m.sim.Charges {
		traj := m.sim.Trajectories[i]
		start := 0
		if len(traj) > trailWindow {
			start = len(traj) - trailWindow
		}
		for _, p := range traj[start:] {
			if x, y, ok := m.camera.Project(p.Sub(worldCenter), sw, sh); ok {
				m.canvas.Set(x, y)
			}
		}

		c := m.sim.Charges[i]
		if x, y, ok := m.camera.Project(c.Pos.Sub(worldCenter), sw, sh); ok {
			if c.Active {
				m.canvas.Blob(x, y)
			} else {
				m.canvas.Set(x, y)
			}
		}
	}
}

func (m Model) renderStats() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("coulomb") + "\n")

	status := pauseStyle.Render("paused")
	if m.sim.Running {
		status = runStyle.Render("running")
	}

	p := m.sim.Preset()
	active := physics.ActiveCount(m.sim.Charges)

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	row("preset", fmt.Sprintf("%s (%d/%d)", p.Name, m.sim.PresetIndex()+1, m.sim.PresetCount()))
	row("status", status)
	row("step", fmt.Sprintf("%d", m.sim.Steps))
	row("time", fmt.Sprintf("%.3f s", m.sim.Time()))
	row("dt", fmt.Sprintf("%.4f s", m.sim.Dt))
	row("particles", fmt.Sprintf("%d active / %d", active, len(m.sim.Charges)))
	row("energy", fmt.Sprintf("%.6g J", physics.Energy(m.sim.Charges)))
	row("momentum", fmt.Sprintf("%.6g kg·u/s", physics.Momentum(m.sim.Charges).Length()))

	if m.showEnergy && len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption("total energy"),
		)
		b.WriteString(graphStyle.Render(graph))
	}

	return b.String()
}

// RunLive starts the interactive terminal view and blocks until quit.
func RunLive(s *sim.Simulation, fps int) error {
	p := tea.NewProgram(NewModel(s, fps))
	_, err := p.Run()
	return err
}
