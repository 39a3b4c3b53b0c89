package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/arpitban/ljmc/internal/mc"
)

const (
	canvasWidth     = 60
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps a Monte Carlo chain between frames and renders the x-y
// projection of the box next to the running unit-energy trace.
type Model struct {
	sim *mc.Simulator
	cfg mc.Config

	canvas        *Canvas
	stepsPerTick  int
	fps           int
	running       bool
	done          bool
	err           error
	energyHistory []float64
}

// NewModel assumes sim.Start(cfg) has already succeeded.
func NewModel(sim *mc.Simulator, cfg mc.Config, stepsPerTick, fps int) Model {
	if stepsPerTick < 1 {
		stepsPerTick = 1
	}
	if fps < 1 {
		fps = 30
	}
	return Model{
		sim:           sim,
		cfg:           cfg,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		stepsPerTick:  stepsPerTick,
		fps:           fps,
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			// reproducible replay: Start reseeds the source
			if err := m.sim.Start(m.cfg); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.energyHistory = m.energyHistory[:0]
			m.done = false
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < m.stepsPerTick && m.sim.StepCount() < m.cfg.Steps; i++ {
				if err := m.sim.Step(); err != nil {
					m.err = err
					return m, tea.Quit
				}
			}
			if m.sim.StepCount() >= m.cfg.Steps {
				m.done = true
			}
			m.energyHistory = append(m.energyHistory, m.sim.UnitEnergy())
			if len(m.energyHistory) > historyCapacity {
				m.energyHistory = m.energyHistory[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	b := m.sim.Box()

	m.canvas.Clear()
	points := make([][2]float64, 0, b.NumParticles())
	for _, c := range b.Coords {
		// x-y projection of the centered cell onto [0,1)^2
		points = append(points, [2]float64{
			c[0]/b.Length + 0.5,
			c[1]/b.Length + 0.5,
		})
	}
	m.canvas.Scatter(points)

	status := "running"
	if m.done {
		status = "done"
	} else if !m.running {
		status = "paused"
	}

	stats := headerStyle.Render("lennard-jones monte carlo") + "\n"
	stats += statRow("status", status)
	stats += statRow("particles", fmt.Sprintf("%d", b.NumParticles()))
	stats += statRow("step", fmt.Sprintf("%d / %d", m.sim.StepCount(), m.cfg.Steps))
	stats += statRow("unit energy", fmt.Sprintf("%.6f", m.sim.UnitEnergy()))
	stats += statRow("acceptance", fmt.Sprintf("%.3f", m.sim.Acceptance()))
	stats += statRow("max disp", fmt.Sprintf("%.4f", m.sim.MaxDisplacement()))
	stats += statRow("beta", fmt.Sprintf("%.4f", m.cfg.Beta))

	if len(m.energyHistory) > 1 {
		graph := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(6),
			asciigraph.Width(34),
			asciigraph.Caption("unit energy"),
		)
		stats += graphStyle.Render(graph)
	}
	stats += helpStyle.Render("space pause · r reset · q quit")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)
}

func statRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// Err reports a step or reset failure after the program exits.
func (m Model) Err() error { return m.err }
