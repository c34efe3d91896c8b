package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/KSPSnark/SteeringTweaker/internal/limiter"
	"github.com/KSPSnark/SteeringTweaker/internal/sim"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the drive interactively and plots the applied limiter.
type Model struct {
	runner  *sim.Runner
	dt      float64
	t       float64
	running bool

	speedHistory   []float64
	percentHistory []float64
	lastErr        error
}

func NewModel(runner *sim.Runner, dt float64) Model {
	return Model{runner: runner, dt: dt, running: true}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()

	case tea.KeyMsg:
		rover := m.runner.Rover()
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "up":
			rover.Throttle = min(rover.Throttle+0.1, 1)
		case "down":
			rover.Throttle = max(rover.Throttle-0.1, -1)
		case "o":
			if rover.Situation == limiter.Orbiting {
				rover.Situation = limiter.Landed
			} else {
				rover.Situation = limiter.Orbiting
			}
		}
	}
	return m, nil
}

// step advances one display frame: a few physics ticks per frame keeps
// the simulation near real time at 30 fps.
func (m *Model) step() {
	ticksPerFrame := int(1.0 / 30.0 / m.dt)
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	for i := 0; i < ticksPerFrame; i++ {
		errs := m.runner.Tick(m.t, m.dt)
		if len(errs) > 0 {
			m.lastErr = errs[0]
		}
		m.t += m.dt
	}

	m.speedHistory = appendCapped(m.speedHistory, m.runner.Rover().Speed)
	percent := 0.0
	if bindings := m.runner.Bindings(); len(bindings) > 0 {
		percent = bindings[0].Setting().Resolve(m.runner.Rover().Situation, m.runner.Rover().Speed)
	}
	m.percentHistory = appendCapped(m.percentHistory, percent)
}

func appendCapped(history []float64, v float64) []float64 {
	history = append(history, v)
	if len(history) > historyCapacity {
		history = history[len(history)-historyCapacity:]
	}
	return history
}

func (m Model) View() string {
	var b strings.Builder

	title := "steering limiter — live drive"
	if !m.running {
		title += "  " + pausedStyle.Render("[paused]")
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	rover := m.runner.Rover()
	stats := []string{
		statLine("time", fmt.Sprintf("%.1f s", m.t)),
		statLine("speed", fmt.Sprintf("%.2f m/s", rover.Speed)),
		statLine("throttle", fmt.Sprintf("%.0f %%", rover.Throttle*100)),
		statLine("situation", rover.Situation.String()),
	}
	for _, binding := range m.runner.Bindings() {
		act := binding.Actuator()
		stats = append(stats, statLine(act.Name,
			fmt.Sprintf("range %.2f  response %.2f", act.SteerRange, act.SteerResponse)))
	}
	if m.lastErr != nil {
		stats = append(stats, statLine("error", m.lastErr.Error()))
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n")

	if len(m.percentHistory) > 1 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.percentHistory,
			asciigraph.Height(10),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("limiter %"),
		)))
		b.WriteString("\n")
	}
	if len(m.speedHistory) > 1 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(m.speedHistory,
			asciigraph.Height(8),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("speed m/s"),
		)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · ↑/↓ throttle · o orbit toggle · q quit"))
	return b.String()
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
