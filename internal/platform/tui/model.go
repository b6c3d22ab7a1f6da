package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
	"github.com/vovakirdan/led-arcade/internal/input"
)

// KeySink receives raw key codes. *input.Decoder satisfies it.
type KeySink interface {
	Feed(code input.KeyCode) bool
}

// FrameMsg carries a frame from the output sink into the Bubble Tea loop.
type FrameMsg struct {
	Frame *core.Frame
}

// RoundMsg reports a finished round.
type RoundMsg struct {
	Result game.RoundResult
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)

// Model is the Bubble Tea model for the LED matrix emulator.
type Model struct {
	title string
	keys  KeyMap
	help  help.Model
	sink  KeySink

	frame    *core.Frame
	frames   int // Frames received since the last status tick
	fps      int
	lastKey  string
	tally    [4]int // Finished rounds by game.Outcome
	quitting bool
}

// NewModel creates a model forwarding key codes to sink.
func NewModel(title string, sink KeySink) Model {
	return Model{
		title: title,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		sink:  sink,
		frame: core.NewMatrixFrame(),
	}
}

// Init starts the status ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(statusInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		m.frames++
		return m, nil

	case RoundMsg:
		if o := msg.Result.Outcome; o.Decided() && int(o) < len(m.tally) {
			m.tally[o]++
		}
		return m, nil

	case TickMsg:
		m.fps = m.frames
		m.frames = 0
		return m, tickCmd(statusInterval)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if code, ok := KeyCode(msg); ok {
		m.lastKey = fmt.Sprintf("%s (0x%02X)", msg.String(), uint8(code))
		m.sink.Feed(code)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(RenderFrame(m.frame)))
	b.WriteString("\n")

	status := fmt.Sprintf("%d fps  |  P1 %d  P2 %d  draws %d", m.fps,
		m.tally[game.OutcomePlayerOne], m.tally[game.OutcomePlayerTwo], m.tally[game.OutcomeDraw])
	if m.lastKey != "" {
		status += "  |  last key " + m.lastKey
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Tally returns the number of rounds finished with outcome o this session.
func (m Model) Tally(o game.Outcome) int {
	if int(o) >= len(m.tally) {
		return 0
	}
	return m.tally[o]
}

// Frame returns the frame currently on screen.
func (m Model) Frame() *core.Frame {
	return m.frame
}

// NewProgram creates the emulator program and attaches it to display so
// frames written to the display reach the screen.
func NewProgram(title string, sink KeySink, display *Display) *tea.Program {
	p := tea.NewProgram(
		NewModel(title, sink),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithFPS(60),
	)
	display.Attach(p)
	return p
}
