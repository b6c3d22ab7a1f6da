// Package tui provides the Bubble Tea front-end for the console: a key
// source feeding the input decoder and an on-screen LED matrix emulator.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusInterval is how often the frame rate readout refreshes.
const statusInterval = time.Second

// TickMsg is sent to refresh the status line.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
