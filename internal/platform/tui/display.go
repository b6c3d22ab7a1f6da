package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/game"
)

// sender is the part of *tea.Program the display needs.
type sender interface {
	Send(msg tea.Msg)
}

// Display is an output driver that shows frames in the terminal emulator.
// Frames written before a program is attached are dropped.
type Display struct {
	mu      sync.Mutex
	program sender
	width   int
	height  int
}

// NewDisplay creates a display for the console's panel size.
func NewDisplay() *Display {
	return &Display{width: core.MatrixWidth, height: core.MatrixHeight}
}

// Attach connects the display to a running Bubble Tea program.
func (d *Display) Attach(p sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.program = p
}

// ReportRound forwards a finished round to the session tally. It is called
// from the engine task and returns without waiting for the UI loop.
func (d *Display) ReportRound(r game.RoundResult) {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()
	if p != nil {
		go p.Send(RoundMsg{Result: r})
	}
}

// Write implements the output driver contract. Pixels are in strip order.
func (d *Display) Write(pixels []core.RGB) error {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()
	if p == nil {
		return nil
	}

	f := core.NewFrame(d.width, d.height)
	for i, c := range pixels {
		f.SetIndex(i, c)
	}

	// Send blocks while the UI loop is busy; the sink mailbox keeps only
	// the newest frame meanwhile, so nothing queues up.
	p.Send(FrameMsg{Frame: f})
	return nil
}
