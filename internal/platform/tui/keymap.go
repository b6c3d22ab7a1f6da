package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/input"
)

// KeyMap defines the console's key bindings.
//
// Terminals report keypad digits as plain digits, so the number row sends
// row-digit usage IDs and the letter block below emulates a physical keypad:
//
//	q w e     kp7 kp8 kp9
//	a s d  =  kp4 kp5 kp6
//	z x c     kp1 kp2 kp3
type KeyMap struct {
	Digits key.Binding
	Keypad key.Binding
	Arrows key.Binding
	Enter  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digits, k.Keypad, k.Enter, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Keypad, k.Arrows},
		{k.Enter, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Digits: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "cell (row digits)"),
		),
		Keypad: key.NewBinding(
			key.WithKeys("q", "w", "e", "a", "s", "d", "z", "x", "c"),
			key.WithHelp("qwe/asd/zxc", "cell (keypad)"),
		),
		Arrows: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "unused"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new round"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// keyCodes maps terminal key names to USB HID usage IDs.
var keyCodes = map[string]input.KeyCode{
	"1": input.KeyDigit1, "2": input.KeyDigit1 + 1, "3": input.KeyDigit1 + 2,
	"4": input.KeyDigit1 + 3, "5": input.KeyDigit1 + 4, "6": input.KeyDigit1 + 5,
	"7": input.KeyDigit1 + 6, "8": input.KeyDigit1 + 7, "9": input.KeyDigit9,

	"z": input.KeyKeypad1, "x": input.KeyKeypad1 + 1, "c": input.KeyKeypad1 + 2,
	"a": input.KeyKeypad1 + 3, "s": input.KeyKeypad1 + 4, "d": input.KeyKeypad1 + 5,
	"q": input.KeyKeypad1 + 6, "w": input.KeyKeypad1 + 7, "e": input.KeyKeypad9,

	"up":    input.KeyUp,
	"down":  input.KeyDown,
	"left":  input.KeyLeft,
	"right": input.KeyRight,
	"enter": input.KeyEnter,
}

// KeyCode translates a key message to the usage ID a USB keyboard would send.
func KeyCode(msg tea.KeyMsg) (input.KeyCode, bool) {
	code, ok := keyCodes[msg.String()]
	return code, ok
}
