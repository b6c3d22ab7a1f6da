package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// MenuKeyMap defines the key bindings of the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "8"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "2"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.VariantInfo
	cursor   int
	width    int
	keys     MenuKeyMap
	quitting bool
	selected *registry.VariantInfo // Set when user selects a variant
}

// NewMenuModel creates a picker over the registered variants, with the
// cursor on preselect if it is registered.
func NewMenuModel(preselect string) MenuModel {
	items := registry.List()
	m := MenuModel{items: items, keys: DefaultMenuKeyMap()}
	for i, it := range items {
		if it.ID == preselect {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.items)-1, 0))

	case key.Matches(msg, m.keys.Down):
		m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.items)-1, 0))

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  L E D   A R C A D E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s)", cursor, item.Title, item.ID)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(statusStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected variant, or nil if none was selected.
func (m MenuModel) Selected() *registry.VariantInfo {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu shows the picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunMenu(preselect string) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(preselect),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}
