// Package picker provides a list overlay that runs inside a parent
// model instead of its own program.
package picker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Outcome says what a key press did to the menu.
type Outcome int

const (
	// Pending means the menu stays open.
	Pending Outcome = iota
	// Chosen means the selected item was confirmed.
	Chosen
	// Dismissed means the menu was closed without a choice.
	Dismissed
)

// Config configures a menu.
type Config struct {
	List list.Model

	QuitKeys   key.Binding
	SelectKeys key.Binding

	BorderStyle lipgloss.Style
}

// Menu is an embeddable picker. The parent forwards messages to Update
// while the menu is open and reads the outcome.
type Menu struct {
	config Config
	list   list.Model
}

// New creates a menu over cfg.List.
func New(cfg Config) *Menu {
	return &Menu{config: cfg, list: cfg.List}
}

// List returns the underlying list model for direct access.
func (m *Menu) List() *list.Model {
	return &m.list
}

// SelectedItem returns the highlighted item, or nil for an empty menu.
func (m *Menu) SelectedItem() list.Item {
	return m.list.SelectedItem()
}

// SetSize sizes the list inside the border.
func (m *Menu) SetSize(width, height int) {
	h, v := m.config.BorderStyle.GetFrameSize()
	m.list.SetSize(width-h, height-v)
}

// Update handles one message.
func (m *Menu) Update(msg tea.Msg) (Outcome, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.config.QuitKeys):
			return Dismissed, nil
		case key.Matches(km, m.config.SelectKeys):
			if m.list.SelectedItem() != nil {
				return Chosen, nil
			}
			return Pending, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return Pending, cmd
}

// View renders the menu in its border.
func (m *Menu) View() string {
	return m.config.BorderStyle.Render(m.list.View())
}
