package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"

	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/tui/delegate"
	"github.com/blackwell-systems/avex/internal/tui/picker"
)

type actionItem struct {
	action listing.Action
}

func (a actionItem) FilterValue() string { return a.action.Label }

func renderAction(w io.Writer, m list.Model, index int, item list.Item) {
	ai, ok := item.(actionItem)
	if !ok {
		return
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+ai.action.Label))
		return
	}
	_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(ai.action.Label))
}

// newActionMenu builds the menu for a row's actions.
func newActionMenu(row listing.Row) *picker.Menu {
	items := make([]list.Item, len(row.Actions))
	for i, a := range row.Actions {
		items[i] = actionItem{action: a}
	}

	l := list.New(items, delegate.New(renderAction), 0, 0)
	l.Title = truncateText(singleLine(row.Title), 40)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = StyleHeader

	keys := NewPickerKeys()
	return picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		BorderStyle: StyleBorderFocused.Padding(0, 1),
	})
}

// chosenAction returns the highlighted action of a menu.
func chosenAction(m *picker.Menu) (listing.Action, bool) {
	ai, ok := m.SelectedItem().(actionItem)
	if !ok {
		return listing.Action{}, false
	}
	return ai.action, true
}
