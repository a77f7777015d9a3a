package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/navigator"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// chromeLines are the header and footer lines around the panes.
	chromeLines = 4
	// detailsMinWidth is the terminal width needed for the details column.
	detailsMinWidth = 110
)

// paneBox returns the outer size of a pane, border included.
func (m Model) paneBox(p explorer.Pane) (width, height int) {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}
	body := h - chromeLines
	if body < 9 {
		body = 9
	}
	left := w / 4
	if left < 20 {
		left = 20
	}
	if p != explorer.PaneMain {
		return left, body / 3
	}
	return w - left - m.detailsWidth(), body
}

func (m Model) detailsWidth() int {
	if m.width < detailsMinWidth {
		return 0
	}
	return m.width / 4
}

func (m *Model) layout() {
	for i := range m.panes {
		w, h := m.paneBox(explorer.Pane(i))
		m.panes[i].SetSize(w-2, h-2)
	}
	if m.width > 6 {
		m.search.Width = m.width - 6
	}
}

func menuWidth(row listing.Row) int {
	w := 24
	for _, a := range row.Actions {
		if lw := lipgloss.Width(a.Label) + 6; lw > w {
			w = lw
		}
	}
	return w
}

func (m Model) paneView(p explorer.Pane) string {
	w, h := m.paneBox(p)
	style := StyleBorder
	if p == m.focus {
		style = StyleBorderFocused
	}
	return style.Width(w - 2).Height(h - 2).Render(m.panes[p].View())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseEdit && m.form != nil {
		if m.width <= 0 {
			return m.form.View()
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.paneView(explorer.PaneAvatars),
		m.paneView(explorer.PaneAuthors),
		m.paneView(explorer.PaneCategories),
	)
	columns := []string{left, m.paneView(explorer.PaneMain)}
	switch {
	case m.phase == phaseActions && m.menu != nil:
		columns = append(columns, m.menu.View())
	case m.detailsWidth() > 0:
		columns = append(columns, m.renderDetails(m.detailsWidth()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	crumb := m.breadcrumb
	if crumb == "" {
		crumb = "avex"
	}
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	line := StyleHeader.Render(truncateText(singleLine(crumb), width-2))

	var second string
	switch {
	case m.phase == phaseSearch:
		second = m.search.View()
	case m.resultText != "":
		second = StyleSubtitle.Render(m.resultText)
	default:
		second = StyleHelp.Render("/ to search")
	}
	return line + "\n" + second
}

func (m Model) renderStatus() string {
	var left string
	switch {
	case m.phase == phaseConfirmDelete && m.del != nil:
		left = StyleWarning.Render(m.deleteQuestion())
	case m.statusErr:
		left = StyleError.Render("✗ " + m.status)
	case m.status != "":
		left = StyleStatus.Render("✓ " + m.status)
	}
	if m.backupLabel == "" {
		return left
	}
	right := StyleHelp.Render(m.backupLabel)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) deleteQuestion() string {
	d := m.del
	switch d.step {
	case askSupported:
		return fmt.Sprintf("Remove it from the supported avatars of %d item(s)? (Y/n)", len(d.refs))
	case askGroups:
		return fmt.Sprintf("Remove it from common groups %s? (Y/n)", strings.Join(d.groups, ", "))
	default:
		return fmt.Sprintf("Delete %q? The folder on disk is kept. (y/N)", d.item.Title)
	}
}

func (m Model) renderFooter() string {
	return RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "↑/↓ navigate"},
		{Key: "", Label: "tab pane"},
		{Key: "", Label: "enter select"},
		{Key: "", Label: "⌫ back"},
		{Key: "/", Label: "/ search"},
		{Key: "", Label: "a actions"},
		{Key: "e", Label: "e edit"},
		{Key: "d", Label: "d delete"},
		{Key: "o", Label: "o open"},
		{Key: "c", Label: "c copy link"},
		{Key: "s", Label: "s sort"},
		{Key: "", Label: "L language"},
		{Key: "", Label: "q quit"},
	}, m.activeCmd)
}

// renderDetails describes the row selected in the main pane.
func (m Model) renderDetails(width int) string {
	style := lipgloss.NewStyle().Width(width).Padding(0, 1)
	ri, ok := m.panes[explorer.PaneMain].SelectedItem().(rowItem)
	if !ok {
		return style.Render("")
	}
	row := ri.row

	const labelWidth = 9
	maxText := width - 2 - labelWidth
	if maxText < 10 {
		maxText = 10
	}

	var s strings.Builder
	if img := m.thumbs.Render(row.Thumbnail); img != "" {
		s.WriteString(img)
		s.WriteString("\n\n")
	}
	s.WriteString(StyleHeader.Render(truncateText(singleLine(row.Title), width-2)))
	s.WriteString("\n")
	if row.Subtitle != "" {
		s.WriteString(StyleSubtitle.Render(truncateText(singleLine(row.Subtitle), width-2)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		s.WriteString(StyleHighlight.Render(fmt.Sprintf("%-*s", labelWidth, label)))
		s.WriteString(truncateText(value, maxText))
		s.WriteString("\n")
	}

	switch c := row.Command.(type) {
	case listing.SelectItem:
		m.itemDetails(field, c.Path)
	case listing.OpenSearchResult:
		m.itemDetails(field, c.Path)
	case listing.OpenFile:
		if fi, err := os.Stat(c.Path); err == nil {
			field("Size", formatBytes(fi.Size()))
		}
		field("Path", c.Path)
	}

	if n := len(row.Actions); n > 0 {
		s.WriteString("\n")
		s.WriteString(StyleHelp.Render(fmt.Sprintf("a: %d actions", n)))
	}
	return style.Render(s.String())
}

func (m Model) itemDetails(field func(label, value string), path string) {
	it, ok := m.session.Item(path)
	if !ok {
		return
	}
	field("Author", it.AuthorName)
	field("Category", navigator.CategoryName(it.Category(), m.session.Language()))
	if it.HasBoothID() {
		field("Booth", m.session.BoothURL(it.BoothID))
	}
	if n := len(it.SupportedAvatar); n > 0 {
		field("Avatars", fmt.Sprintf("%d", n))
	}
	field("Path", it.ItemPath)
}
