package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/tui/delegate"
)

// rowItem adapts a listing row to the bubbles list.
type rowItem struct {
	row listing.Row
}

func (r rowItem) FilterValue() string {
	return r.row.Title + " " + r.row.Subtitle
}

func toItems(rows []listing.Row) []list.Item {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = rowItem{row: r}
	}
	return items
}

// truncateText cuts s to maxWidth cells with an ellipsis.
func truncateText(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return "…"
	}
	return xansi.Truncate(s, maxWidth, "…")
}

// singleLine folds multi-line titles, such as avatar lists, onto one line.
func singleLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

// formatBytes formats bytes as human-readable size
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for n := n / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// renderRow draws a row as a title line and an optional subtitle line.
func renderRow(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(rowItem)
	if !ok {
		return
	}
	width := m.Width() - 2
	if width < 4 {
		width = 4
	}

	title := truncateText(singleLine(ri.row.Title), width)
	subtitle := truncateText(singleLine(ri.row.Subtitle), width)
	if len(ri.row.Actions) > 0 {
		title = truncateText(singleLine(ri.row.Title), width-2) + StyleHelp.Render(" …")
	}

	var s strings.Builder
	if index == m.Index() {
		s.WriteString(StyleHighlight.Render("› " + title))
	} else {
		s.WriteString("  " + StyleNormal.Render(title))
	}
	s.WriteString("\n  ")
	s.WriteString(StyleSubtitle.Render(subtitle))

	_, _ = fmt.Fprint(w, s.String())
}

func newPaneList(title string) list.Model {
	l := list.New(nil, delegate.NewMultiLine(renderRow, 2, 0), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	return l
}
