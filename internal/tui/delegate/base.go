// Package delegate holds list delegates shared by the explorer panes.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc draws one list item. It receives the writer, list model,
// item index and the item itself.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Base is a list.ItemDelegate that only customises rendering.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// New creates a single-line delegate with no spacing.
func New(renderFn RenderFunc) Base {
	return Base{height: 1, renderFn: renderFn}
}

// NewMultiLine creates a delegate whose items take height lines and are
// separated by spacing blank lines. height is at least 1.
func NewMultiLine(renderFn RenderFunc, height, spacing int) Base {
	if height < 1 {
		height = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	return Base{height: height, spacing: spacing, renderFn: renderFn}
}

func (d Base) Height() int  { return d.height }
func (d Base) Spacing() int { return d.spacing }

func (d Base) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
