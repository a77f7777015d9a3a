package explorer

import (
	"github.com/atotto/clipboard"

	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/util"
)

// Pane identifies a list area of the view.
type Pane int

const (
	PaneAvatars Pane = iota
	PaneAuthors
	PaneCategories
	PaneMain
)

func (p Pane) String() string {
	switch p {
	case PaneAvatars:
		return "avatars"
	case PaneAuthors:
		return "authors"
	case PaneCategories:
		return "categories"
	default:
		return "main"
	}
}

// Renderer receives what the session wants shown. It never draws
// anything itself.
type Renderer interface {
	RenderRows(p Pane, rows []listing.Row)
	SetBreadcrumbText(text string)
	SetSearchResultText(text string)
}

// Effects performs fire-and-forget side effects.
type Effects interface {
	CopyText(text string) error
	OpenURL(url string) error
	OpenPath(path string) error
}

// SystemEffects uses the system clipboard and launcher.
type SystemEffects struct{}

func (SystemEffects) CopyText(text string) error { return clipboard.WriteAll(text) }
func (SystemEffects) OpenURL(url string) error   { return util.OpenPath(url) }
func (SystemEffects) OpenPath(path string) error { return util.OpenPath(path) }

type nopRenderer struct{}

func (nopRenderer) RenderRows(Pane, []listing.Row) {}
func (nopRenderer) SetBreadcrumbText(string)       {}
func (nopRenderer) SetSearchResultText(string)     {}

// Capture is a Renderer that keeps the latest output, for headless
// callers and tests.
type Capture struct {
	Rows       map[Pane][]listing.Row
	Breadcrumb string
	ResultText string
}

// NewCapture returns an empty Capture.
func NewCapture() *Capture {
	return &Capture{Rows: map[Pane][]listing.Row{}}
}

func (c *Capture) RenderRows(p Pane, rows []listing.Row) { c.Rows[p] = rows }
func (c *Capture) SetBreadcrumbText(text string)         { c.Breadcrumb = text }
func (c *Capture) SetSearchResultText(text string)       { c.ResultText = text }
