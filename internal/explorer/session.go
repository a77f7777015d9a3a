// Package explorer wires the store, navigator and list builder into a
// session driven by row commands.
package explorer

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/logging"
	"github.com/blackwell-systems/avex/internal/navigator"
)

// DefaultBoothURL is the store front used for item links.
const DefaultBoothURL = "https://booth.pm"

// ErrNoEditor is returned for commands that need an interactive editor
// when none is configured.
var ErrNoEditor = errors.New("no editor available")

// Editor is the interactive collaborator for edit and delete commands.
type Editor interface {
	// EditItem returns the edited item, or false when cancelled.
	EditItem(it catalog.Item) (catalog.Item, bool)
	// ConfirmDelete returns the repair choices, or false when cancelled.
	ConfirmDelete(it catalog.Item, referencedBy, groups []string) (catalog.DeleteOptions, bool)
}

// Session is one user's view over a store. All methods are safe to call
// from multiple goroutines; each mutation, its reference repair and the
// following re-render run under one lock.
type Session struct {
	mu sync.Mutex

	store   *catalog.Store
	backend catalog.Backend
	nav     *navigator.Navigator

	renderer Renderer
	effects  Effects
	editor   Editor
	log      *logrus.Entry

	lang     i18n.Lang
	sort     listing.SortKey
	boothURL string
}

// Option configures a Session.
type Option func(*Session)

func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

func WithEffects(e Effects) Option {
	return func(s *Session) { s.effects = e }
}

func WithEditor(e Editor) Option {
	return func(s *Session) { s.editor = e }
}

func WithLogger(l *logrus.Entry) Option {
	return func(s *Session) { s.log = l }
}

func WithLanguage(l i18n.Lang) Option {
	return func(s *Session) { s.lang = l }
}

func WithSort(k listing.SortKey) Option {
	return func(s *Session) { s.sort = k }
}

// WithFolderSource replaces the filesystem reader for item folders.
func WithFolderSource(src folder.Source) Option {
	return func(s *Session) { s.nav = navigator.New(src) }
}

// WithBoothURL overrides the store front base URL.
func WithBoothURL(u string) Option {
	return func(s *Session) {
		if u != "" {
			s.boothURL = strings.TrimRight(u, "/")
		}
	}
}

// New creates a session. backend may be nil for a read-only session.
func New(store *catalog.Store, backend catalog.Backend, opts ...Option) *Session {
	s := &Session{
		store:    store,
		backend:  backend,
		nav:      navigator.New(folder.DiskSource{}),
		renderer: nopRenderer{},
		effects:  SystemEffects{},
		log:      logging.Discard(),
		lang:     i18n.Default,
		sort:     listing.SortTitle,
		boothURL: DefaultBoothURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) builder() listing.Builder {
	return listing.Builder{Store: s.store, Tr: s.lang, Sort: s.sort}
}

// SetEditor replaces the interactive editor.
func (s *Session) SetEditor(e Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = e
}

// Language returns the session language.
func (s *Session) Language() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Sort returns the item order.
func (s *Session) Sort() listing.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// State returns the navigation path.
func (s *Session) State() navigator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.State()
}

// Window returns the list currently shown in the main pane.
func (s *Session) Window() navigator.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Window()
}

// Searching reports whether the search overlay is active.
func (s *Session) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.Searching()
}

// SearchText returns the raw text of the active search.
func (s *Session) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.SearchText()
}

// Item looks up an item by path.
func (s *Session) Item(path string) (catalog.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.ByPath(path)
}

// Snapshot returns copies of every collection.
func (s *Session) Snapshot() ([]catalog.Item, []catalog.CommonGroup, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Items(), s.store.Groups(), s.store.CustomCategories()
}

// BoothURL builds the store front link for a Booth item id.
func (s *Session) BoothURL(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boothLink(id)
}

func (s *Session) boothLink(id int) string {
	return fmt.Sprintf("%s/%s/items/%d", s.boothURL, s.lang.Code(), id)
}

// Refresh re-renders every pane, the breadcrumb and the result text.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh()
}

func (s *Session) refresh() {
	b := s.builder()
	s.renderer.RenderRows(PaneAvatars, b.Avatars())
	s.renderer.RenderRows(PaneAuthors, b.Authors())
	s.renderer.RenderRows(PaneCategories, b.RootCategories())
	s.renderMain()
}

// renderMain rebuilds the main pane for the current window, or reruns
// the active search.
func (s *Session) renderMain() {
	b := s.builder()
	if s.nav.Searching() {
		s.runSearch()
		return
	}
	state := s.nav.State()
	var rows []listing.Row
	switch s.nav.Window() {
	case navigator.ItemCategoryList:
		rows = b.Categories(state)
	case navigator.ItemList:
		rows = b.Items(state)
	case navigator.ItemFolderCategoryList:
		rows = b.FolderCategories(s.nav.FolderInfo())
	case navigator.ItemFolderItemsList:
		rows = b.FolderFiles(s.nav.FolderInfo(), state.Subfolder)
	}
	s.renderer.RenderRows(PaneMain, rows)
	s.renderer.SetBreadcrumbText(s.nav.Breadcrumb(s.lang))
	s.renderer.SetSearchResultText("")
}

func (s *Session) runSearch() {
	b := s.builder()
	f := s.nav.Filter()
	var rows []listing.Row
	var total int
	key := i18n.KeySearchResults
	if w := s.nav.Window(); w.InFolder() {
		key = i18n.KeyFolderSearchResults
		var files []folder.File
		if info := s.nav.FolderInfo(); info != nil {
			if w == navigator.ItemFolderItemsList {
				files = info.Files(s.nav.State().Subfolder)
			} else {
				files = info.AllFiles()
			}
		}
		rows, total = b.SearchFiles(files, f)
	} else {
		rows, total = b.SearchItems(f)
	}
	s.renderer.RenderRows(PaneMain, rows)
	s.renderer.SetBreadcrumbText(s.nav.Breadcrumb(s.lang))
	s.renderer.SetSearchResultText(fmt.Sprintf(s.lang.T(key), len(rows), total))
}

// Search runs a query. Blank text leaves search and re-renders the
// current depth.
func (s *Session) Search(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search(text)
}

func (s *Session) search(text string) {
	s.nav.Search(text)
	s.renderMain()
}

// Back steps up one level. navigator.ErrNothingToUndo means the path
// was already empty.
func (s *Session) Back() (navigator.BackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := s.nav.Back()
	if err != nil {
		return res, err
	}
	s.renderMain()
	return res, nil
}

// SetSort changes the item order and re-renders.
func (s *Session) SetSort(k listing.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = k
	s.refresh()
}

// SetLanguage changes the display language and re-renders.
func (s *Session) SetLanguage(l i18n.Lang) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = l
	s.refresh()
}
