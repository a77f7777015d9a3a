package navigator

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/query"
)

var (
	// ErrNothingToUndo is returned by Back on an empty path.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidTransition is returned when a selection does not fit the
	// current depth, such as picking a sub-folder with no item open.
	ErrInvalidTransition = errors.New("invalid navigation")
)

// BackResult says what Back did.
type BackResult int

const (
	// BackStepped removed one level from the path.
	BackStepped BackResult = iota
	// BackExitedSearch left search mode; the path is unchanged.
	BackExitedSearch
)

// Navigator owns the navigation state and the search overlay.
type Navigator struct {
	source folder.Source

	state State
	info  *folder.Info

	searching bool
	text      string
	filter    query.Filter
}

// New creates an empty navigator that reads item folders from src.
func New(src folder.Source) *Navigator {
	return &Navigator{source: src}
}

// State returns the current path.
func (n *Navigator) State() State {
	s := n.state
	if s.Item != nil {
		ref := *s.Item
		s.Item = &ref
	}
	return s
}

// Window returns the list the current depth shows.
func (n *Navigator) Window() Window {
	return n.state.Window()
}

// FolderInfo returns the open item's folder listing, or nil.
func (n *Navigator) FolderInfo() *folder.Info {
	return n.info
}

// Searching reports whether the search overlay is active.
func (n *Navigator) Searching() bool {
	return n.searching
}

// Filter returns the active search filter.
func (n *Navigator) Filter() query.Filter {
	return n.filter
}

// SearchText returns the raw text of the active search.
func (n *Navigator) SearchText() string {
	return n.text
}

func (n *Navigator) reset(root Root) {
	n.state = State{Root: root}
	n.info = nil
	n.ClearSearch()
}

// SelectAvatar makes the avatar the root and clears everything below.
func (n *Navigator) SelectAvatar(title, path string) {
	n.reset(AvatarRoot{Title: title, Path: path})
}

// SelectWildcardAvatar roots the path at "*", showing items for any avatar.
func (n *Navigator) SelectWildcardAvatar() {
	n.reset(AvatarRoot{Title: WildcardTitle})
}

// SelectAuthor makes the author the root.
func (n *Navigator) SelectAuthor(author string) {
	n.reset(AuthorRoot{Author: author})
}

// SelectRootCategory makes the category the root.
func (n *Navigator) SelectRootCategory(cat catalog.Category) {
	n.reset(CategoryRoot{Category: cat})
}

// SelectCategory picks a category below an avatar or author root.
func (n *Navigator) SelectCategory(cat catalog.Category) error {
	switch n.state.Root.(type) {
	case AvatarRoot, AuthorRoot:
	default:
		return fmt.Errorf("selecting category without avatar or author: %w", ErrInvalidTransition)
	}
	if cat.IsZero() {
		return fmt.Errorf("selecting empty category: %w", ErrInvalidTransition)
	}
	n.state.Category = cat
	n.state.Item = nil
	n.state.Subfolder = ""
	n.info = nil
	n.ClearSearch()
	return nil
}

// SelectItem opens an item. The path must already have a category.
// On a folder error the state is left unchanged.
func (n *Navigator) SelectItem(it catalog.Item) error {
	if n.state.EffectiveCategory().IsZero() {
		return fmt.Errorf("selecting item without category: %w", ErrInvalidTransition)
	}
	info, err := n.source.GetFolderInfo(it.ItemPath, it.MaterialPath)
	if err != nil {
		return err
	}
	n.state.Item = &ItemRef{Path: it.ItemPath, Title: it.Title}
	n.state.Subfolder = ""
	n.info = info
	n.ClearSearch()
	return nil
}

// SelectSubfolder opens one bucket of the open item.
func (n *Navigator) SelectSubfolder(label folder.Label) error {
	if n.state.Item == nil {
		return fmt.Errorf("selecting sub-folder without item: %w", ErrInvalidTransition)
	}
	n.state.Subfolder = label
	n.ClearSearch()
	return nil
}

// OpenFromSearch jumps to an item picked from search results. The path
// is rooted at the item's first supported avatar, or "*" when the item
// has none or the avatar name did not resolve.
func (n *Navigator) OpenFromSearch(it catalog.Item, avatarName string) error {
	info, err := n.source.GetFolderInfo(it.ItemPath, it.MaterialPath)
	if err != nil {
		return err
	}
	root := AvatarRoot{Title: WildcardTitle}
	if len(it.SupportedAvatar) > 0 {
		root.Path = it.SupportedAvatar[0]
	}
	if avatarName != "" {
		root.Title = avatarName
	}
	n.state = State{
		Root:     root,
		Category: it.Category(),
		Item:     &ItemRef{Path: it.ItemPath, Title: it.Title},
	}
	n.info = info
	n.ClearSearch()
	return nil
}

// Back leaves search if active, otherwise removes the most specific
// level of the path.
func (n *Navigator) Back() (BackResult, error) {
	if n.searching {
		n.ClearSearch()
		return BackExitedSearch, nil
	}
	if n.state.IsEmpty() {
		return BackStepped, ErrNothingToUndo
	}

	switch {
	case n.state.Subfolder != "":
		n.state.Subfolder = ""
	case n.state.Item != nil:
		n.state.Item = nil
		n.info = nil
	case !n.state.Category.IsZero() && n.state.Mode() != ModeCategory:
		n.state.Category = catalog.Category{}
	default:
		// Roots have nothing above them, the wildcard avatar included.
		n.state = State{}
	}
	return BackStepped, nil
}

// Search activates the overlay with the parsed query. Blank input
// clears search instead and reports false.
func (n *Navigator) Search(text string) (query.Filter, bool) {
	f := query.Parse(text)
	if f.IsEmpty() {
		n.ClearSearch()
		return f, false
	}
	n.searching = true
	n.text = text
	n.filter = f
	return f, true
}

// SearchFilter activates the overlay with an already built filter. The
// values are used as given, so they need no quoting. An empty filter
// clears search and reports false.
func (n *Navigator) SearchFilter(f query.Filter) bool {
	if f.IsEmpty() {
		n.ClearSearch()
		return false
	}
	n.searching = true
	n.text = f.String()
	n.filter = f
	return true
}

// ClearSearch leaves search mode without changing the path.
func (n *Navigator) ClearSearch() {
	n.searching = false
	n.text = ""
	n.filter = query.Filter{}
}

// HandleDeleted drops references to a deleted item. In avatar mode,
// deleting the root avatar empties the path; deleting the open item
// closes it. It reports whether the path changed.
func (n *Navigator) HandleDeleted(path string) bool {
	changed := false
	if r, ok := n.state.Root.(AvatarRoot); ok && r.Path != "" && r.Path == path {
		n.state = State{}
		n.info = nil
		changed = true
	} else if n.state.Item != nil && n.state.Item.Path == path {
		n.state.Item = nil
		n.state.Subfolder = ""
		n.info = nil
		changed = true
	}
	if changed {
		n.ClearSearch()
	}
	return changed
}

// HandleEdited renames path references after an item was edited.
func (n *Navigator) HandleEdited(oldPath string, it catalog.Item) {
	if r, ok := n.state.Root.(AvatarRoot); ok && r.Path != "" && r.Path == oldPath {
		n.state.Root = AvatarRoot{Title: it.Title, Path: it.ItemPath}
	}
	if n.state.Item != nil && n.state.Item.Path == oldPath {
		n.state.Item = &ItemRef{Path: it.ItemPath, Title: it.Title}
	}
}

// ReloadFolder re-reads the folder listing when it is the open item.
// A missing folder closes the item.
func (n *Navigator) ReloadFolder(it catalog.Item) error {
	if n.state.Item == nil || n.state.Item.Path != it.ItemPath {
		return nil
	}
	info, err := n.source.GetFolderInfo(it.ItemPath, it.MaterialPath)
	if err != nil {
		n.state.Item = nil
		n.state.Subfolder = ""
		n.info = nil
		return err
	}
	n.info = info
	return nil
}

// RenameAuthor follows an author rename when the author is the root.
func (n *Navigator) RenameAuthor(oldName, newName string) {
	if r, ok := n.state.Root.(AuthorRoot); ok && r.Author == oldName {
		n.state.Root = AuthorRoot{Author: newName}
	}
}

// Reset empties the path and leaves search.
func (n *Navigator) Reset() {
	n.reset(nil)
}
