// Package navigator tracks where the user is in the browse hierarchy
// and how Back unwinds it.
package navigator

import (
	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
)

// Root anchors a navigation path. It is one of AvatarRoot, AuthorRoot
// or CategoryRoot; nil means nothing is selected.
type Root interface {
	isRoot()
}

// WildcardTitle is the avatar title meaning "items usable by any avatar".
const WildcardTitle = "*"

// AvatarRoot browses items usable by one avatar.
type AvatarRoot struct {
	Title string
	Path  string
}

// Wildcard reports whether this is the "*" entry point.
func (r AvatarRoot) Wildcard() bool {
	return r.Title == WildcardTitle
}

// AuthorRoot browses items by one author.
type AuthorRoot struct {
	Author string
}

// CategoryRoot browses every item of one category.
type CategoryRoot struct {
	Category catalog.Category
}

func (AvatarRoot) isRoot()   {}
func (AuthorRoot) isRoot()   {}
func (CategoryRoot) isRoot() {}

// ItemRef points at an item by path. The title is kept for the breadcrumb.
type ItemRef struct {
	Path  string
	Title string
}

// State is a snapshot of the navigation path.
type State struct {
	Root      Root
	Category  catalog.Category // below avatar and author roots only
	Item      *ItemRef
	Subfolder folder.Label
}

// IsEmpty reports whether nothing is selected.
func (s State) IsEmpty() bool {
	return s.Root == nil
}

// Mode is the browse mode implied by the root.
type Mode int

const (
	ModeNone Mode = iota
	ModeAvatar
	ModeAuthor
	ModeCategory
)

func (m Mode) String() string {
	switch m {
	case ModeAvatar:
		return "avatar"
	case ModeAuthor:
		return "author"
	case ModeCategory:
		return "category"
	default:
		return "none"
	}
}

// Mode returns the browse mode.
func (s State) Mode() Mode {
	switch s.Root.(type) {
	case AvatarRoot:
		return ModeAvatar
	case AuthorRoot:
		return ModeAuthor
	case CategoryRoot:
		return ModeCategory
	default:
		return ModeNone
	}
}

// EffectiveCategory is the category items are listed from: the root in
// category mode, the selected category otherwise.
func (s State) EffectiveCategory() catalog.Category {
	if r, ok := s.Root.(CategoryRoot); ok {
		return r.Category
	}
	return s.Category
}

// Window names the list shown for a state.
type Window int

const (
	Nothing Window = iota
	ItemCategoryList
	ItemList
	ItemFolderCategoryList
	ItemFolderItemsList
)

func (w Window) String() string {
	switch w {
	case ItemCategoryList:
		return "categories"
	case ItemList:
		return "items"
	case ItemFolderCategoryList:
		return "folder"
	case ItemFolderItemsList:
		return "files"
	default:
		return "nothing"
	}
}

// InFolder reports whether the window lists an item's files.
func (w Window) InFolder() bool {
	return w == ItemFolderCategoryList || w == ItemFolderItemsList
}

// Window derives the list for the state's depth.
func (s State) Window() Window {
	switch {
	case s.Root == nil:
		return Nothing
	case s.Subfolder != "":
		return ItemFolderItemsList
	case s.Item != nil:
		return ItemFolderCategoryList
	case !s.EffectiveCategory().IsZero():
		return ItemList
	default:
		return ItemCategoryList
	}
}
