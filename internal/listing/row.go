// Package listing turns store contents and navigation state into the
// ordered rows a view renders.
package listing

import (
	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
)

// Command is what activating a row or action does. Commands carry
// identifiers only, never live entities.
type Command interface {
	isCommand()
}

type (
	SelectAvatar       struct{ Path string }
	SelectAllAvatars   struct{}
	SelectAuthor       struct{ Name string }
	SelectRootCategory struct{ Category catalog.Category }
	SelectCategory     struct{ Category catalog.Category }
	SelectItem         struct{ Path string }
	SelectSubfolder    struct{ Label folder.Label }
	OpenFile           struct{ Path string }
	OpenFolder         struct{ Path string }
	CopyBoothLink      struct{ ID int }
	OpenBoothLink      struct{ ID int }
	ShowAuthorItems    struct{ Author string }
	EditItem           struct{ Path string }
	DeleteItem         struct{ Path string }
	OpenSearchResult   struct{ Path string }
)

func (SelectAvatar) isCommand()       {}
func (SelectAllAvatars) isCommand()   {}
func (SelectAuthor) isCommand()       {}
func (SelectRootCategory) isCommand() {}
func (SelectCategory) isCommand()     {}
func (SelectItem) isCommand()         {}
func (SelectSubfolder) isCommand()    {}
func (OpenFile) isCommand()           {}
func (OpenFolder) isCommand()         {}
func (CopyBoothLink) isCommand()      {}
func (OpenBoothLink) isCommand()      {}
func (ShowAuthorItems) isCommand()    {}
func (EditItem) isCommand()           {}
func (DeleteItem) isCommand()         {}
func (OpenSearchResult) isCommand()   {}

// Action is a context-menu entry on a row.
type Action struct {
	Label   string
	Command Command
}

// Row is one entry of a rendered list.
type Row struct {
	Thumbnail string
	Title     string
	Subtitle  string
	Actions   []Action
	Command   Command
}
