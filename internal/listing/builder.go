package listing

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/navigator"
	"github.com/blackwell-systems/avex/internal/query"
)

// SortKey orders item lists.
type SortKey string

const (
	SortTitle  SortKey = "title"
	SortAuthor SortKey = "author"
)

// ParseSortKey maps config and flag values to a SortKey, defaulting to title.
func ParseSortKey(s string) SortKey {
	if SortKey(strings.ToLower(s)) == SortAuthor {
		return SortAuthor
	}
	return SortTitle
}

// Builder produces rows from a store.
type Builder struct {
	Store *catalog.Store
	Tr    i18n.Translator
	Sort  SortKey
}

func (b Builder) sortItems(items []catalog.Item) {
	key := func(it catalog.Item) string { return it.Title }
	if b.Sort == SortAuthor {
		key = func(it catalog.Item) string { return it.AuthorName }
	}
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) < key(items[j])
	})
}

// Avatars lists avatar items.
func (b Builder) Avatars() []Row {
	avatars := b.Store.Avatars()
	b.sortItems(avatars)
	rows := make([]Row, 0, len(avatars))
	for _, it := range avatars {
		rows = append(rows, Row{
			Thumbnail: it.ImagePath,
			Title:     it.Title,
			Subtitle:  fmt.Sprintf(b.Tr.T(i18n.KeyAuthorLine), it.AuthorName),
			Actions:   b.itemActions(it),
			Command:   SelectAvatar{Path: it.ItemPath},
		})
	}
	return rows
}

// Authors lists the derived authors by name.
func (b Builder) Authors() []Row {
	authors := b.Store.Authors()
	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Name < authors[j].Name
	})
	rows := make([]Row, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, Row{
			Thumbnail: a.ImagePath,
			Title:     a.Name,
			Subtitle:  b.count(len(b.Store.ByAuthor(a.Name))),
			Command:   SelectAuthor{Name: a.Name},
		})
	}
	return rows
}

// Buckets returns every browsable category: the fixed types in order,
// then each custom category.
func (b Builder) Buckets() []catalog.Category {
	var out []catalog.Category
	for _, t := range catalog.FixedTypes {
		out = append(out, catalog.Category{Type: t})
	}
	for _, c := range b.Store.CustomCategories() {
		out = append(out, catalog.Category{Type: catalog.TypeCustom, Custom: c})
	}
	return out
}

// RootCategories lists every bucket with its item count. Empty buckets
// stay in the list.
func (b Builder) RootCategories() []Row {
	items := b.Store.Items()
	var rows []Row
	for _, c := range b.Buckets() {
		n := 0
		for _, it := range items {
			if c.Matches(it) {
				n++
			}
		}
		rows = append(rows, Row{
			Title:    navigator.CategoryName(c, b.Tr),
			Subtitle: b.count(n),
			Command:  SelectRootCategory{Category: c},
		})
	}
	return rows
}

// Categories lists the buckets holding at least one visible item under
// an avatar or author root.
func (b Builder) Categories(s navigator.State) []Row {
	visible := b.visible(s)
	var rows []Row
	for _, c := range b.Buckets() {
		n := 0
		for _, it := range visible {
			if c.Matches(it) {
				n++
			}
		}
		if n == 0 {
			continue
		}
		rows = append(rows, Row{
			Title:    navigator.CategoryName(c, b.Tr),
			Subtitle: b.count(n),
			Command:  SelectCategory{Category: c},
		})
	}
	return rows
}

// Items lists the items in the state's category that pass the root's
// gate, sorted by the builder's key.
func (b Builder) Items(s navigator.State) []Row {
	cat := s.EffectiveCategory()
	var items []catalog.Item
	for _, it := range b.visible(s) {
		if cat.Matches(it) {
			items = append(items, it)
		}
	}
	b.sortItems(items)

	avatarPath := ""
	if r, ok := s.Root.(navigator.AvatarRoot); ok {
		avatarPath = r.Path
	}
	groups := b.Store.Groups()

	rows := make([]Row, 0, len(items))
	for _, it := range items {
		subtitle := fmt.Sprintf(b.Tr.T(i18n.KeyAuthorLine), it.AuthorName)
		if avatarPath != "" {
			if sup := catalog.Resolve(it, groups, avatarPath); sup.OnlyCommon {
				subtitle += " | " + fmt.Sprintf(b.Tr.T(i18n.KeyCommonAvatar), sup.CommonGroup)
			}
		}
		rows = append(rows, Row{
			Thumbnail: it.ImagePath,
			Title:     it.Title,
			Subtitle:  subtitle,
			Actions:   b.itemActions(it),
			Command:   SelectItem{Path: it.ItemPath},
		})
	}
	return rows
}

// visible applies the root's gate: support for avatar roots, authorship
// for author roots, nothing for category roots.
func (b Builder) visible(s navigator.State) []catalog.Item {
	items := b.Store.Items()
	switch r := s.Root.(type) {
	case navigator.AvatarRoot:
		groups := b.Store.Groups()
		var out []catalog.Item
		for _, it := range items {
			if Gate(it, groups, r) {
				out = append(out, it)
			}
		}
		return out
	case navigator.AuthorRoot:
		var out []catalog.Item
		for _, it := range items {
			if it.AuthorName == r.Author {
				out = append(out, it)
			}
		}
		return out
	default:
		return items
	}
}

// Gate reports whether an item is listed under an avatar root.
func Gate(it catalog.Item, groups []catalog.CommonGroup, root navigator.AvatarRoot) bool {
	return root.Wildcard() ||
		len(it.SupportedAvatar) == 0 ||
		catalog.Resolve(it, groups, root.Path).SupportedOrCommon
}

// FolderCategories lists the open item's non-empty sub-folder buckets.
func (b Builder) FolderCategories(info *folder.Info) []Row {
	if info == nil {
		return nil
	}
	var rows []Row
	for _, l := range folder.Labels {
		n := info.Count(l)
		if n == 0 {
			continue
		}
		rows = append(rows, Row{
			Title:    b.Tr.T(string(l)),
			Subtitle: b.count(n),
			Command:  SelectSubfolder{Label: l},
		})
	}
	return rows
}

// FolderFiles lists the files of one bucket by name.
func (b Builder) FolderFiles(info *folder.Info, label folder.Label) []Row {
	if info == nil {
		return nil
	}
	files := info.Files(label)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return b.fileRows(files)
}

func (b Builder) fileRows(files []folder.File) []Row {
	rows := make([]Row, 0, len(files))
	for _, f := range files {
		thumb := ""
		if f.IsImage() {
			thumb = f.Path
		}
		rows = append(rows, Row{
			Thumbnail: thumb,
			Title:     f.Name,
			Subtitle:  fmt.Sprintf(b.Tr.T(i18n.KeyFileKind), strings.TrimPrefix(f.Ext, ".")),
			Actions: []Action{
				{Label: b.Tr.T(i18n.KeyActionOpenFile), Command: OpenFolder{Path: filepath.Dir(f.Path)}},
			},
			Command: OpenFile{Path: f.Path},
		})
	}
	return rows
}

// SearchItems lists every item matching f, ranked, and returns the
// total number of items searched.
func (b Builder) SearchItems(f query.Filter) ([]Row, int) {
	items := b.Store.Items()
	matched := f.MatchItems(items, b.Store, b.Tr)
	rows := make([]Row, 0, len(matched))
	for _, it := range matched {
		rows = append(rows, Row{
			Thumbnail: it.ImagePath,
			Title:     it.Title,
			Subtitle:  fmt.Sprintf(b.Tr.T(i18n.KeyAuthorLine), it.AuthorName),
			Actions:   b.itemActions(it),
			Command:   OpenSearchResult{Path: it.ItemPath},
		})
	}
	return rows, len(items)
}

// SearchFiles lists the files matching f's words, ranked, and returns
// the total number of files searched.
func (b Builder) SearchFiles(files []folder.File, f query.Filter) ([]Row, int) {
	return b.fileRows(f.MatchFiles(files)), len(files)
}

func (b Builder) itemActions(it catalog.Item) []Action {
	var actions []Action
	if it.HasBoothID() {
		actions = append(actions,
			Action{Label: b.Tr.T(i18n.KeyActionCopyBooth), Command: CopyBoothLink{ID: it.BoothID}},
			Action{Label: b.Tr.T(i18n.KeyActionOpenBooth), Command: OpenBoothLink{ID: it.BoothID}},
		)
	}
	actions = append(actions,
		Action{Label: b.Tr.T(i18n.KeyActionAuthorItems), Command: ShowAuthorItems{Author: it.AuthorName}},
		Action{Label: b.Tr.T(i18n.KeyActionOpenFolder), Command: OpenFolder{Path: it.ItemPath}},
		Action{Label: b.Tr.T(i18n.KeyActionEdit), Command: EditItem{Path: it.ItemPath}},
		Action{Label: b.Tr.T(i18n.KeyActionDelete), Command: DeleteItem{Path: it.ItemPath}},
	)
	return actions
}

func (b Builder) count(n int) string {
	return fmt.Sprintf(b.Tr.T(i18n.KeyItemCount), n)
}
