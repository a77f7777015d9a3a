package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotFound is returned when an item, group or category lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrDuplicatePath is returned when an item path is already taken.
	ErrDuplicatePath = errors.New("item path already exists")
)

// DeleteOptions controls reference repair when an avatar is deleted.
// Declined repairs leave dangling references behind; the resolver treats
// them as unsupported.
type DeleteOptions struct {
	StripSupported bool // remove the path from every item's SupportedAvatar
	StripGroups    bool // remove the path from every common group
}

// Store owns the in-memory collections. All mutation goes through its
// methods so that reference repair happens alongside the change.
type Store struct {
	items      []Item
	groups     []CommonGroup
	categories []string
}

// NewStore creates a store from already-loaded collections.
func NewStore(items []Item, groups []CommonGroup, categories []string) *Store {
	if items == nil {
		items = []Item{}
	}
	if groups == nil {
		groups = []CommonGroup{}
	}
	if categories == nil {
		categories = []string{}
	}
	return &Store{items: items, groups: groups, categories: categories}
}

// Load reads every collection from the backend.
func Load(b Backend) (*Store, error) {
	items, err := b.LoadItems()
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	groups, err := b.LoadCommonGroups()
	if err != nil {
		return nil, fmt.Errorf("loading common avatars: %w", err)
	}
	categories, err := b.LoadCustomCategories()
	if err != nil {
		return nil, fmt.Errorf("loading custom categories: %w", err)
	}
	return NewStore(items, groups, categories), nil
}

// Save writes every collection to the backend.
func (s *Store) Save(b Backend) error {
	if err := b.SaveItems(s.items); err != nil {
		return fmt.Errorf("saving items: %w", err)
	}
	if err := b.SaveCommonGroups(s.groups); err != nil {
		return fmt.Errorf("saving common avatars: %w", err)
	}
	if err := b.SaveCustomCategories(s.categories); err != nil {
		return fmt.Errorf("saving custom categories: %w", err)
	}
	return nil
}

// Replace swaps in new collections, for example after a restore.
func (s *Store) Replace(items []Item, groups []CommonGroup, categories []string) {
	fresh := NewStore(items, groups, categories)
	*s = *fresh
}

// Items returns copies of every item in store order.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Groups returns copies of every common group in store order.
func (s *Store) Groups() []CommonGroup {
	out := make([]CommonGroup, len(s.groups))
	for i, g := range s.groups {
		out[i] = g.Clone()
	}
	return out
}

// CustomCategories returns the user-defined category labels.
func (s *Store) CustomCategories() []string {
	return slices.Clone(s.categories)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) indexOf(path string) int {
	for i := range s.items {
		if s.items[i].ItemPath == path {
			return i
		}
	}
	return -1
}

// Add appends a new item.
func (s *Store) Add(it Item) error {
	if s.indexOf(it.ItemPath) >= 0 {
		return fmt.Errorf("%s: %w", it.ItemPath, ErrDuplicatePath)
	}
	s.items = append(s.items, normalize(it))
	return nil
}

// Update replaces the item stored under oldPath. When the path changes,
// every SupportedAvatar entry and group membership pointing at oldPath is
// rewritten to the new path.
func (s *Store) Update(oldPath string, it Item) error {
	i := s.indexOf(oldPath)
	if i < 0 {
		return fmt.Errorf("%s: %w", oldPath, ErrNotFound)
	}
	if it.ItemPath != oldPath && s.indexOf(it.ItemPath) >= 0 {
		return fmt.Errorf("%s: %w", it.ItemPath, ErrDuplicatePath)
	}
	s.items[i] = normalize(it)
	if it.ItemPath != oldPath {
		s.renameReferences(oldPath, it.ItemPath)
	}
	return nil
}

func (s *Store) renameReferences(oldPath, newPath string) {
	for i := range s.items {
		s.items[i].SupportedAvatar = replaced(s.items[i].SupportedAvatar, oldPath, newPath)
	}
	for i := range s.groups {
		s.groups[i].Avatars = replaced(s.groups[i].Avatars, oldPath, newPath)
	}
}

// Delete removes the item at path and returns it. Repair options only
// apply when the deleted item is an avatar.
func (s *Store) Delete(path string, opts DeleteOptions) (Item, error) {
	i := s.indexOf(path)
	if i < 0 {
		return Item{}, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	removed := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)

	if removed.Type != TypeAvatar {
		return removed, nil
	}
	if opts.StripSupported {
		for j := range s.items {
			s.items[j].SupportedAvatar = without(s.items[j].SupportedAvatar, path)
		}
	}
	if opts.StripGroups {
		for j := range s.groups {
			s.groups[j].Avatars = without(s.groups[j].Avatars, path)
		}
	}
	return removed, nil
}

// ReferencedBy returns the paths of items whose SupportedAvatar lists path.
func (s *Store) ReferencedBy(path string) []string {
	var out []string
	for _, it := range s.items {
		if slices.Contains(it.SupportedAvatar, path) {
			out = append(out, it.ItemPath)
		}
	}
	return out
}

// GroupsContaining returns the names of groups that list path.
func (s *Store) GroupsContaining(path string) []string {
	var out []string
	for _, g := range s.groups {
		if g.Contains(path) {
			out = append(out, g.Name)
		}
	}
	return out
}

// SetImage changes the thumbnail of one item.
func (s *Store) SetImage(path, image string) error {
	i := s.indexOf(path)
	if i < 0 {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	s.items[i].ImagePath = image
	return nil
}

// SetAuthorImage changes the author image on every item by author and
// returns how many items changed.
func (s *Store) SetAuthorImage(author, image string) (int, error) {
	n := 0
	for i := range s.items {
		if s.items[i].AuthorName == author {
			s.items[i].AuthorImagePath = image
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("author %q: %w", author, ErrNotFound)
	}
	return n, nil
}

// Group returns the common group with the given name.
func (s *Store) Group(name string) (CommonGroup, bool) {
	for _, g := range s.groups {
		if g.Name == name {
			return g.Clone(), true
		}
	}
	return CommonGroup{}, false
}

// SaveGroup creates the group or overwrites its avatar list.
func (s *Store) SaveGroup(name string, avatars []string) {
	avatars = dedupe(avatars)
	for i := range s.groups {
		if s.groups[i].Name == name {
			s.groups[i].Avatars = avatars
			return
		}
	}
	s.groups = append(s.groups, CommonGroup{Name: name, Avatars: avatars})
}

// DeleteGroup removes the named group.
func (s *Store) DeleteGroup(name string) error {
	for i := range s.groups {
		if s.groups[i].Name == name {
			s.groups = slices.Delete(s.groups, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("group %q: %w", name, ErrNotFound)
}

// AddCustomCategory registers a label. It reports false if the label
// already exists.
func (s *Store) AddCustomCategory(name string) bool {
	if slices.Contains(s.categories, name) {
		return false
	}
	s.categories = append(s.categories, name)
	return true
}

// FixSupportedAvatarPaths rewrites SupportedAvatar entries that hold an
// avatar title instead of a path. Older data files stored titles. It
// returns the number of entries rewritten.
func (s *Store) FixSupportedAvatarPaths() int {
	paths := map[string]bool{}
	byTitle := map[string]string{}
	for _, it := range s.items {
		if it.Type != TypeAvatar {
			continue
		}
		paths[it.ItemPath] = true
		if _, ok := byTitle[it.Title]; !ok {
			byTitle[it.Title] = it.ItemPath
		}
	}

	n := 0
	for i := range s.items {
		refs := slices.Clone(s.items[i].SupportedAvatar)
		for j, ref := range refs {
			if paths[ref] {
				continue
			}
			if p, ok := byTitle[ref]; ok {
				refs[j] = p
				n++
			}
		}
		s.items[i].SupportedAvatar = dedupe(refs)
	}
	return n
}

func normalize(it Item) Item {
	it.SupportedAvatar = dedupe(it.SupportedAvatar)
	if it.Type == "" {
		it.Type = TypeUnknown
	}
	if it.Type != TypeCustom {
		it.CustomCategory = ""
	}
	return it
}

// replaced returns list with every from swapped for to. The input is
// never written to.
func replaced(list []string, from, to string) []string {
	if !slices.Contains(list, from) {
		return list
	}
	out := make([]string, len(list))
	for i, s := range list {
		if s == from {
			s = to
		}
		out[i] = s
	}
	return out
}

func without(list []string, v string) []string {
	if !slices.Contains(list, v) {
		return list
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

func dedupe(list []string) []string {
	if len(list) == 0 {
		return list
	}
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
