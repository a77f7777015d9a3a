package catalog

import "path/filepath"

// Backend persists the store's collections. The store is the source of
// truth in memory; a backend only loads and saves whole collections.
type Backend interface {
	LoadItems() ([]Item, error)
	SaveItems(items []Item) error
	LoadCommonGroups() ([]CommonGroup, error)
	SaveCommonGroups(groups []CommonGroup) error
	LoadCustomCategories() ([]string, error)
	SaveCustomCategories(categories []string) error
}

// File names used by FileBackend inside its data directory.
const (
	ItemsFile            = "items.yml"
	CommonGroupsFile     = "common_avatars.yml"
	CustomCategoriesFile = "custom_categories.txt"
)

// FileBackend stores collections as YAML and plain-text files in Dir.
type FileBackend struct {
	Dir string
}

// NewFileBackend returns a backend rooted at dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{Dir: dir}
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.Dir, name)
}

func (b *FileBackend) LoadItems() ([]Item, error) {
	return LoadItems(b.path(ItemsFile))
}

func (b *FileBackend) SaveItems(items []Item) error {
	return SaveItems(b.path(ItemsFile), items)
}

func (b *FileBackend) LoadCommonGroups() ([]CommonGroup, error) {
	return LoadGroups(b.path(CommonGroupsFile))
}

func (b *FileBackend) SaveCommonGroups(groups []CommonGroup) error {
	return SaveGroups(b.path(CommonGroupsFile), groups)
}

func (b *FileBackend) LoadCustomCategories() ([]string, error) {
	return LoadCustomCategories(b.path(CustomCategoriesFile))
}

func (b *FileBackend) SaveCustomCategories(categories []string) error {
	return SaveCustomCategories(b.path(CustomCategoriesFile), categories)
}
