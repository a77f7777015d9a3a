package catalog

import "slices"

// ItemType is the category an item is filed under.
type ItemType string

const (
	TypeAvatar    ItemType = "avatar"
	TypeClothing  ItemType = "clothing"
	TypeTexture   ItemType = "texture"
	TypeGimmick   ItemType = "gimmick"
	TypeAccessory ItemType = "accessory"
	TypeHairStyle ItemType = "hair_style"
	TypeAnimation ItemType = "animation"
	TypeTool      ItemType = "tool"
	TypeShader    ItemType = "shader"
	TypeCustom    ItemType = "custom"
	TypeUnknown   ItemType = "unknown"
)

// FixedTypes lists the built-in categories in display order.
// Custom and Unknown are not browsable buckets of their own.
var FixedTypes = []ItemType{
	TypeAvatar,
	TypeClothing,
	TypeTexture,
	TypeGimmick,
	TypeAccessory,
	TypeHairStyle,
	TypeAnimation,
	TypeTool,
	TypeShader,
}

// ParseItemType maps a type name to an ItemType. Unrecognised names map to TypeUnknown.
func ParseItemType(s string) ItemType {
	t := ItemType(s)
	switch t {
	case TypeCustom, TypeUnknown:
		return t
	}
	for _, f := range FixedTypes {
		if f == t {
			return t
		}
	}
	return TypeUnknown
}

// Item is one cataloged asset. ItemPath is its identity.
type Item struct {
	Title           string   `yaml:"title"`
	AuthorName      string   `yaml:"author_name"`
	AuthorImagePath string   `yaml:"author_image,omitempty"`
	ImagePath       string   `yaml:"image,omitempty"`
	Type            ItemType `yaml:"type"`
	CustomCategory  string   `yaml:"custom_category,omitempty"`
	SupportedAvatar []string `yaml:"supported_avatars,omitempty"`
	BoothID         int      `yaml:"booth_id"`
	ItemPath        string   `yaml:"path"`
	MaterialPath    string   `yaml:"material_path,omitempty"`
}

// HasBoothID reports whether the item is linked to a Booth listing.
func (it Item) HasBoothID() bool {
	return it.BoothID != NoBoothID
}

// Category returns the navigation category the item belongs to.
func (it Item) Category() Category {
	if it.Type == TypeCustom {
		return Category{Type: TypeCustom, Custom: it.CustomCategory}
	}
	return Category{Type: it.Type}
}

// Clone returns a copy that shares no slices with it.
func (it Item) Clone() Item {
	it.SupportedAvatar = slices.Clone(it.SupportedAvatar)
	return it
}

// NoBoothID marks an item without a Booth listing.
const NoBoothID = -1

// CommonGroup is a named set of avatars that share a body and therefore
// accept each other's items.
type CommonGroup struct {
	Name    string   `yaml:"name"`
	Avatars []string `yaml:"avatars"`
}

// Clone returns a copy that shares no slices with g.
func (g CommonGroup) Clone() CommonGroup {
	g.Avatars = slices.Clone(g.Avatars)
	return g
}

// Contains reports whether the group lists the given avatar path.
func (g CommonGroup) Contains(path string) bool {
	for _, a := range g.Avatars {
		if a == path {
			return true
		}
	}
	return false
}

// Author is derived from items, never stored.
type Author struct {
	Name      string
	ImagePath string
}

// Category identifies a browsable bucket: a fixed type, or a custom label.
// The zero value means "no category selected".
type Category struct {
	Type   ItemType
	Custom string
}

// IsZero reports whether no category is set.
func (c Category) IsZero() bool {
	return c.Type == "" || c.Type == TypeUnknown
}

// Matches reports whether the item is filed under this category.
func (c Category) Matches(it Item) bool {
	if it.Type != c.Type {
		return false
	}
	return c.Type != TypeCustom || it.CustomCategory == c.Custom
}

// Key is the translation key (or literal label for custom categories).
func (c Category) Key() string {
	if c.Type == TypeCustom {
		return c.Custom
	}
	return string(c.Type)
}
