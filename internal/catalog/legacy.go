package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Files written by the older Windows data folder layout.
const (
	LegacyItemsFile      = "ItemsData.json"
	LegacyGroupsFile     = "CommonAvatar.json"
	LegacyCategoriesFile = "CustomCategory.txt"
)

// legacyTypes maps the numeric type codes of the legacy data files.
var legacyTypes = []ItemType{
	TypeAvatar,
	TypeClothing,
	TypeTexture,
	TypeGimmick,
	TypeAccessory,
	TypeHairStyle,
	TypeAnimation,
	TypeTool,
	TypeShader,
	TypeCustom,
	TypeUnknown,
}

type legacyItem struct {
	Title               string   `json:"Title"`
	AuthorName          string   `json:"AuthorName"`
	AuthorImageFilePath string   `json:"AuthorImageFilePath"`
	ImagePath           string   `json:"ImagePath"`
	Type                int      `json:"Type"`
	CustomCategory      string   `json:"CustomCategory"`
	SupportedAvatar     []string `json:"SupportedAvatar"`
	BoothID             *int     `json:"BoothId"`
	ItemPath            string   `json:"ItemPath"`
	MaterialPath        string   `json:"MaterialPath"`
}

type legacyGroup struct {
	Name    string   `json:"Name"`
	Avatars []string `json:"Avatars"`
}

// LegacyType converts a legacy numeric type code.
func LegacyType(code int) ItemType {
	if code < 0 || code >= len(legacyTypes) {
		return TypeUnknown
	}
	return legacyTypes[code]
}

// ImportLegacy reads a legacy JSON data folder into a new store.
// Missing files yield empty collections. Supported-avatar entries that
// hold avatar titles are rewritten to paths.
func ImportLegacy(dir string) (*Store, error) {
	var raw []legacyItem
	if err := readJSON(filepath.Join(dir, LegacyItemsFile), &raw); err != nil {
		return nil, fmt.Errorf("reading legacy items: %w", err)
	}
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		it := Item{
			Title:           r.Title,
			AuthorName:      r.AuthorName,
			AuthorImagePath: r.AuthorImageFilePath,
			ImagePath:       r.ImagePath,
			Type:            LegacyType(r.Type),
			CustomCategory:  r.CustomCategory,
			SupportedAvatar: r.SupportedAvatar,
			BoothID:         NoBoothID,
			ItemPath:        r.ItemPath,
			MaterialPath:    r.MaterialPath,
		}
		if r.BoothID != nil {
			it.BoothID = *r.BoothID
		}
		items = append(items, normalize(it))
	}

	var rawGroups []legacyGroup
	if err := readJSON(filepath.Join(dir, LegacyGroupsFile), &rawGroups); err != nil {
		return nil, fmt.Errorf("reading legacy common avatars: %w", err)
	}
	groups := make([]CommonGroup, 0, len(rawGroups))
	for _, g := range rawGroups {
		groups = append(groups, CommonGroup{Name: g.Name, Avatars: dedupe(g.Avatars)})
	}

	categories, err := LoadCustomCategories(filepath.Join(dir, LegacyCategoriesFile))
	if err != nil {
		return nil, err
	}

	s := NewStore(items, groups, categories)
	s.FixSupportedAvatarPaths()
	return s, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
