package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadItems reads an items.yml file from disk.
func LoadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return ParseItems(data)
}

// ParseItems decodes YAML bytes into an item list.
func ParseItems(data []byte) ([]Item, error) {
	if len(data) == 0 {
		return []Item{}, nil
	}
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing items YAML: %w", err)
	}
	if items == nil {
		return []Item{}, nil
	}
	for i := range items {
		items[i].Type = ParseItemType(string(items[i].Type))
	}
	return items, nil
}

// LoadGroups reads a common_avatars.yml file from disk.
func LoadGroups(path string) ([]CommonGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []CommonGroup{}, nil
		}
		return nil, fmt.Errorf("reading common avatars: %w", err)
	}
	return ParseGroups(data)
}

// ParseGroups decodes YAML bytes into a common group list.
func ParseGroups(data []byte) ([]CommonGroup, error) {
	if len(data) == 0 {
		return []CommonGroup{}, nil
	}
	var groups []CommonGroup
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("parsing common avatars YAML: %w", err)
	}
	if groups == nil {
		return []CommonGroup{}, nil
	}
	return groups, nil
}

// LoadCustomCategories reads one category label per line. Blank lines are skipped.
func LoadCustomCategories(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading custom categories: %w", err)
	}
	return ParseCustomCategories(data), nil
}

// ParseCustomCategories splits a category file into labels.
func ParseCustomCategories(data []byte) []string {
	out := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
