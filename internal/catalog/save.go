package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalItems encodes an item list to YAML bytes.
func MarshalItems(items []Item) ([]byte, error) {
	return marshalYAML(items, "items")
}

// MarshalGroups encodes a common group list to YAML bytes.
func MarshalGroups(groups []CommonGroup) ([]byte, error) {
	return marshalYAML(groups, "common avatars")
}

func marshalYAML(v any, what string) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", what, err)
	}
	return buf.Bytes(), nil
}

// SaveItems writes the item list to a file on disk.
func SaveItems(path string, items []Item) error {
	data, err := MarshalItems(items)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// SaveGroups writes the common group list to a file on disk.
func SaveGroups(path string, groups []CommonGroup) error {
	data, err := MarshalGroups(groups)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// SaveCustomCategories writes one label per line.
func SaveCustomCategories(path string, categories []string) error {
	data := strings.Join(categories, "\n")
	if data != "" {
		data += "\n"
	}
	return writeFile(path, []byte(data))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
