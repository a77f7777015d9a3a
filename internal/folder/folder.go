// Package folder inspects an item's directory and sorts its files into
// a closed set of sub-folder labels.
package folder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when an item directory does not exist.
var ErrNotFound = errors.New("item folder not found")

// Label names a sub-folder bucket. Labels double as translation keys.
type Label string

const (
	ModificationData Label = "folder.modification_data"
	Texture          Label = "folder.texture"
	Document         Label = "folder.document"
	UnityPackage     Label = "folder.unity_package"
	Material         Label = "folder.material"
	Unknown          Label = "folder.unknown"
)

// Labels lists every bucket in display order.
var Labels = []Label{ModificationData, Texture, Document, UnityPackage, Material, Unknown}

// ParseLabel returns the label with the given key.
func ParseLabel(s string) (Label, bool) {
	for _, l := range Labels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// File is one file found under an item.
type File struct {
	Name string
	Path string
	Ext  string // lower-case, with the leading dot
}

// IsImage reports whether the file can serve as its own thumbnail.
func (f File) IsImage() bool {
	return f.Ext == ".png" || f.Ext == ".jpg"
}

// Info is the derived listing of an item's files.
type Info struct {
	files map[Label][]File
}

// NewInfo builds an Info from pre-sorted buckets.
func NewInfo(files map[Label][]File) *Info {
	if files == nil {
		files = map[Label][]File{}
	}
	return &Info{files: files}
}

// Count returns how many files fall under label.
func (i *Info) Count(l Label) int {
	return len(i.files[l])
}

// Files returns the files under label.
func (i *Info) Files(l Label) []File {
	return append([]File(nil), i.files[l]...)
}

// AllFiles returns every file, bucket by bucket in label order.
func (i *Info) AllFiles() []File {
	var out []File
	for _, l := range Labels {
		out = append(out, i.files[l]...)
	}
	return out
}

// Source produces folder listings for items.
type Source interface {
	GetFolderInfo(itemPath, materialPath string) (*Info, error)
}

// Classify picks the bucket for a file name by extension.
func Classify(name string) Label {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".psd", ".clip", ".blend", ".fbx":
		return ModificationData
	case ".png", ".jpg":
		return Texture
	case ".txt", ".md", ".pdf":
		return Document
	case ".unitypackage":
		return UnityPackage
	default:
		return Unknown
	}
}

// DiskSource reads item folders from the local filesystem.
type DiskSource struct{}

// GetFolderInfo walks itemPath and, when set, materialPath. Every file
// under materialPath is filed as Material.
func (DiskSource) GetFolderInfo(itemPath, materialPath string) (*Info, error) {
	st, err := os.Stat(itemPath)
	if err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%s: %w", itemPath, ErrNotFound)
	}

	files := map[Label][]File{}
	err = walk(itemPath, func(f File) {
		l := Classify(f.Name)
		files[l] = append(files[l], f)
	})
	if err != nil {
		return nil, fmt.Errorf("reading item folder: %w", err)
	}

	if materialPath != "" {
		if st, err := os.Stat(materialPath); err == nil && st.IsDir() {
			err = walk(materialPath, func(f File) {
				files[Material] = append(files[Material], f)
			})
			if err != nil {
				return nil, fmt.Errorf("reading material folder: %w", err)
			}
		}
	}

	for l := range files {
		sort.SliceStable(files[l], func(a, b int) bool {
			return files[l][a].Path < files[l][b].Path
		})
	}
	return NewInfo(files), nil
}

func walk(root string, fn func(File)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fn(File{
			Name: d.Name(),
			Path: path,
			Ext:  strings.ToLower(filepath.Ext(d.Name())),
		})
		return nil
	})
}
