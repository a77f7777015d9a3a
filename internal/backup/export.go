package backup

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/util"
)

// CSVHeader is the first row of an export.
var CSVHeader = []string{
	"Title", "AuthorName", "AuthorImageFilePath", "ImagePath",
	"Type", "SupportedAvatar", "BoothId", "ItemPath",
}

// ExportCSV writes every item of store to a timestamped CSV file in
// outDir and returns its path. Supported avatars are written as names
// joined by ";"; references that no longer resolve are left out.
func ExportCSV(store *catalog.Store, outDir string, now time.Time) (string, error) {
	if err := util.EnsureDir(outDir); err != nil {
		return "", err
	}
	dst, err := uniqueName(outDir, now, ".csv")
	if err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return "", err
	}
	for _, it := range store.Items() {
		if err := w.Write(csvRecord(store, it)); err != nil {
			return "", fmt.Errorf("writing export: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return dst, f.Close()
}

func csvRecord(store *catalog.Store, it catalog.Item) []string {
	var names []string
	for _, p := range it.SupportedAvatar {
		if name, ok := store.AvatarName(p); ok {
			names = append(names, name)
		}
	}
	typ := string(it.Type)
	if it.Type == catalog.TypeCustom {
		typ = it.CustomCategory
	}
	return []string{
		it.Title,
		it.AuthorName,
		it.AuthorImagePath,
		it.ImagePath,
		typ,
		strings.Join(names, ";"),
		strconv.Itoa(it.BoothID),
		it.ItemPath,
	}
}
