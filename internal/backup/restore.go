package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/util"
)

// ErrNoCatalog is returned when a restore source holds no recognised
// catalog files.
var ErrNoCatalog = errors.New("no catalog found")

// Load reads a catalog from a restore source: a snapshot or data
// folder (YAML or SQLite), a legacy JSON data folder, or a .zip
// archive holding any of these.
func Load(path string) (*catalog.Store, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		tmp, err := os.MkdirTemp("", "avex-restore-")
		if err != nil {
			return nil, err
		}
		defer os.RemoveAll(tmp)
		if err := Extract(path, tmp); err != nil {
			return nil, err
		}
		return loadDir(tmp)
	}
	return loadDir(path)
}

func loadDir(dir string) (*catalog.Store, error) {
	switch {
	case util.Exists(filepath.Join(dir, catalog.ItemsFile)):
		return catalog.Load(catalog.NewFileBackend(dir))
	case util.Exists(filepath.Join(dir, catalog.SQLiteFile)):
		db, err := catalog.OpenSQLite(filepath.Join(dir, catalog.SQLiteFile))
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.Load(db)
	case util.Exists(filepath.Join(dir, catalog.LegacyItemsFile)):
		return catalog.ImportLegacy(dir)
	}
	// Archives of a whole data directory may nest it one level down.
	if subdirs, err := util.ListDirs(dir); err == nil && len(subdirs) == 1 {
		return loadDir(filepath.Join(dir, subdirs[0]))
	}
	return nil, fmt.Errorf("%s: %w", dir, ErrNoCatalog)
}
