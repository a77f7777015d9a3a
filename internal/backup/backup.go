// Package backup snapshots, archives, exports and restores the catalog
// data directory.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/util"
)

// TimeLayout names backup folders, archives and exports.
const TimeLayout = "2006-01-02-15-04-05"

// AutoDir is the sub-directory of the backup directory that holds
// automatic snapshots.
const AutoDir = "auto"

const maxSuffix = 60

var (
	// ErrTooMany is returned when every suffixed name for a timestamp
	// is already taken.
	ErrTooMany = errors.New("too many backups for the same second")
	// ErrNoData is returned when the data directory holds no catalog files.
	ErrNoData = errors.New("no catalog data to back up")
)

// DataFiles are the files copied into automatic snapshots.
var DataFiles = []string{
	catalog.ItemsFile,
	catalog.CommonGroupsFile,
	catalog.CustomCategoriesFile,
	catalog.SQLiteFile,
}

// Checkpointer is implemented by backends that hold committed writes
// outside their data files until flushed.
type Checkpointer interface {
	Checkpoint() error
}

// uniqueName returns the first free name among stamp+ext and
// stamp_1+ext up to stamp_60+ext inside dir.
func uniqueName(dir string, now time.Time, ext string) (string, error) {
	stamp := now.Format(TimeLayout)
	name := stamp + ext
	for i := 1; util.Exists(filepath.Join(dir, name)); i++ {
		if i > maxSuffix {
			return "", fmt.Errorf("%s%s: %w", stamp, ext, ErrTooMany)
		}
		name = fmt.Sprintf("%s_%d%s", stamp, i, ext)
	}
	return filepath.Join(dir, name), nil
}

// Result describes a snapshot.
type Result struct {
	Path string
	// Unchanged is set when the data matched the latest snapshot and
	// no new folder was written.
	Unchanged bool
}

// Snapshot copies the data files of dataDir into a new timestamped
// folder under backupDir/auto. When the files match the most recent
// snapshot nothing is written.
func Snapshot(dataDir, backupDir string, now time.Time) (Result, error) {
	var present []string
	for _, name := range DataFiles {
		if util.Exists(filepath.Join(dataDir, name)) {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return Result{}, fmt.Errorf("%s: %w", dataDir, ErrNoData)
	}

	autoDir := filepath.Join(backupDir, AutoDir)
	if latest, ok := latestSnapshot(autoDir); ok && sameFiles(dataDir, latest, present) {
		return Result{Path: latest, Unchanged: true}, nil
	}

	dst, err := uniqueName(autoDir, now, "")
	if err != nil {
		return Result{}, err
	}
	if _, err := util.CopyFiles(dataDir, dst, present); err != nil {
		return Result{}, fmt.Errorf("copying snapshot: %w", err)
	}
	return Result{Path: dst}, nil
}

// Snapshots lists the automatic snapshot folders, newest first.
func Snapshots(backupDir string) ([]string, error) {
	autoDir := filepath.Join(backupDir, AutoDir)
	names, err := util.ListDirs(autoDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	sortSnapshotNames(names)
	slices.Reverse(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, filepath.Join(autoDir, n))
	}
	return out, nil
}

func latestSnapshot(autoDir string) (string, bool) {
	names, err := util.ListDirs(autoDir)
	if err != nil || len(names) == 0 {
		return "", false
	}
	sortSnapshotNames(names)
	return filepath.Join(autoDir, names[len(names)-1]), true
}

// sortSnapshotNames orders names as written by uniqueName: by timestamp,
// then by numeric suffix. Names that do not parse sort first.
func sortSnapshotNames(names []string) {
	slices.SortStableFunc(names, func(a, b string) int {
		ta, na, oka := parseSnapshotName(a)
		tb, nb, okb := parseSnapshotName(b)
		switch {
		case !oka || !okb:
			if oka != okb {
				if oka {
					return 1
				}
				return -1
			}
			return strings.Compare(a, b)
		case !ta.Equal(tb):
			return ta.Compare(tb)
		default:
			return na - nb
		}
	})
}

func parseSnapshotName(name string) (time.Time, int, bool) {
	stamp, suffix, hasSuffix := strings.Cut(name, "_")
	t, err := time.Parse(TimeLayout, stamp)
	if err != nil {
		return time.Time{}, 0, false
	}
	if !hasSuffix {
		return t, 0, true
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return time.Time{}, 0, false
	}
	return t, n, true
}

func sameFiles(dataDir, snapshotDir string, names []string) bool {
	for _, name := range DataFiles {
		inSnapshot := util.Exists(filepath.Join(snapshotDir, name))
		if inSnapshot != slices.Contains(names, name) {
			return false
		}
	}
	for _, name := range names {
		same, err := util.SameContent(filepath.Join(dataDir, name), filepath.Join(snapshotDir, name))
		if err != nil || !same {
			return false
		}
	}
	return true
}

// Archive zips every file under dataDir into backupDir. The backup
// directory itself is skipped when it lives inside dataDir.
func Archive(dataDir, backupDir string, now time.Time) (string, error) {
	if err := util.EnsureDir(backupDir); err != nil {
		return "", err
	}
	dst, err := uniqueName(backupDir, now, ".zip")
	if err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}

	zw := zip.NewWriter(f)
	walkErr := filepath.WalkDir(dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if samePath(path, backupDir) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(dataDir, path)
		if err != nil {
			return err
		}
		return addFile(zw, path, filepath.ToSlash(rel))
	})
	closeErr := zw.Close()
	if err := f.Close(); err != nil && closeErr == nil {
		closeErr = err
	}
	if walkErr != nil || closeErr != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("writing archive: %w", errors.Join(walkErr, closeErr))
	}
	return dst, nil
}

func samePath(a, b string) bool {
	ca, err1 := filepath.Abs(a)
	cb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && ca == cb
}

func addFile(zw *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate
	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(w, in)
	return err
}

// Extract unpacks an archive into dst. Entries that would escape dst
// are rejected.
func Extract(archive, dst string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	root, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	for _, f := range r.File {
		target := filepath.Join(root, filepath.FromSlash(f.Name))
		if target != root && !strings.HasPrefix(target, root+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes destination", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := util.EnsureDir(target); err != nil {
				return err
			}
			continue
		}
		if err := extractFile(f, target); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	if err := util.EnsureDir(filepath.Dir(target)); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
