package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name used inside the data directory.
const SQLiteFile = "avex.db"

// SQLiteBackend stores collections in a single SQLite database.
// Collection order is kept through a position column.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (and migrates) the database at path.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	// modernc.org/sqlite registers itself as "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configuring database: %w", err)
		}
	}
	b := &SQLiteBackend{db: db}
	if err := b.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return b, nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Checkpoint moves committed pages from the write-ahead log into the
// database file and truncates the log, so the file alone holds the
// catalog.
func (b *SQLiteBackend) Checkpoint() error {
	var busy, logFrames, checkpointed int
	if err := b.db.QueryRow(`PRAGMA wal_checkpoint(TRUNCATE);`).Scan(&busy, &logFrames, &checkpointed); err != nil {
		return fmt.Errorf("checkpointing database: %w", err)
	}
	if busy != 0 {
		return fmt.Errorf("checkpointing database: busy")
	}
	return nil
}

func (b *SQLiteBackend) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS items (
			path TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_image TEXT NOT NULL,
			image TEXT NOT NULL,
			type TEXT NOT NULL,
			custom_category TEXT NOT NULL,
			booth_id INTEGER NOT NULL,
			material_path TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS supported_avatars (
			item_path TEXT NOT NULL,
			position INTEGER NOT NULL,
			avatar_path TEXT NOT NULL,
			PRIMARY KEY(item_path, position)
		);`,
		`CREATE TABLE IF NOT EXISTS common_groups (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS common_group_avatars (
			group_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			avatar_path TEXT NOT NULL,
			PRIMARY KEY(group_name, position)
		);`,
		`CREATE TABLE IF NOT EXISTS custom_categories (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		);`,
	}
	for _, st := range stmts {
		if _, err := b.db.Exec(st); err != nil {
			return err
		}
	}
	return nil
}

func (b *SQLiteBackend) LoadItems() ([]Item, error) {
	rows, err := b.db.Query(`SELECT path, title, author_name, author_image, image, type,
		custom_category, booth_id, material_path FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []Item{}
	index := map[string]int{}
	for rows.Next() {
		var it Item
		var typ string
		if err := rows.Scan(&it.ItemPath, &it.Title, &it.AuthorName, &it.AuthorImagePath,
			&it.ImagePath, &typ, &it.CustomCategory, &it.BoothID, &it.MaterialPath); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		it.Type = ParseItemType(typ)
		index[it.ItemPath] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs, err := b.db.Query(`SELECT item_path, avatar_path FROM supported_avatars ORDER BY item_path, position`)
	if err != nil {
		return nil, fmt.Errorf("querying supported avatars: %w", err)
	}
	defer func() { _ = refs.Close() }()
	for refs.Next() {
		var itemPath, avatarPath string
		if err := refs.Scan(&itemPath, &avatarPath); err != nil {
			return nil, fmt.Errorf("scanning supported avatar: %w", err)
		}
		if i, ok := index[itemPath]; ok {
			items[i].SupportedAvatar = append(items[i].SupportedAvatar, avatarPath)
		}
	}
	return items, refs.Err()
}

func (b *SQLiteBackend) SaveItems(items []Item) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM supported_avatars`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return err
	}
	for pos, it := range items {
		if _, err := tx.Exec(`INSERT INTO items(path, position, title, author_name, author_image,
			image, type, custom_category, booth_id, material_path) VALUES(?,?,?,?,?,?,?,?,?,?)`,
			it.ItemPath, pos, it.Title, it.AuthorName, it.AuthorImagePath, it.ImagePath,
			string(it.Type), it.CustomCategory, it.BoothID, it.MaterialPath); err != nil {
			return fmt.Errorf("inserting item %s: %w", it.ItemPath, err)
		}
		for j, ref := range it.SupportedAvatar {
			if _, err := tx.Exec(`INSERT INTO supported_avatars(item_path, position, avatar_path) VALUES(?,?,?)`,
				it.ItemPath, j, ref); err != nil {
				return fmt.Errorf("inserting supported avatar: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (b *SQLiteBackend) LoadCommonGroups() ([]CommonGroup, error) {
	rows, err := b.db.Query(`SELECT name FROM common_groups ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying common groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := []CommonGroup{}
	index := map[string]int{}
	for rows.Next() {
		var g CommonGroup
		if err := rows.Scan(&g.Name); err != nil {
			return nil, err
		}
		g.Avatars = []string{}
		index[g.Name] = len(groups)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	members, err := b.db.Query(`SELECT group_name, avatar_path FROM common_group_avatars ORDER BY group_name, position`)
	if err != nil {
		return nil, fmt.Errorf("querying common group avatars: %w", err)
	}
	defer func() { _ = members.Close() }()
	for members.Next() {
		var name, path string
		if err := members.Scan(&name, &path); err != nil {
			return nil, err
		}
		if i, ok := index[name]; ok {
			groups[i].Avatars = append(groups[i].Avatars, path)
		}
	}
	return groups, members.Err()
}

func (b *SQLiteBackend) SaveCommonGroups(groups []CommonGroup) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM common_group_avatars`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM common_groups`); err != nil {
		return err
	}
	for pos, g := range groups {
		if _, err := tx.Exec(`INSERT INTO common_groups(name, position) VALUES(?,?)`, g.Name, pos); err != nil {
			return fmt.Errorf("inserting group %q: %w", g.Name, err)
		}
		for j, a := range g.Avatars {
			if _, err := tx.Exec(`INSERT INTO common_group_avatars(group_name, position, avatar_path) VALUES(?,?,?)`,
				g.Name, j, a); err != nil {
				return fmt.Errorf("inserting group member: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (b *SQLiteBackend) LoadCustomCategories() ([]string, error) {
	rows, err := b.db.Query(`SELECT name FROM custom_categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying custom categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (b *SQLiteBackend) SaveCustomCategories(categories []string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM custom_categories`); err != nil {
		return err
	}
	for pos, name := range categories {
		if _, err := tx.Exec(`INSERT INTO custom_categories(name, position) VALUES(?,?)`, name, pos); err != nil {
			return fmt.Errorf("inserting custom category %q: %w", name, err)
		}
	}
	return tx.Commit()
}
