package explorer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/query"
)

// Dispatch applies a row or action command. Lookups that miss return
// an error wrapping catalog.ErrNotFound or folder.ErrNotFound and leave
// the state unchanged.
func (s *Session) Dispatch(cmd listing.Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch c := cmd.(type) {
	case listing.SelectAvatar:
		it, err := s.lookup(c.Path)
		if err != nil {
			return err
		}
		s.nav.SelectAvatar(it.Title, it.ItemPath)
	case listing.SelectAllAvatars:
		s.nav.SelectWildcardAvatar()
	case listing.SelectAuthor:
		s.nav.SelectAuthor(c.Name)
	case listing.SelectRootCategory:
		s.nav.SelectRootCategory(c.Category)
	case listing.SelectCategory:
		if err := s.nav.SelectCategory(c.Category); err != nil {
			return err
		}
	case listing.SelectItem:
		it, err := s.lookup(c.Path)
		if err != nil {
			return err
		}
		if err := s.nav.SelectItem(it); err != nil {
			return fmt.Errorf("opening %s: %w", it.Title, err)
		}
	case listing.SelectSubfolder:
		if err := s.nav.SelectSubfolder(c.Label); err != nil {
			return err
		}
	case listing.OpenSearchResult:
		it, err := s.lookup(c.Path)
		if err != nil {
			return err
		}
		name := ""
		if len(it.SupportedAvatar) > 0 {
			name, _ = s.store.AvatarName(it.SupportedAvatar[0])
		}
		if err := s.nav.OpenFromSearch(it, name); err != nil {
			return fmt.Errorf("opening %s: %w", it.Title, err)
		}
	case listing.ShowAuthorItems:
		s.nav.SearchFilter(query.Filter{Author: []string{c.Author}})
		s.renderMain()
		return nil
	case listing.OpenFile:
		return s.effect("open file", s.effects.OpenPath(c.Path))
	case listing.OpenFolder:
		return s.effect("open folder", s.effects.OpenPath(c.Path))
	case listing.CopyBoothLink:
		return s.effect("copy booth link", s.effects.CopyText(s.boothLink(c.ID)))
	case listing.OpenBoothLink:
		return s.effect("open booth link", s.effects.OpenURL(s.boothLink(c.ID)))
	case listing.EditItem:
		return s.editInteractive(c.Path)
	case listing.DeleteItem:
		return s.deleteInteractive(c.Path)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
	s.renderMain()
	return nil
}

// SelectWildcardAvatar roots the path at "*", listing items for any avatar.
func (s *Session) SelectWildcardAvatar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav.SelectWildcardAvatar()
	s.renderMain()
}

// References returns the items listing an avatar as supported and the
// common groups containing it. Both are empty for other item types.
func (s *Session) References(path string) (referencedBy, groups []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.store.ByPath(path)
	if !ok || it.Type != catalog.TypeAvatar {
		return nil, nil
	}
	return s.store.ReferencedBy(path), s.store.GroupsContaining(path)
}

func (s *Session) lookup(path string) (catalog.Item, error) {
	it, ok := s.store.ByPath(path)
	if !ok {
		return catalog.Item{}, fmt.Errorf("%s: %w", path, catalog.ErrNotFound)
	}
	return it, nil
}

func (s *Session) effect(what string, err error) error {
	if err != nil {
		s.log.WithError(err).WithField("action", what).Warn("side effect failed")
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (s *Session) editInteractive(path string) error {
	if s.editor == nil {
		return fmt.Errorf("edit: %w", ErrNoEditor)
	}
	it, err := s.lookup(path)
	if err != nil {
		return err
	}
	edited, ok := s.editor.EditItem(it)
	if !ok {
		return nil
	}
	return s.editItem(path, edited)
}

func (s *Session) deleteInteractive(path string) error {
	if s.editor == nil {
		return fmt.Errorf("delete: %w", ErrNoEditor)
	}
	it, err := s.lookup(path)
	if err != nil {
		return err
	}
	var refs, groups []string
	if it.Type == catalog.TypeAvatar {
		refs = s.store.ReferencedBy(path)
		groups = s.store.GroupsContaining(path)
	}
	opts, ok := s.editor.ConfirmDelete(it, refs, groups)
	if !ok {
		return nil
	}
	return s.deleteItem(path, opts)
}

// AddItem stores a new item and persists it.
func (s *Session) AddItem(it catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Add(it); err != nil {
		return err
	}
	s.log.WithField("path", it.ItemPath).Info("item added")
	err := s.persist()
	s.refresh()
	return err
}

// EditItem replaces the item at oldPath. Path changes are followed by
// every reference and by the navigation path.
func (s *Session) EditItem(oldPath string, it catalog.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editItem(oldPath, it)
}

func (s *Session) editItem(oldPath string, it catalog.Item) error {
	before, err := s.lookup(oldPath)
	if err != nil {
		return err
	}
	if err := s.store.Update(oldPath, it); err != nil {
		return err
	}
	s.nav.HandleEdited(oldPath, it)
	if before.AuthorName != it.AuthorName && len(s.store.ByAuthor(before.AuthorName)) == 0 {
		s.nav.RenameAuthor(before.AuthorName, it.AuthorName)
	}
	folderErr := s.nav.ReloadFolder(it)
	s.log.WithFields(logrus.Fields{"old_path": oldPath, "path": it.ItemPath}).Info("item edited")

	err = s.persist()
	s.refresh()
	if err != nil {
		return err
	}
	return folderErr
}

// DeleteItem removes an item, applies the requested reference repair
// and drops the item from the navigation path.
func (s *Session) DeleteItem(path string, opts catalog.DeleteOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteItem(path, opts)
}

func (s *Session) deleteItem(path string, opts catalog.DeleteOptions) error {
	if _, err := s.store.Delete(path, opts); err != nil {
		return err
	}
	s.nav.HandleDeleted(path)
	s.log.WithFields(logrus.Fields{
		"path":            path,
		"strip_supported": opts.StripSupported,
		"strip_groups":    opts.StripGroups,
	}).Info("item deleted")

	err := s.persist()
	s.refresh()
	return err
}

// SetThumbnail changes an item's image.
func (s *Session) SetThumbnail(path, image string) error {
	return s.mutate(func() error { return s.store.SetImage(path, image) })
}

// SetAuthorImage changes the image on every item by author.
func (s *Session) SetAuthorImage(author, image string) error {
	return s.mutate(func() error {
		_, err := s.store.SetAuthorImage(author, image)
		return err
	})
}

// SaveGroup creates or overwrites a common group.
func (s *Session) SaveGroup(name string, avatars []string) error {
	return s.mutate(func() error {
		if name == "" {
			return fmt.Errorf("group name is empty")
		}
		s.store.SaveGroup(name, avatars)
		return nil
	})
}

// DeleteGroup removes a common group.
func (s *Session) DeleteGroup(name string) error {
	return s.mutate(func() error { return s.store.DeleteGroup(name) })
}

// AddCustomCategory registers a new category label.
func (s *Session) AddCustomCategory(name string) error {
	return s.mutate(func() error {
		if name == "" {
			return fmt.Errorf("category name is empty")
		}
		if !s.store.AddCustomCategory(name) {
			return fmt.Errorf("category %q already exists", name)
		}
		return nil
	})
}

// Restore replaces every collection, for example from a backup, and
// empties the navigation path.
func (s *Session) Restore(items []catalog.Item, groups []catalog.CommonGroup, categories []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Replace(items, groups, categories)
	s.store.FixSupportedAvatarPaths()
	s.nav.Reset()
	s.log.WithField("items", len(items)).Info("catalog restored")
	err := s.persist()
	s.refresh()
	return err
}

func (s *Session) mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(); err != nil {
		return err
	}
	err := s.persist()
	s.refresh()
	return err
}

// persist saves the store. On failure the in-memory state is kept and
// the error is logged and returned.
func (s *Session) persist() error {
	if s.backend == nil {
		return nil
	}
	if err := s.store.Save(s.backend); err != nil {
		s.log.WithError(err).Error("persisting catalog")
		return fmt.Errorf("persisting catalog: %w", err)
	}
	return nil
}
