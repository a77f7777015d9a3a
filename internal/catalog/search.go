package catalog

// ByPath returns the item stored at path.
func (s *Store) ByPath(path string) (Item, bool) {
	if i := s.indexOf(path); i >= 0 {
		return s.items[i].Clone(), true
	}
	return Item{}, false
}

// Avatars returns every avatar item in store order.
func (s *Store) Avatars() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Type == TypeAvatar {
			out = append(out, it.Clone())
		}
	}
	return out
}

// Authors derives the author list from items, grouped by name in the
// order each author first appears. The first item's image wins.
func (s *Store) Authors() []Author {
	var out []Author
	seen := map[string]bool{}
	for _, it := range s.items {
		if seen[it.AuthorName] {
			continue
		}
		seen[it.AuthorName] = true
		out = append(out, Author{Name: it.AuthorName, ImagePath: it.AuthorImagePath})
	}
	return out
}

// AvatarName resolves an avatar path to its display title.
func (s *Store) AvatarName(path string) (string, bool) {
	for _, it := range s.items {
		if it.ItemPath == path {
			return it.Title, true
		}
	}
	return "", false
}

// ByAuthor returns every item by the named author in store order.
func (s *Store) ByAuthor(name string) []Item {
	var out []Item
	for _, it := range s.items {
		if it.AuthorName == name {
			out = append(out, it.Clone())
		}
	}
	return out
}
