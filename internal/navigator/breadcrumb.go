package navigator

import (
	"strings"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/query"
)

const sep = " / "

// Breadcrumb renders the path, or the search summary while searching.
func (n *Navigator) Breadcrumb(tr i18n.Translator) string {
	if n.searching {
		return SearchBreadcrumb(n.filter, tr)
	}
	return PathBreadcrumb(n.state, tr)
}

// PathBreadcrumb joins root, category, item title and sub-folder.
func PathBreadcrumb(s State, tr i18n.Translator) string {
	var parts []string
	switch r := s.Root.(type) {
	case AvatarRoot:
		parts = append(parts, oneLine(r.Title))
	case AuthorRoot:
		parts = append(parts, oneLine(r.Author))
	case CategoryRoot:
		parts = append(parts, CategoryName(r.Category, tr))
	default:
		return tr.T(i18n.KeyPathPlaceholder)
	}
	if !s.Category.IsZero() {
		parts = append(parts, CategoryName(s.Category, tr))
	}
	if s.Item != nil {
		parts = append(parts, oneLine(s.Item.Title))
		if s.Subfolder != "" {
			parts = append(parts, tr.T(string(s.Subfolder)))
		}
	}
	return strings.Join(parts, sep)
}

// SearchBreadcrumb summarises an active filter.
func SearchBreadcrumb(f query.Filter, tr i18n.Translator) string {
	var parts []string
	add := func(label string, values []string) {
		if len(values) > 0 {
			parts = append(parts, label+": "+strings.Join(values, ", "))
		}
	}
	add(tr.T(i18n.KeySearchAuthor), f.Author)
	add(tr.T(i18n.KeySearchTitle), f.Title)
	add("BoothID", f.BoothID)
	add(tr.T(i18n.KeySearchAvatar), f.Avatar)
	add(tr.T(i18n.KeySearchCategory), f.Category)
	if len(f.Words) > 0 {
		parts = append(parts, strings.Join(f.Words, ", "))
	}
	return tr.T(i18n.KeySearching) + strings.Join(parts, sep)
}

// CategoryName is the display name of a category: the label itself for
// custom categories, the translated type otherwise.
func CategoryName(c catalog.Category, tr i18n.Translator) string {
	if c.Type == catalog.TypeCustom {
		return c.Custom
	}
	return tr.T(string(c.Type))
}

func oneLine(s string) string {
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(s)
}
