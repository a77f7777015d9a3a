package query

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
)

// AvatarNamer resolves an avatar path to its display name.
type AvatarNamer interface {
	AvatarName(path string) (string, bool)
}

// MatchItems returns the items passing f, ranked by how many words hit
// the title plus how many hit the author name. Ties keep input order.
// Structured keys gate but do not rank.
func (f Filter) MatchItems(items []catalog.Item, names AvatarNamer, tr i18n.Translator) []catalog.Item {
	words := lowerAll(f.Words)

	var out []catalog.Item
	var scores []int
	for _, it := range items {
		if !f.matchStructured(it, names, tr) || !matchWords(it, words) {
			continue
		}
		out = append(out, it)
		scores = append(scores, rankItem(it, words))
	}
	sortByScore(out, scores)
	return out
}

func (f Filter) matchStructured(it catalog.Item, names AvatarNamer, tr i18n.Translator) bool {
	if len(f.Author) > 0 && !slices.Contains(f.Author, it.AuthorName) {
		return false
	}
	if len(f.Title) > 0 && !slices.Contains(f.Title, it.Title) {
		return false
	}
	if len(f.BoothID) > 0 && !slices.Contains(f.BoothID, strconv.Itoa(it.BoothID)) {
		return false
	}
	if len(f.Avatar) > 0 && !anyAvatar(it, f.Avatar, names) {
		return false
	}
	if len(f.Category) > 0 {
		name := tr.T(string(it.Type))
		ok := false
		for _, c := range f.Category {
			if strings.Contains(name, c) || strings.Contains(it.CustomCategory, c) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func anyAvatar(it catalog.Item, wanted []string, names AvatarNamer) bool {
	for _, p := range it.SupportedAvatar {
		name, ok := names.AvatarName(p)
		if !ok {
			continue
		}
		for _, w := range wanted {
			if strings.Contains(name, w) {
				return true
			}
		}
	}
	return false
}

func matchWords(it catalog.Item, words []string) bool {
	title := strings.ToLower(it.Title)
	author := strings.ToLower(it.AuthorName)
	booth := strconv.Itoa(it.BoothID)
	for _, w := range words {
		if strings.Contains(title, w) || strings.Contains(author, w) || strings.Contains(booth, w) {
			continue
		}
		found := false
		for _, p := range it.SupportedAvatar {
			if strings.Contains(strings.ToLower(p), w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func rankItem(it catalog.Item, words []string) int {
	title := strings.ToLower(it.Title)
	author := strings.ToLower(it.AuthorName)
	n := 0
	for _, w := range words {
		if strings.Contains(title, w) {
			n++
		}
		if strings.Contains(author, w) {
			n++
		}
	}
	return n
}

// MatchFiles filters files whose names contain every word, ranked by
// the number of words matched. Structured keys are ignored inside a
// folder.
func (f Filter) MatchFiles(files []folder.File) []folder.File {
	words := lowerAll(f.Words)

	var out []folder.File
	var scores []int
	for _, file := range files {
		name := strings.ToLower(file.Name)
		n := 0
		for _, w := range words {
			if strings.Contains(name, w) {
				n++
			}
		}
		if n != len(words) {
			continue
		}
		out = append(out, file)
		scores = append(scores, n)
	}
	sortByScore(out, scores)
	return out
}

func sortByScore[T any](list []T, scores []int) {
	idx := make([]int, len(list))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	sorted := make([]T, len(list))
	for i, j := range idx {
		sorted[i] = list[j]
	}
	copy(list, sorted)
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
