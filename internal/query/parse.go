// Package query parses search box input into a structured filter and
// matches items and files against it.
package query

import (
	"strings"
	"unicode"
)

// Key is a structured filter key. Key names are case-sensitive.
type Key string

const (
	Author   Key = "Author"
	Title    Key = "Title"
	BoothID  Key = "BoothId"
	Avatar   Key = "Avatar"
	Category Key = "Category"
)

// Keys lists the recognised keys in display order.
var Keys = []Key{Author, Title, BoothID, Avatar, Category}

// Filter is a parsed query. Values within one key are alternatives;
// Words must all match. Every list keeps insertion order without
// duplicates.
type Filter struct {
	Author   []string
	Title    []string
	BoothID  []string
	Avatar   []string
	Category []string
	Words    []string
}

// Parse never fails. Unknown keys and stray syntax become bare words;
// an unterminated quote runs to the end of input. A recognised key with
// an empty value is dropped.
func Parse(q string) Filter {
	var f Filter
	for _, tok := range tokenize(q) {
		k, v, ok := strings.Cut(tok, "=")
		if ok {
			if list := f.values(Key(k)); list != nil {
				if v != "" {
					*list = appendUnique(*list, v)
				}
				continue
			}
		}
		f.Words = appendUnique(f.Words, tok)
	}
	return f
}

// Values returns the accumulated values for key.
func (f Filter) Values(k Key) []string {
	if p := f.values(k); p != nil {
		return *p
	}
	return nil
}

func (f *Filter) values(k Key) *[]string {
	switch k {
	case Author:
		return &f.Author
	case Title:
		return &f.Title
	case BoothID:
		return &f.BoothID
	case Avatar:
		return &f.Avatar
	case Category:
		return &f.Category
	}
	return nil
}

// IsEmpty reports whether the filter has no clauses at all.
func (f Filter) IsEmpty() bool {
	for _, k := range Keys {
		if len(f.Values(k)) > 0 {
			return false
		}
	}
	return len(f.Words) == 0
}

// String renders the filter back into query syntax. Values are quoted
// when they contain whitespace.
func (f Filter) String() string {
	var parts []string
	for _, k := range Keys {
		for _, v := range f.Values(k) {
			parts = append(parts, string(k)+"="+quote(v))
		}
	}
	for _, w := range f.Words {
		parts = append(parts, quote(w))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return `"` + s + `"`
	}
	return s
}

// tokenize splits on whitespace outside double quotes. Quotes group and
// are stripped.
func tokenize(s string) []string {
	var out []string
	var cur []rune
	inQuote := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
	}

	for _, r := range s {
		if r == '"' {
			inQuote = !inQuote
			continue
		}
		if !inQuote && unicode.IsSpace(r) {
			flush()
			continue
		}
		cur = append(cur, r)
	}

	flush()
	return out
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
