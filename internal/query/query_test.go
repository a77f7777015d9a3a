package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/query"
)

func TestParse_RoundTripExample(t *testing.T) {
	f := query.Parse(`Author="Jane Doe" cute hat`)
	assert.Equal(t, []string{"Jane Doe"}, f.Author)
	assert.Equal(t, []string{"cute", "hat"}, f.Words)

	items := []catalog.Item{{Title: "Cute Hat v2", AuthorName: "Jane Doe", BoothID: -1, ItemPath: "/i/hat"}}
	got := f.MatchItems(items, catalog.NewStore(items, nil, nil), i18n.English)
	require.Len(t, got, 1)
	assert.Equal(t, "/i/hat", got[0].ItemPath)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want query.Filter
	}{
		{"empty", "", query.Filter{}},
		{"whitespace only", "   \t ", query.Filter{}},
		{"multiple values accumulate", "Author=a Author=b Author=a", query.Filter{Author: []string{"a", "b"}}},
		{"duplicate words dropped", "hat hat cap", query.Filter{Words: []string{"hat", "cap"}}},
		{"unknown key is a word", "Color=red", query.Filter{Words: []string{"Color=red"}}},
		{"keys are case-sensitive", "author=x", query.Filter{Words: []string{"author=x"}}},
		{"empty value ignored", "Title= hat", query.Filter{Words: []string{"hat"}}},
		{"quoted value with spaces", `Title="Frill Hat" BoothId=12`, query.Filter{Title: []string{"Frill Hat"}, BoothID: []string{"12"}}},
		{"unterminated quote", `Avatar="Karin chan`, query.Filter{Avatar: []string{"Karin chan"}}},
		{"quoted bare word", `"two words"`, query.Filter{Words: []string{"two words"}}},
		{"category", "Category=Acc", query.Filter{Category: []string{"Acc"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Parse(tt.in))
		})
	}
}

func TestFilter_String(t *testing.T) {
	f := query.Filter{Author: []string{"Jane Doe"}, Words: []string{"hat"}}
	assert.Equal(t, `Author="Jane Doe" hat`, f.String())
	assert.Equal(t, f, query.Parse(f.String()))
}

func TestFilter_IsEmpty(t *testing.T) {
	assert.True(t, query.Parse("").IsEmpty())
	assert.False(t, query.Parse("x").IsEmpty())
	assert.False(t, query.Parse("Title=x").IsEmpty())
}

func testItems() []catalog.Item {
	return []catalog.Item{
		{Title: "Karin", AuthorName: "Studio A", Type: catalog.TypeAvatar, BoothID: 100, ItemPath: "/a/karin"},
		{Title: "Mio", AuthorName: "Studio B", Type: catalog.TypeAvatar, BoothID: -1, ItemPath: "/a/mio"},
		{Title: "Hat", AuthorName: "Hatter", Type: catalog.TypeAccessory, BoothID: 200, ItemPath: "/i/hat",
			SupportedAvatar: []string{"/a/karin"}},
		{Title: "Hat Hatter Edition", AuthorName: "Hatter", Type: catalog.TypeAccessory, BoothID: -1, ItemPath: "/i/hat2"},
		{Title: "Glow", AuthorName: "FX", Type: catalog.TypeCustom, CustomCategory: "Effects", BoothID: -1, ItemPath: "/i/glow",
			SupportedAvatar: []string{"/a/mio"}},
	}
}

func paths(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ItemPath
	}
	return out
}

func TestMatchItems_Structured(t *testing.T) {
	items := testItems()
	store := catalog.NewStore(items, nil, nil)
	match := func(q string) []string {
		return paths(query.Parse(q).MatchItems(items, store, i18n.English))
	}

	assert.Equal(t, []string{"/i/hat", "/i/hat2"}, match("Author=Hatter"))
	assert.Equal(t, []string{"/i/hat"}, match("Title=Hat"), "title is exact")
	assert.Equal(t, []string{"/i/hat"}, match("BoothId=200"))
	assert.Equal(t, []string{"/i/hat"}, match("Avatar=Kar"), "avatar is a substring of the resolved name")
	assert.Equal(t, []string{"/i/glow"}, match("Avatar=Mio"))
	assert.Equal(t, []string{"/i/hat", "/i/hat2"}, match("Category=Access"))
	assert.Equal(t, []string{"/i/glow"}, match("Category=Effe"))
	assert.Equal(t, []string{"/i/hat", "/i/glow"}, match("Author=Hatter Author=FX Title=Hat Title=Glow"))
	assert.Empty(t, match("Author=Hatter Title=Glow"), "keys combine with AND")
}

func TestMatchItems_Words(t *testing.T) {
	items := testItems()
	store := catalog.NewStore(items, nil, nil)
	match := func(q string) []string {
		return paths(query.Parse(q).MatchItems(items, store, i18n.English))
	}

	assert.Equal(t, []string{"/i/hat"}, match("karin hat"), "word may match a supported avatar path")
	assert.Equal(t, []string{"/a/karin"}, match("100"), "word may match the booth id")
	assert.Equal(t, []string{"/a/karin", "/a/mio"}, match("studio"))
	assert.Len(t, match(""), len(items))
}

func TestMatchItems_RankingMonotonic(t *testing.T) {
	items := testItems()
	store := catalog.NewStore(items, nil, nil)
	got := paths(query.Parse("hatter").MatchItems(items, store, i18n.English))
	// hat2 hits title and author; hat hits only author.
	assert.Equal(t, []string{"/i/hat2", "/i/hat"}, got)
}

func TestMatchFiles(t *testing.T) {
	files := []folder.File{
		{Name: "hat_body.png"},
		{Name: "hat.unitypackage"},
		{Name: "readme.txt"},
	}
	got := query.Parse("HAT").MatchFiles(files)
	require.Len(t, got, 2)
	assert.Equal(t, "hat_body.png", got[0].Name)

	got = query.Parse("hat body").MatchFiles(files)
	require.Len(t, got, 1)
	assert.Equal(t, "hat_body.png", got[0].Name)

	assert.Len(t, query.Parse("").MatchFiles(files), 3)
}
