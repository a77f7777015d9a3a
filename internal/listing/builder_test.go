package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/navigator"
	"github.com/blackwell-systems/avex/internal/query"
)

var accessory = catalog.Category{Type: catalog.TypeAccessory}

func scenarioStore() *catalog.Store {
	return catalog.NewStore([]catalog.Item{
		{Title: "A1", AuthorName: "Maker", Type: catalog.TypeAvatar, BoothID: -1, ItemPath: "/a1"},
		{Title: "Hat", AuthorName: "Zed", Type: catalog.TypeAccessory, BoothID: -1, ItemPath: "/hat"},
		{Title: "Socks", AuthorName: "Amy", Type: catalog.TypeAccessory, BoothID: 77, ItemPath: "/socks",
			SupportedAvatar: []string{"/a1"}},
	}, nil, nil)
}

func titles(rows []listing.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestItems_HatAndSocksScenario(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English, Sort: listing.SortTitle}

	s := navigator.State{Root: navigator.AvatarRoot{Title: "A1", Path: "/a1"}, Category: accessory}
	assert.Equal(t, []string{"Hat", "Socks"}, titles(b.Items(s)))

	s.Root = navigator.AvatarRoot{Title: navigator.WildcardTitle}
	assert.Equal(t, []string{"Hat", "Socks"}, titles(b.Items(s)))
}

func TestItems_SortByAuthor(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English, Sort: listing.SortAuthor}
	s := navigator.State{Root: navigator.CategoryRoot{Category: accessory}}
	assert.Equal(t, []string{"Socks", "Hat"}, titles(b.Items(s)))
}

func TestItems_GateAndCommonGroup(t *testing.T) {
	store := catalog.NewStore([]catalog.Item{
		{Title: "A1", Type: catalog.TypeAvatar, ItemPath: "/a1"},
		{Title: "A2", Type: catalog.TypeAvatar, ItemPath: "/a2"},
		{Title: "A3", Type: catalog.TypeAvatar, ItemPath: "/a3"},
		{Title: "Bow", AuthorName: "X", Type: catalog.TypeAccessory, ItemPath: "/bow", SupportedAvatar: []string{"/a2"}},
		{Title: "Cap", AuthorName: "X", Type: catalog.TypeAccessory, ItemPath: "/cap", SupportedAvatar: []string{"/a3"}},
	}, []catalog.CommonGroup{{Name: "Slim", Avatars: []string{"/a1", "/a2"}}}, nil)
	b := listing.Builder{Store: store, Tr: i18n.English}

	rows := b.Items(navigator.State{Root: navigator.AvatarRoot{Title: "A1", Path: "/a1"}, Category: accessory})
	require.Len(t, rows, 1)
	assert.Equal(t, "Bow", rows[0].Title)
	assert.Equal(t, "Author: X | Common avatar: Slim", rows[0].Subtitle)
	assert.Equal(t, listing.SelectItem{Path: "/bow"}, rows[0].Command)
}

func TestItems_AuthorMode(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English}
	rows := b.Items(navigator.State{Root: navigator.AuthorRoot{Author: "Amy"}, Category: accessory})
	assert.Equal(t, []string{"Socks"}, titles(rows))
}

func TestCategories_OmitsEmptyBuckets(t *testing.T) {
	store := scenarioStore()
	store.AddCustomCategory("Effects")
	b := listing.Builder{Store: store, Tr: i18n.English}

	rows := b.Categories(navigator.State{Root: navigator.AvatarRoot{Title: "A1", Path: "/a1"}})
	assert.Equal(t, []string{"Avatar", "Accessory"}, titles(rows))
	assert.Equal(t, "2 items", rows[1].Subtitle)
	assert.Equal(t, listing.SelectCategory{Category: accessory}, rows[1].Command)
}

func TestRootCategories_KeepsEmptyBuckets(t *testing.T) {
	store := scenarioStore()
	store.AddCustomCategory("Effects")
	b := listing.Builder{Store: store, Tr: i18n.English}

	rows := b.RootCategories()
	require.Len(t, rows, len(catalog.FixedTypes)+1)
	assert.Equal(t, "Avatar", rows[0].Title)
	assert.Equal(t, "1 items", rows[0].Subtitle)
	last := rows[len(rows)-1]
	assert.Equal(t, "Effects", last.Title)
	assert.Equal(t, "0 items", last.Subtitle)
}

func TestAvatarsAndAuthors(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English}

	avatars := b.Avatars()
	require.Len(t, avatars, 1)
	assert.Equal(t, "Author: Maker", avatars[0].Subtitle)
	assert.Equal(t, listing.SelectAvatar{Path: "/a1"}, avatars[0].Command)

	authors := b.Authors()
	assert.Equal(t, []string{"Amy", "Maker", "Zed"}, titles(authors))
	assert.Equal(t, "1 items", authors[0].Subtitle)
}

func TestItemActions(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English}
	rows := b.Items(navigator.State{Root: navigator.CategoryRoot{Category: accessory}})
	require.Len(t, rows, 2)

	hasBooth := func(r listing.Row) bool {
		for _, a := range r.Actions {
			if _, ok := a.Command.(listing.CopyBoothLink); ok {
				return true
			}
		}
		return false
	}
	assert.False(t, hasBooth(rows[0]), "Hat has no booth id")
	assert.True(t, hasBooth(rows[1]), "Socks has a booth id")
}

func TestFolderRows(t *testing.T) {
	info := folder.NewInfo(map[folder.Label][]folder.File{
		folder.Texture:  {{Name: "b.png", Path: "/i/b.png", Ext: ".png"}, {Name: "a.png", Path: "/i/a.png", Ext: ".png"}},
		folder.Document: {{Name: "readme.txt", Path: "/i/readme.txt", Ext: ".txt"}},
	})
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English}

	cats := b.FolderCategories(info)
	assert.Equal(t, []string{"Texture", "Document"}, titles(cats))

	files := b.FolderFiles(info, folder.Texture)
	assert.Equal(t, []string{"a.png", "b.png"}, titles(files))
	assert.Equal(t, "png file", files[0].Subtitle)
	assert.Equal(t, "/i/a.png", files[0].Thumbnail)
	assert.Equal(t, listing.OpenFile{Path: "/i/a.png"}, files[0].Command)

	doc := b.FolderFiles(info, folder.Document)
	assert.Empty(t, doc[0].Thumbnail)
}

func TestSearchItemsAndFiles(t *testing.T) {
	b := listing.Builder{Store: scenarioStore(), Tr: i18n.English}
	rows, total := b.SearchItems(query.Parse("s"))
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"Socks"}, titles(rows))
	assert.Equal(t, listing.OpenSearchResult{Path: "/socks"}, rows[0].Command)

	files := []folder.File{{Name: "hat.png", Ext: ".png"}, {Name: "x.txt", Ext: ".txt"}}
	frows, ftotal := b.SearchFiles(files, query.Parse("hat"))
	assert.Equal(t, 2, ftotal)
	assert.Equal(t, []string{"hat.png"}, titles(frows))
}
