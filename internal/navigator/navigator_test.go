package navigator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/navigator"
	"github.com/blackwell-systems/avex/internal/query"
)

type fakeSource struct {
	missing map[string]bool
}

func (f fakeSource) GetFolderInfo(itemPath, _ string) (*folder.Info, error) {
	if f.missing[itemPath] {
		return nil, fmt.Errorf("%s: %w", itemPath, folder.ErrNotFound)
	}
	return folder.NewInfo(map[folder.Label][]folder.File{
		folder.Texture: {{Name: "a.png", Path: itemPath + "/a.png", Ext: ".png"}},
	}), nil
}

var (
	accessory = catalog.Category{Type: catalog.TypeAccessory}
	hat       = catalog.Item{Title: "Frill\nHat", Type: catalog.TypeAccessory, ItemPath: "/i/hat",
		SupportedAvatar: []string{"/a/karin"}}
)

func newNav() *navigator.Navigator {
	return navigator.New(fakeSource{missing: map[string]bool{"/i/gone": true}})
}

func TestBack_EmptyIsIdempotent(t *testing.T) {
	n := newNav()
	for i := 0; i < 3; i++ {
		_, err := n.Back()
		assert.ErrorIs(t, err, navigator.ErrNothingToUndo)
		assert.True(t, n.State().IsEmpty())
	}
}

func TestBack_LIFO(t *testing.T) {
	sequences := map[string]func(n *navigator.Navigator) int{
		"avatar path": func(n *navigator.Navigator) int {
			n.SelectAvatar("Karin", "/a/karin")
			require.NoError(t, n.SelectCategory(accessory))
			require.NoError(t, n.SelectItem(hat))
			require.NoError(t, n.SelectSubfolder(folder.Texture))
			return 4
		},
		"author path": func(n *navigator.Navigator) int {
			n.SelectAuthor("Hatter")
			require.NoError(t, n.SelectCategory(accessory))
			require.NoError(t, n.SelectItem(hat))
			return 3
		},
		"category path": func(n *navigator.Navigator) int {
			n.SelectRootCategory(accessory)
			require.NoError(t, n.SelectItem(hat))
			require.NoError(t, n.SelectSubfolder(folder.Texture))
			return 3
		},
		"wildcard": func(n *navigator.Navigator) int {
			n.SelectWildcardAvatar()
			require.NoError(t, n.SelectCategory(accessory))
			return 2
		},
	}
	for name, build := range sequences {
		t.Run(name, func(t *testing.T) {
			n := newNav()
			steps := build(n)
			for i := 0; i < steps; i++ {
				res, err := n.Back()
				require.NoError(t, err)
				assert.Equal(t, navigator.BackStepped, res)
			}
			assert.True(t, n.State().IsEmpty())
			assert.Equal(t, navigator.Nothing, n.Window())
			_, err := n.Back()
			assert.ErrorIs(t, err, navigator.ErrNothingToUndo)
		})
	}
}

func TestBack_ExitsSearchFirst(t *testing.T) {
	n := newNav()
	n.SelectAvatar("Karin", "/a/karin")
	require.NoError(t, n.SelectCategory(accessory))
	_, ok := n.Search("hat")
	require.True(t, ok)

	res, err := n.Back()
	require.NoError(t, err)
	assert.Equal(t, navigator.BackExitedSearch, res)
	assert.False(t, n.Searching())
	assert.Equal(t, navigator.ItemList, n.Window(), "depth unchanged")

	res, err = n.Back()
	require.NoError(t, err)
	assert.Equal(t, navigator.BackStepped, res)
	assert.Equal(t, navigator.ItemCategoryList, n.Window())
}

func TestBack_ExitsSearchOnEmptyState(t *testing.T) {
	n := newNav()
	n.Search("hat")
	res, err := n.Back()
	require.NoError(t, err)
	assert.Equal(t, navigator.BackExitedSearch, res)
	_, err = n.Back()
	assert.ErrorIs(t, err, navigator.ErrNothingToUndo)
}

func TestWindow(t *testing.T) {
	n := newNav()
	assert.Equal(t, navigator.Nothing, n.Window())
	n.SelectAvatar("Karin", "/a/karin")
	assert.Equal(t, navigator.ItemCategoryList, n.Window())
	require.NoError(t, n.SelectCategory(accessory))
	assert.Equal(t, navigator.ItemList, n.Window())
	require.NoError(t, n.SelectItem(hat))
	assert.Equal(t, navigator.ItemFolderCategoryList, n.Window())
	require.NotNil(t, n.FolderInfo())
	require.NoError(t, n.SelectSubfolder(folder.Texture))
	assert.Equal(t, navigator.ItemFolderItemsList, n.Window())

	n.SelectRootCategory(accessory)
	assert.Equal(t, navigator.ItemList, n.Window(), "category root starts at the item list")
	assert.Nil(t, n.FolderInfo())
}

func TestSelect_InvalidTransitions(t *testing.T) {
	n := newNav()
	assert.ErrorIs(t, n.SelectCategory(accessory), navigator.ErrInvalidTransition)
	assert.ErrorIs(t, n.SelectItem(hat), navigator.ErrInvalidTransition)
	assert.ErrorIs(t, n.SelectSubfolder(folder.Texture), navigator.ErrInvalidTransition)

	n.SelectRootCategory(accessory)
	assert.ErrorIs(t, n.SelectCategory(accessory), navigator.ErrInvalidTransition)
}

func TestSelectItem_MissingFolderLeavesState(t *testing.T) {
	n := newNav()
	n.SelectAvatar("Karin", "/a/karin")
	require.NoError(t, n.SelectCategory(accessory))
	before := n.State()

	err := n.SelectItem(catalog.Item{Title: "Gone", ItemPath: "/i/gone", Type: catalog.TypeAccessory})
	assert.ErrorIs(t, err, folder.ErrNotFound)
	assert.Equal(t, before, n.State())
}

func TestForwardTransitionClearsSearch(t *testing.T) {
	n := newNav()
	n.SelectAvatar("Karin", "/a/karin")
	n.Search("hat")
	require.NoError(t, n.SelectCategory(accessory))
	assert.False(t, n.Searching())
}

func TestSearch_BlankClears(t *testing.T) {
	n := newNav()
	n.Search("hat")
	_, ok := n.Search("   ")
	assert.False(t, ok)
	assert.False(t, n.Searching())
}

func TestSearchFilter_KeepsValuesAsGiven(t *testing.T) {
	n := newNav()
	n.SelectAuthor("Hatter")

	assert.True(t, n.SearchFilter(query.Filter{Author: []string{`Studio "A"`}}))
	assert.True(t, n.Searching())
	assert.Equal(t, []string{`Studio "A"`}, n.Filter().Author)

	assert.True(t, n.SearchFilter(query.Filter{Author: []string{""}}))
	assert.Equal(t, []string{""}, n.Filter().Author)
	assert.Equal(t, navigator.AuthorRoot{Author: "Hatter"}, n.State().Root)

	assert.False(t, n.SearchFilter(query.Filter{}))
	assert.False(t, n.Searching())
}

func TestOpenFromSearch(t *testing.T) {
	n := newNav()
	n.SelectAuthor("Hatter")
	require.NoError(t, n.OpenFromSearch(hat, "Karin"))
	s := n.State()
	assert.Equal(t, navigator.ModeAvatar, s.Mode())
	assert.Equal(t, navigator.AvatarRoot{Title: "Karin", Path: "/a/karin"}, s.Root)
	assert.Equal(t, accessory, s.Category)
	require.NotNil(t, s.Item)
	assert.Equal(t, "/i/hat", s.Item.Path)

	universal := catalog.Item{Title: "Cap", Type: catalog.TypeCustom, CustomCategory: "Fx", ItemPath: "/i/cap"}
	require.NoError(t, n.OpenFromSearch(universal, ""))
	s = n.State()
	root := s.Root.(navigator.AvatarRoot)
	assert.True(t, root.Wildcard())
	assert.Equal(t, catalog.Category{Type: catalog.TypeCustom, Custom: "Fx"}, s.Category)
}

func TestHandleDeleted(t *testing.T) {
	t.Run("root avatar in avatar mode", func(t *testing.T) {
		n := newNav()
		n.SelectAvatar("Karin", "/a/karin")
		require.NoError(t, n.SelectCategory(accessory))
		assert.True(t, n.HandleDeleted("/a/karin"))
		assert.True(t, n.State().IsEmpty())
	})
	t.Run("open item", func(t *testing.T) {
		n := newNav()
		n.SelectRootCategory(accessory)
		require.NoError(t, n.SelectItem(hat))
		require.NoError(t, n.SelectSubfolder(folder.Texture))
		n.Search("x")
		assert.True(t, n.HandleDeleted("/i/hat"))
		assert.Equal(t, navigator.ItemList, n.Window())
		assert.False(t, n.Searching())
	})
	t.Run("unrelated", func(t *testing.T) {
		n := newNav()
		n.SelectAvatar("Karin", "/a/karin")
		n.Search("x")
		assert.False(t, n.HandleDeleted("/i/other"))
		assert.True(t, n.Searching())
	})
}

func TestHandleEdited(t *testing.T) {
	n := newNav()
	n.SelectAvatar("Karin", "/a/karin")
	require.NoError(t, n.SelectCategory(catalog.Category{Type: catalog.TypeAvatar}))
	require.NoError(t, n.SelectItem(catalog.Item{Title: "Karin", Type: catalog.TypeAvatar, ItemPath: "/a/karin"}))

	n.HandleEdited("/a/karin", catalog.Item{Title: "Karin v2", Type: catalog.TypeAvatar, ItemPath: "/a/karin2"})
	s := n.State()
	assert.Equal(t, navigator.AvatarRoot{Title: "Karin v2", Path: "/a/karin2"}, s.Root)
	assert.Equal(t, "/a/karin2", s.Item.Path)
}

func TestBreadcrumb(t *testing.T) {
	tr := i18n.English
	n := newNav()
	assert.Equal(t, "The current path is shown here", n.Breadcrumb(tr))

	n.SelectAvatar("Karin", "/a/karin")
	require.NoError(t, n.SelectCategory(accessory))
	require.NoError(t, n.SelectItem(hat))
	require.NoError(t, n.SelectSubfolder(folder.Texture))
	assert.Equal(t, "Karin / Accessory / FrillHat / Texture", n.Breadcrumb(tr))

	n.SelectRootCategory(catalog.Category{Type: catalog.TypeCustom, Custom: "Effects"})
	assert.Equal(t, "Effects", n.Breadcrumb(tr))

	n.Search(`Author="Jane Doe" Author=Bob BoothId=1 cute hat`)
	assert.Equal(t, "Searching... - Author: Jane Doe, Bob / BoothID: 1 / cute, hat", n.Breadcrumb(tr))
}
