package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/avex/internal/backup"
	"github.com/blackwell-systems/avex/internal/catalog"
	"github.com/blackwell-systems/avex/internal/explorer"
	"github.com/blackwell-systems/avex/internal/folder"
	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/listing"
	"github.com/blackwell-systems/avex/internal/logging"
	"github.com/blackwell-systems/avex/internal/navigator"
)

type stubFolders struct{}

func (stubFolders) GetFolderInfo(itemPath, _ string) (*folder.Info, error) {
	return folder.NewInfo(map[folder.Label][]folder.File{
		folder.Texture: {{Name: "tex.png", Path: filepath.Join(itemPath, "tex.png"), Ext: ".png"}},
	}), nil
}

type recordEffects struct {
	copied []string
	opened []string
}

func (r *recordEffects) CopyText(text string) error {
	r.copied = append(r.copied, text)
	return nil
}

func (r *recordEffects) OpenURL(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func (r *recordEffects) OpenPath(path string) error {
	r.opened = append(r.opened, path)
	return nil
}

func newTestModel(t *testing.T) (Model, *explorer.Session, *recordEffects) {
	t.Helper()
	store := catalog.NewStore([]catalog.Item{
		{Title: "Karin", AuthorName: "Maker", Type: catalog.TypeAvatar, BoothID: catalog.NoBoothID, ItemPath: "/av/karin"},
		{Title: "Mio", AuthorName: "Maker", Type: catalog.TypeAvatar, BoothID: catalog.NoBoothID, ItemPath: "/av/mio"},
		{Title: "Ribbon Hat", AuthorName: "Zed", Type: catalog.TypeAccessory, BoothID: 55, SupportedAvatar: []string{"/av/karin"}, ItemPath: "/items/hat"},
		{Title: "Hoodie", AuthorName: "Zed", Type: catalog.TypeClothing, BoothID: catalog.NoBoothID, SupportedAvatar: []string{"/av/karin"}, ItemPath: "/items/hoodie"},
	}, []catalog.CommonGroup{
		{Name: "Slim", Avatars: []string{"/av/karin", "/av/mio"}},
	}, []string{"Props"})

	out := explorer.NewCapture()
	fx := &recordEffects{}
	s := explorer.New(store, nil,
		explorer.WithRenderer(out),
		explorer.WithEffects(fx),
		explorer.WithFolderSource(stubFolders{}),
		explorer.WithLanguage(i18n.English),
	)
	s.Refresh()
	return NewModel(Options{Session: s, Output: out}), s, fx
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func paneTitles(m Model, p explorer.Pane) []string {
	var titles []string
	for _, it := range m.panes[p].Items() {
		titles = append(titles, it.(rowItem).row.Title)
	}
	return titles
}

func TestNewModelFillsPanes(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, []string{"Karin", "Mio", "All avatars"}, paneTitles(m, explorer.PaneAvatars))
	assert.Equal(t, []string{"Maker", "Zed"}, paneTitles(m, explorer.PaneAuthors))
	assert.Len(t, paneTitles(m, explorer.PaneCategories), len(catalog.FixedTypes)+1)
	assert.Equal(t, explorer.PaneAvatars, m.focus)
	assert.Empty(t, m.backupLabel)
}

func TestSelectAvatarAndBack(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "enter")
	assert.Equal(t, explorer.PaneMain, m.focus)
	assert.Len(t, paneTitles(m, explorer.PaneMain), 3)
	assert.Contains(t, m.breadcrumb, "Karin")
	assert.False(t, s.State().IsEmpty())

	m = press(m, "backspace")
	assert.True(t, s.State().IsEmpty())

	// Nothing left to undo is not an error.
	m = press(m, "backspace")
	assert.False(t, m.statusErr)
}

func TestSelectAllAvatars(t *testing.T) {
	m, s, _ := newTestModel(t)

	m.panes[explorer.PaneAvatars].Select(2)
	m = press(m, "enter")
	assert.Equal(t, explorer.PaneMain, m.focus)
	root, ok := s.State().Root.(navigator.AvatarRoot)
	require.True(t, ok)
	assert.True(t, root.Wildcard())
	assert.NotEmpty(t, paneTitles(m, explorer.PaneMain))
}

func TestTabCyclesPanes(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(m, "tab")
	assert.Equal(t, explorer.PaneAuthors, m.focus)
	m = press(m, "tab", "tab", "tab")
	assert.Equal(t, explorer.PaneAvatars, m.focus)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, explorer.PaneMain, next.(Model).focus)
}

func TestSearchAndExit(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "/")
	require.Equal(t, phaseSearch, m.phase)
	m = press(m, "hat", "enter")

	assert.Equal(t, phaseBrowse, m.phase)
	assert.True(t, s.Searching())
	assert.Equal(t, []string{"Ribbon Hat"}, paneTitles(m, explorer.PaneMain))
	assert.Contains(t, m.resultText, "1")

	m = press(m, "backspace")
	assert.False(t, s.Searching())
	assert.Empty(t, m.search.Value())
	assert.Empty(t, m.resultText)
}

func TestSearchEscKeepsState(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "/", "hat", "esc")
	assert.Equal(t, phaseBrowse, m.phase)
	assert.False(t, s.Searching())
}

func TestActionMenuCopiesBoothLink(t *testing.T) {
	m, _, fx := newTestModel(t)
	m = press(m, "/", "hat", "enter")

	m = press(m, "a")
	require.Equal(t, phaseActions, m.phase)
	assert.Len(t, m.menu.List().Items(), 6)

	m = press(m, "enter")
	assert.Equal(t, phaseBrowse, m.phase)
	assert.Equal(t, []string{"https://booth.pm/en/items/55"}, fx.copied)
	assert.Contains(t, m.status, "https://booth.pm/en/items/55")
}

func TestActionMenuDismiss(t *testing.T) {
	m, _, fx := newTestModel(t)
	m = press(m, "/", "hat", "enter", "a", "esc")

	assert.Equal(t, phaseBrowse, m.phase)
	assert.Nil(t, m.menu)
	assert.Empty(t, fx.copied)
}

func TestCopyShortcut(t *testing.T) {
	m, _, fx := newTestModel(t)
	m = press(m, "/", "hat", "enter", "c")

	assert.Equal(t, []string{"https://booth.pm/en/items/55"}, fx.copied)
	assert.Equal(t, "c", m.activeCmd)
}

func TestDeleteAvatarWithRepairs(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "d")
	require.Equal(t, phaseConfirmDelete, m.phase)
	assert.Len(t, m.del.refs, 2)
	assert.Equal(t, []string{"Slim"}, m.del.groups)
	assert.Contains(t, m.View(), `Delete "Karin"?`)

	m = press(m, "y")
	assert.Equal(t, askSupported, m.del.step)
	m = press(m, "enter")
	assert.Equal(t, askGroups, m.del.step)
	m = press(m, "n")

	assert.Equal(t, phaseBrowse, m.phase)
	_, ok := s.Item("/av/karin")
	assert.False(t, ok)
	hat, _ := s.Item("/items/hat")
	assert.Empty(t, hat.SupportedAvatar)
	_, groups, _ := s.Snapshot()
	require.Len(t, groups, 1)
	assert.Contains(t, groups[0].Avatars, "/av/karin")
	assert.Equal(t, []string{"Mio", "All avatars"}, paneTitles(m, explorer.PaneAvatars))
}

func TestDeleteCancelled(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "d", "enter")
	assert.Equal(t, phaseBrowse, m.phase)
	assert.Equal(t, "Cancelled", m.status)
	_, ok := s.Item("/av/karin")
	assert.True(t, ok)
}

func TestEditItemThroughForm(t *testing.T) {
	m, s, _ := newTestModel(t)
	m = press(m, "/", "hat", "enter", "e")
	require.Equal(t, phaseEdit, m.phase)

	m = press(m, " Red", "enter")
	require.True(t, m.form.confirming)
	m = press(m, "y")

	assert.Equal(t, phaseBrowse, m.phase)
	it, ok := s.Item("/items/hat")
	require.True(t, ok)
	assert.Equal(t, "Ribbon Hat Red", it.Title)
	assert.Equal(t, 55, it.BoothID)
	assert.Equal(t, []string{"/av/karin"}, it.SupportedAvatar)
	assert.Equal(t, []string{"Ribbon Hat Red"}, paneTitles(m, explorer.PaneMain))
}

func TestEditFormRejectsBadBoothID(t *testing.T) {
	f := newItemForm(catalog.Item{Title: "Hat", Type: catalog.TypeAccessory, BoothID: catalog.NoBoothID, ItemPath: "/hat"}, nil)
	f.inputs[fieldBoothID].SetValue("abc")

	outcome, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, formPending, outcome)
	assert.False(t, f.confirming)
	require.Error(t, f.err)

	f.inputs[fieldBoothID].SetValue("")
	it, err := f.build()
	require.NoError(t, err)
	assert.Equal(t, catalog.NoBoothID, it.BoothID)
}

func TestEditFormCancel(t *testing.T) {
	m, s, _ := newTestModel(t)
	m = press(m, "/", "hat", "enter", "e", "esc")

	assert.Equal(t, phaseBrowse, m.phase)
	it, _ := s.Item("/items/hat")
	assert.Equal(t, "Ribbon Hat", it.Title)
}

func TestParseCategory(t *testing.T) {
	custom := []string{"Props"}

	typ, label, err := parseCategory("Clothing", custom)
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeClothing, typ)
	assert.Empty(t, label)

	typ, label, err = parseCategory("props", custom)
	require.NoError(t, err)
	assert.Equal(t, catalog.TypeCustom, typ)
	assert.Equal(t, "Props", label)

	_, _, err = parseCategory("custom", custom)
	assert.Error(t, err)
}

func TestSplitAvatars(t *testing.T) {
	assert.Equal(t, []string{"/a", "/b"}, splitAvatars(" /a; ;/b "))
	assert.Nil(t, splitAvatars(""))
}

func TestSortAndLanguageKeys(t *testing.T) {
	m, s, _ := newTestModel(t)

	m = press(m, "s")
	assert.Equal(t, listing.SortAuthor, s.Sort())
	m = press(m, "s")
	assert.Equal(t, listing.SortTitle, s.Sort())

	press(m, "L")
	assert.Equal(t, i18n.Korean, s.Language())
	assert.Equal(t, i18n.Japanese, nextLanguage(i18n.Korean))
}

func TestBackupLabel(t *testing.T) {
	_, s, _ := newTestModel(t)
	sched := backup.NewScheduler(t.TempDir(), t.TempDir(), logging.Discard())

	out := explorer.NewCapture()
	m := NewModel(Options{Session: s, Output: out, Backup: sched})
	assert.NotEmpty(t, m.backupLabel)
	assert.NotNil(t, m.Init())
}

func TestViewShowsPanesAndFooter(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)

	v := m.View()
	assert.Contains(t, v, "Karin")
	assert.Contains(t, v, "q quit")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, next.(Model).quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.(Model).View())
}
