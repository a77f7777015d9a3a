package catalog_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/blackwell-systems/avex/internal/catalog"
)

func newTestStore() *catalog.Store {
	items := []catalog.Item{
		{Title: "Karin", AuthorName: "Studio A", Type: catalog.TypeAvatar, BoothID: 1, ItemPath: "/a/karin"},
		{Title: "Mio", AuthorName: "Studio B", AuthorImagePath: "/img/b.png", Type: catalog.TypeAvatar, BoothID: -1, ItemPath: "/a/mio"},
		{Title: "Hat", AuthorName: "Studio B", Type: catalog.TypeAccessory, BoothID: -1, ItemPath: "/i/hat",
			SupportedAvatar: []string{"/a/karin", "/a/mio"}},
		{Title: "Socks", AuthorName: "Studio A", AuthorImagePath: "/img/a.png", Type: catalog.TypeClothing, BoothID: -1, ItemPath: "/i/socks",
			SupportedAvatar: []string{"/a/karin"}},
	}
	groups := []catalog.CommonGroup{{Name: "Slim", Avatars: []string{"/a/karin", "/a/mio"}}}
	return catalog.NewStore(items, groups, nil)
}

func TestStore_AddDuplicate(t *testing.T) {
	s := newTestStore()
	err := s.Add(catalog.Item{Title: "Again", ItemPath: "/i/hat", Type: catalog.TypeTool})
	if !errors.Is(err, catalog.ErrDuplicatePath) {
		t.Fatalf("expected ErrDuplicatePath, got %v", err)
	}
	if err := s.Add(catalog.Item{Title: "New", ItemPath: "/i/new", Type: catalog.TypeTool}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
}

func TestStore_UpdateRenamesReferences(t *testing.T) {
	s := newTestStore()
	karin, _ := s.ByPath("/a/karin")
	karin.ItemPath = "/a/karin2"
	karin.Title = "Karin v2"
	if err := s.Update("/a/karin", karin); err != nil {
		t.Fatalf("Update: %v", err)
	}

	hat, _ := s.ByPath("/i/hat")
	if !slices.Contains(hat.SupportedAvatar, "/a/karin2") || slices.Contains(hat.SupportedAvatar, "/a/karin") {
		t.Errorf("hat references not rewritten: %v", hat.SupportedAvatar)
	}
	g, _ := s.Group("Slim")
	if !g.Contains("/a/karin2") {
		t.Errorf("group not rewritten: %v", g.Avatars)
	}
	if name, _ := s.AvatarName("/a/karin2"); name != "Karin v2" {
		t.Errorf("AvatarName = %q", name)
	}
}

func TestStore_ReturnedItemsDoNotShareSlices(t *testing.T) {
	s := newTestStore()
	items := s.Items()
	groups := s.Groups()
	hat, _ := s.ByPath("/i/hat")
	avatars := s.Avatars()

	karin, _ := s.ByPath("/a/karin")
	karin.ItemPath = "/a/karin-moved"
	if err := s.Update("/a/karin", karin); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := items[2].SupportedAvatar; !slices.Equal(got, []string{"/a/karin", "/a/mio"}) {
		t.Errorf("Items copy changed after edit: %v", got)
	}
	if got := hat.SupportedAvatar; !slices.Equal(got, []string{"/a/karin", "/a/mio"}) {
		t.Errorf("ByPath copy changed after edit: %v", got)
	}
	if got := groups[0].Avatars; !slices.Equal(got, []string{"/a/karin", "/a/mio"}) {
		t.Errorf("Groups copy changed after edit: %v", got)
	}
	if avatars[0].ItemPath != "/a/karin" {
		t.Errorf("Avatars copy changed after edit: %q", avatars[0].ItemPath)
	}

	hat.SupportedAvatar[0] = "/tampered"
	if stored, _ := s.ByPath("/i/hat"); stored.SupportedAvatar[0] != "/a/karin-moved" {
		t.Errorf("writing to a returned item changed the store: %v", stored.SupportedAvatar)
	}
}

func TestStore_UpdateMissing(t *testing.T) {
	s := newTestStore()
	err := s.Update("/nope", catalog.Item{ItemPath: "/nope"})
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateCollision(t *testing.T) {
	s := newTestStore()
	hat, _ := s.ByPath("/i/hat")
	hat.ItemPath = "/i/socks"
	if err := s.Update("/i/hat", hat); !errors.Is(err, catalog.ErrDuplicatePath) {
		t.Fatalf("expected ErrDuplicatePath, got %v", err)
	}
}

func TestStore_DeleteWithRepair(t *testing.T) {
	s := newTestStore()
	if _, err := s.Delete("/a/karin", catalog.DeleteOptions{StripSupported: true, StripGroups: true}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	socks, _ := s.ByPath("/i/socks")
	if len(socks.SupportedAvatar) != 0 {
		t.Errorf("socks still references deleted avatar: %v", socks.SupportedAvatar)
	}
	g, _ := s.Group("Slim")
	if g.Contains("/a/karin") {
		t.Errorf("group still lists deleted avatar: %v", g.Avatars)
	}
}

func TestStore_DeleteDeclinedRepairLeavesDanglingReference(t *testing.T) {
	s := newTestStore()
	if _, err := s.Delete("/a/karin", catalog.DeleteOptions{}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	socks, _ := s.ByPath("/i/socks")
	if !slices.Contains(socks.SupportedAvatar, "/a/karin") {
		t.Fatalf("declined repair should keep reference, got %v", socks.SupportedAvatar)
	}
	if got := catalog.Resolve(socks, nil, "/a/mio"); got.SupportedOrCommon {
		t.Errorf("stale reference must not make socks supported for mio")
	}
	if refs := s.ReferencedBy("/a/karin"); len(refs) != 2 {
		t.Errorf("ReferencedBy = %v, want hat and socks", refs)
	}
}

func TestStore_DeleteMissing(t *testing.T) {
	s := newTestStore()
	if _, err := s.Delete("/nope", catalog.DeleteOptions{}); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Authors(t *testing.T) {
	s := newTestStore()
	authors := s.Authors()
	if len(authors) != 2 {
		t.Fatalf("expected 2 authors, got %d", len(authors))
	}
	if authors[0].Name != "Studio A" || authors[0].ImagePath != "" {
		t.Errorf("authors[0] = %+v, first image seen should win", authors[0])
	}
	if authors[1].Name != "Studio B" || authors[1].ImagePath != "/img/b.png" {
		t.Errorf("authors[1] = %+v", authors[1])
	}
}

func TestStore_SetAuthorImage(t *testing.T) {
	s := newTestStore()
	n, err := s.SetAuthorImage("Studio B", "/img/new.png")
	if err != nil {
		t.Fatalf("SetAuthorImage: %v", err)
	}
	if n != 2 {
		t.Errorf("changed %d items, want 2", n)
	}
	if _, err := s.SetAuthorImage("Ghost", "/x.png"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown author, got %v", err)
	}
}

func TestStore_Groups(t *testing.T) {
	s := newTestStore()
	s.SaveGroup("Tall", []string{"/a/mio", "/a/mio"})
	g, ok := s.Group("Tall")
	if !ok || len(g.Avatars) != 1 {
		t.Fatalf("SaveGroup should dedupe avatars: %+v", g)
	}
	s.SaveGroup("Tall", []string{"/a/karin"})
	g, _ = s.Group("Tall")
	if g.Avatars[0] != "/a/karin" {
		t.Errorf("SaveGroup should overwrite: %v", g.Avatars)
	}
	if err := s.DeleteGroup("Tall"); err != nil {
		t.Fatalf("DeleteGroup: %v", err)
	}
	if err := s.DeleteGroup("Tall"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AddCustomCategory(t *testing.T) {
	s := newTestStore()
	if !s.AddCustomCategory("Effects") {
		t.Error("first add should succeed")
	}
	if s.AddCustomCategory("Effects") {
		t.Error("duplicate add should report false")
	}
}

func TestStore_FixSupportedAvatarPaths(t *testing.T) {
	s := catalog.NewStore([]catalog.Item{
		{Title: "Karin", Type: catalog.TypeAvatar, ItemPath: "/a/karin"},
		{Title: "Hat", Type: catalog.TypeAccessory, ItemPath: "/i/hat", SupportedAvatar: []string{"Karin", "/a/karin", "Unknown"}},
	}, nil, nil)
	if n := s.FixSupportedAvatarPaths(); n != 1 {
		t.Errorf("rewrote %d entries, want 1", n)
	}
	hat, _ := s.ByPath("/i/hat")
	want := []string{"/a/karin", "Unknown"}
	if !slices.Equal(hat.SupportedAvatar, want) {
		t.Errorf("SupportedAvatar = %v, want %v", hat.SupportedAvatar, want)
	}
}
