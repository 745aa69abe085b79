package state

import (
	"reflect"
	"testing"

	"github.com/blogdeck/blogdeck/internal/api"
)

func TestStore_UpsertPostIsIdempotent(t *testing.T) {
	var s Store

	post := api.Post{ID: "p1", UserID: "u1", Title: "Hi", Content: "World", CreatedAt: "2026-01-02T10:00:00Z"}
	s.UpsertPost(post)
	first := s.Snapshot()

	s.UpsertPost(post)
	second := s.Snapshot()

	if len(second.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(second.Posts))
	}
	if !reflect.DeepEqual(first.Posts, second.Posts) {
		t.Fatalf("duplicate upsert changed store: %#v vs %#v", first.Posts, second.Posts)
	}
	if first.Generation != second.Generation {
		t.Fatalf("identical upsert bumped generation: %d vs %d", first.Generation, second.Generation)
	}
}

func TestStore_UpsertCommentIsIdempotent(t *testing.T) {
	var s Store

	comment := api.Comment{ID: "c1", UserID: "u1", PostID: "p1", Text: "Nice"}
	s.UpsertComment(comment)
	s.UpsertComment(comment)

	if got := len(s.Snapshot().Comments); got != 1 {
		t.Fatalf("comments = %d, want 1", got)
	}
}

func TestStore_RemovePostPrunesItsComments(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "p1", UserID: "u1"})
	s.UpsertPost(api.Post{ID: "p2", UserID: "u1"})
	s.UpsertComment(api.Comment{ID: "c1", PostID: "p1", UserID: "u2"})
	s.UpsertComment(api.Comment{ID: "c2", PostID: "p2", UserID: "u2"})
	s.UpsertComment(api.Comment{ID: "c3", PostID: "p1", UserID: "u1"})

	s.RemovePost("p1")

	snap := s.Snapshot()
	if snap.HasPost("p1") {
		t.Fatal("post p1 still present after removal")
	}
	if got := snap.CommentsFor("p1"); len(got) != 0 {
		t.Fatalf("comments for removed post = %#v, want none", got)
	}
	for _, c := range snap.Comments {
		if c.PostID == "p1" {
			t.Fatalf("orphan comment %q survived in listing", c.ID)
		}
	}
	if got := snap.CommentsFor("p2"); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("comments for surviving post = %#v, want [c2]", got)
	}
}

func TestStore_RemoveUnknownIDIsNoOp(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "p1"})
	before := s.Snapshot()

	s.RemovePost("nope")
	s.RemoveComment("nope")

	after := s.Snapshot()
	if !reflect.DeepEqual(before.Posts, after.Posts) || len(after.Comments) != 0 {
		t.Fatalf("no-op removal changed store: %#v", after)
	}
	if before.Generation != after.Generation {
		t.Fatal("no-op removal bumped generation")
	}
}

func TestStore_ReplaceAllDeduplicatesByID(t *testing.T) {
	var s Store

	s.ReplaceAll(
		[]api.User{{ID: "u1", Username: "ana"}},
		[]api.Post{{ID: "p1", Title: "first"}, {ID: "p1", Title: "second"}},
		[]api.Comment{{ID: "c1", PostID: "p1"}, {ID: "c1", PostID: "p1"}},
	)

	snap := s.Snapshot()
	if len(snap.Posts) != 1 {
		t.Fatalf("posts = %d, want 1 after de-duplication", len(snap.Posts))
	}
	if snap.Posts[0].Title != "second" {
		t.Fatalf("post title = %q, want latest entry to win", snap.Posts[0].Title)
	}
	if len(snap.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(snap.Comments))
	}
	if !snap.Loaded {
		t.Fatal("Loaded = false after ReplaceAll")
	}
}

func TestSnapshot_FeedIsNewestFirst(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "old", CreatedAt: "2026-01-01T00:00:00Z"})
	s.UpsertPost(api.Post{ID: "new", CreatedAt: "2026-02-01T00:00:00Z"})
	s.UpsertPost(api.Post{ID: "mid", CreatedAt: "2026-01-15T00:00:00Z"})

	snap := s.Snapshot()
	got := []string{snap.Posts[0].ID, snap.Posts[1].ID, snap.Posts[2].ID}
	want := []string{"new", "mid", "old"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("feed order = %v, want %v", got, want)
	}
}

func TestSnapshot_CommentsKeepArrivalOrder(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "p1"})
	s.UpsertComment(api.Comment{ID: "c1", PostID: "p1", Text: "first"})
	s.UpsertComment(api.Comment{ID: "c2", PostID: "p1", Text: "second"})
	// Re-applying the first comment must not reorder it.
	s.UpsertComment(api.Comment{ID: "c1", PostID: "p1", Text: "first"})

	got := s.Snapshot().CommentsFor("p1")
	if len(got) != 2 || got[0].ID != "c1" || got[1].ID != "c2" {
		t.Fatalf("comment order = %#v, want [c1 c2]", got)
	}
}

func TestSnapshot_UserByIDFallsBackToPlaceholder(t *testing.T) {
	var s Store

	s.ReplaceAll([]api.User{{ID: "u1", Username: "ana"}}, nil, nil)
	snap := s.Snapshot()

	if got := snap.UserByID("u1").Username; got != "ana" {
		t.Fatalf("known user = %q, want ana", got)
	}
	placeholder := snap.UserByID("ghost")
	if placeholder != (api.User{}) {
		t.Fatalf("unknown user = %#v, want zero placeholder", placeholder)
	}
}

func TestSnapshot_PostsByFiltersOwner(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "p1", UserID: "u1"})
	s.UpsertPost(api.Post{ID: "p2", UserID: "u2"})
	s.UpsertPost(api.Post{ID: "p3", UserID: "u1"})

	got := s.Snapshot().PostsBy("u1")
	if len(got) != 2 {
		t.Fatalf("posts by u1 = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.UserID != "u1" {
			t.Fatalf("foreign post %q in owner listing", p.ID)
		}
	}
}

func TestStore_SnapshotIsIndependentCopy(t *testing.T) {
	var s Store

	s.UpsertPost(api.Post{ID: "p1", Title: "original"})
	snap := s.Snapshot()
	snap.Posts[0].Title = "mutated"
	snap.Users["ghost"] = api.User{ID: "ghost"}

	fresh := s.Snapshot()
	if fresh.Posts[0].Title != "original" {
		t.Fatalf("store mutated through snapshot: %q", fresh.Posts[0].Title)
	}
	if _, ok := fresh.Users["ghost"]; ok {
		t.Fatal("store user map shared with snapshot")
	}
}

func TestStore_ResetClearsEverything(t *testing.T) {
	var s Store

	s.ReplaceAll(
		[]api.User{{ID: "u1"}},
		[]api.Post{{ID: "p1"}},
		[]api.Comment{{ID: "c1", PostID: "p1"}},
	)
	s.Reset()

	snap := s.Snapshot()
	if len(snap.Posts) != 0 || len(snap.Comments) != 0 || len(snap.Users) != 0 {
		t.Fatalf("store not empty after reset: %#v", snap)
	}
	if snap.Loaded {
		t.Fatal("Loaded = true after reset")
	}
}
