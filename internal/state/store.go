package state

import (
	"sort"
	"sync"

	"github.com/blogdeck/blogdeck/internal/api"
)

// Snapshot is an immutable view of the entity caches at one point in time.
// Posts are in feed order (newest first), comments in arrival order.
type Snapshot struct {
	Users      map[string]api.User
	Posts      []api.Post
	Comments   []api.Comment
	Loaded     bool
	Generation uint64
}

// UserByID resolves an author. Unknown ids return a zero-value placeholder:
// a post or comment author may race ahead of the user list, and rendering an
// empty author is the tolerated behavior, not an error.
func (s Snapshot) UserByID(id string) api.User {
	if u, ok := s.Users[id]; ok {
		return u
	}
	return api.User{}
}

// PostByID returns the post with the given id, if present.
func (s Snapshot) PostByID(id string) (api.Post, bool) {
	for _, p := range s.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return api.Post{}, false
}

// HasPost reports whether a post with the given id is present.
func (s Snapshot) HasPost(id string) bool {
	_, ok := s.PostByID(id)
	return ok
}

// CommentsFor returns the comments of one post in arrival order.
func (s Snapshot) CommentsFor(postID string) []api.Comment {
	var out []api.Comment
	for _, c := range s.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// PostsBy returns the posts authored by one user, in feed order.
func (s Snapshot) PostsBy(userID string) []api.Post {
	var out []api.Post
	for _, p := range s.Posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// Store is the single source of truth for the in-memory entity caches.
// It is mutated only from gateway responses and push events, never directly
// by the UI; the UI reads value-copied snapshots.
type Store struct {
	mu           sync.RWMutex
	users        map[string]api.User
	posts        map[string]api.Post
	postOrder    []string
	comments     map[string]api.Comment
	commentOrder []string
	loaded       bool
	gen          uint64
}

// ReplaceAll swaps the full store contents atomically. Callers must only
// invoke it with a complete, consistent set of collections; partial loads
// never reach the store.
func (s *Store) ReplaceAll(users []api.User, posts []api.Post, comments []api.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]api.User, len(users))
	for _, u := range users {
		s.users[u.ID] = u
	}
	s.posts = make(map[string]api.Post, len(posts))
	s.postOrder = nil
	for _, p := range posts {
		if _, ok := s.posts[p.ID]; !ok {
			s.postOrder = append(s.postOrder, p.ID)
		}
		s.posts[p.ID] = p
	}
	s.comments = make(map[string]api.Comment, len(comments))
	s.commentOrder = nil
	for _, c := range comments {
		if _, ok := s.comments[c.ID]; !ok {
			s.commentOrder = append(s.commentOrder, c.ID)
		}
		s.comments[c.ID] = c
	}
	s.loaded = true
	s.gen++
}

// UpsertUser inserts or replaces a user record.
func (s *Store) UpsertUser(u api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[u.ID]; ok && existing == u {
		return
	}
	if s.users == nil {
		s.users = make(map[string]api.User)
	}
	s.users[u.ID] = u
	s.gen++
}

// UpsertPost inserts or replaces a post. Re-applying identical data is a
// no-op; arrival order is kept for posts already present.
func (s *Store) UpsertPost(p api.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.posts[p.ID]; ok {
		if existing == p {
			return
		}
	} else {
		s.postOrder = append(s.postOrder, p.ID)
	}
	if s.posts == nil {
		s.posts = make(map[string]api.Post)
	}
	s.posts[p.ID] = p
	s.gen++
}

// RemovePost drops a post and prunes its comments so no orphan can render.
// Removing an unknown id is a no-op.
func (s *Store) RemovePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return
	}
	delete(s.posts, id)
	s.postOrder = removeID(s.postOrder, id)

	kept := s.commentOrder[:0]
	for _, cid := range s.commentOrder {
		if c, ok := s.comments[cid]; ok && c.PostID == id {
			delete(s.comments, cid)
			continue
		}
		kept = append(kept, cid)
	}
	s.commentOrder = kept
	s.gen++
}

// UpsertComment inserts or replaces a comment. Re-applying identical data is
// a no-op.
func (s *Store) UpsertComment(c api.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.comments[c.ID]; ok {
		if existing == c {
			return
		}
	} else {
		s.commentOrder = append(s.commentOrder, c.ID)
	}
	if s.comments == nil {
		s.comments = make(map[string]api.Comment)
	}
	s.comments[c.ID] = c
	s.gen++
}

// RemoveComment drops a comment. Removing an unknown id is a no-op.
func (s *Store) RemoveComment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return
	}
	delete(s.comments, id)
	s.commentOrder = removeID(s.commentOrder, id)
	s.gen++
}

// Reset clears all caches, returning the store to its pre-load state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.posts = nil
	s.postOrder = nil
	s.comments = nil
	s.commentOrder = nil
	s.loaded = false
	s.gen++
}

// Generation returns a counter bumped on every observable mutation, letting
// readers skip work when nothing changed.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Snapshot returns a value copy of the current store contents.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:      make(map[string]api.User, len(s.users)),
		Loaded:     s.loaded,
		Generation: s.gen,
	}
	for id, u := range s.users {
		snap.Users[id] = u
	}
	snap.Posts = make([]api.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		if p, ok := s.posts[id]; ok {
			snap.Posts = append(snap.Posts, p)
		}
	}
	// Feed order: newest first, arrival order breaking ties.
	sort.SliceStable(snap.Posts, func(i, j int) bool {
		return snap.Posts[i].ParsedCreatedAt().After(snap.Posts[j].ParsedCreatedAt())
	})
	snap.Comments = make([]api.Comment, 0, len(s.commentOrder))
	for _, id := range s.commentOrder {
		if c, ok := s.comments[id]; ok {
			snap.Comments = append(snap.Comments, c)
		}
	}
	return snap
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
