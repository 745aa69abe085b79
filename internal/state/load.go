package state

import (
	"context"
	"sync"

	"github.com/blogdeck/blogdeck/internal/api"
)

// Load fetches posts, comments, and users concurrently and replaces the
// store contents atomically. The three fetches are joined before the store
// is touched: if any one fails the store keeps its previous contents and the
// first error is returned.
func Load(ctx context.Context, gw api.Gateway, store *Store) error {
	var (
		posts    []api.Post
		comments []api.Comment
		users    []api.User
		errs     [3]error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		posts, errs[0] = gw.ListPosts(ctx)
	}()
	go func() {
		defer wg.Done()
		comments, errs[1] = gw.ListComments(ctx)
	}()
	go func() {
		defer wg.Done()
		users, errs[2] = gw.ListUsers(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	store.ReplaceAll(users, posts, comments)
	return nil
}
