package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/api"
	"github.com/blogdeck/blogdeck/internal/state"
)

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// restoredMsg is the outcome of validating a token against /auth/me.
type restoredMsg struct {
	user  api.User
	token string
	err   error
}

// authMsg is the outcome of a signup or login call.
type authMsg struct {
	token string
	err   error
}

// loadedMsg is the outcome of a full store load.
type loadedMsg struct {
	err error
}

// postSavedMsg is the outcome of a create or update call.
type postSavedMsg struct {
	post    api.Post
	updated bool
	err     error
}

type postDeletedMsg struct {
	id  string
	err error
}

type commentAddedMsg struct {
	err error
}

type commentDeletedMsg struct {
	id  string
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func loadCmd(ctx context.Context, gw api.Gateway, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: state.Load(ctx, gw, store)}
	}
}

func restoreCmd(ctx context.Context, gw api.Gateway, token string) tea.Cmd {
	return func() tea.Msg {
		user, err := gw.Me(ctx, token)
		return restoredMsg{user: user, token: token, err: err}
	}
}

func loginCmd(ctx context.Context, gw api.Gateway, req api.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := gw.Login(ctx, req)
		return authMsg{token: resp.Token, err: err}
	}
}

func signupCmd(ctx context.Context, gw api.Gateway, req api.SignupRequest) tea.Cmd {
	return func() tea.Msg {
		resp, err := gw.Signup(ctx, req)
		return authMsg{token: resp.Token, err: err}
	}
}

func createPostCmd(ctx context.Context, gw api.Gateway, req api.PostRequest) tea.Cmd {
	return func() tea.Msg {
		post, err := gw.CreatePost(ctx, req)
		return postSavedMsg{post: post, err: err}
	}
}

func updatePostCmd(ctx context.Context, gw api.Gateway, id string, req api.PostRequest) tea.Cmd {
	return func() tea.Msg {
		post, err := gw.UpdatePost(ctx, id, req)
		return postSavedMsg{post: post, updated: true, err: err}
	}
}

func deletePostCmd(ctx context.Context, gw api.Gateway, id string) tea.Cmd {
	return func() tea.Msg {
		return postDeletedMsg{id: id, err: gw.DeletePost(ctx, id)}
	}
}

func addCommentCmd(ctx context.Context, gw api.Gateway, req api.CommentRequest) tea.Cmd {
	return func() tea.Msg {
		return commentAddedMsg{err: gw.AddComment(ctx, req)}
	}
}

func deleteCommentCmd(ctx context.Context, gw api.Gateway, id string) tea.Cmd {
	return func() tea.Msg {
		return commentDeletedMsg{id: id, err: gw.DeleteComment(ctx, id)}
	}
}
