package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogdeck/blogdeck/internal/api"
)

// handleKey routes keyboard input to the active view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.view {
	case ViewLogin, ViewSignup:
		return m.handleAuthKey(msg)
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewCreate, ViewEdit:
		return m.handleFormKey(msg)
	case ViewPost:
		return m.handlePostKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchAuth):
		if m.view == ViewLogin {
			m.view = ViewSignup
			m.focusAuthField(authFieldUsername)
		} else {
			m.view = ViewLogin
			m.focusAuthField(authFieldEmail)
		}
		m.clearNotice()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.cycleAuthFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.cycleAuthFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitAuth()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	m.clearNotice()
	if m.view == ViewSignup {
		req := api.SignupRequest{
			Username: m.authValue(authFieldUsername),
			Email:    m.authValue(authFieldEmail),
			Password: m.authValue(authFieldPassword),
			Bio:      m.authValue(authFieldBio),
		}
		return m, signupCmd(m.ctx, m.client, req)
	}
	req := api.LoginRequest{
		Email:    m.authValue(authFieldEmail),
		Password: m.authValue(authFieldPassword),
	}
	return m, loginCmd(m.ctx, m.client, req)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete confirmation swallows everything except y/n.
	if m.confirmDelete != "" {
		switch msg.String() {
		case "y", "Y":
			id := m.confirmDelete
			m.confirmDelete = ""
			return m, deletePostCmd(m.ctx, m.client, id)
		case "n", "N", "esc":
			m.confirmDelete = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.snapshot.Posts)-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.snapshot.Posts); n > 0 {
			m.selectedRow = n - 1
		}

	case key.Matches(msg, m.keys.Open):
		if post, ok := m.selectedPost(); ok {
			m.openPost(post.ID)
		}

	case key.Matches(msg, m.keys.NewPost):
		m.clearPostForm()
		m.titleInput.Focus()
		m.clearNotice()
		m.view = ViewCreate

	case key.Matches(msg, m.keys.Edit):
		post, ok := m.selectedPost()
		if !ok {
			return m, nil
		}
		if post.UserID != m.currentUser().ID {
			m.setError("you can only edit your own posts")
			return m, nil
		}
		m.clearPostForm()
		m.editingID = post.ID
		m.titleInput.SetValue(post.Title)
		m.bodyInput.SetValue(post.Content)
		m.titleInput.Focus()
		m.clearNotice()
		m.view = ViewEdit

	case key.Matches(msg, m.keys.Delete):
		post, ok := m.selectedPost()
		if !ok {
			return m, nil
		}
		if post.UserID != m.currentUser().ID {
			m.setError("you can only delete your own posts")
			return m, nil
		}
		m.confirmDelete = post.ID

	case key.Matches(msg, m.keys.Profile):
		m.view = ViewProfile

	case key.Matches(msg, m.keys.Reload):
		return m, loadCmd(m.ctx, m.client, m.store)

	case key.Matches(msg, m.keys.Logout):
		m.logout()
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	// Only esc leaves the form; "b" must type into the fields.
	case msg.Type == tea.KeyEsc:
		// Leaving without saving discards the draft.
		m.clearPostForm()
		m.clearNotice()
		m.view = ViewHome
		return m, nil

	case msg.String() == "tab", msg.String() == "shift+tab":
		if m.formFocus == 0 {
			m.formFocus = 1
			m.titleInput.Blur()
			return m, m.bodyInput.Focus()
		}
		m.formFocus = 0
		m.bodyInput.Blur()
		m.titleInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.submitPostForm()
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitPostForm() (tea.Model, tea.Cmd) {
	m.clearNotice()
	req := api.PostRequest{
		Title:   strings.TrimSpace(m.titleInput.Value()),
		Content: strings.TrimSpace(m.bodyInput.Value()),
	}
	if m.view == ViewEdit {
		return m, updatePostCmd(m.ctx, m.client, m.editingID, req)
	}
	return m, createPostCmd(m.ctx, m.client, req)
}

func (m Model) handlePostKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentFocus {
		switch {
		case msg.Type == tea.KeyEsc:
			m.commentInput.Blur()
			m.commentFocus = false
			return m, nil
		case key.Matches(msg, m.keys.Save):
			text := strings.TrimSpace(m.commentInput.Value())
			if text == "" {
				return m, nil
			}
			m.clearNotice()
			return m, addCommentCmd(m.ctx, m.client, api.CommentRequest{
				PostID: m.selectedPostID,
				Text:   text,
			})
		}
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	comments := m.snapshot.CommentsFor(m.selectedPostID)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.selectedPostID = ""
		m.clearNotice()
		m.view = ViewHome

	case key.Matches(msg, m.keys.Down):
		if m.selectedComment < len(comments)-1 {
			m.selectedComment++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedComment > 0 {
			m.selectedComment--
		}

	case key.Matches(msg, m.keys.Comment):
		m.commentFocus = true
		return m, m.commentInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if m.selectedComment >= len(comments) {
			return m, nil
		}
		comment := comments[m.selectedComment]
		if comment.UserID != m.currentUser().ID {
			m.setError("you can only delete your own comments")
			return m, nil
		}
		return m, deleteCommentCmd(m.ctx, m.client, comment.ID)
	}
	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.view = ViewHome
	case key.Matches(msg, m.keys.Logout):
		m.logout()
	}
	return m, nil
}

// selectedPost returns the post under the feed cursor.
func (m Model) selectedPost() (api.Post, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Posts) {
		return api.Post{}, false
	}
	return m.snapshot.Posts[m.selectedRow], true
}

// openPost switches to the post view for the given id.
func (m *Model) openPost(id string) {
	m.selectedPostID = id
	m.selectedComment = 0
	m.commentInput.Reset()
	m.commentInput.Blur()
	m.commentFocus = false
	m.clearNotice()
	m.view = ViewPost
}
