package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/blogdeck/blogdeck/internal/api"
	"github.com/blogdeck/blogdeck/internal/push"
	"github.com/blogdeck/blogdeck/internal/session"
	"github.com/blogdeck/blogdeck/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewSignup
	ViewHome
	ViewCreate
	ViewEdit
	ViewPost
	ViewProfile
)

// Auth form field indexes.
const (
	authFieldUsername = iota
	authFieldEmail
	authFieldPassword
	authFieldBio
	authFieldCount
)

const snapshotTick = 250 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *api.Client
	Store     *state.Store
	Session   *session.Session
	Listener  *push.Listener
	TokenPath string
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators
	ctx       context.Context
	client    *api.Client
	store     *state.Store
	sess      *session.Session
	listener  *push.Listener
	tokenPath string
	log       *zap.Logger

	// UI state
	view   View
	width  int
	height int
	ready  bool
	theme  Theme
	keys   keyMap

	// Data state
	snapshot state.Snapshot

	// Notice line
	notice    string
	noticeErr bool

	// Auth form
	authInputs [authFieldCount]textinput.Model
	authFocus  int

	// Post form (create and edit share it)
	titleInput textinput.Model
	bodyInput  textarea.Model
	formFocus  int
	editingID  string // set while editing, empty while creating

	// Home feed
	selectedRow   int
	confirmDelete string // post id awaiting y/n confirmation

	// Post view
	selectedPostID  string
	selectedComment int
	commentInput    textarea.Model
	commentFocus    bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		sess:      opts.Session,
		listener:  opts.Listener,
		tokenPath: opts.TokenPath,
		log:       log,
		view:      ViewLogin,
		theme:     DefaultTheme(),
		keys:      DefaultKeyMap(),
	}
	m.initAuthInputs()
	m.initPostForm()
	m.initCommentInput()
	return m
}

// Init implements tea.Model. The store is bulk-loaded immediately and any
// persisted token is validated; until that check resolves the login view
// shows.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(snapshotTick),
		loadCmd(m.ctx, m.client, m.store),
	}
	if token := session.LoadToken(m.tokenPath); token != "" {
		cmds = append(cmds, restoreCmd(m.ctx, m.client, token))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(snapshotTick))

	case snapshotMsg:
		return m.handleSnapshot(state.Snapshot(msg))

	case restoredMsg:
		return m.handleRestored(msg)

	case authMsg:
		return m.handleAuth(msg)

	case loadedMsg:
		if msg.err != nil {
			m.log.Warn("bulk load failed", zap.Error(msg.err))
			m.setError(userMessage(msg.err))
			return m, nil
		}
		return m, fetchSnapshotCmd(m.store)

	case postSavedMsg:
		return m.handlePostSaved(msg)

	case postDeletedMsg:
		return m.handlePostDeleted(msg)

	case commentAddedMsg:
		if msg.err != nil {
			m.setError(userMessage(msg.err))
			return m, nil
		}
		m.commentInput.Reset()
		m.commentInput.Blur()
		m.commentFocus = false
		return m, m.reconcileCmd()

	case commentDeletedMsg:
		if msg.err != nil {
			m.setError(userMessage(msg.err))
			return m, nil
		}
		return m, m.reconcileCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch m.view {
	case ViewLogin, ViewSignup:
		return m.renderAuth()
	case ViewHome:
		return m.renderHome()
	case ViewCreate, ViewEdit:
		return m.renderPostForm()
	case ViewPost:
		return m.renderPost()
	case ViewProfile:
		return m.renderProfile()
	default:
		return m.renderHome()
	}
}

// handleSnapshot folds a new store snapshot into the view state. If the post
// being viewed disappeared (a deletePost push event, or a reload that no
// longer has it) the router falls back to home.
func (m Model) handleSnapshot(snap state.Snapshot) (tea.Model, tea.Cmd) {
	if snap.Generation == m.snapshot.Generation {
		return m, nil
	}
	m.snapshot = snap

	if m.view == ViewPost && !snap.HasPost(m.selectedPostID) {
		m.selectedPostID = ""
		m.view = ViewHome
		m.setError("that post was removed")
	}
	m.clampSelections()
	return m, nil
}

// handleRestored completes a session start after /auth/me confirmed the
// token, whether it came from disk or from a fresh login/signup.
func (m Model) handleRestored(msg restoredMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// An invalid or expired persisted token is cleared; the user
		// simply logs in again.
		if err := session.ClearToken(m.tokenPath); err != nil {
			m.log.Warn("clear persisted token", zap.Error(err))
		}
		if m.view == ViewLogin || m.view == ViewSignup {
			if api.IsAuth(msg.err) {
				m.setError("session expired, please log in")
			} else {
				m.setError(userMessage(msg.err))
			}
		}
		return m, nil
	}

	if err := session.SaveToken(m.tokenPath, msg.token); err != nil {
		m.log.Warn("persist token", zap.Error(err))
	}
	m.sess.Set(msg.user, msg.token)
	m.client.SetToken(msg.token)
	m.listener.Start(m.ctx)
	m.clearAuthForm()
	m.clearNotice()
	m.view = ViewHome
	m.log.Info("session started", zap.String("user", msg.user.Username))
	return m, loadCmd(m.ctx, m.client, m.store)
}

// handleAuth processes a signup or login response. The issued token is
// normalized through /auth/me before the session is considered active.
func (m Model) handleAuth(msg authMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(userMessage(msg.err))
		return m, nil
	}
	return m, restoreCmd(m.ctx, m.client, msg.token)
}

func (m Model) handlePostSaved(msg postSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(userMessage(msg.err))
		return m, nil
	}
	m.clearPostForm()
	m.view = ViewHome

	if msg.updated {
		// Updates carry no push event: apply the response directly and
		// reload to stay consistent with the server.
		m.store.UpsertPost(msg.post)
		return m, loadCmd(m.ctx, m.client, m.store)
	}
	// Creates arrive via the newPost push event; inserting here too would
	// double-count. Only fall back to a reload when the channel is down.
	return m, m.reconcileCmd()
}

func (m Model) handlePostDeleted(msg postDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(userMessage(msg.err))
		return m, nil
	}
	// Removal arrives via the deletePost push event for all clients,
	// including this one.
	return m, m.reconcileCmd()
}

// reconcileCmd returns a full-reload command when the push channel is down,
// so a confirmed mutation is not left invisible until reconnect.
func (m Model) reconcileCmd() tea.Cmd {
	if m.listener.Connected() {
		return nil
	}
	m.log.Info("push channel down, reconciling with full reload")
	return loadCmd(m.ctx, m.client, m.store)
}

// logout tears the session down: listener first, so no push event can touch
// the store mid-teardown, then session, token, and caches.
func (m *Model) logout() {
	m.listener.Stop()
	m.sess.Clear()
	m.client.SetToken("")
	if err := session.ClearToken(m.tokenPath); err != nil {
		m.log.Warn("clear persisted token", zap.Error(err))
	}
	m.store.Reset()
	m.snapshot = state.Snapshot{}
	m.selectedPostID = ""
	m.selectedRow = 0
	m.confirmDelete = ""
	m.clearNotice()
	m.view = ViewLogin
	m.log.Info("session ended")
}

// currentUser returns the authenticated user, zero-valued when logged out.
func (m Model) currentUser() api.User {
	u, _ := m.sess.Current()
	return u
}

func (m *Model) setError(msg string) {
	m.notice = msg
	m.noticeErr = true
}

func (m *Model) setNotice(msg string) {
	m.notice = msg
	m.noticeErr = false
}

func (m *Model) clearNotice() {
	m.notice = ""
	m.noticeErr = false
}

// clampSelections keeps list cursors inside the current snapshot.
func (m *Model) clampSelections() {
	if n := len(m.snapshot.Posts); m.selectedRow >= n {
		m.selectedRow = n - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
	if m.view == ViewPost {
		if n := len(m.snapshot.CommentsFor(m.selectedPostID)); m.selectedComment >= n {
			m.selectedComment = n - 1
		}
		if m.selectedComment < 0 {
			m.selectedComment = 0
		}
	}
}

// userMessage reduces a gateway failure to the single line shown to the
// user.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == api.KindNetwork {
			return "network error: " + apiErr.Message
		}
		return apiErr.Message
	}
	return err.Error()
}

// Run starts the Bubble Tea program and blocks until exit.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
