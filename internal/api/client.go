package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Gateway defines the remote operations the rest of the application depends
// on. This interface is implemented by *Client and can be used for testing.
type Gateway interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Me(ctx context.Context, token string) (User, error)
	ListPosts(ctx context.Context) ([]Post, error)
	ListComments(ctx context.Context) ([]Comment, error)
	ListUsers(ctx context.Context) ([]User, error)
	CreatePost(ctx context.Context, req PostRequest) (Post, error)
	UpdatePost(ctx context.Context, id string, req PostRequest) (Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, req CommentRequest) error
	DeleteComment(ctx context.Context, id string) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the blog platform HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string

	mu    sync.RWMutex
	token string
}

const (
	defaultServer    = "127.0.0.1:4000"
	defaultUserAgent = "blogdeck/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the provided server host:port or URL.
func NewClient(server string) (*Client, error) {
	base, err := parseBaseURL(server)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns a copy of the normalized server URL.
func (c *Client) BaseURL() url.URL {
	return *c.baseURL
}

// SetToken installs the bearer token attached to authenticated calls.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently installed bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Signup registers a new account and returns the issued token and user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return AuthResponse{}, &Error{Kind: KindValidation, Message: "username, email and password are required"}
	}
	var payload AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &payload, "", "signup failed"); err != nil {
		return AuthResponse{}, err
	}
	return payload, nil
}

// Login exchanges credentials for a token and the matching user.
func (c *Client) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return AuthResponse{}, &Error{Kind: KindValidation, Message: "email and password are required"}
	}
	var payload AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &payload, "", "login failed"); err != nil {
		return AuthResponse{}, err
	}
	return payload, nil
}

// Me validates a token and returns the user it belongs to. The token is
// passed explicitly so session restore can probe a persisted token before
// installing it on the client.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var payload struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &payload, token, "session check failed"); err != nil {
		return User{}, err
	}
	return payload.User, nil
}

// ListPosts retrieves the full post collection.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	var payload []Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &payload, "", "load posts failed"); err != nil {
		return nil, err
	}
	return payload, nil
}

// ListComments retrieves the full comment collection.
func (c *Client) ListComments(ctx context.Context) ([]Comment, error) {
	var payload []Comment
	if err := c.do(ctx, http.MethodGet, "/api/comments", nil, &payload, "", "load comments failed"); err != nil {
		return nil, err
	}
	return payload, nil
}

// ListUsers retrieves the full user collection.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var payload []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &payload, "", "load users failed"); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreatePost publishes a new post. The server broadcasts a newPost push
// event to every client including this one, so callers must not insert the
// returned post locally.
func (c *Client) CreatePost(ctx context.Context, req PostRequest) (Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return Post{}, &Error{Kind: KindValidation, Message: "title and content are required"}
	}
	var payload Post
	if err := c.do(ctx, http.MethodPost, "/api/posts", req, &payload, "", "create post failed"); err != nil {
		return Post{}, err
	}
	return payload, nil
}

// UpdatePost edits an owned post. No push event is emitted for updates; the
// caller applies the returned post to the store itself.
func (c *Client) UpdatePost(ctx context.Context, id string, req PostRequest) (Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return Post{}, &Error{Kind: KindValidation, Message: "title and content are required"}
	}
	var payload Post
	path := "/api/posts/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, req, &payload, "", "update post failed"); err != nil {
		return Post{}, err
	}
	return payload, nil
}

// DeletePost removes an owned post. Removal reaches the store through the
// deletePost push event.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	path := "/api/posts/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", "delete post failed")
}

// AddComment posts a comment. The new comment reaches the store through the
// newComment push event.
func (c *Client) AddComment(ctx context.Context, req CommentRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return &Error{Kind: KindValidation, Message: "comment text is required"}
	}
	return c.do(ctx, http.MethodPost, "/api/comments", req, nil, "", "add comment failed")
}

// DeleteComment removes an owned comment. Removal reaches the store through
// the deleteComment push event.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	path := "/api/comments/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", "delete comment failed")
}

// do issues one request. tokenOverride, when non-empty, replaces the
// installed token for this call. fallback is the user-facing message used
// when the server sent no message body.
func (c *Client) do(ctx context.Context, method, path string, body, dest any, tokenOverride, fallback string) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return networkError(fallback, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return networkError(fallback, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := tokenOverride
	if token == "" {
		token = c.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(fallback, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var serverErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&serverErr)
		return statusError(resp.StatusCode, serverErr.Message, fallback)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return networkError(fallback, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func parseBaseURL(server string) (*url.URL, error) {
	trimmed := strings.TrimSpace(server)
	if trimmed == "" {
		trimmed = defaultServer
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server %q: %w", server, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
