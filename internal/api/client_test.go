package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultServer {
		t.Fatalf("host = %q, want %q", u.Host, defaultServer)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_AuthFlowAndBearerAttachment(t *testing.T) {
	t.Parallel()

	userID := uuid.NewString()
	token := uuid.NewString()
	var gotSignup SignupRequest
	var gotLogin LoginRequest
	var gotMeAuth, gotCreateAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/signup":
			_ = json.NewDecoder(r.Body).Decode(&gotSignup)
			_ = json.NewEncoder(w).Encode(AuthResponse{Token: token, User: User{ID: userID, Username: gotSignup.Username}})
		case "/api/auth/login":
			_ = json.NewDecoder(r.Body).Decode(&gotLogin)
			_ = json.NewEncoder(w).Encode(AuthResponse{Token: token, User: User{ID: userID}})
		case "/api/auth/me":
			gotMeAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]User{"user": {ID: userID, Username: "ana"}})
		case "/api/posts":
			gotCreateAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(Post{ID: uuid.NewString(), UserID: userID, Title: "Hi"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := testContext(t)

	resp, err := c.Signup(ctx, SignupRequest{Username: "ana", Email: "a@x.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if resp.Token != token || gotSignup.Email != "a@x.com" {
		t.Fatalf("signup exchange wrong: resp=%#v sent=%#v", resp, gotSignup)
	}

	if _, err := c.Login(ctx, LoginRequest{Email: "a@x.com", Password: "pw123456"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if gotLogin.Email != "a@x.com" {
		t.Fatalf("login payload = %#v", gotLogin)
	}

	// Me probes with an explicit token, before it is installed on the client.
	user, err := c.Me(ctx, token)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if user.Username != "ana" {
		t.Fatalf("Me user = %#v", user)
	}
	if gotMeAuth != "Bearer "+token {
		t.Fatalf("me auth header = %q, want explicit bearer", gotMeAuth)
	}

	// Authenticated mutations use the installed token.
	c.SetToken(token)
	if _, err := c.CreatePost(ctx, PostRequest{Title: "Hi", Content: "World"}); err != nil {
		t.Fatalf("CreatePost returned error: %v", err)
	}
	if gotCreateAuth != "Bearer "+token {
		t.Fatalf("create auth header = %q, want installed bearer", gotCreateAuth)
	}
}

func TestClient_StatusClassification(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		message string
		want    Kind
	}{
		{"validation", http.StatusBadRequest, "email already in use", KindValidation},
		{"auth", http.StatusUnauthorized, "invalid credentials", KindAuth},
		{"forbidden", http.StatusForbidden, "not your post", KindForbidden},
		{"not found", http.StatusNotFound, "post gone", KindNotFound},
		{"server", http.StatusInternalServerError, "", KindNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				if tc.message != "" {
					_ = json.NewEncoder(w).Encode(map[string]string{"message": tc.message})
				}
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}

			_, err = c.UpdatePost(testContext(t), "p1", PostRequest{Title: "a", Content: "b"})
			if err == nil {
				t.Fatal("UpdatePost succeeded, want classified error")
			}
			if got := KindOf(err); got != tc.want {
				t.Fatalf("KindOf = %v, want %v", got, tc.want)
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %v is not *Error", err)
			}
			if tc.message != "" && apiErr.Message != tc.message {
				t.Fatalf("message = %q, want server message %q", apiErr.Message, tc.message)
			}
		})
	}
}

func TestClient_TransportFailureIsNetworkKind(t *testing.T) {
	t.Parallel()

	// Nothing listens here.
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListPosts(testContext(t))
	if err == nil {
		t.Fatal("ListPosts succeeded against a dead server")
	}
	if got := KindOf(err); got != KindNetwork {
		t.Fatalf("KindOf = %v, want KindNetwork", got)
	}
}

func TestClient_LocalValidation(t *testing.T) {
	t.Parallel()

	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := testContext(t)

	if _, err := c.CreatePost(ctx, PostRequest{Title: " ", Content: "x"}); KindOf(err) != KindValidation {
		t.Fatalf("blank title error = %v, want validation", err)
	}
	if _, err := c.Signup(ctx, SignupRequest{Username: "ana"}); KindOf(err) != KindValidation {
		t.Fatalf("incomplete signup error = %v, want validation", err)
	}
	if _, err := c.Login(ctx, LoginRequest{}); KindOf(err) != KindValidation {
		t.Fatalf("empty login error = %v, want validation", err)
	}
	if err := c.AddComment(ctx, CommentRequest{PostID: "p1", Text: "   "}); KindOf(err) != KindValidation {
		t.Fatalf("blank comment error = %v, want validation", err)
	}
}

func TestClient_DeleteCallsUseMethodAndPath(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := testContext(t)

	if err := c.DeletePost(ctx, "p42"); err != nil {
		t.Fatalf("DeletePost returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/posts/p42" {
		t.Fatalf("request = %s %s, want DELETE /api/posts/p42", gotMethod, gotPath)
	}

	if err := c.DeleteComment(ctx, "c7"); err != nil {
		t.Fatalf("DeleteComment returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/comments/c7" {
		t.Fatalf("request = %s %s, want DELETE /api/comments/c7", gotMethod, gotPath)
	}
}
