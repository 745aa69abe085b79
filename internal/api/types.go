package api

import "time"

// User mirrors the /api/users entity schema.
type User struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Post mirrors the /api/posts entity schema. UserID references the author.
type Post struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// Comment mirrors the /api/comments entity schema. PostID references the
// parent post, UserID the author.
type Comment struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	PostID    string `json:"postId"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// AuthResponse is returned by /api/auth/signup and /api/auth/login.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignupRequest is the /api/auth/signup payload.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// LoginRequest is the /api/auth/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostRequest is the payload for creating or updating a post.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CommentRequest is the /api/comments payload.
type CommentRequest struct {
	PostID string `json:"postId"`
	Text   string `json:"text"`
}

// ParsedCreatedAt returns the post's creation timestamp, or the zero time
// when the server sent none or an unknown layout.
func (p Post) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// ParsedCreatedAt returns the comment's creation timestamp.
func (c Comment) ParsedCreatedAt() time.Time {
	return parseTime(c.CreatedAt)
}

// ParsedCreatedAt returns the user's signup timestamp.
func (u User) ParsedCreatedAt() time.Time {
	return parseTime(u.CreatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
