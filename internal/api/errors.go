package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure into the outcomes the UI must tell apart.
type Kind int

const (
	// KindNetwork covers transport failures and anything else the client
	// could not attribute to a server verdict.
	KindNetwork Kind = iota
	// KindValidation covers rejected input (missing fields, duplicates).
	KindValidation
	// KindAuth covers bad credentials and invalid or expired tokens.
	KindAuth
	// KindForbidden covers ownership violations on edit/delete.
	KindForbidden
	// KindNotFound covers stale references to deleted entities.
	KindNotFound
)

// Error is the failure type returned by every Client call. Message is safe to
// show to the user; it carries the server's own wording when one was sent.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the Kind from err, defaulting to KindNetwork for errors
// that did not come from the gateway.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

// IsAuth reports whether err means the session token or credentials were
// rejected, which forces a return to the login view.
func IsAuth(err error) bool { return err != nil && KindOf(err) == KindAuth }

// statusError maps an HTTP status and server message to a classified Error.
func statusError(status int, message, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	kind := KindNetwork
	switch {
	case status == http.StatusUnauthorized:
		kind = KindAuth
	case status == http.StatusForbidden:
		kind = KindForbidden
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status >= 400 && status < 500:
		kind = KindValidation
	}
	return &Error{Kind: kind, Status: status, Message: message}
}

// networkError wraps a transport-level failure.
func networkError(action string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: action, cause: cause}
}
