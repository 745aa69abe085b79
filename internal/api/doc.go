// Package api provides the HTTP client for the blog platform REST API.
//
// # Overview
//
// The package defines the gateway through which every remote operation runs:
// authentication, collection loads, and post/comment mutations. It handles
// HTTP communication, JSON serialization, bearer-token attachment, and the
// classification of failures into user-facing error kinds.
//
// # Architecture
//
//   - client.go: HTTP client, request/response handling, the Gateway interface
//   - types.go: Data structures mirroring the platform API schema
//   - errors.go: Error taxonomy shared with the UI
//
// # Mutation Semantics
//
// Creates and deletes deliberately return nothing the caller should apply to
// local state: the server broadcasts a matching push event to all clients,
// including the caller, and the store is updated only from that event. This
// avoids double insertion when both the response and the event arrive.
// Updates are the exception: no push event exists for them, so the caller
// applies the response body directly and follows up with a full reload.
//
// # Error Handling
//
// Every failure surfaces as *Error with a Kind:
//
//   - KindValidation: 4xx input rejection (missing fields, duplicates)
//   - KindAuth: 401, bad credentials or invalid/expired token
//   - KindForbidden: 403, ownership violation
//   - KindNotFound: 404, stale reference
//   - KindNetwork: transport failures and 5xx responses
//
// The Message field prefers the server's own {"message": ...} body and is
// safe to show to the user verbatim. No call is retried automatically.
package api
