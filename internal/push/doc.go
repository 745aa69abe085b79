// Package push maintains the live connection to the server's push channel.
//
// # Overview
//
// The server broadcasts entity create/delete events to every connected
// client over a websocket at /ws. The listener subscribes to four event
// kinds (newPost, newComment, deletePost, deleteComment) and folds each
// payload into the entity store. Updates to posts carry no event; they are
// reconciled through the REST response and a full reload instead.
//
// # Wire Format
//
// Messages are JSON text frames:
//
//	{"event": "newPost", "data": {...post...}}
//	{"event": "deleteComment", "data": "<comment id>"}
//
// On connect the listener sends a subscribe frame naming the four event
// kinds; on teardown it sends the matching unsubscribe frame before closing.
//
// # Lifecycle
//
// Start attaches the listener for the life of the session; Stop detaches it
// deterministically on logout or shutdown and blocks until the read loop has
// exited, so a torn-down listener can never mutate the store afterwards.
// Lost connections are retried on a fixed cadence while the context lives;
// re-subscription happens on every successful dial. Duplicate deliveries
// across reconnects are harmless because the store's operations are
// idempotent.
package push
