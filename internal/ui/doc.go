// Package ui implements the Bubble Tea interface for blogdeck.
//
// The Model is a finite view router over {login, signup, home, create, edit,
// post, profile}. Transitions happen only on explicit user actions and on
// store snapshots: the post view falls back to home when the viewed post
// disappears from a snapshot.
//
// All remote work runs as tea.Cmd closures producing one message type per
// operation; the Update loop is the only place view state mutates. The store
// is read through value-copied snapshots fetched on a short tick, so push
// events arriving on the listener goroutine become visible without the UI
// ever touching shared state. Stale responses that arrive after the user
// navigated away still fold into the store safely; only the rendered view is
// filtered by the current selection.
package ui
