// Package app provides the orchestration layer for the blogdeck client.
//
// # Overview
//
// Run is the composition root: it loads configuration, builds the API
// client, the entity store, the session, and the push listener, and hands
// them to the UI. Component lifecycles are explicit: the push listener is
// started by the UI when a session begins and stopped on logout, with a
// deferred stop in Run covering shutdown while logged in.
//
// # Startup Sequence
//
//  1. config.Load reads ~/.config/blogdeck/config.toml (defaults when absent)
//  2. A file-backed zap logger is built (the TUI owns the terminal)
//  3. api.NewClient normalizes the server URL
//  4. The UI restores any persisted session and bulk-loads the store
//
// # Error Handling
//
// Configuration and client initialization failures are fatal and returned
// from Run. Everything after the UI starts is surfaced inside the UI as
// user-facing notices and logged to the debug log file.
package app
