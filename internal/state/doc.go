// Package state provides the thread-safe entity store shared by the push
// listener, the reload path, and the UI.
//
// # Overview
//
// Three independently-arriving data sources feed the store: the initial bulk
// load, mutation responses from the REST gateway, and push-channel events.
// The store keeps them consistent in one place: every insert de-duplicates by
// id, removals cascade to dependent entities, and the full-load path replaces
// all contents atomically so a partial fetch can never leave mixed state.
//
// # Concurrency Model
//
// The push listener mutates the store from its read-loop goroutine while the
// UI reads from the Bubble Tea event loop, so access is guarded by a
// sync.RWMutex. Readers get value-copied Snapshots and can never observe or
// cause a torn state. Local state is a cache, never authoritative: whatever
// the server confirms (response body or push event) wins.
//
// # Idempotence
//
// Push deliveries can be duplicated across reconnects. Applying the same
// upsert twice, or removing an id that is already gone, leaves the store in
// the same observable state as applying it once, and does not bump the
// generation counter for the redundant application.
package state
