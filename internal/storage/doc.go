// Package storage provides SQLite-based local storage for phishcheck.
//
// The Store mirrors the browser's localStorage: a flat set of named entries,
// each holding a string value (typically JSON). phishcheck keeps its
// client-side block-list cache in a single entry.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of a plain
// JSON file because:
// 1. Writes are atomic, so an interrupted process cannot truncate the cache
// 2. CGO-free implementation allows easy cross-compilation
// 3. Several phishcheck processes can share one profile safely (WAL mode)
package storage
