// Package blocklist keeps the client-side record of URLs the user has
// blocked.
//
// The cache exists only to disable the block action for URLs that were
// already blocked from this profile. It is insert-only: entries are never
// removed and never reconciled with the server's own block list, so the two
// may drift. Membership is exact string equality; "example.com" and
// "https://example.com" are different entries.
//
// Design decision: The whole set is stored as one JSON array under a single
// storage key, the same shape a browser page would keep in localStorage.
// This keeps the on-disk format trivially inspectable and lets other tools
// sharing the profile read it without knowing our schema.
package blocklist
