// Package store provides small string key-value stores used as the
// persistent backing for flag providers.
//
// FileStore keeps one file per key under a base directory and survives
// process restarts. MemoryStore is the in-memory implementation for tests
// and as a fallback when no directory is writable.
package store
