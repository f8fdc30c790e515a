// Package storage persists the article list, its backups and the storage
// settings as JSON blobs in a kv.Store.
//
// Reads fail open: a missing or unreadable blob yields the empty list (or
// default settings) and the cause is logged. Writes fail closed: any
// rejection by the store comes back as a *StorageError, and nothing is
// retried.
package storage
