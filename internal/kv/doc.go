// Package kv is the local key-value store that every persisted blob of
// CREAMI lives in.
//
// # Overview
//
// Store is a tiny Get/Set/Delete/List contract over opaque byte values.
// Services above it (storage, printcfg) own their keys and their encoding;
// this package never looks inside a value.
//
// Two implementations exist:
//
//   - SQLiteStore keeps values in a single "kv" table of a SQLite file
//     (pure-Go modernc driver). Open applies the embedded goose migrations.
//   - MemoryStore keeps values in a map and is what tests inject.
//
// # Semantics
//
// Get returns (nil, nil) for a missing key. Set overwrites. SetMany writes
// all entries or none. Deleting a missing key is not an error.
//
// Typical Usage
//
//	store, db, err := kv.Open(ctx, "creami.db")
//	defer db.Close()
//	_ = store.Set(ctx, "creami-last-save", []byte(ts))
//	v, _ := store.Get(ctx, "creami-last-save")
package kv
