// Package storage provides the on-device persistence layer for CivicPay.
//
// # Overview
//
// The package defines a Store interface over named string keys holding
// serialized JSON blobs, and a SQLite-backed implementation (SQLiteStore)
// persisting data in a single kv table. Open wires a database file and
// applies the embedded goose migrations.
//
// # Data Model
//
// Three logical records exist (see KeyUser, KeyPayments, KeyAuthToken). An
// absent key is not an error: Get returns (nil, nil) and callers treat it as
// "no user", "no payments", or "no token".
//
// # Concurrency
//
// SQLiteStore is safe for concurrent use when backed by a properly configured
// *sql.DB. RemoveMany runs inside a transaction via dbx.WithTx.
//
// Typical Usage
//
//	store, _ := storage.Open(ctx, "civicpay.db")
//	_ = store.Set(ctx, storage.KeyAuthToken, []byte(token))
//	blob, _ := store.Get(ctx, storage.KeyUser)
//	_ = store.RemoveMany(ctx, storage.KeyUser, storage.KeyPayments, storage.KeyAuthToken)
package storage
