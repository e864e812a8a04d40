package storage

import "context"

// Keys of the three persisted records. Each value is a whole JSON blob
// written atomically, so a failed write never leaves a partial record.
const (
	KeyUser      = "civicpay_user"
	KeyPayments  = "civicpay_payments"
	KeyAuthToken = "civicpay_auth_token"
)

// Store is the persistent key-value collaborator used by the session and
// ledger managers. Implementations are typically backed by a local SQLite
// database.
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes all given keys in a single transaction.
	RemoveMany(ctx context.Context, keys ...string) error
}
