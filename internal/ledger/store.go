// Package ledger is the host runtime the registry runs on. It provides the
// persistent key/value store, the clock, event publication and the identity
// of the caller, and executes each registry operation serially with
// all-or-nothing commit semantics.
package ledger

import (
	"context"
	"errors"
)

// ErrConflict is returned by Commit when a key the operation read has been
// changed by another writer since it was read.
var ErrConflict = errors.New("ledger: concurrent write conflict")

// Store is the persistent key/value space of one registry instance.
type Store interface {
	// Get returns the value stored under key. The boolean is false when the
	// key has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Write is a single buffered key assignment.
type Write struct {
	Key   string
	Value []byte
}

// Read is the value an operation observed for a key before writing. Found is
// false when the key did not exist.
type Read struct {
	Key   string
	Value []byte
	Found bool
}

// Backend is a Store that can apply a batch of writes atomically. Commit
// applies writes only if every key in reads still holds the observed value,
// and returns ErrConflict otherwise.
type Backend interface {
	Store
	Commit(ctx context.Context, reads []Read, writes []Write) error
}
