// Package engine provides the key/value stores that hold record snapshots.
//
// Every key carries a revision counter. Put is a compare-and-swap on that
// revision: it succeeds only when the stored revision equals the expected one
// (0 meaning "absent") and returns the new revision.
package engine

import (
	"context"
	"errors"
)

// ErrRevisionMismatch is returned by Put when the stored revision differs from the expected one.
var ErrRevisionMismatch = errors.New("engine: revision mismatch")

// Entry is a stored value together with its revision.
type Entry struct {
	Value    []byte
	Revision int64
}

// Engine is a namespaced blob store with optimistic versioning.
type Engine interface {
	Name() string
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, value []byte, expected int64) (int64, error)
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
