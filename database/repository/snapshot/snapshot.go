// Package snapshot persists a whole record family as one JSON array under a single engine key.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"statutesync/database/engine"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a record id is not in the snapshot.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when the snapshot changed between read and write.
	ErrConflict = errors.New("snapshot was modified concurrently")
	// ErrStorageCorrupt is returned when a stored snapshot cannot be decoded.
	ErrStorageCorrupt = errors.New("stored snapshot is corrupt")
)

// CorruptPolicy decides what happens when a stored snapshot fails to decode.
type CorruptPolicy string

const (
	// PolicyError surfaces ErrStorageCorrupt to the caller.
	PolicyError CorruptPolicy = "error"
	// PolicyReset overwrites the snapshot with the family defaults.
	PolicyReset CorruptPolicy = "reset"
)

// ParsePolicy maps a configuration value to a policy, defaulting to PolicyError.
func ParsePolicy(s string) CorruptPolicy {
	if CorruptPolicy(s) == PolicyReset {
		return PolicyReset
	}
	return PolicyError
}

// Snapshot is a decoded family together with the revision it was read at.
type Snapshot[T any] struct {
	Items    []T
	Revision int64
}

// Collection reads and writes one record family.
type Collection[T any] struct {
	Engine   engine.Engine
	Key      string
	Defaults func() []T
	Policy   CorruptPolicy
	Logger   *zap.Logger
}

func (c *Collection[T]) defaults() []T {
	if c.Defaults == nil {
		return []T{}
	}
	return c.Defaults()
}

func (c *Collection[T]) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Load returns the stored snapshot. An absent key yields the defaults at revision 0; nothing is written.
func (c *Collection[T]) Load(ctx context.Context) (Snapshot[T], error) {
	entry, ok, err := c.Engine.Get(ctx, c.Key)
	if err != nil {
		return Snapshot[T]{}, fmt.Errorf("load %s: %w", c.Key, err)
	}
	if !ok {
		return Snapshot[T]{Items: c.defaults()}, nil
	}

	var items []T
	if err := json.Unmarshal(entry.Value, &items); err != nil {
		if c.Policy != PolicyReset {
			return Snapshot[T]{}, fmt.Errorf("%w: %s: %v", ErrStorageCorrupt, c.Key, err)
		}
		c.logger().Warn("Resetting corrupt snapshot to defaults",
			zap.String("key", c.Key), zap.Error(err))
		return c.Save(ctx, c.defaults(), entry.Revision)
	}
	if items == nil {
		items = []T{}
	}
	return Snapshot[T]{Items: items, Revision: entry.Revision}, nil
}

// Prepend loads the snapshot, puts item in front and writes it back.
func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	snap, err := c.Load(ctx)
	if err != nil {
		return err
	}
	items := make([]T, 0, len(snap.Items)+1)
	items = append(items, item)
	items = append(items, snap.Items...)
	_, err = c.Save(ctx, items, snap.Revision)
	return err
}

// RemoveWhere drops every item matching fn. The snapshot is rewritten even when nothing matched.
func (c *Collection[T]) RemoveWhere(ctx context.Context, fn func(T) bool) error {
	snap, err := c.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(snap.Items))
	for _, item := range snap.Items {
		if !fn(item) {
			kept = append(kept, item)
		}
	}
	_, err = c.Save(ctx, kept, snap.Revision)
	return err
}

// Find returns the first item matching fn or ErrNotFound.
func (c *Collection[T]) Find(ctx context.Context, fn func(T) bool) (T, error) {
	var zero T
	snap, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range snap.Items {
		if fn(item) {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Seed writes the defaults when the key is absent. It reports whether it wrote.
func (c *Collection[T]) Seed(ctx context.Context) (bool, error) {
	_, ok, err := c.Engine.Get(ctx, c.Key)
	if err != nil {
		return false, fmt.Errorf("seed %s: %w", c.Key, err)
	}
	if ok {
		return false, nil
	}
	if _, err := c.Save(ctx, c.defaults(), 0); err != nil {
		return false, err
	}
	return true, nil
}

// Reset overwrites the family with its defaults regardless of what is stored.
func (c *Collection[T]) Reset(ctx context.Context) error {
	entry, _, err := c.Engine.Get(ctx, c.Key)
	if err != nil {
		return fmt.Errorf("reset %s: %w", c.Key, err)
	}
	_, err = c.Save(ctx, c.defaults(), entry.Revision)
	return err
}

// Save writes items if the stored revision still equals expected, returning ErrConflict otherwise.
// Every mutation of the family goes through it.
func (c *Collection[T]) Save(ctx context.Context, items []T, expected int64) (Snapshot[T], error) {
	data, err := json.Marshal(items)
	if err != nil {
		return Snapshot[T]{}, fmt.Errorf("encode %s: %w", c.Key, err)
	}
	rev, err := c.Engine.Put(ctx, c.Key, data, expected)
	if errors.Is(err, engine.ErrRevisionMismatch) {
		return Snapshot[T]{}, fmt.Errorf("%w: %s", ErrConflict, c.Key)
	}
	if err != nil {
		return Snapshot[T]{}, fmt.Errorf("save %s: %w", c.Key, err)
	}
	return Snapshot[T]{Items: items, Revision: rev}, nil
}

// Options are shared by the family repositories built on a Collection.
type Options struct {
	Policy CorruptPolicy
	Logger *zap.Logger
	Now    func() time.Time
}

// Clock returns o.Now or time.Now.
func (o Options) Clock() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
