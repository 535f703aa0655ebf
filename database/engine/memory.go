package engine

import (
	"context"
	"sync"
)

// Memory keeps entries in process memory. Used by tests and the "memory" storage setting.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return Entry{Value: append([]byte(nil), e.Value...), Revision: e.Revision}, true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte, expected int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries[key].Revision != expected {
		return 0, ErrRevisionMismatch
	}
	next := expected + 1
	m.entries[key] = Entry{Value: append([]byte(nil), value...), Revision: next}
	return next, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *Memory) Ping(context.Context) error  { return nil }
func (m *Memory) Close(context.Context) error { return nil }
