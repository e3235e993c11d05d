// Package storage provides the persistent key-value surface BaroHub keeps
// its catalog and admin flag in. Values are opaque text; callers own the
// encoding.
package storage

import "sync"

// KV is the persistence port consumed by the catalog store. Get reports
// whether the key was present so callers can distinguish "absent" from
// "empty".
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Memory is an in-process KV used in tests and as a fallback when no data
// directory is writable. The zero value is ready to use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string

	// SetErr, when non-nil, is returned by every Set. Tests use it to
	// exercise write-failure paths.
	SetErr error
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Close implements KV as a no-op.
func (m *Memory) Close() error { return nil }
