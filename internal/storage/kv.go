package storage

import "errors"

var ErrNotFound = errors.New("storage: not found")

// KV is a flat string key/value store. Implementations may fail; the Shim
// decides what a failure means for its callers.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKV is the process-lifetime fallback store. It never fails.
type MemoryKV struct {
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}
