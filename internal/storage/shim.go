package storage

import "encoding/json"

// Shim is the persistence layer every component writes through. Values go to
// the durable store when one is present and healthy, and silently fall back
// to a process-lifetime map otherwise. Callers never see an error: in
// degraded mode data simply does not survive a restart.
type Shim struct {
	durable  KV
	fallback *MemoryKV
}

// NewShim wraps durable, which may be nil when no durable store could be
// opened.
func NewShim(durable KV) *Shim {
	return &Shim{durable: durable, fallback: NewMemoryKV()}
}

// SaveString writes value under key, preferring the durable store.
func (s *Shim) SaveString(key, value string) {
	if s.durable != nil {
		if err := s.durable.Set(key, value); err == nil {
			return
		}
	}
	_ = s.fallback.Set(key, value)
}

// LoadString returns the stored text for key, or def when the key is absent
// from both backings.
func (s *Shim) LoadString(key, def string) string {
	if s.durable != nil {
		if v, err := s.durable.Get(key); err == nil {
			return v
		}
	}
	if v, err := s.fallback.Get(key); err == nil {
		return v
	}
	return def
}

// Remove deletes key from whichever backing holds it. Absent keys are a
// no-op.
func (s *Shim) Remove(key string) {
	if s.durable != nil {
		_ = s.durable.Delete(key)
	}
	_ = s.fallback.Delete(key)
}

// SaveJSON encodes value as JSON text and stores it under key. Encoding
// failures drop the write, matching the shim's no-error contract.
func (s *Shim) SaveJSON(key string, value any) {
	bs, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.SaveString(key, string(bs))
}

// LoadJSON decodes the stored text for key into out and reports whether a
// decodable value was present. On a decode failure out is left untouched.
func (s *Shim) LoadJSON(key string, out any) bool {
	raw := s.LoadString(key, "")
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
