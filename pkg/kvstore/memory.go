package kvstore

import (
	"encoding/json"
	"sync"
)

// Memory is an in-memory Store with the same semantics as the SQLite
// implementation. Values are held as serialized JSON so readers always get an
// independent copy.
type Memory struct {
	mu          sync.Mutex
	slots       map[string]string
	subscribers []func(key string)
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

// Read implements Store.
func (m *Memory) Read(key string, out any) (bool, error) {
	m.mu.Lock()
	raw, ok := m.slots[key]
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, nil
	}

	return true, nil
}

// Write implements Store.
func (m *Memory) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.slots[key] = string(raw)
	subs := make([]func(string), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}

	return nil
}

// Subscribe implements Store.
func (m *Memory) Subscribe(fn func(key string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}
