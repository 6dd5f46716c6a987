// Package kvstore provides durable named-slot storage for JSON-serializable
// values. Every top-level collection and setting of the application lives in
// its own slot, keyed by name.
package kvstore

// Store is the persistence contract shared by every component that owns a
// named slot. Implementations must treat a malformed stored value as absent
// rather than returning an error, so callers can always fall back to their
// default.
type Store interface {
	// Read unmarshals the value stored under key into out. It returns false
	// when the slot is absent or its contents cannot be parsed; out is left
	// untouched in that case.
	Read(key string, out any) (bool, error)

	// Write serializes value and persists it under key, replacing any
	// previous value. Subscribers are notified after the write succeeds.
	Write(key string, value any) error

	// Subscribe registers fn to be called with the key of every successful
	// write. Callbacks run synchronously on the writer's goroutine and must
	// not block.
	Subscribe(fn func(key string))
}
