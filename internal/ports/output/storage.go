package output

// Storage interface - Output port
// Defines what the session container needs from durable key/value storage.
// Values are serialized strings; the storage holds no behavior of its own.
type Storage interface {
	// GetItem returns the raw value stored under key.
	// ok is false when the key does not exist.
	// Returns an error only if there is a storage access failure.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, overwriting any previous value.
	// Returns domain.ErrQuotaExceeded when the backing is full.
	SetItem(key, value string) error

	// RemoveItem deletes key. This operation is idempotent -
	// removing a missing key does not return an error.
	RemoveItem(key string) error

	// Ping verifies the backing is reachable
	Ping() error
}
