package memory

import (
	"fmt"
	"sync"

	"storefront-state/internal/domain"
	"storefront-state/internal/ports/output"
)

// Compile-time check to ensure MemoryStorage implements Storage interface
var _ output.Storage = (*MemoryStorage)(nil)

// MemoryStorage struct - Output adapter for in-memory key/value storage
// Keeps values for the process lifetime only. An optional quota, counted as
// the total bytes of keys and values, makes writes fail the way a full
// browser storage area does.
type MemoryStorage struct {
	mu    sync.Mutex
	items map[string]string
	used  int
	quota int
}

// NewMemoryStorage creates a new in-memory storage.
// quota: maximum total bytes of keys and values, 0 means unlimited
func NewMemoryStorage(quota int) *MemoryStorage {
	return &MemoryStorage{
		items: make(map[string]string),
		quota: quota,
	}
}

// GetQuota returns the configured quota in bytes
func (m *MemoryStorage) GetQuota() int {
	return m.quota
}

// Used returns the number of bytes currently stored
func (m *MemoryStorage) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.used
}

// GetItem returns the value stored under key
func (m *MemoryStorage) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.items[key]
	return value, ok, nil
}

// SetItem stores value under key.
// The previous value is kept when the write would exceed the quota.
func (m *MemoryStorage) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	used := m.used
	if old, ok := m.items[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)
	if m.quota > 0 && used > m.quota {
		return fmt.Errorf("set %q (%d of %d bytes): %w", key, used, m.quota, domain.ErrQuotaExceeded)
	}

	m.items[key] = value
	m.used = used
	return nil
}

// RemoveItem deletes key. Removing a missing key is not an error.
func (m *MemoryStorage) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.items[key]; ok {
		m.used -= len(key) + len(old)
		delete(m.items, key)
	}
	return nil
}

// Ping always succeeds for memory storage
func (m *MemoryStorage) Ping() error {
	return nil
}
