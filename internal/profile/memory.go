package profile

import "sync"

// MemoryStore is a Store that keeps profiles in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	config Config
}

// NewMemoryStore returns a store seeded with the given profiles.
func NewMemoryStore(profiles ...Profile) *MemoryStore {
	m := &MemoryStore{}
	for _, p := range profiles {
		m.config.AddOrUpdate(p)
	}
	return m
}

// Load returns a copy of the stored configuration.
func (m *MemoryStore) Load() (*Config, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := &Config{Profiles: make([]Profile, len(m.config.Profiles))}
	copy(out.Profiles, m.config.Profiles)
	return out, nil
}

// Save replaces the stored configuration.
func (m *MemoryStore) Save(config *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config.Profiles = append([]Profile(nil), config.Profiles...)
	return nil
}

// Location implements Loader.
func (m *MemoryStore) Location() string {
	return "memory"
}

// Get returns the named profile or a *NotFoundError.
func (m *MemoryStore) Get(name string) (*Profile, error) {
	return get(m, name)
}
