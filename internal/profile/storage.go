package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"tmoapi/pkg/logging"
)

const (
	// profilesFileName is the name of the profiles file.
	profilesFileName = "profiles.yaml"
	// userConfigDir is the subdirectory under home for tmoapi configuration.
	userConfigDir = ".config/tmoapi"
)

// Loader is the read side of a profile store.
type Loader interface {
	Load() (*Config, error)
	// Location describes where profiles are kept, for error messages.
	Location() string
}

// Store is a profile store that can also be written.
type Store interface {
	Loader
	Save(config *Config) error
}

// Storage provides thread-safe access to the profiles file.
type Storage struct {
	mu       sync.RWMutex
	filePath string
}

// DefaultPath returns ~/.config/tmoapi/profiles.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, profilesFileName), nil
}

// NewStorage creates a Storage for the default profiles file.
func NewStorage() (*Storage, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return NewStorageWithPath(path), nil
}

// NewStorageWithPath creates a Storage for the given profiles file.
func NewStorageWithPath(filePath string) *Storage {
	return &Storage{filePath: filePath}
}

// Location returns the path of the profiles file.
func (s *Storage) Location() string {
	return s.filePath
}

// Load reads and parses the profiles file.
// If the file doesn't exist, an empty Config is returned.
func (s *Storage) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadLocked()
}

func (s *Storage) loadLocked() (*Config, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Profile", "No profiles file at %s", s.filePath)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse profiles file %s: %w", s.filePath, err)
	}

	logging.Debug("Profile", "Loaded %d profile(s) from %s", len(config.Profiles), s.filePath)
	return &config, nil
}

// Save writes the configuration to the profiles file, creating its
// directory when needed. The file holds tokens, so it is private to the user.
func (s *Storage) Save(config *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(config)
}

func (s *Storage) saveLocked(config *Config) error {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write profiles file: %w", err)
	}

	return nil
}

// Put adds or replaces a profile.
func (s *Storage) Put(p Profile) error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadLocked()
	if err != nil {
		return err
	}
	config.AddOrUpdate(p)
	return s.saveLocked(config)
}

// Delete removes a profile by name.
func (s *Storage) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, err := s.loadLocked()
	if err != nil {
		return err
	}

	if !config.Remove(name) {
		return &NotFoundError{Name: name, Location: s.filePath, Available: config.Names()}
	}

	return s.saveLocked(config)
}

// Get returns the named profile or a *NotFoundError.
func (s *Storage) Get(name string) (*Profile, error) {
	return get(s, name)
}

func get(l Loader, name string) (*Profile, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}
	p := config.Get(name)
	if p == nil {
		return nil, &NotFoundError{Name: name, Location: l.Location(), Available: config.Names()}
	}
	return p, nil
}
