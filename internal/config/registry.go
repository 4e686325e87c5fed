package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "ippctl"
	configFile = "config.yaml"
)

// Mutex for thread-safe file operations
var fileMutex sync.Mutex

// Path returns the full path to the configuration file, following platform
// conventions (e.g. ~/.config/ippctl/config.yaml on Linux).
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appName, configFile), nil
}

// Load loads the registry from the default location. If the file doesn't
// exist, returns a new default registry.
func Load() (*Registry, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the registry from an explicit path.
func LoadFrom(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if registry.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", registry.Version)
	}

	if registry.Printers == nil {
		registry.Printers = make(map[string]*Printer)
	}
	if registry.Preferences == nil {
		registry.Preferences = NewRegistry().Preferences
	}

	return &registry, nil
}

// Save saves the registry to the default location.
func (r *Registry) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return r.SaveTo(path)
}

// SaveTo saves the registry to an explicit path. The write goes through a
// temporary file and rename so a crash cannot leave a truncated config.
func (r *Registry) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# ippctl configuration file
#
# Stores named printers and preferences. Passwords for printer
# administration are NEVER stored here; they are always prompted.

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
