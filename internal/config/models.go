package config

import (
	"time"

	"github.com/ippctl/ippctl/internal/ipp"
)

// Registry represents the entire user configuration file: named printers
// and application preferences.
type Registry struct {
	Version     int                 `yaml:"version"`
	Printers    map[string]*Printer `yaml:"printers,omitempty"` // Keyed by user-chosen name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Printer represents one configured printer. The base path identifies the
// queue on the server, e.g. "/ipp/print" on a network printer or
// "/printers/office" on a CUPS server.
type Printer struct {
	Host     string    `yaml:"host"`
	Port     int       `yaml:"port"`
	TLS      bool      `yaml:"tls,omitempty"`
	BasePath string    `yaml:"base_path"`
	Username string    `yaml:"username,omitempty"`  // Basic auth user for admin operations
	Nickname string    `yaml:"nickname,omitempty"`  // User-friendly display name
	LastSeen time.Time `yaml:"last_seen,omitempty"` // Last successful contact
}

// Endpoint converts the registry entry into the IPP endpoint it describes.
func (p *Printer) Endpoint() ipp.Endpoint {
	return ipp.Endpoint{
		Host:     p.Host,
		Port:     p.Port,
		TLS:      p.TLS,
		BasePath: p.BasePath,
	}
}

// Preferences represents application-wide user preferences.
// Note: passwords are never stored; they are always prompted.
type Preferences struct {
	RequestingUser string `yaml:"requesting_user,omitempty"` // Default requesting-user-name
	PollInterval   int    `yaml:"poll_interval"`             // Watch poll interval in seconds
}

// DefaultPollInterval is the watch poll interval used when the registry
// does not set one.
const DefaultPollInterval = 30

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:  1,
		Printers: make(map[string]*Printer),
		Preferences: &Preferences{
			RequestingUser: ipp.DefaultRequestingUser,
			PollInterval:   DefaultPollInterval,
		},
	}
}

// GetPrinter retrieves a printer by name. Returns nil if the printer is not
// in the registry.
func (r *Registry) GetPrinter(name string) *Printer {
	return r.Printers[name]
}

// SetPrinter adds or replaces a printer entry.
func (r *Registry) SetPrinter(name string, p *Printer) {
	if r.Printers == nil {
		r.Printers = make(map[string]*Printer)
	}
	r.Printers[name] = p
}

// RemovePrinter deletes a printer entry. Returns false if the name was not
// present.
func (r *Registry) RemovePrinter(name string) bool {
	if _, ok := r.Printers[name]; !ok {
		return false
	}
	delete(r.Printers, name)
	return true
}

// TouchPrinter updates the last seen timestamp for a printer after a
// successful operation. No-op for unknown names.
func (r *Registry) TouchPrinter(name string) {
	if p, ok := r.Printers[name]; ok {
		p.LastSeen = time.Now()
	}
}

// RequestingUser returns the preferred requesting-user-name, falling back
// to the fixed default identity.
func (r *Registry) RequestingUser() string {
	if r.Preferences != nil && r.Preferences.RequestingUser != "" {
		return r.Preferences.RequestingUser
	}
	return ipp.DefaultRequestingUser
}
