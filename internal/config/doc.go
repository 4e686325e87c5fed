// Package config manages the YAML printer registry.
//
// The registry lives at the platform config directory (for example
// ~/.config/ippctl/config.yaml) and stores named printer endpoints plus
// application preferences. Commands resolve --printer names through it and
// record last-contact timestamps after successful operations. Saves are
// atomic (temp file plus rename).
package config
