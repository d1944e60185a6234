// Package config loads analyzer configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-crawlclean/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidDelay    = errors.New("minDelayMs cannot be negative")
	ErrInvalidSamples  = errors.New("maxSamples cannot be negative")
	ErrEmptyGroupName  = errors.New("domain group name cannot be empty")
	ErrEmptyGroupHosts = errors.New("domain group must list at least one host")
)

// Analyzer defaults.
const (
	DefaultMinDelayMs = 500 // politeness threshold between requests
	DefaultMaxSamples = 5   // violations shown per domain group
)

// Config holds analyzer settings. The cleanup routine itself takes no
// configuration: its targets are fixed.
type Config struct {
	Domains    []DomainGroup `yaml:"domains"`
	MinDelayMs int           `yaml:"minDelayMs"`
	MaxSamples int           `yaml:"maxSamples"`
}

// DomainGroup maps URL hosts onto one reporting bucket. A host matches a
// group when it equals or ends with one of the group's hosts.
type DomainGroup struct {
	Name  string   `yaml:"name"`
	Hosts []string `yaml:"hosts"`
}

// DefaultConfig returns the built-in analyzer settings: the crawler's four
// seed domains and a 500ms politeness threshold.
func DefaultConfig() *Config {
	return &Config{
		Domains: []DomainGroup{
			{Name: "ics.uci.edu", Hosts: []string{"ics.uci.edu"}},
			{Name: "cs.uci.edu", Hosts: []string{"cs.uci.edu"}},
			{Name: "informatics.uci.edu", Hosts: []string{"informatics.uci.edu"}},
			{Name: "stat.uci.edu", Hosts: []string{"stat.uci.edu"}},
		},
		MinDelayMs: DefaultMinDelayMs,
		MaxSamples: DefaultMaxSamples,
	}
}

// LoadConfig reads and validates a YAML config file. Zero-valued numeric
// fields fall back to defaults so a file can set only the domain groups.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's own flag
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if cfg.MinDelayMs == 0 {
		cfg.MinDelayMs = DefaultMinDelayMs
	}
	if cfg.MaxSamples == 0 {
		cfg.MaxSamples = DefaultMaxSamples
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.MinDelayMs < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDelay, c.MinDelayMs)
	}
	if c.MaxSamples < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSamples, c.MaxSamples)
	}
	for _, g := range c.Domains {
		if g.Name == "" {
			return ErrEmptyGroupName
		}
		if len(g.Hosts) == 0 {
			return fmt.Errorf("%w: group %q", ErrEmptyGroupHosts, g.Name)
		}
	}
	return nil
}
