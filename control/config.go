// File: control/config.go
// Author: momentics <momentics@gmail.com>
//
// YAML-backed configuration for ring-based tools, validated against
// the geometry the running system actually supports.

package control

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/momentics/mmring/ring"
)

// Config selects the cursor family and geometry for a relay run.
type Config struct {
	// Width is the cursor width in bits: 16 or 32.
	Width int `yaml:"width"`
	// LgPages is the binary logarithm of the page count.
	LgPages uint8 `yaml:"lg_pages"`
}

// DefaultConfig returns the wide family with 16 pages (64 KiB on a
// 4 KiB page system).
func DefaultConfig() *Config {
	return &Config{
		Width:   32,
		LgPages: 4,
	}
}

// LoadConfig reads and validates a YAML config file. Missing fields
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the width and the exponent against the range the
// cursor family supports on this system's page size.
func (c *Config) Validate() error {
	var maxLg int
	switch c.Width {
	case 16:
		maxLg = ring.MaxLgPages[uint16]()
	case 32:
		maxLg = ring.MaxLgPages[uint32]()
	default:
		return fmt.Errorf("width must be 16 or 32, got %d", c.Width)
	}
	if int(c.LgPages) > maxLg {
		return fmt.Errorf("lg_pages %d out of range for %d-bit cursors (max %d)",
			c.LgPages, c.Width, maxLg)
	}
	return nil
}
