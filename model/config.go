package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/rtlsim/bits"
)

// Config holds adapter settings shared by all backends.
type Config struct {
	// WidthPolicy decides what SetMem and SetMMIO do with values wider than
	// their signal. Default: reject.
	WidthPolicy bits.Policy `json:"width_policy"`
}

// DefaultConfig returns a Config that rejects out-of-range inputs.
func DefaultConfig() *Config {
	return &Config{
		WidthPolicy: bits.Reject,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse model config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize model config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model config file: %w", err)
	}

	return nil
}

// Validate checks that all settings are known values.
func (c *Config) Validate() error {
	if !c.WidthPolicy.Valid() {
		return fmt.Errorf("width_policy %d is not a known policy", int(c.WidthPolicy))
	}
	return nil
}

// Clone returns a deep copy of the Config.
func (c *Config) Clone() *Config {
	return &Config{
		WidthPolicy: c.WidthPolicy,
	}
}
