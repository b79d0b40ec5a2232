package config

import (
	"fmt"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

// file mirrors Config in a JSON-friendly shape. Pointers distinguish omitted fields from
// zero values, so only explicitly set fields override the defaults.
type file struct {
	NET struct {
		ReadBufferSize            *int    `json:"read_buffer_size"`
		ReadTimeout               *string `json:"read_timeout"`
		AcceptLoopInterruptPeriod *string `json:"accept_loop_interrupt_period"`
		Concurrent                *bool   `json:"concurrent"`
	} `json:"net"`
	Files struct {
		Directory *string `json:"directory"`
	} `json:"files"`
	Router struct {
		StrictSegments *bool `json:"strict_segments"`
	} `json:"router"`
}

// Load reads a JSON config file and applies it on top of Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// Parse decodes the JSON representation of the config and applies it on top of Default().
func Parse(data []byte) (*Config, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: bad json: %w", err)
	}

	cfg := Default()

	if f.NET.ReadBufferSize != nil {
		if *f.NET.ReadBufferSize <= 0 {
			return nil, fmt.Errorf("config: read_buffer_size must be positive, got %d", *f.NET.ReadBufferSize)
		}

		cfg.NET.ReadBufferSize = *f.NET.ReadBufferSize
	}

	if err := setDuration(&cfg.NET.ReadTimeout, f.NET.ReadTimeout, "read_timeout"); err != nil {
		return nil, err
	}

	err := setDuration(&cfg.NET.AcceptLoopInterruptPeriod, f.NET.AcceptLoopInterruptPeriod, "accept_loop_interrupt_period")
	if err != nil {
		return nil, err
	}

	if cfg.NET.AcceptLoopInterruptPeriod <= 0 {
		return nil, fmt.Errorf("config: accept_loop_interrupt_period must be positive")
	}

	if f.NET.Concurrent != nil {
		cfg.NET.Concurrent = *f.NET.Concurrent
	}

	if f.Files.Directory != nil {
		cfg.Files.Directory = *f.Files.Directory
	}

	if f.Router.StrictSegments != nil {
		cfg.Router.StrictSegments = *f.Router.StrictSegments
	}

	return cfg, nil
}

func setDuration(dst *time.Duration, value *string, name string) error {
	if value == nil {
		return nil
	}

	d, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("config: bad %s: %w", name, err)
	}

	if d < 0 {
		return fmt.Errorf("config: %s must not be negative", name)
	}

	*dst = d
	return nil
}
