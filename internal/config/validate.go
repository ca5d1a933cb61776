package config

import (
	"fmt"

	"ctestwin/internal/catalog"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDefaults(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDefaults() error {
	if c.Defaults.Band != "" {
		if _, ok := catalog.BandByLabel(c.Defaults.Band); !ok {
			return fmt.Errorf("defaults.band: unknown band %q", c.Defaults.Band)
		}
	}
	if c.Defaults.Mode != "" {
		if _, ok := catalog.ModeByLabel(c.Defaults.Mode); !ok {
			return fmt.Errorf("defaults.mode: unknown mode %q", c.Defaults.Mode)
		}
	}
	if c.Defaults.Contest != "" {
		if _, ok := catalog.ContestByName(c.Defaults.Contest); !ok {
			return fmt.Errorf("defaults.contest: unknown contest %q", c.Defaults.Contest)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
