package main

import (
	"log/slog"

	"ctestwin/internal/config"
	"ctestwin/internal/logging"
)

// commandContext shares lazily-loaded configuration between commands.
type commandContext struct {
	configFlag *string
	cfg        *config.Config
	configPath string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := ""
	if c.configFlag != nil {
		path = *c.configFlag
	}
	cfg, resolved, _, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = resolved
	return cfg, nil
}

func (c *commandContext) logger(cfg *config.Config) *slog.Logger {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		// Config validation already vets level and format; fall back rather
		// than fail a command over log output.
		return logging.NewNop()
	}
	return logger
}
