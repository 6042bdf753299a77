package main

import (
	"log/slog"
	"strings"
	"sync"

	"trackdedup/internal/config"
	"trackdedup/internal/logging"
)

type commandContext struct {
	configFlag *string

	once      sync.Once
	config    *config.Config
	logger    *slog.Logger
	ensureErr error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensure loads config and constructs the logger exactly once per process.
func (c *commandContext) ensure() (*config.Config, *slog.Logger, error) {
	c.once.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.ensureErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.ensureErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.ensureErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.logger, c.ensureErr
}
