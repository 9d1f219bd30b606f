package config

import (
	"fmt"

	"github.com/kbukum/flagkit/logger"
)

// Config is the root configuration for an application using flagkit.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Flags       FlagsConfig   `yaml:"flags" mapstructure:"flags"`
}

// FlagsConfig selects the flag provider and its connection options.
type FlagsConfig struct {
	// Provider is the provider-kind string: "local storage", "cookie",
	// "http-header", or "openfeature|flagd".
	Provider string `yaml:"provider" mapstructure:"provider" validate:"required"`
	// Options is the remote endpoint URI (scheme://host:port). Only remote
	// providers read it.
	Options string `yaml:"options" mapstructure:"options"`
	// StorePath overrides where the local-storage provider persists flags.
	StorePath string `yaml:"store_path" mapstructure:"store_path"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
