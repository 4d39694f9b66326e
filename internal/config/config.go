// Package config loads yuuskel's tool settings.
//
// Settings only seed the defaults of interactive choices and the logger;
// command-line flags always take precedence over them.
package config

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/yuuskel/internal/i18n"
	"github.com/fyrsmithlabs/yuuskel/internal/license"
	"github.com/fyrsmithlabs/yuuskel/internal/logging"
)

// Config holds the complete tool configuration.
type Config struct {
	Lang    string    `koanf:"lang"`
	Prefix  string    `koanf:"prefix"`
	License string    `koanf:"license"`
	Git     GitConfig `koanf:"git"`
	Log     LogConfig `koanf:"log"`
}

// GitConfig holds the default version-control answers.
type GitConfig struct {
	Init   bool `koanf:"init"`
	Commit bool `koanf:"commit"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Validate checks cfg for errors.
func (c *Config) Validate() error {
	if c.Lang != "" {
		if _, err := i18n.ParseLocale(c.Lang); err != nil {
			return fmt.Errorf("lang: %w", err)
		}
	}
	if _, err := license.Lookup(c.License); err != nil {
		return fmt.Errorf("license: %w", err)
	}
	if _, err := c.Logging(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Locale returns the configured locale, or ok=false when none is set.
func (c *Config) Locale() (i18n.Locale, bool) {
	if c.Lang == "" {
		return "", false
	}
	loc, err := i18n.ParseLocale(c.Lang)
	return loc, err == nil
}

// LicenseID returns the configured license.
func (c *Config) LicenseID() license.ID {
	id, _ := license.Lookup(c.License)
	return id
}

// Logging converts the log section into a logger configuration.
func (c *Config) Logging() (*logging.Config, error) {
	lc := logging.NewDefaultConfig()
	if c.Log.Level != "" {
		lvl, err := logging.LevelFromString(c.Log.Level)
		if err != nil {
			return nil, err
		}
		lc.Level = lvl
	}
	if c.Log.Format != "" {
		lc.Format = strings.ToLower(c.Log.Format)
	}
	if err := lc.Validate(); err != nil {
		return nil, err
	}
	return lc, nil
}
