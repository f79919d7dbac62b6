package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	keyStorageBackend = "storage.backend"
	keyDisplayColor   = "display.color"
	keyTwentyFourHour = "display.24hr_clock"
)

// WithViperConfig returns an Option that loads configuration from the
// file at configPath, writing a default file first when none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		v.SetDefault(keyStorageBackend, BackendSQLite)
		v.SetDefault(keyDisplayColor, true)
		v.SetDefault(keyTwentyFourHour, false)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("reading config file failed: %w", err)
			}
			if err := v.WriteConfig(); err != nil {
				return fmt.Errorf("writing default config failed: %w", err)
			}
		}

		if err := v.Unmarshal(c); err != nil {
			return fmt.Errorf("unmarshalling config failed: %w", err)
		}

		return nil
	}
}

// WithBackend returns an Option that forces the storage backend,
// overriding whatever the config file selects.
func WithBackend(backend string) Option {
	return func(c *Config) error {
		c.Storage.Backend = backend
		return nil
	}
}
