// Package config resolves the application configuration: which storage
// backend to open, where its files live and how output is rendered.
// Paths follow the XDG base directory layout.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// BackendSQLite stores records as rows in a SQLite database.
	BackendSQLite = "sqlite"
	// BackendBolt stores the full state as one document in a Bolt file.
	BackendBolt = "bolt"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage StorageConfig
		Display DisplayConfig
		System  SystemConfig `mapstructure:"-"`
	}

	// StorageConfig selects and locates the persistence backend.
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
	}

	// DisplayConfig holds output rendering settings.
	DisplayConfig struct {
		Color          bool `mapstructure:"color"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// SystemConfig holds resolved paths. It is derived, never read from
	// the config file.
	SystemConfig struct {
		ConfigPath string
		DataDir    string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

var (
	appDir         = "jornada"
	configFileName = "config.yml"
	sqliteFileName = "jornada.db"
	boltFileName   = "jornada.bolt"
)

// New creates a Config with resolved paths and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{Backend: BackendSQLite},
		Display: DisplayConfig{Color: true},
	}

	if err := initPaths(cfg); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("config option error: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SQLitePath returns the SQLite database file path.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.System.DataDir, sqliteFileName)
}

// BoltPath returns the Bolt database file path.
func (c *Config) BoltPath() string {
	return filepath.Join(c.System.DataDir, boltFileName)
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendBolt:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)",
			c.Storage.Backend, BackendSQLite, BackendBolt)
	}
}

func initPaths(cfg *Config) error {
	env := strings.TrimSpace(os.Getenv("JORNADA_ENV"))
	name := configFileName
	if env != "" {
		name = fmt.Sprintf("config_%s.yml", env)
	}

	configPath, err := xdg.ConfigFile(filepath.Join(appDir, name))
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	dataDir, err := xdg.DataFile(appDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	if override := strings.TrimSpace(os.Getenv("JORNADA_DATA_DIR")); override != "" {
		dataDir = override
	}

	cfg.System = SystemConfig{
		ConfigPath: configPath,
		DataDir:    dataDir,
	}

	return nil
}
