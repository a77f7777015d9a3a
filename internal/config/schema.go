package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/avex/internal/i18n"
	"github.com/blackwell-systems/avex/internal/logging"
)

// Storage backends.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Config is the top-level avex configuration.
type Config struct {
	DataDir  string        `mapstructure:"data_dir" yaml:"data_dir"`
	Language string        `mapstructure:"language" yaml:"language"`
	Sort     string        `mapstructure:"sort" yaml:"sort"`
	Storage  StorageConfig `mapstructure:"storage" yaml:"storage"`
	Backup   BackupConfig  `mapstructure:"backup" yaml:"backup"`
	Booth    BoothConfig   `mapstructure:"booth" yaml:"booth"`
	Log      LogConfig     `mapstructure:"log" yaml:"log"`
}

// StorageConfig selects how the catalog is persisted.
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"` // "yaml" or "sqlite"
}

// BackupConfig holds automatic backup settings.
type BackupConfig struct {
	Dir      string        `mapstructure:"dir" yaml:"dir,omitempty"`
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
}

// BoothConfig holds the store front settings used for item links.
type BoothConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file,omitempty"`
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is empty")
	}
	switch c.Storage.Backend {
	case BackendYAML, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (want %s or %s)", c.Storage.Backend, BackendYAML, BackendSQLite)
	}
	if c.Backup.Enabled && c.Backup.Interval < time.Minute {
		return fmt.Errorf("backup.interval: %s is shorter than a minute", c.Backup.Interval)
	}
	return nil
}

// Lang returns the configured UI language.
func (c *Config) Lang() i18n.Lang {
	return i18n.Match(c.Language)
}

// EffectiveBackupDir returns the backup directory or falls back to
// <data_dir>/backup.
func (c *Config) EffectiveBackupDir() string {
	if c.Backup.Dir != "" {
		return c.Backup.Dir
	}
	return filepath.Join(c.DataDir, "backup")
}

// EffectiveLogFile returns the log file or falls back to
// <data_dir>/error.log.
func (c *Config) EffectiveLogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, logging.ErrorLogFile)
}

// ExportDir is where CSV exports are written.
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "output")
}
