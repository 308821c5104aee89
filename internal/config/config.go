package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultCatalogURL is the public Art Institute of Chicago API
	DefaultCatalogURL = "https://api.artic.edu/api/v1"

	// DefaultPageSize matches the table's rows-per-page
	DefaultPageSize = 12
)

// Config holds all application configuration
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Selection SelectionConfig `mapstructure:"selection"`
	UI        UIConfig        `mapstructure:"ui"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// CatalogConfig holds collection endpoint configuration
type CatalogConfig struct {
	URL       string        `mapstructure:"url"`
	PageSize  int           `mapstructure:"page_size"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// SelectionConfig holds selection behaviour
type SelectionConfig struct {
	AutoAdvance bool `mapstructure:"auto_advance"` // Fetch following pages until a pending count is satisfied
}

// UIConfig holds UI configuration
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			URL:       DefaultCatalogURL,
			PageSize:  DefaultPageSize,
			Timeout:   30 * time.Second,
			UserAgent: "gallery/1.0",
		},
		Selection: SelectionConfig{
			AutoAdvance: false,
		},
		UI: UIConfig{
			AltScreen: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gallery", "gallery.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "gallery", "gallery.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "gallery")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gallery")
	}
}

// newViper builds a viper instance with defaults registered so that
// environment overrides apply even when no config file exists
func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("catalog.url", defaults.Catalog.URL)
	v.SetDefault("catalog.page_size", defaults.Catalog.PageSize)
	v.SetDefault("catalog.timeout", defaults.Catalog.Timeout)
	v.SetDefault("catalog.user_agent", defaults.Catalog.UserAgent)
	v.SetDefault("selection.auto_advance", defaults.Selection.AutoAdvance)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	// Environment variable overrides: GALLERY_CATALOG_PAGE_SIZE etc.
	v.SetEnvPrefix("GALLERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("")
}

// LoadConfigFrom loads configuration from an explicit file, or from the
// default search path when file is empty
func LoadConfigFrom(file string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise break pagination
func (c *Config) Validate() error {
	if c.Catalog.URL == "" {
		return fmt.Errorf("catalog.url is required")
	}
	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog.page_size must be at least 1, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("catalog.timeout must be >= 0, got %s", c.Catalog.Timeout)
	}
	return nil
}

// SaveConfig writes the configuration to config.yaml in dir
// (the default config directory when dir is empty) and returns the path
func SaveConfig(cfg *Config, dir string) (string, error) {
	if dir == "" {
		dir = DefaultConfigDir()
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("catalog.url", cfg.Catalog.URL)
	v.Set("catalog.page_size", cfg.Catalog.PageSize)
	v.Set("catalog.timeout", cfg.Catalog.Timeout.String())
	v.Set("catalog.user_agent", cfg.Catalog.UserAgent)

	v.Set("selection.auto_advance", cfg.Selection.AutoAdvance)

	v.Set("ui.alt_screen", cfg.UI.AltScreen)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(dir, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFile, nil
}
