// Package config handles the XDG configuration directory, file paths and
// the settings read from config.yaml and TASKLIST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// EnvPrefix prefixes environment overrides, e.g. TASKLIST_ENDPOINT.
	EnvPrefix = "TASKLIST"

	// SettingsFile is the settings file name (without extension).
	SettingsFile = "config"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// LogFile receives diagnostics while the interactive UI owns the terminal.
	LogFile = "tasklist.log"
)

// Backend names.
const (
	BackendREST   = "rest"
	BackendGoogle = "google"
)

// Settings are the values read from config.yaml and the environment.
type Settings struct {
	Backend  string `mapstructure:"backend" validate:"required,oneof=rest google"`
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Locale   string `mapstructure:"locale" validate:"required,bcp47_language_tag"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Backend:  BackendREST,
		Endpoint: "http://localhost:3005",
		Locale:   "und",
		LogLevel: "warn",
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings
}

var validate = validator.New()

// New creates a Config for the default or specified config directory and
// loads settings from it. A missing config.yaml is not an error.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	settings, err := LoadSettings(dir)
	if err != nil {
		return nil, err
	}
	return &Config{Dir: dir, Settings: settings}, nil
}

// LoadSettings reads dir/config.yaml (if present) and TASKLIST_* variables
// over the defaults, then validates the result.
func LoadSettings(dir string) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("backend", defaults.Backend)
	v.SetDefault("endpoint", defaults.Endpoint)
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetConfigName(SettingsFile)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read %s.yaml: %w", SettingsFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	if err := validate.Struct(s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// LogPath returns the path of the UI log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
