// Package config handles the XDG configuration directory, config.toml and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "habitask"

	// ConfigFile is the TOML settings filename.
	ConfigFile = "config.toml"

	// EnvFile is the optional dotenv filename inside the config directory.
	EnvFile = ".env"

	// DefaultBaseURL is the Habitica API v3 root.
	DefaultBaseURL = "https://habitica.com/api/v3"

	// DefaultTimeout is the HTTP timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
)

// Environment variables. They override config.toml and .env.
const (
	EnvUserID   = "HABITICA_USER_ID"
	EnvAPIToken = "HABITICA_API_TOKEN"
	EnvBaseURL  = "HABITICA_BASE_URL"
	EnvTimeout  = "HABITICA_TIMEOUT"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// UserID and APIToken are the Habitica credentials.
	UserID   string
	APIToken string

	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration
}

// fileConfig is the on-disk shape of config.toml.
type fileConfig struct {
	UserID   string `toml:"user_id,omitempty"`
	APIToken string `toml:"api_token,omitempty"`
	BaseURL  string `toml:"base_url,omitempty"`
	Timeout  string `toml:"timeout,omitempty"`
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/habitask or $HOME/.config/habitask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}, nil
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

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// EnvPath returns the path to the dotenv file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasConfigFile checks if config.toml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// HasCredentials reports whether both user ID and API token are set.
func (c *Config) HasCredentials() bool {
	return c.UserID != "" && c.APIToken != ""
}

// Load fills settings from, in increasing priority: config.toml, the
// dotenv file, and the process environment. Missing files and empty
// values are ignored.
func (c *Config) Load() error {
	fc, err := c.readFile()
	if err != nil {
		return err
	}
	if err := c.apply(fc); err != nil {
		return fmt.Errorf("%s: %w", ConfigFile, err)
	}

	dotenv, err := c.readEnvFile()
	if err != nil {
		return err
	}

	// An empty environment variable counts as unset.
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	var env fileConfig
	env.UserID, _ = lookup(EnvUserID)
	env.APIToken, _ = lookup(EnvAPIToken)
	env.BaseURL, _ = lookup(EnvBaseURL)
	env.Timeout, _ = lookup(EnvTimeout)
	if err := c.apply(env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// apply copies the non-empty values of fc into c.
func (c *Config) apply(fc fileConfig) error {
	if fc.UserID != "" {
		c.UserID = fc.UserID
	}
	if fc.APIToken != "" {
		c.APIToken = fc.APIToken
	}
	if fc.BaseURL != "" {
		c.BaseURL = trimSlash(fc.BaseURL)
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid timeout: %q", fc.Timeout)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) readFile() (fileConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(c.ConfigPath(), &fc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	return fc, nil
}

func (c *Config) readEnvFile() (map[string]string, error) {
	env, err := godotenv.Read(c.EnvPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", EnvFile, err)
	}
	return env, nil
}

func (c *Config) writeFile(fc fileConfig) error {
	if err := c.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(c.ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveCredentials stores the credentials in config.toml with mode 0600,
// keeping any other settings already in the file.
func (c *Config) SaveCredentials(userID, apiToken string) error {
	fc, err := c.readFile()
	if err != nil {
		return err
	}
	fc.UserID = userID
	fc.APIToken = apiToken
	if err := c.writeFile(fc); err != nil {
		return err
	}
	c.UserID = userID
	c.APIToken = apiToken
	return nil
}

// StoredCredentials reports whether config.toml contains credentials.
func (c *Config) StoredCredentials() (bool, error) {
	fc, err := c.readFile()
	if err != nil {
		return false, err
	}
	return fc.UserID != "" || fc.APIToken != "", nil
}

// RemoveCredentials deletes the credentials from config.toml. The file is
// removed when nothing else is left in it.
func (c *Config) RemoveCredentials() error {
	fc, err := c.readFile()
	if err != nil {
		return err
	}
	fc.UserID = ""
	fc.APIToken = ""
	c.UserID = ""
	c.APIToken = ""

	if fc == (fileConfig{}) {
		err := os.Remove(c.ConfigPath())
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return c.writeFile(fc)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
