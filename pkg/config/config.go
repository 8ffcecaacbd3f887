package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is where the registrar publishes the schedule of classes feeds.
	DefaultBaseURL     = "https://enr-apps.as.cmu.edu/assets/SOC"
	DefaultAccentColor = "#C41230"
	DefaultCacheHours  = 12
)

// SFTPTarget is the server exported calendars are published to.
type SFTPTarget struct {
	Host      string `json:"host,omitempty"`
	Port      int    `json:"port,omitempty"`
	User      string `json:"user,omitempty"`
	RemoteDir string `json:"remote_dir,omitempty"`
	// KnownHosts is the known_hosts file the server key is checked against.
	// Empty means ~/.ssh/known_hosts.
	KnownHosts string `json:"known_hosts,omitempty"`
	// Password is only ever read from SOCCTL_SFTP_PASSWORD.
	Password string `json:"-"`
}

// Configured reports whether enough is set to attempt an upload.
func (s SFTPTarget) Configured() bool {
	return s.Host != "" && s.User != ""
}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL      string     `json:"base_url,omitempty"`
	SavedSeasons []string   `json:"saved_seasons,omitempty"`
	SavedCourses []string   `json:"saved_courses,omitempty"`
	AccentColor  string     `json:"accent_color,omitempty"`
	CacheHours   int        `json:"cache_hours,omitempty"`
	SFTP         SFTPTarget `json:"sftp"`

	// overrides is set by Load when SOCCTL_* variables replaced file values.
	overrides *envOverrides
}

// envOverrides keeps the file value and the env value of each overridable field.
type envOverrides struct {
	file, env overridable
}

type overridable struct {
	BaseURL     string
	AccentColor string
	CacheHours  int
}

func (c *AppConfig) envFields() overridable {
	return overridable{BaseURL: c.BaseURL, AccentColor: c.AccentColor, CacheHours: c.CacheHours}
}

// FeedURL returns the configured feed location, falling back to the registrar.
func (c *AppConfig) FeedURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

// Accent returns the configured TUI accent color.
func (c *AppConfig) Accent() string {
	if c.AccentColor == "" {
		return DefaultAccentColor
	}
	return c.AccentColor
}

// CacheDuration is how long a downloaded feed is reused before refetching.
// A negative CacheHours disables the cache.
func (c *AppConfig) CacheDuration() time.Duration {
	switch {
	case c.CacheHours < 0:
		return 0
	case c.CacheHours == 0:
		return DefaultCacheHours * time.Hour
	}
	return time.Duration(c.CacheHours) * time.Hour
}

// getConfigPath returns the absolute path to ~/.socctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".socctl.json"), nil
}

// Load reads the application configuration from disk and applies SOCCTL_*
// environment overrides. A missing file yields an empty configuration.
func Load() (*AppConfig, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func loadFile() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	v := viper.New()
	v.SetEnvPrefix("SOCCTL")
	v.AutomaticEnv()

	for _, key := range []string{"base_url", "accent_color", "cache_hours", "sftp_password"} {
		_ = v.BindEnv(key)
	}

	file := cfg.envFields()

	if v.IsSet("base_url") {
		cfg.BaseURL = v.GetString("base_url")
	}
	if v.IsSet("accent_color") {
		cfg.AccentColor = v.GetString("accent_color")
	}
	if v.IsSet("cache_hours") {
		cfg.CacheHours = v.GetInt("cache_hours")
	}
	cfg.SFTP.Password = v.GetString("sftp_password")

	if env := cfg.envFields(); env != file {
		cfg.overrides = &envOverrides{file: file, env: env}
	}
}

// fileValues returns cfg with every field still holding its env override
// reset to the value read from disk.
func fileValues(cfg *AppConfig) AppConfig {
	out := *cfg
	if o := cfg.overrides; o != nil {
		if out.BaseURL == o.env.BaseURL {
			out.BaseURL = o.file.BaseURL
		}
		if out.AccentColor == o.env.AccentColor {
			out.AccentColor = o.file.AccentColor
		}
		if out.CacheHours == o.env.CacheHours {
			out.CacheHours = o.file.CacheHours
		}
	}
	return out
}

// Save writes the application configuration back to disk. Values that came
// from SOCCTL_* variables and were not changed since Load are not persisted.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	out := fileValues(cfg)
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
