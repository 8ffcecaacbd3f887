package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.SavedSeasons = []string{"fall", "spring"}
	cfg.SavedCourses = []string{"15122", "48-025"}
	cfg.AccentColor = "#00FF00"
	cfg.CacheHours = 6
	cfg.SFTP = SFTPTarget{Host: "calendar.example.edu", Port: 2222, User: "soc", RemoteDir: "/srv/ics"}

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".socctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".socctl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{BaseURL: "https://file.example", CacheHours: 1}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv("SOCCTL_BASE_URL", "http://127.0.0.1:9999/soc")
	t.Setenv("SOCCTL_CACHE_HOURS", "48")
	t.Setenv("SOCCTL_SFTP_PASSWORD", "hunter2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.FeedURL() != "http://127.0.0.1:9999/soc" {
		t.Errorf("expected env base URL to win, got %q", cfg.FeedURL())
	}
	if cfg.CacheDuration() != 48*time.Hour {
		t.Errorf("expected 48h cache, got %s", cfg.CacheDuration())
	}
	if cfg.SFTP.Password != "hunter2" {
		t.Errorf("expected SFTP password from env")
	}

	// the password must never reach disk
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tempDir, ".socctl.json"))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Errorf("password was written to the config file")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &AppConfig{}

	if cfg.FeedURL() != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.FeedURL())
	}
	if cfg.Accent() != DefaultAccentColor {
		t.Errorf("expected default accent, got %q", cfg.Accent())
	}
	if cfg.CacheDuration() != 12*time.Hour {
		t.Errorf("expected 12h cache, got %s", cfg.CacheDuration())
	}
	if cfg.SFTP.Configured() {
		t.Errorf("empty SFTP target should not be configured")
	}
}

func TestCacheDisabled(t *testing.T) {
	cfg := &AppConfig{CacheHours: -1}
	if cfg.CacheDuration() != 0 {
		t.Errorf("expected a negative cache_hours to disable caching, got %s", cfg.CacheDuration())
	}
}

func TestSaveKeepsFileValuesUnderEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	if err := Save(&AppConfig{BaseURL: "https://file.example", AccentColor: "86"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv("SOCCTL_BASE_URL", "http://127.0.0.1:9999/soc")
	t.Setenv("SOCCTL_CACHE_HOURS", "48")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	cfg.SavedCourses = []string{"15122"}
	cfg.AccentColor = "#297739"
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, ".socctl.json"))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if strings.Contains(string(data), "127.0.0.1") {
		t.Errorf("env base URL was written to the config file:\n%s", data)
	}
	if strings.Contains(string(data), "cache_hours") {
		t.Errorf("env cache hours were written to the config file:\n%s", data)
	}

	os.Unsetenv("SOCCTL_BASE_URL")
	os.Unsetenv("SOCCTL_CACHE_HOURS")

	onDisk, err := Load()
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if onDisk.BaseURL != "https://file.example" {
		t.Errorf("expected file base URL to survive, got %q", onDisk.BaseURL)
	}
	if onDisk.AccentColor != "#297739" {
		t.Errorf("expected edited accent color to persist, got %q", onDisk.AccentColor)
	}
	if !reflect.DeepEqual(onDisk.SavedCourses, []string{"15122"}) {
		t.Errorf("expected saved courses to persist, got %v", onDisk.SavedCourses)
	}
}
