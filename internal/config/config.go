package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".todo-tui"
	fileName = "config.yaml"
)

// Config represents the user's configuration
type Config struct {
	ServerURL   string        `yaml:"server_url"`
	Timeout     time.Duration `yaml:"timeout"`       // Per-request timeout, 0 disables it
	LoadOnStart bool          `yaml:"load_on_start"` // Fetch the existing tasks when the UI opens
	Log         LogConfig     `yaml:"log"`
}

// LogConfig controls the file logger
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, logfmt
	File   string `yaml:"file"`   // Empty means ~/.todo-tui/todo-tui.log
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   "http://localhost:8080",
		Timeout:     30 * time.Second,
		LoadOnStart: true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// globalConfigDir returns the global config directory path (~/.todo-tui)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName), nil
}

// GlobalConfigPath returns the global config file path (~/.todo-tui/config.yaml)
func GlobalConfigPath() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// projectConfigPath returns the project-level config path (.todo-tui/config.yaml in cwd)
func projectConfigPath() string {
	return filepath.Join(dirName, fileName)
}

// DefaultLogFile returns ~/.todo-tui/todo-tui.log
func DefaultLogFile() (string, error) {
	dir, err := globalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todo-tui.log"), nil
}

// Load reads the config and applies environment overrides.
// An explicit path must exist. Without one, the project config is tried
// first, then the global one, then defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := readInto(path, cfg); err != nil {
			return nil, err
		}
	} else if err := readFirst(cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFirst(cfg *Config) error {
	// Try project config first (.todo-tui/config.yaml in current directory)
	if _, err := os.Stat(projectConfigPath()); err == nil {
		return readInto(projectConfigPath(), cfg)
	}

	// Fall back to global config (~/.todo-tui/config.yaml)
	globalPath, err := GlobalConfigPath()
	if err != nil {
		return nil
	}
	if _, err := os.Stat(globalPath); err != nil {
		// No config exists, keep defaults (don't auto-create)
		return nil
	}
	return readInto(globalPath, cfg)
}

func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks the values a client cannot run without
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url must not be empty")
	}
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("server_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("server_url must be an http(s) URL, got %q", c.ServerURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format must be one of text, json, logfmt, got %q", c.Log.Format)
	}
	return nil
}

// SaveToProject writes the config to the project-level location (.todo-tui/config.yaml)
func SaveToProject(cfg *Config) (string, error) {
	return projectConfigPath(), save(cfg, projectConfigPath())
}

// SaveToGlobal writes the config to the global location (~/.todo-tui/config.yaml)
func SaveToGlobal(cfg *Config) (string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}
	return path, save(cfg, path)
}

func save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
