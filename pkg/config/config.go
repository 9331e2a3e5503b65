// Package config handles configuration for uiprobe.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/uiprobe/pkg/automation"
	"github.com/devicelab-dev/uiprobe/pkg/hierarchy"
)

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Device settings
	Device  string `yaml:"device"`  // Target device serial
	ADBPath string `yaml:"adbPath"` // adb binary (default: PATH lookup)

	// Hierarchy capture
	DumpCommand     string   `yaml:"dumpCommand"`     // Remote dump command
	Noise           []string `yaml:"noise"`           // Notices stripped from dump output (nil: defaults)
	FragmentPattern string   `yaml:"fragmentPattern"` // Regexp extracting embedded XML

	// Locator settings
	Poll    PollConfig    `yaml:"poll"`
	Timeout time.Duration `yaml:"timeout"` // Default locator timeout

	// Logging
	LogFile string `yaml:"logFile"`
}

// PollConfig configures the wait between locator attempts.
type PollConfig struct {
	Strategy string        `yaml:"strategy"` // none, constant, exponential
	Interval time.Duration `yaml:"interval"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	// Try config.yaml first
	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// Try config.yml
	configPath = filepath.Join(dir, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// LoadEnv loads environment variables from a dotenv file. Variables already
// set in the process win. An empty path loads ".env" if it exists.
func LoadEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return godotenv.Load(path)
}

// CaptureConfig returns the hierarchy capture settings with defaults filled in.
func (c *Config) CaptureConfig() hierarchy.CaptureConfig {
	capture := hierarchy.DefaultCaptureConfig()
	if c.DumpCommand != "" {
		capture.Command = c.DumpCommand
	}
	if c.Noise != nil {
		capture.Noise = c.Noise
	}
	if c.FragmentPattern != "" {
		capture.FragmentPattern = c.FragmentPattern
	}
	return capture
}

// ClientOptions translates the configuration into automation options.
func (c *Config) ClientOptions() ([]automation.Option, error) {
	polling, err := automation.Polling(c.Poll.Strategy, c.Poll.Interval)
	if err != nil {
		return nil, err
	}
	return []automation.Option{
		automation.WithCaptureConfig(c.CaptureConfig()),
		automation.WithBackOff(polling),
	}, nil
}

// LogPath returns the configured log file, or the default under the home directory.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return DefaultLogFile()
}
