// Package config handles loading and saving user configuration for emotionai.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/emotionai/internal/classify"
	"github.com/f3rmion/emotionai/internal/emotion"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Classifier ClassifierConfig `yaml:"classifier"`
	Banner     bool             `yaml:"banner"`   // Draw the primary emotion as block art when a font is available
	LogFile    string           `yaml:"log_file"` // Diagnostic log; defaults to emotionai.log in the config dir
}

// ClassifierConfig holds settings for the simulated classifier.
type ClassifierConfig struct {
	Delay  string          `yaml:"delay"`            // Go duration, e.g. "1s", "250ms"
	Fail   bool            `yaml:"fail"`             // Make every request fail
	Result *emotion.Result `yaml:"result,omitempty"` // Canned result; nil means the built-in one
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Delay: classify.DefaultDelay.String(),
		},
		Banner: true,
	}
}

// DelayDuration parses the configured delay. An empty value means the default.
func (c ClassifierConfig) DelayDuration() (time.Duration, error) {
	if c.Delay == "" {
		return classify.DefaultDelay, nil
	}
	d, err := time.ParseDuration(c.Delay)
	if err != nil {
		return 0, fmt.Errorf("parsing classifier delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("classifier delay must not be negative: %s", c.Delay)
	}
	return d, nil
}

// CannedResult returns the configured result or the built-in default.
func (c ClassifierConfig) CannedResult() emotion.Result {
	if c.Result == nil {
		return classify.DefaultResult()
	}
	return c.Result.Clone()
}

// Validate checks the configuration for values the classifier can't use.
func (c *Config) Validate() error {
	if _, err := c.Classifier.DelayDuration(); err != nil {
		return err
	}
	if c.Classifier.Result != nil {
		if err := c.Classifier.Result.Validate(); err != nil {
			return fmt.Errorf("classifier result: %w", err)
		}
	}
	return nil
}

// NewClassifier builds the classifier described by the configuration.
func (c *Config) NewClassifier() (classify.Classifier, error) {
	delay, err := c.Classifier.DelayDuration()
	if err != nil {
		return nil, err
	}

	sim := &classify.Simulated{
		Delay:  delay,
		Result: c.Classifier.CannedResult(),
		Fail:   c.Classifier.Fail,
	}
	return classify.NewValidating(sim), nil
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDir loads config.yaml from dir. A missing file yields the defaults.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "emotionai"), nil
}

// LogPath returns where diagnostics should be written for the config in dir.
func (c *Config) LogPath(dir string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(dir, "emotionai.log")
}
