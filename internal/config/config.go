package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LABSITE_*). Nested keys use a double
// underscore: LABSITE_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("LABSITE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "LABSITE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[LogLevel]slog.Level{
	LogDebug: slog.LevelDebug,
	LogInfo:  slog.LevelInfo,
	LogWarn:  slog.LevelWarn,
	LogError: slog.LevelError,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.ContentDir == "" && c.ContentURL == "" {
		return fmt.Errorf("content_dir or content_url is required")
	}

	if c.ContentURL != "" && !strings.HasPrefix(c.ContentURL, "http://") && !strings.HasPrefix(c.ContentURL, "https://") {
		return fmt.Errorf("invalid content_url %q: must be an http(s) URL", c.ContentURL)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if _, err := c.CarouselInterval(); err != nil {
		return err
	}

	if c.Carousel.SwipeThreshold <= 0 {
		return fmt.Errorf("carousel.swipe_threshold must be positive")
	}

	if c.NewsLimit <= 0 {
		return fmt.Errorf("news_limit must be positive")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}

	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// CarouselInterval parses carousel.interval.
func (c *Config) CarouselInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Carousel.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid carousel.interval %q: %w", c.Carousel.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("carousel.interval must be positive")
	}
	return d, nil
}

// SlogLevel returns the slog level for log_level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := validLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
