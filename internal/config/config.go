// Package config loads the generator settings from placeholders.yaml (or
// .toml), an optional .env file next to it, and PLACEHOLDERS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aellingwood/placeholders/internal/image"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. PLACEHOLDERS_OUTPUT.
const EnvPrefix = "PLACEHOLDERS"

// Config is the resolved generator configuration.
type Config struct {
	Output     string   `yaml:"output"     mapstructure:"output"`
	Catalog    string   `yaml:"catalog"    mapstructure:"catalog"`
	Categories []string `yaml:"categories" mapstructure:"categories"`
	Formats    []string `yaml:"formats"    mapstructure:"formats"`
	Quality    int      `yaml:"quality"    mapstructure:"quality"`
	Mkdir      bool     `yaml:"mkdir"      mapstructure:"mkdir"`
}

// Default returns a Config that reproduces the gallery's original layout:
// SVG files under public/photos, into directories that must already exist.
func Default() *Config {
	return &Config{
		Output:  "public/photos",
		Formats: []string{image.FormatSVG},
		Quality: 75,
	}
}

// Load reads the configuration file at configPath (YAML or TOML). Defaults
// are applied first, then file values, then environment variables. Relative
// output and catalog paths set in the file are taken relative to the file.
func Load(configPath string) (*Config, error) {
	return load(configPath, true)
}

// LoadOrDefault is like Load but treats a missing file as empty.
func LoadOrDefault(configPath string) (*Config, error) {
	return load(configPath, false)
}

func load(configPath string, required bool) (*Config, error) {
	d := Default()

	if err := loadDotEnv(filepath.Join(filepath.Dir(configPath), ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("output", d.Output)
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("categories", d.Categories)
	v.SetDefault("formats", d.Formats)
	v.SetDefault("quality", d.Quality)
	v.SetDefault("mkdir", d.Mkdir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	switch strings.TrimPrefix(filepath.Ext(configPath), ".") {
	case "toml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("yaml")
	}
	v.SetConfigFile(configPath)

	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		fileRead = false
	}

	// Defaults live in viper so that environment variables can override
	// keys the file does not mention.
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if fileRead {
		dir := filepath.Dir(configPath)
		cfg.Output = resolvePath(v, dir, "output", cfg.Output)
		cfg.Catalog = resolvePath(v, dir, "catalog", cfg.Catalog)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// resolvePath makes a relative path taken from the config file relative to
// the file's directory. Values from defaults or the environment keep
// resolving against the working directory.
func resolvePath(v *viper.Viper, dir, key, value string) string {
	if value == "" || filepath.IsAbs(value) || !v.InConfig(key) {
		return value
	}
	if _, ok := os.LookupEnv(envKey(key)); ok {
		return value
	}
	return filepath.Join(dir, value)
}

// envKey returns the environment variable that overrides key.
func envKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// loadDotEnv exports the variables of an optional .env file. Variables that
// are already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks the Config and normalises its format list.
// It returns a descriptive error if:
//   - Output is empty
//   - Quality is outside 1..100
//   - a format is unknown or the list is empty
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("config: output is required")
	}

	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("config: quality must be between 1 and 100 (got %d)", c.Quality)
	}

	if len(c.Formats) == 0 {
		return fmt.Errorf("config: at least one format is required")
	}
	seen := make(map[string]bool, len(c.Formats))
	formats := make([]string, 0, len(c.Formats))
	for _, f := range c.Formats {
		norm, err := image.ParseFormat(f)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if !seen[norm] {
			seen[norm] = true
			formats = append(formats, norm)
		}
	}
	c.Formats = formats

	return nil
}

// WithOverrides applies CLI flag overrides to the config. Known keys are
// mapped to their corresponding struct fields. The modified config is returned
// for convenient chaining.
func (c *Config) WithOverrides(overrides map[string]any) *Config {
	for key, val := range overrides {
		switch key {
		case "output":
			if s, ok := val.(string); ok {
				c.Output = s
			}
		case "catalog":
			if s, ok := val.(string); ok {
				c.Catalog = s
			}
		case "categories":
			if s, ok := val.([]string); ok {
				c.Categories = s
			}
		case "formats":
			if s, ok := val.([]string); ok {
				c.Formats = s
			}
		case "quality":
			if n, ok := val.(int); ok {
				c.Quality = n
			}
		case "mkdir":
			if b, ok := val.(bool); ok {
				c.Mkdir = b
			}
		}
	}
	return c
}
