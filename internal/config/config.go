// Package config implements opldb's configuration layer: hardcoded
// defaults, overridden by a user-global YAML file, overridden by a
// project-local YAML file, overridden by OPLDB_* environment variables.
// The precedence chain and the YAML-plus-env-override shape are carried
// over from the retrieved corpus's configuration package; the fields
// themselves are opldb's own (CSV data paths, default query shape,
// cache sizing, output format).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is opldb's complete configuration.
type Config struct {
	Version int          `yaml:"version" json:"version"`
	Data    DataConfig   `yaml:"data" json:"data"`
	Query   QueryConfig  `yaml:"query" json:"query"`
	Cache   CacheConfig  `yaml:"cache" json:"cache"`
	Output  OutputConfig `yaml:"output" json:"output"`
}

// DataConfig locates the three CSV tables FromCSV loads.
type DataConfig struct {
	LiftersPath string `yaml:"lifters_path" json:"lifters_path"`
	MeetsPath   string `yaml:"meets_path" json:"meets_path"`
	EntriesPath string `yaml:"entries_path" json:"entries_path"`
}

// QueryConfig holds defaults applied when a CLI invocation leaves a
// RankingsQuery axis unspecified.
type QueryConfig struct {
	DefaultPageSize  int    `yaml:"default_page_size" json:"default_page_size"`
	DefaultOrdering  string `yaml:"default_ordering" json:"default_ordering"`
	DefaultEquipment string `yaml:"default_equipment" json:"default_equipment"`
}

// CacheConfig sizes the optional read-through rankings cache and pins
// which years get a precomputed per-year index set.
type CacheConfig struct {
	QueryCacheSize int   `yaml:"query_cache_size" json:"query_cache_size"`
	CachedYears    []int `yaml:"cached_years" json:"cached_years"`
}

// OutputConfig holds output preferences. They are loaded and saved with
// the rest of the config, but no CLI subcommand reads them.
type OutputConfig struct {
	Format string `yaml:"format" json:"format"` // "table", "json", or "csv"
	Color  bool   `yaml:"color" json:"color"`
}

// NewConfig returns a Config with opldb's hardcoded defaults.
func NewConfig() *Config {
	return &Config{
		Version: 1,
		Data: DataConfig{
			LiftersPath: "lifters.csv",
			MeetsPath:   "meets.csv",
			EntriesPath: "entries.csv",
		},
		Query: QueryConfig{
			DefaultPageSize:  20,
			DefaultOrdering:  "Total",
			DefaultEquipment: "Raw",
		},
		Cache: CacheConfig{
			QueryCacheSize: 256,
			CachedYears:    nil, // nil means every year in the corpus
		},
		Output: OutputConfig{
			Format: "table",
			Color:  true,
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration
// file, following the XDG Base Directory convention:
//   - $XDG_CONFIG_HOME/opldb/config.yaml, if set
//   - ~/.config/opldb/config.yaml otherwise
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "opldb", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "opldb", "config.yaml")
	}
	return filepath.Join(home, ".config", "opldb", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user config file.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists reports whether the user/global config file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func loadUserConfig() (*Config, error) {
	path := GetUserConfigPath()
	if !fileExists(path) {
		return nil, nil
	}
	cfg := NewConfig()
	if err := cfg.loadYAML(path); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds a Config by layering, in increasing precedence:
//  1. hardcoded defaults
//  2. the user/global config (~/.config/opldb/config.yaml)
//  3. the project config (.opldb.yaml in dir)
//  4. OPLDB_* environment variables
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := loadUserConfig(); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromFile(dir string) error {
	yamlPath := filepath.Join(dir, ".opldb.yaml")
	if fileExists(yamlPath) {
		return c.loadYAML(yamlPath)
	}
	ymlPath := filepath.Join(dir, ".opldb.yml")
	if fileExists(ymlPath) {
		return c.loadYAML(ymlPath)
	}
	return nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith overlays other's non-zero fields onto c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Data.LiftersPath != "" {
		c.Data.LiftersPath = other.Data.LiftersPath
	}
	if other.Data.MeetsPath != "" {
		c.Data.MeetsPath = other.Data.MeetsPath
	}
	if other.Data.EntriesPath != "" {
		c.Data.EntriesPath = other.Data.EntriesPath
	}

	if other.Query.DefaultPageSize != 0 {
		c.Query.DefaultPageSize = other.Query.DefaultPageSize
	}
	if other.Query.DefaultOrdering != "" {
		c.Query.DefaultOrdering = other.Query.DefaultOrdering
	}
	if other.Query.DefaultEquipment != "" {
		c.Query.DefaultEquipment = other.Query.DefaultEquipment
	}

	if other.Cache.QueryCacheSize != 0 {
		c.Cache.QueryCacheSize = other.Cache.QueryCacheSize
	}
	if len(other.Cache.CachedYears) > 0 {
		c.Cache.CachedYears = other.Cache.CachedYears
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
}

// applyEnvOverrides applies OPLDB_* environment variables, which take
// precedence over every file-based source.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OPLDB_LIFTERS_PATH"); v != "" {
		c.Data.LiftersPath = v
	}
	if v := os.Getenv("OPLDB_MEETS_PATH"); v != "" {
		c.Data.MeetsPath = v
	}
	if v := os.Getenv("OPLDB_ENTRIES_PATH"); v != "" {
		c.Data.EntriesPath = v
	}
	if v := os.Getenv("OPLDB_DEFAULT_ORDERING"); v != "" {
		c.Query.DefaultOrdering = v
	}
	if v := os.Getenv("OPLDB_DEFAULT_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Query.DefaultPageSize = n
		}
	}
	if v := os.Getenv("OPLDB_QUERY_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.QueryCacheSize = n
		}
	}
	if v := os.Getenv("OPLDB_OUTPUT_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("OPLDB_COLOR"); v != "" {
		c.Output.Color = v != "0" && strings.ToLower(v) != "false"
	}
}

// Validate checks the final merged configuration for values the CLI
// cannot act on.
func (c *Config) Validate() error {
	if c.Data.LiftersPath == "" || c.Data.MeetsPath == "" || c.Data.EntriesPath == "" {
		return fmt.Errorf("config: data.lifters_path, data.meets_path, and data.entries_path must all be set")
	}
	if c.Query.DefaultPageSize <= 0 {
		return fmt.Errorf("config: query.default_page_size must be positive, got %d", c.Query.DefaultPageSize)
	}
	if c.Cache.QueryCacheSize < 0 {
		return fmt.Errorf("config: cache.query_cache_size must not be negative, got %d", c.Cache.QueryCacheSize)
	}
	switch c.Output.Format {
	case "table", "json", "csv":
	default:
		return fmt.Errorf("config: output.format must be one of table, json, csv, got %q", c.Output.Format)
	}
	return nil
}

// WriteYAML writes c to path, creating its parent directory if needed.
func (c *Config) WriteYAML(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
