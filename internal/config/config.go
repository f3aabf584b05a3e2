// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for folio.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.folio/config.toml
//   - ~/.folio/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete folio configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Site identity rendered in the header, about page, and feed
	Site SiteConfig `toml:"site" json:"site"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Posts (blog index) configuration
	Posts PostsConfig `toml:"posts" json:"posts"`

	// Analytics configuration (consent-gated)
	Analytics AnalyticsConfig `toml:"analytics" json:"analytics"`

	// Consent records the user's analytics decision
	Consent ConsentConfig `toml:"consent" json:"consent"`

	// Feed (RSS) configuration
	Feed FeedConfig `toml:"feed" json:"feed"`
}

// SiteConfig describes the site the program presents.
type SiteConfig struct {
	// Title is shown in the header and used as the feed title
	Title string `toml:"title" json:"title"`
	// Author is the site owner's display name
	Author string `toml:"author" json:"author"`
	// Description is the one-line site blurb
	Description string `toml:"description" json:"description"`
	// BaseURL is the canonical web address used for feed links
	BaseURL string `toml:"base_url" json:"base_url"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "light", "dark", "auto".
	// "auto" means no explicit preference: the terminal scheme decides.
	// The runtime preference file remains authoritative; this field exists
	// for users who configure by hand and for the `folio config` command.
	Theme string `toml:"theme" json:"theme"`
	// CompactMode uses a more compact UI layout
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
	// Reveal enables the staged reveal animation on the home page
	Reveal bool `toml:"reveal" json:"reveal"`
}

// PostsConfig contains blog index configuration.
type PostsConfig struct {
	// Dir is the directory holding post markdown files
	Dir string `toml:"dir" json:"dir"`
	// Registry is the path to the JSON post registry
	Registry string `toml:"registry" json:"registry"`
	// Watch reloads the registry automatically when it changes on disk
	Watch bool `toml:"watch" json:"watch"`
}

// AnalyticsConfig contains local analytics configuration. Nothing is ever
// recorded unless consent has been accepted, regardless of Enabled.
type AnalyticsConfig struct {
	// Enabled controls whether the recorder is wired up at all
	Enabled bool `toml:"enabled" json:"enabled"`
	// DBPath is the SQLite database path (empty = ~/.folio/analytics.db)
	DBPath string `toml:"db_path" json:"db_path"`
	// EventsPerSec bounds the event write rate; bursts above it are dropped
	EventsPerSec float64 `toml:"events_per_sec" json:"events_per_sec"`
	// Burst is the rate limiter burst size
	Burst int `toml:"burst" json:"burst"`
}

// ConsentConfig records the user's analytics consent decision. The banner is
// shown until a decision exists; declining is remembered and is not consent.
type ConsentConfig struct {
	// Accepted indicates the user explicitly agreed to local analytics
	Accepted bool `toml:"accepted" json:"accepted"`
	// Declined indicates the user explicitly refused
	Declined bool `toml:"declined" json:"declined"`
	// DecidedAt is the timestamp of the decision
	DecidedAt time.Time `toml:"decided_at" json:"decided_at,omitempty"`
	// DecidedBy is the OS username who decided
	DecidedBy string `toml:"decided_by" json:"decided_by,omitempty"`
	// BannerVersion is the version of the consent text that was shown
	BannerVersion string `toml:"banner_version" json:"banner_version,omitempty"`
}

// Decided reports whether the user has answered the consent banner either way.
func (c ConsentConfig) Decided() bool {
	return c.Accepted || c.Declined
}

// FeedConfig contains RSS feed generation configuration.
type FeedConfig struct {
	// Path is where `folio feed` writes the document (empty = stdout)
	Path string `toml:"path" json:"path"`
	// Limit caps the number of items in the feed (0 = all posts)
	Limit int `toml:"limit" json:"limit"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Site: SiteConfig{
			Title:       "folio",
			Author:      "",
			Description: "a personal portfolio and blog, in your terminal",
			BaseURL:     "",
		},

		UI: UIConfig{
			Theme:       "auto",
			CompactMode: false,
			Reveal:      true,
		},

		Posts: PostsConfig{
			Dir:      "posts",
			Registry: "posts/posts.json",
			Watch:    true,
		},

		Analytics: AnalyticsConfig{
			Enabled:      true,
			DBPath:       "",
			EventsPerSec: 5,
			Burst:        10,
		},

		Consent: ConsentConfig{
			Accepted:      false,
			Declined:      false,
			DecidedAt:     time.Time{},
			DecidedBy:     "",
			BannerVersion: "",
		},

		Feed: FeedConfig{
			Path:  "",
			Limit: 20,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the folio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ensureSecurePermissions checks and fixes permissions on config files.
// Config files should be 0600 (owner read/write only).
func ensureSecurePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err // File doesn't exist or not accessible
	}

	mode := info.Mode().Perm()
	if mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix insecure permissions (was %o): %w", mode, err)
		}
	}

	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	// Try TOML first
	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Try JSON as fallback
	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	// Defaults (with any load error for informational purposes)
	cfg2, err := finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg2, loadErr
}

// finishLoad applies env overrides, migration, defaults, and validation.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := cfg.Migrate(); err != nil {
		return nil, fmt.Errorf("config migration failed: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		// Permissions might not be fixable on all systems; warn and continue.
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	if err := ensureSecurePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure secure permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		// Default to TOML
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Ensure permissions are correct even if the file already existed
	if err := os.Chmod(path, 0600); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	fmt.Fprintln(file, "# folio configuration file")
	fmt.Fprintln(file, "# Generated by folio - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// UI theme: the config layer accepts "auto" in addition to the two
	// concrete themes; "auto" means the terminal scheme decides.
	validThemes := map[string]bool{"light": true, "dark": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: light, dark, auto", c.UI.Theme),
		})
	}

	// Base URL must parse when set; the feed embeds it in links.
	if c.Site.BaseURL != "" {
		if u, err := url.Parse(c.Site.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "site.base_url",
				Message: fmt.Sprintf("invalid URL '%s', must be absolute (https://...)", c.Site.BaseURL),
			})
		}
	}

	if c.Analytics.EventsPerSec < 0 {
		errs = append(errs, ValidationError{
			Field:   "analytics.events_per_sec",
			Message: "must be non-negative",
		})
	}
	if c.Analytics.Burst < 0 {
		errs = append(errs, ValidationError{
			Field:   "analytics.burst",
			Message: "must be non-negative",
		})
	}

	if c.Feed.Limit < 0 || c.Feed.Limit > 1000 {
		errs = append(errs, ValidationError{
			Field:   "feed.limit",
			Message: fmt.Sprintf("must be 0-1000, got %d", c.Feed.Limit),
		})
	}

	// Accepted and Declined are mutually exclusive by construction; a hand
	// edited config can still produce both, which is rejected.
	if c.Consent.Accepted && c.Consent.Declined {
		errs = append(errs, ValidationError{
			Field:   "consent",
			Message: "accepted and declined cannot both be true",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Site.Title == "" {
		c.Site.Title = defaults.Site.Title
	}
	if c.Site.Description == "" {
		c.Site.Description = defaults.Site.Description
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Posts.Dir == "" {
		c.Posts.Dir = defaults.Posts.Dir
	}
	if c.Posts.Registry == "" {
		c.Posts.Registry = filepath.Join(c.Posts.Dir, "posts.json")
	}

	if c.Analytics.EventsPerSec == 0 {
		c.Analytics.EventsPerSec = defaults.Analytics.EventsPerSec
	}
	if c.Analytics.Burst == 0 {
		c.Analytics.Burst = defaults.Analytics.Burst
	}

	if c.Feed.Limit == 0 {
		c.Feed.Limit = defaults.Feed.Limit
	}
}

// Migrate handles migration from old configuration formats to new ones.
func (c *Config) Migrate() error {
	// Early configs used "system" for terminal-decided theming.
	if strings.EqualFold(c.UI.Theme, "system") {
		c.UI.Theme = "auto"
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - FOLIO_THEME: overrides ui.theme
//   - FOLIO_POSTS_DIR: overrides posts.dir
//   - FOLIO_REGISTRY: overrides posts.registry
//   - FOLIO_BASE_URL: overrides site.base_url
//   - FOLIO_NO_ANALYTICS: set to "1" or "true" to disable the recorder
//   - FOLIO_COMPACT: set to "1" or "true" for compact layout
func (c *Config) ApplyEnvOverrides() {
	if theme := os.Getenv("FOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if dir := os.Getenv("FOLIO_POSTS_DIR"); dir != "" {
		c.Posts.Dir = dir
	}

	if registry := os.Getenv("FOLIO_REGISTRY"); registry != "" {
		c.Posts.Registry = registry
	}

	if base := os.Getenv("FOLIO_BASE_URL"); base != "" {
		c.Site.BaseURL = base
	}

	if off := os.Getenv("FOLIO_NO_ANALYTICS"); off != "" {
		if off == "1" || strings.EqualFold(off, "true") {
			c.Analytics.Enabled = false
		}
	}

	if compact := os.Getenv("FOLIO_COMPACT"); compact != "" {
		c.UI.CompactMode = compact == "1" || strings.EqualFold(compact, "true")
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return nil, errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return nil, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			return field.Interface(), nil
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return nil, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return nil, fmt.Errorf("invalid key: %s", key)
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return errors.New("empty key")
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)

		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})

		if !field.IsValid() {
			return fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if !field.CanSet() {
				return fmt.Errorf("cannot set field: %s", key)
			}
			return setFieldValue(field, value)
		}

		if field.Kind() == reflect.Struct {
			v = field
		} else {
			return fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
	}

	return fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}

	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	// Handle string input with type conversion
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %v", err)
			}
			field.SetFloat(floatVal)
			return nil
		case reflect.Bool:
			boolVal := strVal == "1" || strings.EqualFold(strVal, "true") || strings.EqualFold(strVal, "yes")
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"site.title",
		"site.author",
		"site.description",
		"site.base_url",
		"ui.theme",
		"ui.compact_mode",
		"ui.reveal",
		"posts.dir",
		"posts.registry",
		"posts.watch",
		"analytics.enabled",
		"analytics.db_path",
		"analytics.events_per_sec",
		"analytics.burst",
		"consent.accepted",
		"consent.declined",
		"consent.decided_at",
		"consent.decided_by",
		"consent.banner_version",
		"feed.path",
		"feed.limit",
	}
}

// Clone creates a copy of the configuration. Config holds only value types,
// so a struct copy is a full copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns a string representation of the config for debugging.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
