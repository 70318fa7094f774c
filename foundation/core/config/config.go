// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type for loading TOML and YAML files,
//              dot-notation access, STRUTIL_ environment overrides, defaults
//              and typed getters that convert text through parsex.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Typed getters via parsex, generic Get, dotted defaults,
//                      removed env/path caches and tracing clones

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/strutil/foundation/core/error"
	mdwerrors "github.com/msto63/strutil/foundation/core/errors"
	"github.com/msto63/strutil/foundation/utils/parsex"
	mdwstringx "github.com/msto63/strutil/foundation/utils/stringx"
)

// EnvPrefix is the environment variable prefix used by the strutil tools
const EnvPrefix = "STRUTIL"

// Recognised keys
const (
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyEncodePolicy   = "encode.policy"
	KeyPadChar        = "pad.char"
	KeySplitDelimiter = "split.delimiter"
)

// Defaults returns the default value of every recognised key
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyLogLevel:       "warn",
		KeyLogFormat:      "text",
		KeyEncodePolicy:   "component",
		KeyPadChar:        " ",
		KeySplitDelimiter: ",",
	}
}

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	defaults  map[string]interface{}
	filePath  string
	format    Format
	envPrefix string

	handlers      []ChangeHandler
	errorHandlers []ErrorHandler

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// ChangeHandler is called after a successful reload. Both arguments are
// detached snapshots; they do not watch the file themselves.
type ChangeHandler func(oldConfig, newConfig *Config)

// ErrorHandler receives reload and watcher errors
type ErrorHandler func(err error)

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, keys may use dot notation
	Watch     bool                   // Start watching the file after loading
}

// New creates a configuration without a backing file. It holds only the
// defaults from options and honours the environment prefix.
func New(options LoadOptions) *Config {
	c := &Config{
		data:      make(map[string]interface{}),
		defaults:  copyFlat(options.Defaults),
		format:    FormatTOML,
		envPrefix: options.EnvPrefix,
	}
	applyDefaults(c.data, c.defaults)
	return c
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", filePath)).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := readFile(filePath, format)
	if err != nil {
		return nil, err
	}

	config := &Config{
		data:      data,
		defaults:  copyFlat(options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	applyDefaults(config.data, config.defaults)

	if options.Watch {
		if err := config.Watch(); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

func readFile(filePath string, format Format) (map[string]interface{}, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.load").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	return data, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch mdwstringx.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("config.parseContent")
		}
		// an empty YAML document leaves the map nil
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// applyDefaults fills every missing dotted key of data from defaults
func applyDefaults(data, defaults map[string]interface{}) {
	for key, value := range defaults {
		if lookup(data, key) == nil {
			setNestedValue(data, key, value)
		}
	}
}

func copyFlat(src map[string]interface{}) map[string]interface{} {
	if src == nil {
		return nil
	}
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// raw returns the text form of key, environment first, and whether it was set
func (c *Config) raw(key string) (interface{}, bool) {
	if envValue, ok := os.LookupEnv(c.formatEnvKey(key)); ok && envValue != "" {
		return envValue, true
	}
	value := lookup(c.data, key)
	return value, value != nil
}

// Get returns the value of key converted to T. Strings and environment
// values go through parsex, so booleans accept 1/true/on/yes and 0/false/off/no.
func Get[T parsex.Parseable](c *Config, key string) (T, error) {
	c.mu.RLock()
	value, ok := c.raw(key)
	c.mu.RUnlock()

	var zero T
	if !ok {
		return zero, mdwerrors.NotFound(mdwerrors.ModuleConfig, "get", key)
	}

	if typed, ok := value.(T); ok {
		return typed, nil
	}

	out, err := parsex.To[T](stringify(value))
	if err != nil {
		return zero, mdwerrors.ConfigInvalidValue(key, value, fmt.Sprintf("%T", zero), err)
	}
	return out, nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.raw(key)
	if !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}
	return stringify(value)
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if v, err := Get[int](c, key); err == nil {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if v, err := Get[bool](c, key); err == nil {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float64 configuration value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if v, err := Get[float64](c, key); err == nil {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0.0
}

// GetDuration returns a time.Duration configuration value with optional default
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	c.mu.RLock()
	value, ok := c.raw(key)
	c.mu.RUnlock()

	if ok {
		switch v := value.(type) {
		case string:
			if duration, err := time.ParseDuration(v); err == nil {
				return duration
			}
		case int64:
			return time.Duration(v)
		case int:
			return time.Duration(v)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetStringSlice returns a string slice configuration value with optional default
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch v := lookup(c.data, key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = stringify(item)
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// lookup retrieves a value by dotted key
func lookup(data map[string]interface{}, key string) interface{} {
	keys := mdwstringx.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := mdwstringx.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// formatEnvKey converts a config key to environment variable format:
// encode.policy -> STRUTIL_ENCODE_POLICY
func (c *Config) formatEnvKey(key string) string {
	envKey := mdwstringx.ToUpper(mdwstringx.Replace(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = mdwstringx.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// EnvKey returns the environment variable that overrides key
func (c *Config) EnvKey(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.formatEnvKey(key)
}

// Has checks if a configuration key exists in the file, the defaults or the environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.raw(key)
	return ok
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setNestedValue(c.data, key, value)
}

// GetAll returns all configuration data as a map
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// Keys returns every leaf key in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	collectKeys(c.data, "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string, keys *[]string) {
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(nested, full, keys)
			continue
		}
		*keys = append(*keys, full)
	}
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}

// snapshot returns a detached copy of c. The caller must hold c.mu.
func (c *Config) snapshot() *Config {
	return &Config{
		data:      deepCopyMap(c.data),
		defaults:  copyFlat(c.defaults),
		filePath:  c.filePath,
		format:    c.format,
		envPrefix: c.envPrefix,
	}
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// OnChange registers a change handler for configuration updates
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// OnError registers a handler for errors raised while watching
func (c *Config) OnError(handler ErrorHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorHandlers = append(c.errorHandlers, handler)
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}

	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}

	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}

	if c.watcher != nil {
		parts = append(parts, "watching: true")
	}

	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}
