// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the main Config type and core functionality for
//              loading, parsing, and accessing configuration data from TOML
//              and YAML files with environment variable support. The tsmath
//              CLI uses this to pick the default calendar zone, the log level,
//              and output precision.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tserror "github.com/msto63/tsmath/core/error"
	tserrors "github.com/msto63/tsmath/core/errors"
)

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
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, tserror.New("config file path cannot be empty").
			WithCode(tserror.CodeValidationFailed).
			WithOperation("load")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, tserror.Wrap(err, fmt.Sprintf("failed to read configuration file %s", filePath)).
			WithCode(tserror.CodeMissingConfig).
			WithOperation("load")
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tserrors.ConfigParseError(filePath, err)
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString loads configuration from a string in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tserrors.ConfigParseError("<string>", err)
	}

	return &Config{
		data:   data,
		format: format,
	}, nil
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses raw content into a generic map
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format: %s", format)
	}

	return data, nil
}

// mergeDefaults merges default values for keys absent from the data
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	for key, defaultValue := range defaults {
		if _, exists := data[key]; !exists {
			data[key] = defaultValue
		}
	}
	return data
}

// GetString returns the string value for a dot-notation key
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env := c.getEnvValue(key); env != "" {
		return env
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns the integer value for a dot-notation key
func (c *Config) GetInt(key string, defaultValue ...int) int {
	fallback := 0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetFloat returns the float value for a dot-notation key
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	fallback := 0.0
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.ParseFloat(env, 64); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetBool returns the boolean value for a dot-notation key
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	fallback := false
	if len(defaultValue) > 0 {
		fallback = defaultValue[0]
	}

	if env := c.getEnvValue(key); env != "" {
		if parsed, err := strconv.ParseBool(env); err == nil {
			return parsed
		}
		return fallback
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return fallback
}

// Has reports whether the key exists in the configuration
func (c *Config) Has(key string) bool {
	return c.getValue(key) != nil
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected configuration format
func (c *Config) Format() Format {
	return c.format
}

// getValue resolves a dot-notation key against nested maps
func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := strings.Split(key, ".")
	var current interface{} = c.data

	for _, part := range parts {
		switch node := current.(type) {
		case map[string]interface{}:
			var ok bool
			current, ok = node[part]
			if !ok {
				return nil
			}
		case map[interface{}]interface{}:
			var ok bool
			current, ok = node[part]
			if !ok {
				return nil
			}
		default:
			return nil
		}
	}

	return current
}

// getEnvValue looks up an environment override for the key
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}

	envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(envKey)
}
