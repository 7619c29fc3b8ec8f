// FILE: config.go
package debug

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Output sink modes
const (
	OutputConsole  = "console"
	OutputFile     = "file"
	OutputBoth     = "both"
	OutputCallback = "callback"
)

// Config holds all logger configuration values. The callback sink function
// is not part of Config since it cannot be expressed in a file; it is
// registered through SetOutput or the Builder.
type Config struct {
	// Level and tag state
	EnabledLevels []string `toml:"enabled_levels"`
	Tags          []string `toml:"tags"`

	// Sink selection
	Output        string `toml:"output"`         // "console", "file", "both", or "callback"
	FilePath      string `toml:"file_path"`      // Append target for the file sink
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Rendering
	UseColors       bool   `toml:"use_colors"`
	JSONOutput      bool   `toml:"json_output"`
	Format          string `toml:"format"` // Text template with {time} {level} {location} {tags} {message}
	TimestampFormat string `toml:"timestamp_format"`

	// Stack capture
	IncludeStack bool  `toml:"include_stack"` // Default stack capture toggle
	StackDepth   int64 `toml:"stack_depth"`   // Max frames per capture (1-32)

	// Record scoping
	Whitelist       []string `toml:"whitelist"` // Hard module gate, applied before filters
	FilterLevels    []string `toml:"filter_levels"`
	FilterModules   []string `toml:"filter_modules"`
	FilterFunctions []string `toml:"filter_functions"`
	FilterTags      []string `toml:"filter_tags"`

	// Remote delivery
	RemoteEnabled   bool   `toml:"remote_enabled"`
	RemoteURL       string `toml:"remote_url"`
	RemoteTimeoutMs int64  `toml:"remote_timeout_ms"`

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write sink failures to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	EnabledLevels: []string{"INFO", "DEBUG", "WARN", "ERROR", "TIMER"},

	Output:        OutputConsole,
	FilePath:      "debug.log",
	ConsoleTarget: "stdout",

	UseColors:       true,
	JSONOutput:      false,
	Format:          "[{time}] [{level}] {location} {tags} - {message}",
	TimestampFormat: "2006-01-02 15:04:05.000",

	IncludeStack: false,
	StackDepth:   6,

	RemoteEnabled:   false,
	RemoteTimeoutMs: 5000,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	return defaultConfig.Clone()
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copied := *c
	copied.EnabledLevels = append([]string(nil), c.EnabledLevels...)
	copied.Tags = append([]string(nil), c.Tags...)
	copied.Whitelist = append([]string(nil), c.Whitelist...)
	copied.FilterLevels = append([]string(nil), c.FilterLevels...)
	copied.FilterModules = append([]string(nil), c.FilterModules...)
	copied.FilterFunctions = append([]string(nil), c.FilterFunctions...)
	copied.FilterTags = append([]string(nil), c.FilterTags...)
	return &copied
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("debug.", *cfg); err != nil {
		return nil, fmtErrorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmtErrorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "debug.", cfg); err != nil {
		return nil, fmtErrorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmtErrorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		tomlTag := t.Field(i).Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	case reflect.Slice:
		strs, err := toStringSlice(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(strs))

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// toStringSlice converts loader values ([]string or []any) to []string
func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Output {
	case OutputConsole, OutputFile, OutputBoth, OutputCallback:
	default:
		return fmtErrorf("invalid output mode: '%s' (use console, file, both, or callback)", c.Output)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if (c.Output == OutputFile || c.Output == OutputBoth) && strings.TrimSpace(c.FilePath) == "" {
		return fmtErrorf("file_path cannot be empty when file output is enabled")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	if strings.TrimSpace(c.Format) == "" {
		return fmtErrorf("format template cannot be empty")
	}

	if c.StackDepth < 1 || c.StackDepth > 32 {
		return fmtErrorf("stack_depth must be between 1 and 32: %d", c.StackDepth)
	}

	if c.RemoteTimeoutMs <= 0 {
		return fmtErrorf("remote_timeout_ms must be positive: %d", c.RemoteTimeoutMs)
	}

	for _, lvl := range c.EnabledLevels {
		if _, err := ParseLevel(lvl); err != nil {
			return err
		}
	}

	return nil
}
