// FILE: override.go
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current
// configuration. Each override should be in the format "key=value".
// List-valued keys take comma-separated values; an empty value clears the
// list. The configuration is cloned before modification.
//
// Example:
//
//	logger := debug.NewLogger()
//	err := logger.ApplyOverride(
//	    "output=both",
//	    "file_path=/var/log/app/debug.log",
//	    "enabled_levels=ERROR,WARN",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.GetConfig()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("debug: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "debug: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "debug: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	// Level and tag state
	case "enabled_levels":
		cfg.EnabledLevels = splitList(value)
	case "tags":
		cfg.Tags = splitList(value)

	// Sink selection
	case "output":
		cfg.Output = value
	case "file_path":
		cfg.FilePath = value
	case "console_target":
		cfg.ConsoleTarget = value

	// Rendering
	case "use_colors":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for use_colors '%s': %w", value, err)
		}
		cfg.UseColors = boolVal
	case "json_output":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for json_output '%s': %w", value, err)
		}
		cfg.JSONOutput = boolVal
	case "format":
		cfg.Format = value
	case "timestamp_format":
		cfg.TimestampFormat = value

	// Stack capture
	case "include_stack":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for include_stack '%s': %w", value, err)
		}
		cfg.IncludeStack = boolVal
	case "stack_depth":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for stack_depth '%s': %w", value, err)
		}
		cfg.StackDepth = intVal

	// Record scoping
	case "whitelist":
		cfg.Whitelist = splitList(value)
	case "filter_levels":
		cfg.FilterLevels = splitList(value)
	case "filter_modules":
		cfg.FilterModules = splitList(value)
	case "filter_functions":
		cfg.FilterFunctions = splitList(value)
	case "filter_tags":
		cfg.FilterTags = splitList(value)

	// Remote delivery
	case "remote_enabled":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for remote_enabled '%s': %w", value, err)
		}
		cfg.RemoteEnabled = boolVal
	case "remote_url":
		cfg.RemoteURL = value
	case "remote_timeout_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for remote_timeout_ms '%s': %w", value, err)
		}
		cfg.RemoteTimeoutMs = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
