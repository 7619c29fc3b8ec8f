// FILE: default.go
package debug

// Global instance for package-level functions. Applications that want
// explicit lifetimes should construct their own Logger; this instance is
// a convenience, not a requirement.
var defaultLogger = NewLogger()

// Default returns the shared process-wide logger instance
func Default() *Logger {
	return defaultLogger
}

// Package-level functions that delegate to the default logger. Each calls
// the engine at the same depth as the corresponding method so reported
// locations point at the original call site.

// Log emits a record at an arbitrary level
func Log(level Level, msg string, args ...any) {
	defaultLogger.log(level, nil, nil, 1, msg, args...)
}

// Info logs a message at INFO level
func Info(msg string, args ...any) {
	defaultLogger.log(LevelInfo, nil, nil, 1, msg, args...)
}

// Warn logs a message at WARN level
func Warn(msg string, args ...any) {
	defaultLogger.log(LevelWarn, nil, nil, 1, msg, args...)
}

// Error logs a message at ERROR level
func Error(msg string, args ...any) {
	defaultLogger.log(LevelError, nil, nil, 1, msg, args...)
}

// Debug logs a message at DEBUG level
func Debug(msg string, args ...any) {
	defaultLogger.log(LevelDebug, nil, nil, 1, msg, args...)
}

// With returns an Entry on the default logger carrying call-site tags
func With(tags ...string) *Entry {
	return defaultLogger.With(tags...)
}

// Watch logs a DEBUG record listing each named value and its representation
func Watch(values map[string]any) {
	defaultLogger.watch(values)
}

// Assert logs an ERROR record with forced stack capture and returns a
// wrapped ErrAssertion when the condition is false
func Assert(condition bool, msg string) error {
	return defaultLogger.assertCheck(condition, msg)
}

// Timed runs fn and logs a TIMER record with the elapsed duration
func Timed(label string, fn func() error) error {
	return defaultLogger.timed(defaultLogger.resolve(2), label, fn)
}

// StartTimer begins a scoped timer on the default logger
func StartTimer(label string) *Timer {
	return defaultLogger.timer(defaultLogger.resolve(2), label)
}

// Configure applies a validated configuration to the default logger
func Configure(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies "key=value" overrides to the default logger
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// SetTags replaces the global tag set
func SetTags(tags ...string) { defaultLogger.SetTags(tags...) }

// ClearTags empties the global tag set
func ClearTags() { defaultLogger.ClearTags() }

// EnableLevel adds a level to the enabled set
func EnableLevel(level Level) { defaultLogger.EnableLevel(level) }

// DisableLevel removes a level from the enabled set
func DisableLevel(level Level) { defaultLogger.DisableLevel(level) }

// EnableStack turns on stack capture by default
func EnableStack() { defaultLogger.EnableStack() }

// DisableStack turns off stack capture by default
func DisableStack() { defaultLogger.DisableStack() }

// EnableColors turns on ANSI colorization
func EnableColors() { defaultLogger.EnableColors() }

// DisableColors turns off ANSI colorization
func DisableColors() { defaultLogger.DisableColors() }

// EnableJSON switches rendering to the structured document form
func EnableJSON() { defaultLogger.EnableJSON() }

// DisableJSON switches rendering back to the text template form
func DisableJSON() { defaultLogger.DisableJSON() }

// EnableRemote turns on best-effort async HTTP delivery
func EnableRemote() { defaultLogger.EnableRemote() }

// DisableRemote turns off async HTTP delivery
func DisableRemote() { defaultLogger.DisableRemote() }

// SetOutput selects the sink mode and registers the callback function
func SetOutput(mode string, callback func(string)) error {
	return defaultLogger.SetOutput(mode, callback)
}

// SetFormat replaces the text template
func SetFormat(template string) { defaultLogger.SetFormat(template) }

// SetFilePath changes the file sink target
func SetFilePath(path string) { defaultLogger.SetFilePath(path) }

// SetWhitelist replaces the module whitelist
func SetWhitelist(modules ...string) { defaultLogger.SetWhitelist(modules...) }

// SetFilters replaces any subset of the four filter axes
func SetFilters(f Filters) { defaultLogger.SetFilters(f) }

// ClearFilters empties all four filter axes
func ClearFilters() { defaultLogger.ClearFilters() }

// SetRemoteURL sets the remote endpoint for async delivery
func SetRemoteURL(url string) { defaultLogger.SetRemoteURL(url) }
