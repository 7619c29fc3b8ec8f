// FILE: logger.go
package debug

import (
	"io"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"
)

// Logger is the core struct that encapsulates the filter, format, and
// dispatch pipeline under a shared mutable configuration.
type Logger struct {
	// currentSettings stores an immutable *settings snapshot. Readers load
	// it without locking; setters clone-modify-store under mu. Reads may be
	// slightly stale relative to a concurrent setter, never torn.
	currentSettings atomic.Value

	mu      sync.Mutex   // serializes configuration mutation
	writeMu sync.Mutex   // serializes sink writes for one record
	console atomic.Value // stores *sink

	client  *fasthttp.Client
	resolve func(skip int) callsite
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}

// settings is the immutable runtime form of a Config plus the callback
// sink. A snapshot is never mutated after being stored.
type settings struct {
	levels    map[Level]struct{}
	tags      map[string]struct{}
	whitelist map[string]struct{}
	filters   filterSet

	output   string
	callback func(string)
	filePath string

	useColors       bool
	jsonOutput      bool
	format          string
	timestampFormat string

	includeStack bool
	stackDepth   int

	remoteEnabled bool
	remoteURL     string
	remoteTimeout time.Duration

	internalErrors bool
}

// NewLogger creates a new Logger instance with default settings
func NewLogger() *Logger {
	l := &Logger{
		client:  &fasthttp.Client{},
		resolve: resolveCallsite,
	}
	s, _ := newSettings(DefaultConfig(), nil)
	l.currentSettings.Store(s)
	l.console.Store(&sink{w: os.Stdout})
	return l
}

// ApplyConfig applies a validated configuration to the logger, replacing
// all runtime settings. The registered callback, if any, is preserved.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyConfig(cfg, l.current().callback)
}

// applyConfig builds and stores the settings snapshot, assuming mu is held
func (l *Logger) applyConfig(cfg *Config, callback func(string)) error {
	s, err := newSettings(cfg, callback)
	if err != nil {
		return err
	}
	l.currentSettings.Store(s)

	if cfg.ConsoleTarget == "stderr" {
		l.console.Store(&sink{w: os.Stderr})
	} else {
		l.console.Store(&sink{w: os.Stdout})
	}
	return nil
}

// newSettings converts a validated Config into an immutable snapshot
func newSettings(cfg *Config, callback func(string)) (*settings, error) {
	if cfg.Output == OutputCallback && callback == nil {
		return nil, fmtErrorf("callback output selected but no callback registered (use SetOutput)")
	}

	levels := make(map[Level]struct{}, len(cfg.EnabledLevels))
	for _, name := range cfg.EnabledLevels {
		lvl, err := ParseLevel(name)
		if err != nil {
			return nil, err
		}
		levels[lvl] = struct{}{}
	}

	return &settings{
		levels:    levels,
		tags:      makeSet(cfg.Tags),
		whitelist: makeSet(cfg.Whitelist),
		filters: filterSet{
			levels:    makeSet(cfg.FilterLevels),
			modules:   makeSet(cfg.FilterModules),
			functions: makeSet(cfg.FilterFunctions),
			tags:      makeSet(cfg.FilterTags),
		},
		output:          cfg.Output,
		callback:        callback,
		filePath:        cfg.FilePath,
		useColors:       cfg.UseColors,
		jsonOutput:      cfg.JSONOutput,
		format:          cfg.Format,
		timestampFormat: cfg.TimestampFormat,
		includeStack:    cfg.IncludeStack,
		stackDepth:      int(cfg.StackDepth),
		remoteEnabled:   cfg.RemoteEnabled,
		remoteURL:       cfg.RemoteURL,
		remoteTimeout:   time.Duration(cfg.RemoteTimeoutMs) * time.Millisecond,
		internalErrors:  cfg.InternalErrorsToStderr,
	}, nil
}

// clone deep-copies a snapshot for mutation by a setter
func (s *settings) clone() *settings {
	copied := *s
	copied.levels = make(map[Level]struct{}, len(s.levels))
	for k := range s.levels {
		copied.levels[k] = struct{}{}
	}
	copied.tags = cloneSet(s.tags)
	copied.whitelist = cloneSet(s.whitelist)
	copied.filters = s.filters.clone()
	return &copied
}

// current returns the active settings snapshot (lock-free)
func (l *Logger) current() *settings {
	return l.currentSettings.Load().(*settings)
}

// update applies a mutation to a cloned snapshot under the setter lock
func (l *Logger) update(mutate func(*settings)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := l.current().clone()
	mutate(s)
	l.currentSettings.Store(s)
}

// GetConfig returns a copy of the current configuration. The callback
// function is not representable in Config and is omitted.
func (l *Logger) GetConfig() *Config {
	s := l.current()
	levels := make([]string, 0, len(s.levels))
	for lvl := range s.levels {
		levels = append(levels, string(lvl))
	}
	sort.Strings(levels)
	cfg := &Config{
		EnabledLevels:          levels,
		Tags:                   setToSorted(s.tags),
		Output:                 s.output,
		FilePath:               s.filePath,
		ConsoleTarget:          l.consoleTarget(),
		UseColors:              s.useColors,
		JSONOutput:             s.jsonOutput,
		Format:                 s.format,
		TimestampFormat:        s.timestampFormat,
		IncludeStack:           s.includeStack,
		StackDepth:             int64(s.stackDepth),
		Whitelist:              setToSorted(s.whitelist),
		FilterLevels:           setToSorted(s.filters.levels),
		FilterModules:          setToSorted(s.filters.modules),
		FilterFunctions:        setToSorted(s.filters.functions),
		FilterTags:             setToSorted(s.filters.tags),
		RemoteEnabled:          s.remoteEnabled,
		RemoteURL:              s.remoteURL,
		RemoteTimeoutMs:        s.remoteTimeout.Milliseconds(),
		InternalErrorsToStderr: s.internalErrors,
	}
	return cfg
}

// consoleTarget reports which standard stream the console sink writes to
func (l *Logger) consoleTarget() string {
	if sk, ok := l.console.Load().(*sink); ok && sk.w == os.Stderr {
		return "stderr"
	}
	return "stdout"
}

// SetTags replaces the global tag set attached to every subsequent record
func (l *Logger) SetTags(tags ...string) {
	l.update(func(s *settings) {
		s.tags = makeSet(tags)
	})
}

// ClearTags empties the global tag set
func (l *Logger) ClearTags() {
	l.update(func(s *settings) {
		s.tags = map[string]struct{}{}
	})
}

// EnableLevel adds a level to the enabled set. Custom level names are
// accepted; they render uncolored unless present in the color table.
func (l *Logger) EnableLevel(level Level) {
	l.update(func(s *settings) {
		s.levels[level] = struct{}{}
	})
}

// DisableLevel removes a level from the enabled set
func (l *Logger) DisableLevel(level Level) {
	l.update(func(s *settings) {
		delete(s.levels, level)
	})
}

// EnableStack turns on stack capture by default
func (l *Logger) EnableStack() {
	l.update(func(s *settings) { s.includeStack = true })
}

// DisableStack turns off stack capture by default
func (l *Logger) DisableStack() {
	l.update(func(s *settings) { s.includeStack = false })
}

// EnableColors turns on ANSI colorization of text output
func (l *Logger) EnableColors() {
	l.update(func(s *settings) { s.useColors = true })
}

// DisableColors turns off ANSI colorization of text output
func (l *Logger) DisableColors() {
	l.update(func(s *settings) { s.useColors = false })
}

// EnableJSON switches rendering to the structured document form
func (l *Logger) EnableJSON() {
	l.update(func(s *settings) { s.jsonOutput = true })
}

// DisableJSON switches rendering back to the text template form
func (l *Logger) DisableJSON() {
	l.update(func(s *settings) { s.jsonOutput = false })
}

// EnableRemote turns on best-effort async HTTP delivery
func (l *Logger) EnableRemote() {
	l.update(func(s *settings) { s.remoteEnabled = true })
}

// DisableRemote turns off async HTTP delivery
func (l *Logger) DisableRemote() {
	l.update(func(s *settings) { s.remoteEnabled = false })
}

// SetOutput selects the sink mode and registers the callback function.
// Callback mode without a function is rejected so the logger never
// silently writes nowhere.
func (l *Logger) SetOutput(mode string, callback func(string)) error {
	switch mode {
	case OutputConsole, OutputFile, OutputBoth, OutputCallback:
	default:
		return fmtErrorf("invalid output mode: '%s' (use console, file, both, or callback)", mode)
	}
	if mode == OutputCallback && callback == nil {
		return fmtErrorf("callback output requires a callback function")
	}
	l.update(func(s *settings) {
		s.output = mode
		s.callback = callback
	})
	return nil
}

// SetFormat replaces the text template. Tokens other than {time}, {level},
// {location}, {tags}, and {message} are left verbatim in the output.
func (l *Logger) SetFormat(template string) {
	l.update(func(s *settings) { s.format = template })
}

// SetFilePath changes the file sink target
func (l *Logger) SetFilePath(path string) {
	l.update(func(s *settings) { s.filePath = path })
}

// SetWhitelist replaces the module whitelist. A non-empty whitelist means
// only matching modules may log at all.
func (l *Logger) SetWhitelist(modules ...string) {
	l.update(func(s *settings) {
		s.whitelist = makeSet(modules)
	})
}

// SetFilters replaces any subset of the four filter axes. A nil slice
// leaves that axis unchanged; an empty non-nil slice clears it.
func (l *Logger) SetFilters(f Filters) {
	l.update(func(s *settings) {
		if f.Levels != nil {
			s.filters.levels = makeSet(f.Levels)
		}
		if f.Modules != nil {
			s.filters.modules = makeSet(f.Modules)
		}
		if f.Functions != nil {
			s.filters.functions = makeSet(f.Functions)
		}
		if f.Tags != nil {
			s.filters.tags = makeSet(f.Tags)
		}
	})
}

// ClearFilters empties all four filter axes
func (l *Logger) ClearFilters() {
	l.SetFilters(Filters{
		Levels:    []string{},
		Modules:   []string{},
		Functions: []string{},
		Tags:      []string{},
	})
}

// SetRemoteURL sets the remote endpoint for async delivery
func (l *Logger) SetRemoteURL(url string) {
	l.update(func(s *settings) { s.remoteURL = url })
}
