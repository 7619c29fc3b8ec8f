// FILE: builder.go
package debug

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg      *Config
	callback func(string)
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if err := b.cfg.validate(); err != nil {
		return nil, err
	}

	logger := NewLogger()
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if err := logger.applyConfig(b.cfg, b.callback); err != nil {
		return nil, err
	}
	return logger, nil
}

// Levels sets the enabled level set.
func (b *Builder) Levels(levels ...string) *Builder {
	b.cfg.EnabledLevels = levels
	return b
}

// Tags sets the global tag set.
func (b *Builder) Tags(tags ...string) *Builder {
	b.cfg.Tags = tags
	return b
}

// Output sets the sink mode.
func (b *Builder) Output(mode string) *Builder {
	b.cfg.Output = mode
	return b
}

// Callback selects callback output and registers the sink function.
func (b *Builder) Callback(fn func(string)) *Builder {
	b.cfg.Output = OutputCallback
	b.callback = fn
	return b
}

// FilePath sets the file sink target.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// ConsoleTarget selects stdout or stderr for the console sink.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Colors toggles ANSI colorization.
func (b *Builder) Colors(enable bool) *Builder {
	b.cfg.UseColors = enable
	return b
}

// JSON toggles structured rendering.
func (b *Builder) JSON(enable bool) *Builder {
	b.cfg.JSONOutput = enable
	return b
}

// Format sets the text template.
func (b *Builder) Format(template string) *Builder {
	b.cfg.Format = template
	return b
}

// TimestampFormat sets the timestamp layout.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// Stack toggles default stack capture.
func (b *Builder) Stack(enable bool) *Builder {
	b.cfg.IncludeStack = enable
	return b
}

// StackDepth sets the maximum captured frames.
func (b *Builder) StackDepth(depth int64) *Builder {
	b.cfg.StackDepth = depth
	return b
}

// Whitelist sets the module whitelist.
func (b *Builder) Whitelist(modules ...string) *Builder {
	b.cfg.Whitelist = modules
	return b
}

// Filters sets the four filter axes from a Filters value. Nil slices
// leave the axis empty (match-all).
func (b *Builder) Filters(f Filters) *Builder {
	if f.Levels != nil {
		b.cfg.FilterLevels = f.Levels
	}
	if f.Modules != nil {
		b.cfg.FilterModules = f.Modules
	}
	if f.Functions != nil {
		b.cfg.FilterFunctions = f.Functions
	}
	if f.Tags != nil {
		b.cfg.FilterTags = f.Tags
	}
	return b
}

// Remote enables async delivery to the given endpoint.
func (b *Builder) Remote(url string) *Builder {
	b.cfg.RemoteEnabled = true
	b.cfg.RemoteURL = url
	return b
}

// RemoteTimeoutMs sets the remote delivery timeout.
func (b *Builder) RemoteTimeoutMs(ms int64) *Builder {
	b.cfg.RemoteTimeoutMs = ms
	return b
}

// InternalErrorsToStderr toggles sink failure reporting on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := debug.NewBuilder().
//
//	Output(debug.OutputBoth).
//	FilePath("/var/log/app/debug.log").
//	Levels("ERROR", "WARN", "TIMER").
//	Colors(false).
//	Build()
//
// if err == nil {
//
//	logger.Info("logger ready")
//
// }
