// FILE: compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/debug"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing *debug.Logger instance or
// create a new one from a *debug.Config.
type Builder struct {
	logger *debug.Logger
	logCfg *debug.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger
// instance. If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *debug.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("debug/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// This is used only if an existing logger is NOT provided via WithLogger.
func (b *Builder) WithConfig(cfg *debug.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*debug.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := debug.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = debug.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *debug.Logger instance, initializing
// one if it has not been provided or created yet
func (b *Builder) GetLogger() (*debug.Logger, error) {
	return b.getLogger()
}
