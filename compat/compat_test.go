// FILE: compat/compat_test.go
package compat

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/debug"
)

type capture struct {
	mu    sync.Mutex
	lines []string
}

func (c *capture) add(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()
}

func (c *capture) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func newCaptureLogger(t *testing.T) (*debug.Logger, *capture) {
	t.Helper()
	cap := &capture{}
	logger, err := debug.NewBuilder().
		Callback(cap.add).
		Colors(false).
		Format("{level} {tags} {message}").
		Build()
	require.NoError(t, err)
	return logger, cap
}

func TestFastHTTPAdapterPrintf(t *testing.T) {
	logger, cap := newCaptureLogger(t)
	adapter := NewFastHTTPAdapter(logger)

	adapter.Printf("serving on %s", ":8080")

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO [fasthttp] serving on :8080", lines[0])
}

func TestFastHTTPAdapterLevelDetection(t *testing.T) {
	logger, cap := newCaptureLogger(t)
	adapter := NewFastHTTPAdapter(logger)

	adapter.Printf("connection failed: %v", "timeout")
	adapter.Printf("deprecated option in use")
	adapter.Printf("trace enabled")

	lines := cap.all()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ERROR ")
	assert.Contains(t, lines[1], "WARN ")
	assert.Contains(t, lines[2], "DEBUG ")
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	logger, cap := newCaptureLogger(t)
	adapter := NewFastHTTPAdapter(logger,
		WithDefaultLevel(debug.LevelWarn),
		WithLevelDetector(nil),
	)

	adapter.Printf("error strings are ignored without a detector")

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "WARN ")
}

func TestDetectLogLevel(t *testing.T) {
	assert.Equal(t, debug.LevelError, DetectLogLevel("request FAILED"))
	assert.Equal(t, debug.LevelError, DetectLogLevel("panic recovered"))
	assert.Equal(t, debug.LevelWarn, DetectLogLevel("Warning: slow response"))
	assert.Equal(t, debug.LevelDebug, DetectLogLevel("debug dump follows"))
	assert.Equal(t, debug.Level(""), DetectLogLevel("all quiet"))
}

func TestGnetAdapterLevels(t *testing.T) {
	logger, cap := newCaptureLogger(t)
	adapter := NewGnetAdapter(logger)

	adapter.Debugf("loop %d ready", 3)
	adapter.Infof("listening")
	adapter.Warnf("backlog %d", 128)
	adapter.Errorf("accept: %v", "too many open files")

	lines := cap.all()
	require.Len(t, lines, 4)
	assert.Equal(t, "DEBUG [gnet] loop 3 ready", lines[0])
	assert.Equal(t, "INFO [gnet] listening", lines[1])
	assert.Equal(t, "WARN [gnet] backlog 128", lines[2])
	assert.Equal(t, "ERROR [gnet] accept: too many open files", lines[3])
}

func TestGnetAdapterFatalHandler(t *testing.T) {
	logger, cap := newCaptureLogger(t)

	var fatalMsg string
	adapter := NewGnetAdapter(logger, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Fatalf("unrecoverable: %s", "bind error")

	assert.Equal(t, "unrecoverable: bind error", fatalMsg)
	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR [gnet] FATAL: unrecoverable: bind error", lines[0])
}

func TestBuilderWithExistingLogger(t *testing.T) {
	logger, cap := newCaptureLogger(t)

	gnetAdapter, err := NewBuilder().WithLogger(logger).BuildGnet()
	require.NoError(t, err)
	httpAdapter, err := NewBuilder().WithLogger(logger).BuildFastHTTP()
	require.NoError(t, err)

	gnetAdapter.Infof("from gnet")
	httpAdapter.Printf("from fasthttp")

	assert.Len(t, cap.all(), 2)
}

func TestBuilderWithConfig(t *testing.T) {
	cfg := debug.DefaultConfig()
	cfg.UseColors = false

	b := NewBuilder().WithConfig(cfg)
	adapter, err := b.BuildGnet()
	require.NoError(t, err)
	assert.NotNil(t, adapter)

	// The builder reuses the logger it created
	first, err := b.GetLogger()
	require.NoError(t, err)
	second, err := b.GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBuilderRejectsNilLogger(t *testing.T) {
	_, err := NewBuilder().WithLogger(nil).BuildGnet()
	require.Error(t, err)
}
