// FILE: logger_test.go
package debug

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records callback sink output in order
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

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// newTestLogger creates a logger delivering plain text lines to a capture
func newTestLogger(t *testing.T) (*Logger, *capture) {
	t.Helper()
	cap := &capture{}
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.UseColors = false
	require.NoError(t, logger.ApplyConfig(cfg))
	require.NoError(t, logger.SetOutput(OutputCallback, cap.add))

	return logger, cap
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()

	assert.NotNil(t, logger)
	assert.NotNil(t, logger.client)
	assert.NotNil(t, logger.current())
	assert.Equal(t, OutputConsole, logger.current().output)
}

func TestEnabledLevelGate(t *testing.T) {
	logger, cap := newTestLogger(t)

	cfg := logger.GetConfig()
	cfg.EnabledLevels = []string{"ERROR"}
	require.NoError(t, logger.ApplyConfig(cfg))

	logger.Info("info suppressed")
	assert.Equal(t, 0, cap.count())

	logger.Error("boom")
	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "boom")
}

func TestDisabledLevelSkipsResolver(t *testing.T) {
	logger, _ := newTestLogger(t)

	var calls int
	orig := logger.resolve
	logger.resolve = func(skip int) callsite {
		calls++
		return orig(skip + 1)
	}

	logger.DisableLevel(LevelInfo)
	logger.Info("nothing")
	assert.Equal(t, 0, calls, "resolver must not run for a disabled level")

	logger.EnableLevel(LevelInfo)
	logger.Info("something")
	assert.Equal(t, 1, calls)
}

func TestWhitelist(t *testing.T) {
	logger, cap := newTestLogger(t)
	self := resolveCallsite(1)

	logger.SetWhitelist("github.com/acme/other")
	logger.With("db").Info("rejected regardless of filters")
	assert.Equal(t, 0, cap.count())

	logger.SetWhitelist(self.pkg)
	logger.Info("allowed")
	assert.Equal(t, 1, cap.count())

	// Empty whitelist means no restriction
	logger.SetWhitelist()
	logger.Info("still allowed")
	assert.Equal(t, 2, cap.count())
}

func TestFilterAxes(t *testing.T) {
	logger, cap := newTestLogger(t)
	self := resolveCallsite(1)

	// Tag axis: non-empty intersection required
	logger.SetFilters(Filters{Tags: []string{"db"}})
	logger.With("db").Info("q")
	logger.With("http").Info("q2")
	require.Len(t, cap.all(), 1)
	assert.Contains(t, cap.all()[0], "q")

	// Level axis refines independently of enabled levels
	logger.SetFilters(Filters{Levels: []string{"ERROR"}, Tags: []string{}})
	logger.Info("filtered")
	logger.Error("passes")
	assert.Equal(t, 2, cap.count())

	// Module and function axes match the resolved call site
	logger.SetFilters(Filters{
		Levels:    []string{},
		Modules:   []string{self.pkg},
		Functions: []string{"TestFilterAxes"},
	})
	logger.Info("matched")
	assert.Equal(t, 3, cap.count())

	logger.SetFilters(Filters{Functions: []string{"SomeOtherFunc"}})
	logger.Info("function mismatch")
	assert.Equal(t, 3, cap.count())

	// Clearing all axes restores match-all behavior
	logger.ClearFilters()
	logger.Info("restored")
	assert.Equal(t, 4, cap.count())
}

func TestFiltersNilLeavesAxisUnchanged(t *testing.T) {
	logger, cap := newTestLogger(t)

	logger.SetFilters(Filters{Tags: []string{"db"}})
	// Nil Tags must not clear the tag axis
	logger.SetFilters(Filters{Levels: []string{"INFO"}})
	logger.With("http").Info("still tag-filtered")
	assert.Equal(t, 0, cap.count())

	logger.With("db").Info("passes both axes")
	assert.Equal(t, 1, cap.count())
}

func TestGlobalAndCallSiteTags(t *testing.T) {
	logger, cap := newTestLogger(t)

	logger.SetFormat("{tags}|{message}")
	logger.SetTags("svc")
	logger.With("db").Info("tagged")

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "[db,svc]|tagged", lines[0], "tags render sorted and merged")

	logger.ClearTags()
	logger.Info("untagged")
	assert.Equal(t, "|untagged", cap.all()[1], "empty tag set renders as empty string")
}

func TestSetOutputValidation(t *testing.T) {
	logger, _ := newTestLogger(t)

	err := logger.SetOutput(OutputCallback, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callback")

	err = logger.SetOutput("pigeon", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")
}

func TestCallbackPanicContained(t *testing.T) {
	logger, _ := newTestLogger(t)

	require.NoError(t, logger.SetOutput(OutputCallback, func(string) {
		panic("sink exploded")
	}))

	assert.NotPanics(t, func() {
		logger.Info("survives panicking sink")
	})

	// Logger state remains usable afterwards
	cap := &capture{}
	require.NoError(t, logger.SetOutput(OutputCallback, cap.add))
	logger.Info("recovered")
	assert.Equal(t, 1, cap.count())
}

func TestFileSinkFailureDoesNotCrash(t *testing.T) {
	logger, _ := newTestLogger(t)

	cfg := logger.GetConfig()
	cfg.Output = OutputFile
	cfg.FilePath = filepath.Join(t.TempDir(), "missing", "dir", "debug.log")
	require.NoError(t, logger.ApplyConfig(cfg))

	assert.NotPanics(t, func() {
		logger.Error("write goes nowhere")
	})
}

func TestConcurrentWritesAreSerialized(t *testing.T) {
	const workers = 8
	const perWorker = 25

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "debug.log")

	logger := NewLogger()
	cfg := DefaultConfig()
	cfg.UseColors = false
	cfg.Output = OutputBoth
	cfg.FilePath = logPath
	cfg.Format = "{level} {message}"
	require.NoError(t, logger.ApplyConfig(cfg))

	var console bytes.Buffer
	logger.console.Store(&sink{w: &console})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				logger.Info("worker=%d seq=%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	fileData, err := os.ReadFile(logPath)
	require.NoError(t, err)

	for name, data := range map[string][]byte{"file": fileData, "console": console.Bytes()} {
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, workers*perWorker, "%s line count", name)
		for _, line := range lines {
			assert.Regexp(t, `^INFO worker=\d+ seq=\d+$`, line, "%s line must be complete", name)
		}
	}
}

func TestConcurrentReconfiguration(t *testing.T) {
	logger, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				logger.Info("worker %d msg %d", id, j)
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			logger.SetTags(fmt.Sprintf("round-%d", i))
			logger.SetFilters(Filters{Tags: []string{}})
			logger.EnableColors()
			logger.DisableColors()
		}
	}()
	wg.Wait()
}

func TestGetConfigRoundtrip(t *testing.T) {
	logger, _ := newTestLogger(t)

	logger.SetTags("a", "b")
	logger.SetWhitelist("pkg/one")
	logger.SetFilters(Filters{Levels: []string{"ERROR", "WARN"}})
	logger.SetRemoteURL("http://collector.local/logs")

	cfg := logger.GetConfig()
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	assert.Equal(t, []string{"pkg/one"}, cfg.Whitelist)
	assert.Equal(t, []string{"ERROR", "WARN"}, cfg.FilterLevels)
	assert.Equal(t, "http://collector.local/logs", cfg.RemoteURL)
	assert.Equal(t, OutputCallback, cfg.Output)
}

func TestDefaultLoggerDelegation(t *testing.T) {
	cap := &capture{}
	require.NoError(t, SetOutput(OutputCallback, cap.add))
	defer func() {
		require.NoError(t, SetOutput(OutputConsole, nil))
	}()
	DisableColors()

	Info("via package function")
	require.Equal(t, 1, cap.count())
	assert.Contains(t, cap.all()[0], "logger_test.go", "location points at the call site, not default.go")

	assert.Same(t, defaultLogger, Default())
}
