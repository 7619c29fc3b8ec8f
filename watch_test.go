// FILE: watch_test.go
package debug

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSortedPairs(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{level} {message}")

	logger.Watch(map[string]any{
		"zeta":  3,
		"alpha": "x",
		"mid":   true,
	})

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "DEBUG WATCH: alpha=x, mid=true, zeta=3", lines[0])
}

func TestWatchStructuredValues(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{message}")

	type point struct {
		X, Y int
	}
	logger.Watch(map[string]any{"p": point{X: 1, Y: 2}})

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "WATCH: p=")
	assert.Contains(t, lines[0], "X:")
	assert.Contains(t, lines[0], "Y:")
}

func TestWatchLocationIsCaller(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{location}")

	logger.Watch(map[string]any{"n": 1})

	require.Equal(t, 1, cap.count())
	assert.Contains(t, cap.all()[0], "watch_test.go:")
	assert.Contains(t, cap.all()[0], "TestWatchLocationIsCaller()")
}

func TestWatchEmpty(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{message}")

	logger.Watch(map[string]any{})
	require.Equal(t, 1, cap.count())
	assert.Equal(t, "WATCH: ", cap.all()[0])
}

func TestWatchRespectsLevelGate(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.DisableLevel(LevelDebug)

	logger.Watch(map[string]any{"n": 1})
	assert.Equal(t, 0, cap.count())
}

func TestAssertPasses(t *testing.T) {
	logger, cap := newTestLogger(t)

	err := logger.Assert(true, "never logged")
	assert.NoError(t, err)
	assert.Equal(t, 0, cap.count())
}

func TestAssertFails(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{level} {message}")

	err := logger.Assert(false, "invariant broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssertion))
	assert.Contains(t, err.Error(), "invariant broken")

	lines := cap.all()
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR ASSERT: invariant broken", lines[0])
}

func TestAssertDefaultMessage(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.SetFormat("{message}")

	err := logger.Assert(false, "")
	require.Error(t, err)
	assert.Equal(t, "ASSERT: Assertion failed", cap.all()[0])
}

func TestAssertForcesStack(t *testing.T) {
	logger, cap := newTestLogger(t)
	logger.EnableJSON()
	// Stack capture stays forced even with the default toggle off
	logger.DisableStack()

	_ = logger.Assert(false, "stack wanted")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(cap.all()[0]), &doc))

	stack, ok := doc["stack"].([]any)
	require.True(t, ok, "assertion records always carry a stack")
	require.NotEmpty(t, stack)
	assert.Contains(t, stack[0], "TestAssertForcesStack")
}
