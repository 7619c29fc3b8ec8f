// FILE: watch.go
package debug

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// ErrAssertion is the distinguishable failure signal returned by Assert
// when its condition is false. Callers test for it with errors.Is.
var ErrAssertion = errors.New("debug: assertion failed")

// watchDumper renders watched values, with structure information for
// types plain formatting would flatten.
var watchDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true, // Cleaner for logs
	DisableCapacities:       true, // Less noise
	SortKeys:                true, // Consistent map output
}

// Watch logs a DEBUG record listing each named value and its
// representation, sorted by name.
func (l *Logger) Watch(values map[string]any) {
	l.watch(values)
}

// watch builds and emits the WATCH record. Kept separate so the default
// logger wrapper sits at the same call depth as the method.
func (l *Logger) watch(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+formatWatchValue(values[name]))
	}
	l.log(LevelDebug, nil, nil, 2, "WATCH: "+strings.Join(pairs, ", "))
}

// formatWatchValue renders one watched value. Scalars print plainly;
// anything else goes through spew for a compact structural dump.
func formatWatchValue(v any) string {
	switch v.(type) {
	case string, bool, error, fmt.Stringer,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, nil:
		return fmt.Sprintf("%v", v)
	default:
		return strings.TrimSpace(watchDumper.Sprintf("%#v", v))
	}
}

// Assert logs an ERROR record with forced stack capture and returns a
// wrapped ErrAssertion when the condition is false. Unlike every other
// path, the failure propagates to the caller.
func (l *Logger) Assert(condition bool, msg string) error {
	return l.assertCheck(condition, msg)
}

func (l *Logger) assertCheck(condition bool, msg string) error {
	if condition {
		return nil
	}
	if msg == "" {
		msg = "Assertion failed"
	}
	forced := true
	l.log(LevelError, nil, &forced, 2, "ASSERT: "+msg)
	return fmt.Errorf("%w: %s", ErrAssertion, msg)
}
