// FILE: timer.go
package debug

import (
	"fmt"
	"time"
)

// Timer measures elapsed wall-clock time for a scoped operation and
// reports it as a TIMER record on Stop. The call site is resolved at
// creation so the record points at the code being timed, not at the
// timer internals.
type Timer struct {
	l     *Logger
	label string
	site  callsite
	start time.Time
}

// StartTimer begins a scoped timer with the given label
func (l *Logger) StartTimer(label string) *Timer {
	return l.timer(l.resolve(2), label)
}

func (l *Logger) timer(site callsite, label string) *Timer {
	return &Timer{l: l, label: label, site: site, start: time.Now()}
}

// Stop emits the TIMER record with the elapsed duration in milliseconds
func (t *Timer) Stop() {
	elapsed := float64(time.Since(t.start).Microseconds()) / 1000.0
	s := t.l.current()
	if _, ok := s.levels[LevelTimer]; !ok {
		return
	}
	t.l.emit(s, t.site, LevelTimer, nil, nil, 2, fmt.Sprintf("%s took %.2fms", t.label, elapsed))
}

// Timed runs fn and logs a TIMER record with the label and elapsed
// duration after it completes. The record is emitted on normal return,
// on error return, and before a panic propagates.
func (l *Logger) Timed(label string, fn func() error) error {
	return l.timed(l.resolve(2), label, fn)
}

func (l *Logger) timed(site callsite, label string, fn func() error) error {
	t := l.timer(site, label)
	defer func() {
		if r := recover(); r != nil {
			t.Stop()
			panic(r)
		}
	}()
	err := fn()
	t.Stop()
	return err
}
