// FILE: entry.go
package debug

import (
	"fmt"
	"time"
)

// log is the engine entry point. depth is the number of public wrapper
// frames between the original call site and this function. The enabled
// level check is the single fast path rejection before any frame
// inspection.
func (l *Logger) log(level Level, tags []string, stackOverride *bool, depth int, msg string, args ...any) {
	s := l.current()
	if _, ok := s.levels[level]; !ok {
		return
	}
	site := l.resolve(2 + depth)
	l.emit(s, site, level, tags, stackOverride, 2+depth, msg, args...)
}

// emit runs the remainder of the pipeline for a resolved call site:
// whitelist gate, filter axes, interpolation, stack capture, rendering,
// and dispatch.
func (l *Logger) emit(s *settings, site callsite, level Level, tags []string, stackOverride *bool, stackSkip int, msg string, args ...any) {
	if len(s.whitelist) > 0 {
		if _, ok := s.whitelist[site.pkg]; !ok {
			return
		}
	}

	allTags := cloneSet(s.tags)
	for _, tag := range tags {
		allTags[tag] = struct{}{}
	}

	if !s.filters.accept(level, site.pkg, site.function, allTags) {
		return
	}

	// Printf-style interpolation happens before rendering. A message with
	// literal percent signs and no args is passed through verbatim.
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var stack []string
	wantStack := s.includeStack
	if stackOverride != nil {
		wantStack = *stackOverride
	}
	if wantStack {
		stack = captureStack(stackSkip, s.stackDepth)
	}

	text, payload := render(s, level, msg, setToSorted(allTags), site, stack, time.Now())
	l.write(s, text, payload)
}

// Log emits a record at an arbitrary level with printf-style interpolation
func (l *Logger) Log(level Level, msg string, args ...any) {
	l.log(level, nil, nil, 1, msg, args...)
}

// Info logs a message at INFO level
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, nil, nil, 1, msg, args...)
}

// Warn logs a message at WARN level
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, nil, nil, 1, msg, args...)
}

// Error logs a message at ERROR level
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, nil, nil, 1, msg, args...)
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, nil, nil, 1, msg, args...)
}

// Entry carries call-site tags and a stack capture override into leveled
// calls. Entries are immutable; each chained call returns a copy.
type Entry struct {
	l     *Logger
	tags  []string
	stack *bool
}

// With returns an Entry carrying call-site tags that are merged with the
// global tag set when a record is emitted.
func (l *Logger) With(tags ...string) *Entry {
	return &Entry{l: l, tags: tags}
}

// Stack overrides the default stack capture toggle for this entry
func (e *Entry) Stack(capture bool) *Entry {
	copied := *e
	copied.stack = &capture
	return &copied
}

// With appends further tags to the entry
func (e *Entry) With(tags ...string) *Entry {
	copied := *e
	copied.tags = append(append([]string(nil), e.tags...), tags...)
	return &copied
}

// Log emits a record at an arbitrary level with the entry's scoping
func (e *Entry) Log(level Level, msg string, args ...any) {
	e.l.log(level, e.tags, e.stack, 1, msg, args...)
}

// Info logs a message at INFO level with the entry's scoping
func (e *Entry) Info(msg string, args ...any) {
	e.l.log(LevelInfo, e.tags, e.stack, 1, msg, args...)
}

// Warn logs a message at WARN level with the entry's scoping
func (e *Entry) Warn(msg string, args ...any) {
	e.l.log(LevelWarn, e.tags, e.stack, 1, msg, args...)
}

// Error logs a message at ERROR level with the entry's scoping
func (e *Entry) Error(msg string, args ...any) {
	e.l.log(LevelError, e.tags, e.stack, 1, msg, args...)
}

// Debug logs a message at DEBUG level with the entry's scoping
func (e *Entry) Debug(msg string, args ...any) {
	e.l.log(LevelDebug, e.tags, e.stack, 1, msg, args...)
}
