// FILE: level.go
package debug

import (
	"strings"
)

// Level identifies the severity of a record. Levels are plain names so
// applications can register their own with EnableLevel.
type Level string

// Built-in levels
const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelDebug Level = "DEBUG"
	LevelTimer Level = "TIMER"
)

// ANSI escape codes for colorized console output
const ansiReset = "\x1b[0m"

// levelColors maps built-in levels to their ANSI color. Levels without an
// entry render uncolored.
var levelColors = map[Level]string{
	LevelInfo:  "\x1b[96m", // cyan
	LevelWarn:  "\x1b[93m", // yellow
	LevelError: "\x1b[91m", // red
	LevelDebug: "\x1b[92m", // green
	LevelTimer: "\x1b[95m", // magenta
}

// ParseLevel normalizes a level name from configuration input.
// Any non-empty name is accepted since the level set is open.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return "", fmtErrorf("level name cannot be empty")
	}
	return Level(name), nil
}
