// FILE: location.go
package debug

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// callsite identifies the origin of a log call: the calling package
// (used as the module identity for whitelist/filter matching), the bare
// function name, and the source position.
type callsite struct {
	pkg      string
	function string
	file     string
	line     int
}

// String renders the callsite in the form "file.go:42 in Func()".
func (c callsite) String() string {
	return fmt.Sprintf("%s:%d in %s()", c.file, c.line, c.function)
}

// resolveCallsite determines the call site skip frames above this function.
// It never fails; unresolvable fields are substituted with "?".
func resolveCallsite(skip int) callsite {
	cs := callsite{pkg: "?", function: "?", file: "?"}
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return cs
	}
	cs.file = filepath.Base(file)
	cs.line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		cs.pkg, cs.function = splitFuncName(fn.Name())
	}
	return cs
}

// splitFuncName splits a runtime function name like
// "github.com/acme/app/db.(*Store).Get" into the package import path and
// the bare function name.
func splitFuncName(name string) (string, string) {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name, "?"
	}
	dot += slash + 1
	pkg := name[:dot]
	fn := name[dot+1:]
	// Strip any receiver or closure prefix, keeping the last segment
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return pkg, fn
}

// captureStack collects up to max caller frames, starting skip frames above
// this function's caller. Each frame is rendered in the same form as a
// callsite so stack lines and location strings stay consistent.
func captureStack(skip, max int) []string {
	if max <= 0 {
		return nil
	}
	pc := make([]uintptr, max)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	stack := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.File != "" {
			_, fn := splitFuncName(frame.Function)
			stack = append(stack, fmt.Sprintf("%s:%d in %s()", filepath.Base(frame.File), frame.Line, fn))
		}
		if !more {
			break
		}
	}
	return stack
}
