// FILE: dispatch.go
package debug

import (
	"fmt"
	"os"
	"strings"
)

// write delivers a rendered record to the configured synchronous sinks
// under the write lock, then hands the payload to the remote path outside
// it. Synchronous writes from concurrent callers are fully serialized;
// remote deliveries carry no ordering guarantee.
func (l *Logger) write(s *settings, text string, payload *Payload) {
	l.writeMu.Lock()
	if s.output == OutputConsole || s.output == OutputBoth {
		if sk, ok := l.console.Load().(*sink); ok {
			fmt.Fprintln(sk.w, text)
		}
	}
	if s.output == OutputFile || s.output == OutputBoth {
		// A file failure skips this write only; console output above has
		// already happened and the caller is never interrupted.
		if err := appendLine(s.filePath, text); err != nil {
			l.internalLog("file sink write failed: %v\n", err)
		}
	}
	if s.output == OutputCallback && s.callback != nil {
		l.invokeCallback(s.callback, text)
	}
	l.writeMu.Unlock()

	if s.remoteEnabled && s.remoteURL != "" && payload != nil {
		// Fire and forget. No handle is retained; the goroutine may outlive
		// the log call or be abandoned at process exit.
		go l.postRemote(s.remoteURL, s.remoteTimeout, payload)
	}
}

// appendLine opens the log file in append mode, writes one line, and
// releases the handle on every exit path. The per-write open keeps the
// file safely appendable from multiple processes.
func appendLine(path, text string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, werr := f.WriteString(text + "\n")
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

// invokeCallback runs the callback sink, containing any panic so a
// misbehaving callback cannot propagate to the logging caller.
func (l *Logger) invokeCallback(cb func(string), text string) {
	defer func() {
		if r := recover(); r != nil {
			l.internalLog("callback sink panic: %v\n", r)
		}
	}()
	cb(text)
}

// internalLog writes engine diagnostics to stderr when enabled. Failures
// are never routed back through the engine itself.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.current().internalErrors {
		return
	}
	if !strings.HasPrefix(format, "debug: ") {
		format = "debug: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
