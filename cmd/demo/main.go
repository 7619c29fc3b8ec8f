package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/debug"
)

const logFile = "./demo_debug.log"

// main walks through the main features: leveled console output, tags and
// filters, structured mode, timers, and file output.
func main() {
	fmt.Println("--- debug logger demo ---")
	_ = os.Remove(logFile)

	logger, err := debug.NewBuilder().
		Output(debug.OutputBoth).
		FilePath(logFile).
		Colors(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	// Leveled logging with interpolation
	logger.Info("service starting on port %d", 8080)
	logger.Warn("cache miss rate %0.1f%%", 12.5)
	logger.Error("upstream unavailable: %v", errors.New("connection refused"))

	// Tag scoping
	logger.SetTags("demo")
	logger.With("db").Info("query completed in %dms", 42)
	logger.With("http").Debug("request headers parsed")

	// Filter to db-tagged records only
	logger.SetFilters(debug.Filters{Tags: []string{"db"}})
	logger.With("db").Info("still visible")
	logger.With("http").Info("suppressed by tag filter")
	logger.ClearFilters()

	// Watch named values
	logger.Watch(map[string]any{
		"port":    8080,
		"workers": 4,
		"opts":    map[string]bool{"tls": true, "gzip": false},
	})

	// Timers, on both normal and error paths
	_ = logger.Timed("warmup", func() error {
		time.Sleep(25 * time.Millisecond)
		return nil
	})
	t := logger.StartTimer("batch")
	time.Sleep(10 * time.Millisecond)
	t.Stop()

	// Assertions return a distinguishable error
	if err := logger.Assert(1+1 == 3, "arithmetic broke"); err != nil {
		fmt.Printf("assert returned: %v\n", err)
	}

	// Structured mode
	logger.EnableJSON()
	logger.DisableColors()
	logger.Info("structured record")
	logger.DisableJSON()

	// Runtime overrides
	if err := logger.ApplyOverride("enabled_levels=ERROR,TIMER", "use_colors=false"); err != nil {
		fmt.Fprintf(os.Stderr, "override failed: %v\n", err)
	}
	logger.Info("filtered out by level")
	logger.Error("errors still flow")

	fmt.Printf("done, file output in %s\n", logFile)
}
