// Package lapse is a lightweight elapsed-time sampling instrument.
//
// A [Sampler] is a stopwatch bound to one instrumented call site. It
// measures the time spent between Start and Pause/TakeSample calls,
// accumulates the finalized values in memory and, on Flush, serializes
// them as a line-chart dataset that the companion visualizer can plot.
// Typical use:
//
//	sw := lapse.NewBuilder().
//		WithUnit(lapse.Microseconds{}).
//		WithOutputDir("perf").
//		New("decode", "#1f77b4")
//	defer sw.Flush()
//
//	for i := 0; i < n; i++ {
//		sw.Start()
//		decode(frames[i])
//		sw.TakeSample(false)
//	}
//
// Interleaved work can be excluded with Pause, finalizing one averaged
// sample per batch with TakeAverageSample.
//
// A Sampler is owned by exactly one goroutine; use one instance per
// goroutine instead of sharing. The package-level registry behind
// [FlushAll] and [PrintSummary] is safe for concurrent use.
package lapse

import (
	"os"

	"golang.org/x/exp/slog"
)

func init() {
	logLevel = new(slog.LevelVar)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar
)

// SetLogger sets the logger used by lapse.
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the level for lapse messages unless [SetLogger] has been called.
// The default log level is the zero value of [slog.LevelVar].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
