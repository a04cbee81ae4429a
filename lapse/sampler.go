package lapse

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/slog"
)

// # Sampler
//
// A stopwatch bound to one instrumented call site. It records elapsed
// time between Start and Pause/TakeSample calls, buffers the finalized
// samples in memory and serializes them to its sink on Flush.
//
// A Sampler is single-owner: it must be driven by exactly one
// goroutine. Misusing the state machine (pausing or sampling with no
// open measurement window) logs a diagnostic and leaves the state
// untouched; it never returns an error.
//
// Its zero value has no meaning and should not be used. A Sampler
// should always be instantiated using [New] or a [Builder].
type Sampler struct {
	label  string
	colour string
	unit   Unit

	started     bool
	anchor      time.Time
	accumulated float64 // unit scale, pending finalization
	pauseCount  int
	total       float64 // lifetime, raw (never averaged)
	samples     []float64

	sink  *sink
	clock func() time.Time
	echo  io.Writer
}

// Start opens a measurement window, anchoring the stopwatch at the
// current clock reading.
//
// Calling Start while a window is already open does not fail: it
// simply re-anchors the open window, discarding the time elapsed since
// the previous Start.
func (s *Sampler) Start() {
	if !enabled {
		return
	}
	s.started = true
	s.anchor = s.clock()
}

// Pause closes the open measurement window, adding its elapsed time to
// the pending accumulation and counting it toward a later averaged
// sample. Pausing with no open window logs a diagnostic and is a no-op.
func (s *Sampler) Pause() {
	if !enabled {
		return
	}
	if !s.started {
		logger.Warn("Timer did not start.", slog.String("sampler", s.label))
		return
	}
	s.accumulated += s.elapsed()
	s.pauseCount++
	s.started = false
}

// TakeSample finalizes one sample. With no Pause since the last
// finalization the sample is the time elapsed since Start; otherwise it
// is the accumulated sum of the paused windows. The value is appended
// to the dataset and added to the lifetime total, and the pending
// accumulation is cleared. With print set, the value is echoed as
// "Elapsed time: <value> <unit>".
//
// Sampling with neither an open window nor a pending accumulation logs
// a diagnostic and is a no-op.
func (s *Sampler) TakeSample(print bool) {
	if !enabled {
		return
	}
	if !s.started && s.pauseCount == 0 {
		logger.Warn("Timer did not start.", slog.String("sampler", s.label))
		return
	}
	if s.pauseCount == 0 {
		s.accumulated = s.elapsed()
	}
	if print {
		fmt.Fprintf(s.echo, "Elapsed time: %v %s\n", s.accumulated, s.unit.Label())
	}
	s.samples = append(s.samples, s.accumulated)
	s.total += s.accumulated
	s.accumulated = 0
	s.pauseCount = 0
	s.started = false
}

// TakeAverageSample finalizes the pending accumulation as one averaged
// sample: the mean over the Pause calls since the last finalization is
// appended to the dataset, while the lifetime total accrues the raw
// accumulated time so totals stay physically meaningful. With print
// set, the mean is echoed as "Average elapsed time: <value><unit>"
// with three decimals.
//
// Calling it with no pending Pause logs a diagnostic and is a no-op.
func (s *Sampler) TakeAverageSample(print bool) {
	if !enabled {
		return
	}
	if s.pauseCount == 0 {
		logger.Warn("use pause() to capture elapsed times", slog.String("sampler", s.label))
		return
	}
	mean := s.accumulated / float64(s.pauseCount)
	s.samples = append(s.samples, mean)
	if print {
		fmt.Fprintf(s.echo, "Average elapsed time: %.3f%s\n", mean, s.unit.Label())
	}
	s.total += s.accumulated
	s.accumulated = 0
	s.pauseCount = 0
	s.started = false
}

// TotalTime reports the lifetime sum of all finalized samples in the
// configured unit. Averaged finalizations contribute their raw
// accumulated time, not the mean.
func (s *Sampler) TotalTime() float64 {
	return s.total
}

// Reset clears the recorded samples, the lifetime total and any
// pending measurement, returning the Sampler to its initial state.
// The sink, if open, stays open.
func (s *Sampler) Reset() {
	if !enabled {
		return
	}
	s.started = false
	s.accumulated = 0
	s.pauseCount = 0
	s.total = 0
	s.samples = nil
}

// Flush serializes the buffered samples to the sink in one bulk write,
// closes the sink and resets the Sampler. It is idempotent: once the
// sink is closed a further Flush only resets state and no second file
// is produced. A flushed Sampler may be reused, but it records
// in-memory only; the sink is not reopened.
func (s *Sampler) Flush() {
	if !enabled {
		return
	}
	if s.sink != nil {
		s.sink.write(Dataset{
			Series:    []Series{{Name: s.label, Color: s.colour, Data: s.samples}},
			TimeUnits: s.unit.Label(),
		})
		s.sink = nil
	}
	s.Reset()
}

// Samples returns a copy of the finalized samples recorded so far, in
// chronological order.
func (s *Sampler) Samples() []float64 {
	cp := make([]float64, len(s.samples))
	copy(cp, s.samples)
	return cp
}

// Len returns the number of finalized samples recorded so far.
func (s *Sampler) Len() int { return len(s.samples) }

// Label returns the identifying name given at construction.
func (s *Sampler) Label() string { return s.label }

// Colour returns the display colour hint given at construction.
func (s *Sampler) Colour() string { return s.colour }

// Unit returns the unit descriptor the Sampler measures in.
func (s *Sampler) Unit() Unit { return s.unit }

// SinkPath returns the path of the dataset file this Sampler will
// write on Flush, or "" when the Sampler is in-memory only (no output
// directory configured, the sink failed to open, or the Sampler has
// already been flushed).
func (s *Sampler) SinkPath() string {
	if s.sink == nil {
		return ""
	}
	return s.sink.path
}

func (s *Sampler) elapsed() float64 {
	return s.clock().Sub(s.anchor).Seconds() / s.unit.Ratio()
}
