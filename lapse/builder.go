package lapse

import (
	"io"
	"math/rand"
	"os"
	"time"

	"golang.org/x/exp/slog"
)

// # Builder
//
// Builder implements a builder pattern to configure and construct
// Samplers. All With* methods modify and return the builder, so a
// configured builder can be kept and reused for several call sites:
//
//	b := lapse.NewBuilder().WithUnit(lapse.Microseconds{}).WithOutputDir("perf")
//	decode := b.New("decode", "#1f77b4")
//	render := b.New("render", "#d62728")
//
// Its zero value has no particular meaning and should not be used.
// A Builder should always be instantiated using [NewBuilder].
type Builder struct {
	unit      Unit
	outputDir string
	clock     func() time.Time
	rng       *rand.Rand
	echo      io.Writer
}

// NewBuilder returns a [Builder] which will generate Samplers that:
//   - measure in milliseconds
//   - are in-memory only (no output directory, so no dataset file)
//   - read the system clock and echo to standard output
func NewBuilder() *Builder {
	return &Builder{
		unit:  Milliseconds{},
		clock: time.Now,
		echo:  os.Stdout,
	}
}

// New generates a Sampler for one call site. If an output directory is
// configured the dataset file is created now, reserving its name; a
// failed create is logged and the Sampler degrades to in-memory only
// (see [Sampler.SinkPath]). The Sampler is recorded in the package
// registry so [FlushAll] and [PrintSummary] can reach it.
func (b *Builder) New(label, colour string) *Sampler {
	s := &Sampler{
		label:  label,
		colour: colour,
		unit:   b.unit,
		clock:  b.clock,
		echo:   b.echo,
	}

	if !enabled {
		return s
	}

	if b.outputDir != "" {
		rng := b.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(b.clock().UnixNano()))
		}
		s.sink = openSink(b.outputDir, label, rng, b.clock())
	}

	register(s)

	return s
}

// WithUnit modifies and returns b, setting the unit new Samplers
// measure in. A non-positive ratio is rejected and the current unit
// kept.
func (b *Builder) WithUnit(u Unit) *Builder {
	if u.Ratio() <= 0 {
		logger.Error("unit ratio must be > 0",
			slog.String("unit", u.Label()),
			slog.Float64("ratio", u.Ratio()))
		return b
	}
	b.unit = u
	return b
}

// WithOutputDir modifies and returns b, setting the directory new
// Samplers write their dataset file to. An empty dir (the default)
// disables file output entirely.
func (b *Builder) WithOutputDir(dir string) *Builder {
	b.outputDir = dir
	return b
}

// WithClock modifies and returns b, setting the clock new Samplers
// read. Meant for tests; the default is [time.Now].
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	return b
}

// WithRand modifies and returns b, setting the random source used for
// the filename disambiguator of new Samplers. The default is a source
// seeded per Sampler from the clock; inject a seeded source for
// deterministic filenames.
func (b *Builder) WithRand(rng *rand.Rand) *Builder {
	b.rng = rng
	return b
}

// WithEchoWriter modifies and returns b, setting the writer the
// print-enabled sampling calls echo to. The default is standard output.
func (b *Builder) WithEchoWriter(w io.Writer) *Builder {
	b.echo = w
	return b
}

// New is the convenience form of [Builder.New] for an in-memory-only
// Sampler measuring in the given unit:
//
//	NewBuilder().WithUnit(unit).New(label, colour)
func New(label, colour string, unit Unit) *Sampler {
	return NewBuilder().WithUnit(unit).New(label, colour)
}
