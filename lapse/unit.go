package lapse

// Unit describes the granularity a [Sampler] measures in: a display
// label written to the dataset and console echoes, and the length of
// one unit in seconds. The built-in descriptors cover the usual clock
// granularities; anything else (ticks, frames, beats) is a
// [CustomUnit] with the same two pieces of information.
type Unit interface {
	Label() string
	// Ratio returns the duration of one unit in seconds, e.g. 1e-3
	// for milliseconds or 3600 for hours. Must be > 0.
	Ratio() float64
}

type (
	Nanoseconds  struct{}
	Microseconds struct{}
	Milliseconds struct{}
	Seconds      struct{}
	Minutes      struct{}
	Hours        struct{}
)

func (Nanoseconds) Label() string  { return "ns" }
func (Nanoseconds) Ratio() float64 { return 1e-9 }

func (Microseconds) Label() string  { return "μs" }
func (Microseconds) Ratio() float64 { return 1e-6 }

func (Milliseconds) Label() string  { return "ms" }
func (Milliseconds) Ratio() float64 { return 1e-3 }

func (Seconds) Label() string  { return "secs" }
func (Seconds) Ratio() float64 { return 1 }

func (Minutes) Label() string  { return "mins" }
func (Minutes) Ratio() float64 { return 60 }

func (Hours) Label() string  { return "hours" }
func (Hours) Ratio() float64 { return 3600 }

// CustomUnit is a user-defined unit descriptor.
//
//	frame := lapse.CustomUnit{Name: "frames", Seconds: 1.0 / 60}
type CustomUnit struct {
	Name string
	// Seconds is the duration of one unit in seconds.
	Seconds float64
}

func (u CustomUnit) Label() string  { return u.Name }
func (u CustomUnit) Ratio() float64 { return u.Seconds }
