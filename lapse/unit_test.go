package lapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinUnits(t *testing.T) {
	tests := []struct {
		unit  Unit
		label string
		ratio float64
	}{
		{Nanoseconds{}, "ns", 1e-9},
		{Microseconds{}, "μs", 1e-6},
		{Milliseconds{}, "ms", 1e-3},
		{Seconds{}, "secs", 1},
		{Minutes{}, "mins", 60},
		{Hours{}, "hours", 3600},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.label, tt.unit.Label())
			assert.Equal(t, tt.ratio, tt.unit.Ratio())
		})
	}
}

func TestCustomUnit(t *testing.T) {
	frames := CustomUnit{Name: "frames", Seconds: 1.0 / 60}
	assert.Equal(t, "frames", frames.Label())
	assert.InDelta(t, 0.0166667, frames.Ratio(), 1e-6)
}

func TestBuilderRejectsInvalidUnit(t *testing.T) {
	b := NewBuilder().WithUnit(Seconds{})
	b.WithUnit(CustomUnit{Name: "broken", Seconds: 0})

	s := b.New("job", "#00ff00")
	assert.Equal(t, "secs", s.Unit().Label(), "invalid ratio keeps the previous unit")
}
