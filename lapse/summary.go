package lapse

import (
	"io"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// summary holds the derived figures for one Sampler row. Only simple
// arithmetic: sample count, lifetime total and mean over the recorded
// samples.
type summary struct {
	label string
	unit  string
	sink  string
	n     int
	total float64
	mean  float64
}

func summarize(s *Sampler) summary {
	sm := summary{
		label: s.label,
		unit:  s.unit.Label(),
		sink:  s.SinkPath(),
		n:     len(s.samples),
		total: s.total,
	}
	if sm.n > 0 {
		var sum float64
		for _, v := range s.samples {
			sum += v
		}
		sm.mean = sum / float64(sm.n)
	}
	return sm
}

// PrintSummary prints a table with one row per registered Sampler:
// label, unit, sample count, lifetime total and mean sample value.
// Like [FlushAll] it reads Sampler state, so call it only when the
// instrumented work is quiescent, and before FlushAll (a flushed
// Sampler reports zero).
func PrintSummary() {
	WriteSummary(os.Stdout)
}

// WriteSummary is [PrintSummary] writing to w.
func WriteSummary(w io.Writer) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New(
		"sampler",
		"unit",
		"samples",
		"total",
		"mean",
		"sink",
	)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, s := range snapshot() {
		sm := summarize(s)
		tbl.AddRow(
			sm.label,
			sm.unit,
			sm.n,
			math.Floor(sm.total*1000)/1000,
			math.Floor(sm.mean*1000)/1000,
			sm.sink,
		)
	}

	title := color.New(color.FgGreen).Add(color.Bold)
	title.Fprintf(w, "\n⏱ Samplers\n")
	tbl.Print()
}
