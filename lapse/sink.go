package lapse

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/slog"
)

// sink is the dataset file a Sampler writes on Flush. The file is
// created up front so the name is reserved, but nothing is written
// until flush time; the samples stay buffered in the Sampler.
type sink struct {
	path string
	file *os.File
}

// openSink creates <dir>/line_dataset_<label><NN>_<YYMMDDHHMMSS>.js,
// NN a 2-digit random disambiguator guarding against same-second
// collisions between instruments, timestamp in UTC. On failure it logs
// a warning and returns nil: the caller degrades to in-memory mode.
func openSink(dir, label string, rng *rand.Rand, now time.Time) *sink {
	name := fmt.Sprintf("line_dataset_%s%d_%s.js",
		label, 10+rng.Intn(90), now.UTC().Format("060102150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		logger.Warn("cannot open dataset file, sampling in memory only",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil
	}

	return &sink{path: path, file: f}
}

// write serializes the dataset in one bulk write and closes the file.
func (k *sink) write(ds Dataset) {
	if _, err := k.file.Write(EncodeDataset(ds)); err != nil {
		logger.Warn("writing dataset file failed",
			slog.String("path", k.path),
			slog.String("error", err.Error()))
	}
	if err := k.file.Close(); err != nil {
		logger.Warn("closing dataset file failed",
			slog.String("path", k.path),
			slog.String("error", err.Error()))
	}
}
