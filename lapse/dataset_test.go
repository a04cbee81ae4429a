package lapse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDatasetLayout(t *testing.T) {
	ds := Dataset{
		Series:    []Series{{Name: "job", Color: "#00ff00", Data: []float64{1.5, 2.25, 3.0}}},
		TimeUnits: "ms",
	}

	want := "{\"dataSet\" : [\n" +
		"{\"name\": \"job\", \"color\": \"#00ff00\", \"data\":[1.5, 2.25, 3]}\n" +
		"], \"timeUnits\": \"ms\"}\n"
	assert.Equal(t, want, string(EncodeDataset(ds)))
}

func TestEncodeDatasetNoSamples(t *testing.T) {
	ds := Dataset{
		Series:    []Series{{Name: "job", Color: "#00ff00"}},
		TimeUnits: "μs",
	}

	want := "{\"dataSet\" : [\n" +
		"{\"name\": \"job\", \"color\": \"#00ff00\", \"data\":[]}\n" +
		"], \"timeUnits\": \"μs\"}\n"
	assert.Equal(t, want, string(EncodeDataset(ds)))
}

func TestDatasetRoundTrip(t *testing.T) {
	in := Dataset{
		Series:    []Series{{Name: "job", Color: "#00ff00", Data: []float64{1.5, 2.25, 3.0}}},
		TimeUnits: "ms",
	}

	out, err := DecodeDataset(EncodeDataset(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeDatasetMultiSeries(t *testing.T) {
	raw := `{"dataSet" : [
{"name": "a", "color": "#111111", "data":[1]},
{"name": "b", "color": "#222222", "data":[2, 3]}
], "timeUnits": "secs"}`

	ds, err := DecodeDataset([]byte(raw))
	require.NoError(t, err)
	require.Len(t, ds.Series, 2)
	assert.Equal(t, "b", ds.Series[1].Name)
	assert.Equal(t, []float64{2, 3}, ds.Series[1].Data)
	assert.Equal(t, "secs", ds.TimeUnits)
}

func TestDecodeDatasetMalformed(t *testing.T) {
	_, err := DecodeDataset([]byte(`{"dataSet" : [`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decoding dataset")
}

func TestReadDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line_dataset_job42_251018150405.js")

	in := Dataset{
		Series:    []Series{{Name: "job", Color: "#00ff00", Data: []float64{0.5}}},
		TimeUnits: "hours",
	}
	require.NoError(t, os.WriteFile(path, EncodeDataset(in), 0o644))

	out, err := ReadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = ReadDataset(filepath.Join(dir, "absent.js"))
	assert.Error(t, err)
}
