package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegii/go-lapse/lapse"
)

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "line_dataset_first12_251018150405.js", lapse.Dataset{
		Series:    []lapse.Series{{Name: "first", Color: "#111111", Data: []float64{1, 2}}},
		TimeUnits: "ms",
	})
	writeDataset(t, dir, "line_dataset_second34_251018150405.js", lapse.Dataset{
		Series:    []lapse.Series{{Name: "second", Color: "#222222", Data: []float64{3}}},
		TimeUnits: "secs",
	})
	// not a dataset file, must not be listed
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, list(&buf, dir))

	out := buf.String()
	assert.Contains(t, out, "2 dataset file(s)")
	assert.Contains(t, out, "line_dataset_first12_251018150405.js")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "notes.txt")
}

func TestListMarksInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "line_dataset_bad99_251018150405.js"), []byte("not json"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, list(&buf, dir))

	out := buf.String()
	assert.Contains(t, out, "line_dataset_bad99_251018150405.js")
	assert.Contains(t, out, "(invalid)")
}

func TestListEmptyDir(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, list(&buf, t.TempDir()))
	assert.Contains(t, buf.String(), "0 dataset file(s)")
}
