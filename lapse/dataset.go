package lapse

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

// Dataset is the document the line-chart visualizer consumes. One
// Sampler writes a single-series dataset, but the format (and the
// decoder) carries any number of series.
type Dataset struct {
	Series    []Series `json:"dataSet"`
	TimeUnits string   `json:"timeUnits"`
}

// Series is one named, coloured sequence of samples in chronological
// recording order.
type Series struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Data  []float64 `json:"data"`
}

// EncodeDataset renders ds in the exact text layout the visualizer
// expects:
//
//	{"dataSet" : [
//	{"name": "decode", "color": "#1f77b4", "data":[1.5, 2.25, 3]}
//	], "timeUnits": "ms"}
//
// The output is valid JSON; the layout is fixed rather than delegated
// to a marshaler so existing consumers of the format keep working
// byte for byte.
func EncodeDataset(ds Dataset) []byte {
	var b bytes.Buffer

	b.WriteString("{\"dataSet\" : [\n")
	for i, sr := range ds.Series {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "{\"name\": %q, \"color\": %q, \"data\":[", sr.Name, sr.Color)
		for j, v := range sr.Data {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		b.WriteString("]}\n")
	}
	fmt.Fprintf(&b, "], \"timeUnits\": %q}\n", ds.TimeUnits)

	return b.Bytes()
}

// DecodeDataset parses a serialized dataset.
func DecodeDataset(data []byte) (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decoding dataset: %w", err)
	}
	return ds, nil
}

// ReadDataset loads and parses the dataset file at path.
func ReadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return DecodeDataset(data)
}
