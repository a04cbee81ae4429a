package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/onegii/go-lapse/lapse"
)

var inspectData bool

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Validate dataset files and summarize their series",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := inspect(cmd.OutOrStdout(), path, inspectData); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectData, "data", false, "also print the raw sample values")
}

// inspect validates one dataset file and writes a per-series summary
// table to w. With withData set the raw samples are dumped after the
// table.
func inspect(w io.Writer, path string, withData bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	// Cheap structural probes before a full decode, so a clearer error
	// than the decoder's is reported for files that are not datasets.
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%s: malformed dataset (invalid JSON)", path)
	}
	if !gjson.GetBytes(raw, "dataSet").IsArray() {
		return fmt.Errorf("%s: not a dataset (missing dataSet array)", path)
	}

	ds, err := lapse.DecodeDataset(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	headerFmt := color.New(color.FgYellow, color.Underline).SprintfFunc()

	tbl := table.New(
		"series",
		"color",
		"samples",
		"total",
		"mean",
	)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, sr := range ds.Series {
		var total float64
		for _, v := range sr.Data {
			total += v
		}
		mean := 0.0
		if len(sr.Data) > 0 {
			mean = total / float64(len(sr.Data))
		}
		tbl.AddRow(
			sr.Name,
			sr.Color,
			len(sr.Data),
			math.Floor(total*1000)/1000,
			math.Floor(mean*1000)/1000,
		)
	}

	title := color.New(color.FgYellow).Add(color.Bold)
	title.Fprintf(w, "\n%s (%s)\n", filepath.Base(path), ds.TimeUnits)
	tbl.Print()

	if withData {
		for _, sr := range ds.Series {
			fmt.Fprintf(w, "%s: %v\n", sr.Name, sr.Data)
		}
	}

	return nil
}
