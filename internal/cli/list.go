package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var listCmd = &cobra.Command{
	Use:   "list [DIR]",
	Short: "List the dataset files in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return list(cmd.OutOrStdout(), dir)
	},
}

// list tabulates every line_dataset_*.js file under dir. Files that do
// not parse are still listed, marked invalid, so stray files surface
// instead of being skipped silently.
func list(w io.Writer, dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "line_dataset_*.js"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	headerFmt := color.New(color.FgYellow, color.Underline).SprintfFunc()

	tbl := table.New(
		"file",
		"series",
		"units",
		"samples",
	)
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if !gjson.ValidBytes(raw) || !gjson.GetBytes(raw, "dataSet").IsArray() {
			tbl.AddRow(filepath.Base(path), "(invalid)", "", "")
			continue
		}

		tbl.AddRow(
			filepath.Base(path),
			gjson.GetBytes(raw, "dataSet.0.name").String(),
			gjson.GetBytes(raw, "timeUnits").String(),
			gjson.GetBytes(raw, "dataSet.0.data.#").Int(),
		)
	}

	title := color.New(color.FgYellow).Add(color.Bold)
	title.Fprintf(w, "\n%s: %d dataset file(s)\n", dir, len(matches))
	tbl.Print()

	return nil
}
