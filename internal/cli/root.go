package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "lapse",
	Short:   "Inspect line-chart datasets produced by the go-lapse instrument",
	Version: version,
	Long: `Lapse is the console companion of the go-lapse sampling instrument.
It reads the line_dataset_*.js files an instrumented program writes and
summarizes or dumps their series without the graphical viewer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, print help
		return cmd.Help()
	},
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main() and only
// needs to happen once.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
}
