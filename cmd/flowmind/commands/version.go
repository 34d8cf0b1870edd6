package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/guncekal/text-to-processflow/cmd"
	"github.com/guncekal/text-to-processflow/internal/dsl"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and supported DSL version of flowmind.`,
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), "flowmind version %s\n", cmd.Version)
		fmt.Fprintf(c.OutOrStdout(), "  commit: %s\n", cmd.Commit)
		fmt.Fprintf(c.OutOrStdout(), "  built:  %s\n", cmd.Date)
		fmt.Fprintf(c.OutOrStdout(), "  go:     %s\n", runtime.Version())
		fmt.Fprintf(c.OutOrStdout(), "  dsl:    %s\n", dsl.SchemaVersion)
	},
}
