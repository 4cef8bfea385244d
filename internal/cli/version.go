package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, commit, date := BuildInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "cppstyle %s\n", v)
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
