package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cppstyle/internal/flags"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cppstyle",
	Short: "Check C++ sources against a house style profile",
	Long: `cppstyle checks C++ sources for naming and include-order conformance
against a selectable style profile.

cppstyle is check-only: it reports violations, does not rewrite code, and
does not moralize.

Examples:
	# Show available commands and global flags
	cppstyle --help

	# Check a source tree with the default profile
	cppstyle check src/

	# List rules and profiles
	cppstyle rules list
	cppstyle profiles list

	# Print build info
	cppstyle version

Output:
	By default, commands write human-readable output to stdout.
	Some commands support structured output via emitter flags (see each command's --help).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose logging (token resolution, API calls, full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
