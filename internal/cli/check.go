package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cppstyle/internal/config"
	"cppstyle/internal/engine"
	"cppstyle/internal/flags"
)

var cfg = config.New()

const checkHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}Usage:
  {{.UseLine}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}Environment:
	Local checks need no credentials. For --github-repo, cppstyle authenticates
	to GitHub using an access token.

	Sources (in order):
	1) --token flag
	2) GITHUB_TOKEN environment variable
	3) GitHub CLI (gh) authentication via gh auth token (if gh is installed and logged in)

	Public repositories work without a token, at lower API rate limits.

  Examples:
    # macOS/Linux
    export GITHUB_TOKEN="<your_token>"
    cppstyle check --github-repo my-org/engine

    # GitHub CLI auth
    gh auth login
    cppstyle check --github-repo my-org/engine

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasHelpSubCommands}}Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check C++ files against a style profile",
	Long: `Check C++ files for naming and include-order conformance.

Positional arguments are local files, directories (walked recursively), or
glob patterns. Alternatively, --github-repo checks a remote repository
without cloning it.

Profiles:
	The active style profile decides what conforms: member-variable underscore
	position, number of include groups, public-member allowance, and whether
	intra-group include order must be lexicographic. Select a built-in profile
	with --profile (legacy, vc-hpp, dri) or load one from YAML with
	--profile-file. See "cppstyle profiles list".

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --report: write a Markdown conformance report to a file
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events with a
	"type" field (run.started, file.started, rule.result, file.finished, run.finished).
	Rule results are represented as an Event with type "rule.result" and a nested
	"result" object.

Exit codes:
	0 = clean run, no violations
	1 = violations detected
	2 = partial failure (some files could not be read or parsed)
	3 = fatal error (check did not run)

Examples:
  # Check a tree with the default profile
  cppstyle check src/

  # Strict profile, fail on unsorted includes
  cppstyle check src/ --profile vc-hpp

  # Check a GitHub repository at a tag
  cppstyle check --github-repo my-org/engine --ref v2.1.0

	# AI Agent: stream machine-readable events to stdout
	cppstyle check src/ --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		cfg.Targeting.Paths = args

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(3)
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Runtime.Timeout)
		defer cancel()

		eng := engine.NewEngine()
		code := eng.Run(ctx, cfg)
		cancel()
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetHelpTemplate(checkHelpTemplate)

	// Targeting
	checkCmd.Flags().StringVar(&cfg.Targeting.GitHubRepo, flags.FlagGitHubRepo, "", "Check a GitHub repository as OWNER/REPO instead of local paths")
	checkCmd.Flags().StringVar(&cfg.Targeting.Ref, flags.FlagRef, "", "Git ref to check with --github-repo (default: default branch)")
	checkCmd.Flags().StringVar(&cfg.Targeting.Token, flags.FlagToken, "", "GitHub access token (default: GITHUB_TOKEN, then gh CLI)")
	checkCmd.Flags().StringSliceVar(&cfg.Targeting.Include, flags.FlagInclude, nil, "Include pattern(s) (repeatable; comma-separated accepted). Doublestar style; bare patterns also match basenames")
	checkCmd.Flags().StringSliceVar(&cfg.Targeting.Exclude, flags.FlagExclude, nil, "Exclude pattern(s) (repeatable; comma-separated accepted). Same matching rules as --include")
	checkCmd.Flags().IntVar(&cfg.Targeting.MaxFiles, flags.FlagMaxFiles, 0, "Maximum number of files to check (0 = unlimited)")
	checkCmd.Flags().BoolVar(&cfg.Targeting.DryRun, flags.FlagDryRun, false, "Resolve files and print the list without checking")

	// Profile
	checkCmd.Flags().StringVar(&cfg.Profile.Name, flags.FlagProfile, "", "Built-in style profile: legacy|vc-hpp|dri (default: vc-hpp)")
	checkCmd.Flags().StringVar(&cfg.Profile.File, flags.FlagProfileFile, "", "Load the style profile from a YAML file")

	// Rules
	checkCmd.Flags().StringVar(&cfg.Rules.Selector, flags.FlagRules, "", "Comma-separated rule IDs to run (empty = all rules)")
	checkCmd.Flags().StringSliceVar(&cfg.Rules.Set, flags.FlagSet, nil, "Per-rule options as ruleID.option=value (repeatable; comma-separated accepted)")

	// Output
	checkCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	checkCmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (PASS, FAIL, SKIPPED, ERROR). Comma-separated.")
	checkCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown conformance report to this path")
	checkCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	checkCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	checkCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	checkCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")

	// Runtime
	checkCmd.Flags().IntVar(&cfg.Runtime.Concurrency, flags.FlagConcurrency, cfg.Runtime.Concurrency, "Concurrent workers (default: 4)")
	checkCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Global timeout (default: 10m)")
	checkCmd.Flags().BoolVar(&cfg.Runtime.FailFast, flags.FlagFailFast, false, "Stop at the first file with violations (default: false)")
}
