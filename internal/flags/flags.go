package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants helps avoid drift between Cobra flag
// wiring and other code paths that reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Profile.Name, flags.FlagProfile, "", "...")
//	arg := "--" + flags.FlagProfile
const (
	// Targeting
	FlagGitHubRepo = "github-repo"
	FlagRef        = "ref"
	FlagToken      = "token"
	FlagInclude    = "include"
	FlagExclude    = "exclude"
	FlagMaxFiles   = "max-files"
	FlagDryRun     = "dry-run"

	// Profile
	FlagProfile     = "profile"
	FlagProfileFile = "profile-file"

	// Rules
	FlagRules = "rules"
	FlagSet   = "set"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagReport              = "report"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagConcurrency = "concurrency"
	FlagTimeout     = "timeout"
	FlagFailFast    = "fail-fast"
	FlagVerbose     = "verbose"
)
