package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cppstyle/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List and inspect style profiles",
	Long: `Inspect the built-in style profiles.

A profile is one consistent set of naming and ordering expectations. The
shipped profiles disagree on purpose: each matches one variant of the house
style guide, and the check's verdicts only make sense relative to the
selected profile.

Examples:
  # List all built-in profiles
  cppstyle profiles list

  # Show one profile in detail
  cppstyle profiles show dri
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in style profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range profile.BuiltinNames() {
			p, err := profile.Builtin(name)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show details of a built-in style profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Builtin(args[0])
		if err != nil {
			return err
		}
		printProfile(cmd.OutOrStdout(), p)
		return nil
	},
}

func printProfile(w io.Writer, p *profile.Profile) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	name := p.Name
	if name == profile.DefaultName {
		name += " (default)"
	}
	bold.Fprintf(w, "PROFILE: %s\n", name)
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Include groups:          %d\n", p.IncludeGroups)
	fmt.Fprintf(w, "Member variable marker:  %s\n", p.MemberMarker)
	fmt.Fprintf(w, "Public members allowed:  %v\n", p.AllowPublicMembers)
	fmt.Fprintf(w, "Lexicographic includes:  %v\n", p.LexicographicIncludes)
	fmt.Fprintf(w, "Free function casing:    %s\n", p.FreeFunctions)
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}
