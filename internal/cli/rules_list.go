package cli

import (
	"fmt"
	"io"

	"cppstyle/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesListQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list rules",
	Long: `Inspect the conformance rules compiled into this build.

Rules are evaluated against every checked file (see "cppstyle check --help").
Use "rules show" to see a rule's options before tuning it with --set.

Examples:
  # List all available rules
  cppstyle rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rules",
	Long: `List every registered rule, sorted by ID.

Examples:
  cppstyle rules list
  cppstyle rules list --quiet
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range rules.List() {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.ID())
				continue
			}
			printRule(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Show details of a specific rule",
	Long: `Show a single rule, including any configurable options.

Examples:
  cppstyle rules show include-group-order
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matched, err := rules.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(matched) == 0 {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printRule(cmd.OutOrStdout(), matched[0])
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s\n", r.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, r.Title())
	fmt.Fprintln(w, r.Description())

	cr, ok := r.(rules.ConfigurableRule)
	if ok && len(cr.Options()) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		for _, opt := range cr.Options() {
			def := opt.Default
			if def == "" {
				def = `""`
			}
			fmt.Fprintf(w, "  %s\n", opt.Name)
			fmt.Fprintf(w, "    Description: %s\n", opt.Description)
			fmt.Fprintf(w, "    Default:     %s\n", def)
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
	rulesCmd.AddCommand(rulesShowCmd)
}
