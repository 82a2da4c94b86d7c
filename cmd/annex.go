package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var annexCmd = &cobra.Command{
	Use:   "annex",
	Short: "Inspect national annex parameter sets",
	Long: `List and inspect the national annex parameter sets known to goec3.

Shipped sets can be extended or overridden with --annex-file. A set is
applied to calculations with the global --annex flag.

Examples:
  # List all known jurisdictions
  goec3 annex list

  # Show the overrides of the German annex
  goec3 annex show DE

  # Merge a custom file and show its set
  goec3 annex show FR --annex-file my-annexes.yaml`,
}

var annexListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered national annex jurisdictions",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("REGISTERED NATIONAL ANNEXES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, id := range registry.Jurisdictions() {
			marker := " "
			if id == registry.Active() {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, id)
		}
		if registry.Active() == "" {
			fmt.Println()
			fmt.Println("  No annex selected; base standard values apply.")
		}
		fmt.Println()
	},
}

var annexShowCmd = &cobra.Command{
	Use:   "show [jurisdiction]",
	Short: "Show the parameter overrides of one jurisdiction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := registry.Parameters(args[0])
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Println()
		fmt.Printf("NATIONAL ANNEX %s:\n", args[0])
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s\t%v\n", k, params[k].Value())
		}
		w.Flush()
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(annexCmd)
	annexCmd.AddCommand(annexListCmd)
	annexCmd.AddCommand(annexShowCmd)
}
