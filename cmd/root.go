package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/annex"
	"github.com/steelcode/goec3/internal/version"
)

var (
	annexFile string
	annexID   string

	// registry holds the loaded national annex sets; populated before any
	// subcommand runs.
	registry *annex.Registry
)

var rootCmd = &cobra.Command{
	Use:   "goec3",
	Short: "Eurocode 3 Steel Member Verification Tool",
	Long: `goec3 - Go Eurocode 3 Steel Member Verifier

A CLI tool for the verification of hot-rolled steel members
based on EN 1993-1-1 (Eurocode 3, Part 1-1).

This tool helps structural engineers perform:
  - Cross-section classification (class 1 to 4)
  - Tension, compression and bending resistance checks
  - Flexural buckling checks for compression members
  - Section catalog queries and lightest-section search

All calculations follow EN 1993-1-1 provisions; nationally
determined parameters can be switched per national annex.`,
	PersistentPreRunE: loadRegistry,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goec3 v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Eurocode 3 Steel Member Verifier                     ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of hot-rolled steel members")
		fmt.Println("  based on EN 1993-1-1 (Eurocode 3, Part 1-1).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Cross-section classification per Tab. 5.2")
		fmt.Println("    • Tension, compression and bending resistance checks")
		fmt.Println("    • Flexural buckling verification per §6.3.1")
		fmt.Println("    • IPE / HEA / HEB catalogs per EN 10365")
		fmt.Println("    • National annex parameter overrides")
		fmt.Println()
		fmt.Println("  Use 'goec3 --help' to see available commands.")
		fmt.Println()
	},
}

// loadRegistry builds the annex registry from the shipped sets plus an
// optional YAML file, then applies the requested jurisdiction.
func loadRegistry(cmd *cobra.Command, args []string) error {
	registry = annex.Builtin()
	if annexFile != "" {
		if err := registry.LoadFile(annexFile); err != nil {
			return err
		}
	}
	if annexID != "" {
		if err := registry.Select(annexID); err != nil {
			return err
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&annexFile, "annex-file", "", "YAML file with national annex parameter sets")
	rootCmd.PersistentFlags().StringVar(&annexID, "annex", "", "national annex jurisdiction to apply (e.g. DE)")
}
