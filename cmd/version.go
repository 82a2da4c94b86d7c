package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goec3",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goec3 v%s\n", version.Version)
		fmt.Println("Eurocode 3 Steel Member Verification Tool")
		fmt.Println("Based on EN 1993-1-1 (Eurocode 3: Design of steel structures)")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
