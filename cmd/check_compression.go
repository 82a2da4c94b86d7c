package cmd

import (
	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/check"
	"github.com/steelcode/goec3/internal/units"
)

var checkCompressionCmd = &cobra.Command{
	Use:   "compression",
	Short: "Verify compression resistance per EN 1993-1-1 §6.2.4",
	Long: `Verify the design resistance to uniform compression,
N_c,Rd = A f_y / γ_M0, for class 1 to 3 cross-sections.

The section is classified under pure compression first; class 4 sections
fail the resistance step.

Example:
  goec3 check compression --section HEB200 --grade S355 --force 1500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, tr, err := check.Compression(checkSection, checkGrade, units.KiloNewtons(checkForce), registry)
		return renderCheck("COMPRESSION CHECK - EN 1993-1-1 §6.2.4", res, tr, err)
	},
}

func init() {
	checkCmd.AddCommand(checkCompressionCmd)
	memberFlags(checkCompressionCmd)
	checkCompressionCmd.Flags().Float64VarP(&checkForce, "force", "f", 0, "Design axial force N_Ed (kN) [required]")
	checkCompressionCmd.MarkFlagRequired("force")
}
