package cmd

import (
	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/check"
	"github.com/steelcode/goec3/internal/units"
)

var checkTensionCmd = &cobra.Command{
	Use:   "tension",
	Short: "Verify tension resistance per EN 1993-1-1 §6.2.3",
	Long: `Verify the design tension resistance of the gross cross-section,
N_t,Rd = A f_y / γ_M0.

Example:
  goec3 check tension --section IPE270 --grade S235 --force 800`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, tr, err := check.Tension(checkSection, checkGrade, units.KiloNewtons(checkForce), registry)
		return renderCheck("TENSION CHECK - EN 1993-1-1 §6.2.3", res, tr, err)
	},
}

func init() {
	checkCmd.AddCommand(checkTensionCmd)
	memberFlags(checkTensionCmd)
	checkTensionCmd.Flags().Float64VarP(&checkForce, "force", "f", 0, "Design axial force N_Ed (kN) [required]")
	checkTensionCmd.MarkFlagRequired("force")
}
