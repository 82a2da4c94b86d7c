package cmd

import (
	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/check"
	"github.com/steelcode/goec3/internal/units"
)

var checkBendingCmd = &cobra.Command{
	Use:   "bending",
	Short: "Verify major axis bending resistance per EN 1993-1-1 §6.2.5",
	Long: `Verify the design bending resistance about the major axis,
M_c,Rd = W f_y / γ_M0.

The section modulus follows the classification: plastic modulus for
class 1 and 2, elastic modulus for class 3.

Example:
  goec3 check bending --section IPE270 --grade S235 --moment 100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, tr, err := check.Bending(checkSection, checkGrade, units.KiloNewtonMeters(checkMoment), registry)
		return renderCheck("BENDING CHECK - EN 1993-1-1 §6.2.5", res, tr, err)
	},
}

func init() {
	checkCmd.AddCommand(checkBendingCmd)
	memberFlags(checkBendingCmd)
	checkBendingCmd.Flags().Float64VarP(&checkMoment, "moment", "m", 0, "Design moment M_Ed,y (kNm) [required]")
	checkBendingCmd.MarkFlagRequired("moment")
}
