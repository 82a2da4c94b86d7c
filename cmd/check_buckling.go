package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/check"
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/units"
)

var checkBucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "Verify flexural buckling per EN 1993-1-1 §6.3.1",
	Long: `Verify the design buckling resistance of a compression member,
N_b,Rd = χ A f_y / γ_M1, with the buckling curve selected per Tab. 6.2.

The buckling length is given in meters and applies to the chosen axis.

Examples:
  # Major axis, 6 m buckling length
  goec3 check buckling --section IPE300 --grade S235 --force 800 --length 6

  # Minor axis with the German annex's gamma_M1
  goec3 check buckling --section IPE300 --grade S235 --force 400 \
      --length 4 --axis z --annex DE`,
	RunE: func(cmd *cobra.Command, args []string) error {
		axis := ec3.Axis(checkAxis)
		if axis != ec3.AxisY && axis != ec3.AxisZ {
			return fmt.Errorf("invalid axis %q (use y or z)", checkAxis)
		}
		res, tr, err := check.FlexuralBuckling(checkSection, checkGrade,
			units.KiloNewtons(checkForce), units.Meters(checkLength), axis, registry)
		return renderCheck("FLEXURAL BUCKLING CHECK - EN 1993-1-1 §6.3.1", res, tr, err)
	},
}

func init() {
	checkCmd.AddCommand(checkBucklingCmd)
	memberFlags(checkBucklingCmd)
	checkBucklingCmd.Flags().Float64VarP(&checkForce, "force", "f", 0, "Design axial force N_Ed (kN) [required]")
	checkBucklingCmd.Flags().Float64VarP(&checkLength, "length", "l", 0, "Buckling length L_cr (m) [required]")
	checkBucklingCmd.Flags().StringVar(&checkAxis, "axis", "y", "Buckling axis (y or z)")
	checkBucklingCmd.MarkFlagRequired("force")
	checkBucklingCmd.MarkFlagRequired("length")
}
