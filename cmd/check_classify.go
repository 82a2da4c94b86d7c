package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/check"
	"github.com/steelcode/goec3/internal/report"
	"github.com/steelcode/goec3/internal/units"
)

var checkClassifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a cross-section per EN 1993-1-1 Tab. 5.2",
	Long: `Classify a rolled I-section for the given design loads. With no
loads the section is classified under pure compression.

Compression is positive for the axial force.

Examples:
  # Pure compression classification
  goec3 check classify --section IPE270 --grade S235

  # Under combined axial force and major axis bending
  goec3 check classify --section IPE270 --grade S355 --force 468 --moment 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		class, tr, err := check.ClassifySection(checkSection, checkGrade,
			units.KiloNewtons(checkForce), units.KiloNewtonMeters(checkMoment))
		if err != nil {
			if tr != nil {
				report.RenderFailure(os.Stdout, tr)
			}
			return err
		}
		printCheckHeader("SECTION CLASSIFICATION - EN 1993-1-1 Tab. 5.2")
		report.RenderClassification(os.Stdout, class, tr)
		return nil
	},
}

func init() {
	checkCmd.AddCommand(checkClassifyCmd)
	memberFlags(checkClassifyCmd)
	checkClassifyCmd.Flags().Float64VarP(&checkForce, "force", "f", 0, "Design axial force N_Ed (kN), compression positive")
	checkClassifyCmd.Flags().Float64VarP(&checkMoment, "moment", "m", 0, "Design moment M_Ed,y (kNm)")
}
