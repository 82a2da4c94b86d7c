package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/report"
	"github.com/steelcode/goec3/internal/stepper"
)

var (
	checkSection string
	checkGrade   string
	checkForce   float64
	checkMoment  float64
	checkLength  float64
	checkAxis    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a steel member per EN 1993-1-1",
	Long: `Run a member verification and print the full calculation trace.

Each check resolves the section from the EN 10365 catalogs and the steel
grade from EN 10025-2, executes the governing clause step by step and
reports the utilization against the design resistance.

Subcommands:
  tension      - Tension resistance, §6.2.3
  compression  - Compression resistance, §6.2.4
  bending      - Major axis bending resistance, §6.2.5
  buckling     - Flexural buckling, §6.3.1
  classify     - Cross-section classification, Tab. 5.2

Examples:
  # IPE270 in S235 under 800 kN tension
  goec3 check tension --section IPE270 --grade S235 --force 800

  # Buckling about the minor axis with the German annex applied
  goec3 check buckling --section IPE300 --grade S235 --force 400 \
      --length 4 --axis z --annex DE`,
}

func renderCheck(title string, res *stepper.Result, tr *stepper.Trace, err error) error {
	if err != nil {
		if tr != nil {
			report.RenderFailure(os.Stdout, tr)
		}
		return err
	}
	printCheckHeader(title)
	report.Render(os.Stdout, res)
	return nil
}

func printCheckHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
}

func memberFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&checkSection, "section", "s", "", "Section name, e.g. IPE270 [required]")
	cmd.Flags().StringVarP(&checkGrade, "grade", "g", "S235", "Steel grade per EN 10025-2 (S235, S275, S355, S450)")
	cmd.MarkFlagRequired("section")
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
