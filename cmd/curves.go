package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/report"
)

var curvesOutput string

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Export the flexural buckling curve chart",
	Long: `Plot the reduction factor χ over the relative slenderness for the
five imperfection curves of EN 1993-1-1 Tab. 6.1 and save the chart.

The image format follows the file extension (.png, .svg, .pdf, ...).

Example:
  goec3 curves --output buckling-curves.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := report.ExportBucklingCurves(curvesOutput); err != nil {
			return err
		}
		fmt.Printf("Buckling curve chart written to %s\n", curvesOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(curvesCmd)
	curvesCmd.Flags().StringVarP(&curvesOutput, "output", "o", "buckling-curves.png", "Output image file")
}
