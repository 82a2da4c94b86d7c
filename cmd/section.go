package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/steelcode/goec3/internal/profile"
	"github.com/steelcode/goec3/internal/report"
)

var (
	optimalType     string
	optimalProperty string
	optimalValue    float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Hot-rolled section catalog queries",
	Long: `Query the embedded EN 10365 section catalogs (IPE, HEA, HEB).

Subcommands:
  list     - List all sections of one type
  info     - Show the properties of one section
  optimal  - Find the lightest section meeting a property requirement

Examples:
  # Show IPE300 geometry and section properties
  goec3 section info IPE300

  # Lightest IPE with a plastic modulus of at least 6.0e5 mm3
  goec3 section optimal --type IPE --property Wply --value 6.0e5`,
}

var sectionListCmd = &cobra.Command{
	Use:   "list [type]",
	Short: "List the catalog of one section type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := profile.Sections(args[0])
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("%s SECTIONS (EN 10365):\n", args[0])
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tMASS\tA\tIy\tWply")
		for _, s := range rows {
			fmt.Fprintf(w, "  %s\t%.1f kg/m\t%s\t%s\t%s\n",
				s.Name, s.MassPerMeter,
				report.FormatValue(s.A), report.FormatValue(s.Iy), report.FormatValue(s.Wply))
		}
		w.Flush()
		fmt.Println()
		return nil
	},
}

var sectionInfoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Show the properties of one section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := profile.Get(args[0])
		if err != nil {
			return err
		}
		printSection(s)
		return nil
	},
}

var sectionOptimalCmd = &cobra.Command{
	Use:   "optimal",
	Short: "Find the lightest section meeting a property requirement",
	Long: `Find the lightest section of a type whose property is at least the
required value. The value is given in the property's canonical unit
(mm2 for A, mm3 for moduli, mm4 for second moments of area).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := profile.Optimal(optimalType, optimalProperty, optimalValue)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("  Lightest %s with %s >= %g: %s (%.1f kg/m)\n",
			optimalType, optimalProperty, optimalValue, s.Name, s.MassPerMeter)
		printSection(s)
		return nil
	},
}

func printSection(s *profile.RolledISection) {
	fmt.Println()
	fmt.Printf("SECTION %s (EN 10365):\n", s.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Height (h):\t%s\n", report.FormatValue(s.H))
	fmt.Fprintf(w, "  Flange width (b):\t%s\n", report.FormatValue(s.B))
	fmt.Fprintf(w, "  Web thickness (tw):\t%s\n", report.FormatValue(s.Tw))
	fmt.Fprintf(w, "  Flange thickness (tf):\t%s\n", report.FormatValue(s.Tf))
	fmt.Fprintf(w, "  Root radius (r):\t%s\n", report.FormatValue(s.R))
	fmt.Fprintf(w, "  Mass:\t%.1f kg/m\n", s.MassPerMeter)
	fmt.Fprintf(w, "  Area (A):\t%s\n", report.FormatValue(s.A))
	fmt.Fprintf(w, "  Shear area (Avz):\t%s\n", report.FormatValue(s.Avz))
	fmt.Fprintf(w, "  Iy:\t%s\n", report.FormatValue(s.Iy))
	fmt.Fprintf(w, "  iy:\t%s\n", report.FormatValue(s.Iyr))
	fmt.Fprintf(w, "  Wel,y:\t%s\n", report.FormatValue(s.Wely))
	fmt.Fprintf(w, "  Wpl,y:\t%s\n", report.FormatValue(s.Wply))
	fmt.Fprintf(w, "  Iz:\t%s\n", report.FormatValue(s.Iz))
	fmt.Fprintf(w, "  iz:\t%s\n", report.FormatValue(s.Izr))
	fmt.Fprintf(w, "  Wel,z:\t%s\n", report.FormatValue(s.Welz))
	fmt.Fprintf(w, "  Wpl,z:\t%s\n", report.FormatValue(s.Wplz))
	w.Flush()
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionInfoCmd)
	sectionCmd.AddCommand(sectionOptimalCmd)

	sectionOptimalCmd.Flags().StringVarP(&optimalType, "type", "t", "IPE", "Section type (IPE, HEA, HEB)")
	sectionOptimalCmd.Flags().StringVarP(&optimalProperty, "property", "p", "", "Property to satisfy (A, Iy, Wply, ...) [required]")
	sectionOptimalCmd.Flags().Float64VarP(&optimalValue, "value", "v", 0, "Required property value in canonical units [required]")
	sectionOptimalCmd.MarkFlagRequired("property")
	sectionOptimalCmd.MarkFlagRequired("value")
}
