// Package report renders verification traces for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

const rule = "───────────────────────────────────────────────────────────────"

// Render writes the full step table, verdict box and utilization bar of a
// finalized verification.
func Render(w io.Writer, res *stepper.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "VERIFICATION TRACE:")
	fmt.Fprintln(w, rule)
	WriteSteps(w, res.Trace.Steps())
	fmt.Fprintln(w)

	verdict := "PASS"
	if res.Verdict == stepper.Fail {
		verdict = "FAIL"
	}
	fmt.Fprintf(w, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(w, "  ║  VERDICT: %s   η = %.4g ≤ %.2f\n", verdict, res.Utilization, res.Threshold)
	fmt.Fprintf(w, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s  %.1f%% of limit %.2f\n", UtilizationBar(res.Utilization, 20), res.Utilization*100, res.Threshold)
	fmt.Fprintln(w)
}

// RenderFailure writes the step table of a failed trace and points at the
// step that broke it.
func RenderFailure(w io.Writer, tr *stepper.Trace) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "VERIFICATION TRACE (failed):")
	fmt.Fprintln(w, rule)
	WriteSteps(w, tr.Steps())
	fmt.Fprintln(w)
	if s, ok := tr.FailedStep(); ok {
		fmt.Fprintf(w, "  ✗ step %q failed: %v\n", s.Label, s.Err)
		fmt.Fprintln(w)
	}
}

// RenderClassification writes the classification substeps and the resulting
// section class.
func RenderClassification(w io.Writer, class int, tr *stepper.Trace) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CLASSIFICATION:")
	fmt.Fprintln(w, rule)
	WriteSteps(w, tr.Steps())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  ╔═════════════════════════════════════════╗\n")
	fmt.Fprintf(w, "  ║  SECTION CLASS: %d\n", class)
	fmt.Fprintf(w, "  ╚═════════════════════════════════════════╝\n")
	fmt.Fprintln(w)
}

// WriteSteps writes one aligned row per step; substeps are indented under
// their group.
func WriteSteps(w io.Writer, steps []stepper.Step) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  STEP\tFORMULA\tINPUTS\tOUTPUT")
	for _, s := range steps {
		writeStep(tw, s, "  ")
	}
	tw.Flush()
}

func writeStep(tw *tabwriter.Writer, s stepper.Step, indent string) {
	out := FormatValue(s.Output)
	if s.Err != nil {
		out = fmt.Sprintf("ERROR: %v", s.Err)
	}
	fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n", indent, s.Label, s.FormulaID, formatInputs(s.Inputs), out)
	for _, sub := range s.Substeps {
		writeStep(tw, sub, indent+"· ")
	}
}

// FormatValue renders a value with four significant digits in its canonical
// unit.
func FormatValue(v units.Value) string {
	if v.Kind() == units.Dimensionless {
		return fmt.Sprintf("%.4g", v.Magnitude())
	}
	return fmt.Sprintf("%.4g %s", v.Magnitude(), v.Kind().CanonicalUnit())
}

func formatInputs(inputs []stepper.NamedValue) string {
	parts := make([]string, len(inputs))
	for i, in := range inputs {
		parts[i] = fmt.Sprintf("%s=%s", in.Name, FormatValue(in.Value))
	}
	return strings.Join(parts, ", ")
}

// UtilizationBar renders the utilization as a filled bar of the given width.
// A bar on the edge of overflowing stays inside; utilization above 1 is
// marked with a trailing bang.
func UtilizationBar(utilization float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(utilization*float64(width) + 0.5)
	over := filled > width
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
	if over {
		return bar + "!"
	}
	return bar
}
