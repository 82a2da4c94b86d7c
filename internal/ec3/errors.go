package ec3

import "fmt"

// ApplicabilityRangeError reports formula inputs outside the validity range
// documented for the clause. Formulas fail with this error instead of
// returning a numeric result that looks plausible but is outside the
// standard's applicability.
type ApplicabilityRangeError struct {
	FormulaID string
	Param     string
	Value     string
	Reason    string
}

func (e *ApplicabilityRangeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %s outside applicability range: %s",
			e.FormulaID, e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: %s outside applicability range: %s",
		e.FormulaID, e.Param, e.Reason)
}
