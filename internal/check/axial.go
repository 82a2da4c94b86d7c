package check

import (
	"github.com/steelcode/goec3/internal/annex"
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

// Tension verifies a member in axial tension per EN 1993-1-1 §6.2.3 against
// the gross cross-section. The trace is returned even when a step fails.
func Tension(sectionName, grade string, nEd units.Value, reg *annex.Registry) (*stepper.Result, *stepper.Trace, error) {
	m, err := resolve(sectionName, grade)
	if err != nil {
		return nil, nil, err
	}
	tr := stepper.Begin()

	a, err := tr.RecordStep("A", "EN 10365", nil, given(m.section.A))
	if err != nil {
		return nil, tr, err
	}
	fy, err := tr.RecordStep("f_y", "EN 10025-2", nil, given(m.material.Fy()))
	if err != nil {
		return nil, tr, err
	}
	gm0 := ec3.GammaM0(reg)
	gamma, err := tr.RecordStep("gamma_M0", "EN1993-1-1 §6.1", nil, given(units.Ratio(gm0)))
	if err != nil {
		return nil, tr, err
	}
	ntRd, err := tr.RecordStep("N_t,Rd", "EN1993-1-1 §6.2.3",
		[]stepper.NamedValue{
			stepper.Named("A", a),
			stepper.Named("f_y", fy),
			stepper.Named("gamma_M0", gamma),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			return ec3.TensionResistance(a, fy, gm0)
		})
	if err != nil {
		return nil, tr, err
	}
	if _, err := tr.RecordStep("eta", "N_Ed / N_t,Rd",
		[]stepper.NamedValue{
			stepper.Named("N_Ed", nEd),
			stepper.Named("N_t,Rd", ntRd),
		},
		utilization(nEd, ntRd)); err != nil {
		return nil, tr, err
	}
	return finalize(tr)
}

// Compression verifies a member in uniform compression per EN 1993-1-1
// §6.2.4. The cross-section must classify as class 1, 2 or 3 under pure
// compression; class 4 sections need effective properties and fail the
// resistance step.
func Compression(sectionName, grade string, nEd units.Value, reg *annex.Registry) (*stepper.Result, *stepper.Trace, error) {
	m, err := resolve(sectionName, grade)
	if err != nil {
		return nil, nil, err
	}
	tr := stepper.Begin()

	class, err := recordClassification(tr, m, nEd.Abs(), units.NewtonMillimeters(0))
	if err != nil {
		return nil, tr, err
	}
	a, err := tr.RecordStep("A", "EN 10365", nil, given(m.section.A))
	if err != nil {
		return nil, tr, err
	}
	fy, err := tr.RecordStep("f_y", "EN 10025-2", nil, given(m.material.Fy()))
	if err != nil {
		return nil, tr, err
	}
	gm0 := ec3.GammaM0(reg)
	gamma, err := tr.RecordStep("gamma_M0", "EN1993-1-1 §6.1", nil, given(units.Ratio(gm0)))
	if err != nil {
		return nil, tr, err
	}
	ncRd, err := tr.RecordStep("N_c,Rd", "EN1993-1-1 §6.2.4",
		[]stepper.NamedValue{
			stepper.Named("A", a),
			stepper.Named("f_y", fy),
			stepper.Named("gamma_M0", gamma),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			if err := requireClass123(class, "EN1993-1-1 §6.2.4"); err != nil {
				return units.Value{}, err
			}
			return ec3.CompressionResistance(a, fy, gm0)
		})
	if err != nil {
		return nil, tr, err
	}
	if _, err := tr.RecordStep("eta", "N_Ed / N_c,Rd",
		[]stepper.NamedValue{
			stepper.Named("N_Ed", nEd),
			stepper.Named("N_c,Rd", ncRd),
		},
		utilization(nEd, ncRd)); err != nil {
		return nil, tr, err
	}
	return finalize(tr)
}

func requireClass123(class int, formulaID string) error {
	if class <= 3 {
		return nil
	}
	return &ec3.ApplicabilityRangeError{
		FormulaID: formulaID,
		Param:     "section class",
		Value:     "4",
		Reason:    "class 4 sections require effective cross-section properties",
	}
}
