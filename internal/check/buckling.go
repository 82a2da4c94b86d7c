package check

import (
	"fmt"

	"github.com/steelcode/goec3/internal/annex"
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

// FlexuralBuckling verifies a compression member against flexural buckling
// about one axis per EN 1993-1-1 §6.3.1 for class 1 to 3 cross-sections.
// lcr is the buckling length about the chosen axis.
func FlexuralBuckling(sectionName, grade string, nEd, lcr units.Value, axis ec3.Axis, reg *annex.Registry) (*stepper.Result, *stepper.Trace, error) {
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
	second := m.section.Iy
	if axis == ec3.AxisZ {
		second = m.section.Iz
	}
	i, err := tr.RecordStep(fmt.Sprintf("I_%s", axis), "EN 10365", nil, given(second))
	if err != nil {
		return nil, tr, err
	}
	e := m.material.E()
	ncr, err := tr.RecordStep("N_cr", "EN1993-1-1 §6.3.1.3",
		[]stepper.NamedValue{
			stepper.Named("E", e),
			stepper.Named(fmt.Sprintf("I_%s", axis), i),
			stepper.Named("L_cr", lcr),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			return ec3.CriticalForce(e, i, lcr)
		})
	if err != nil {
		return nil, tr, err
	}
	lambdaBar, err := tr.RecordStep("lambda_bar", "EN1993-1-1 §6.3.1.3",
		[]stepper.NamedValue{
			stepper.Named("A", a),
			stepper.Named("f_y", fy),
			stepper.Named("N_cr", ncr),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			lb, err := ec3.SlendernessBar(a, fy, ncr)
			if err != nil {
				return units.Value{}, err
			}
			return units.Ratio(lb), nil
		})
	if err != nil {
		return nil, tr, err
	}
	curve, err := ec3.CurveForISection(m.section.H, m.section.B, m.section.Tf, axis)
	if err != nil {
		return nil, tr, err
	}
	chi, err := tr.RecordStep("chi", fmt.Sprintf("EN1993-1-1 §6.3.1.2, curve %s", curve),
		[]stepper.NamedValue{
			stepper.Named("lambda_bar", lambdaBar),
			stepper.Named("alpha", units.Ratio(ec3.ImperfectionFactor(curve))),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			x, err := ec3.Chi(lambdaBar.Magnitude(), curve)
			if err != nil {
				return units.Value{}, err
			}
			return units.Ratio(x), nil
		})
	if err != nil {
		return nil, tr, err
	}
	gm1 := ec3.GammaM1(reg)
	gamma, err := tr.RecordStep("gamma_M1", "EN1993-1-1 §6.1", nil, given(units.Ratio(gm1)))
	if err != nil {
		return nil, tr, err
	}
	nbRd, err := tr.RecordStep("N_b,Rd", "EN1993-1-1 §6.3.1.1",
		[]stepper.NamedValue{
			stepper.Named("chi", chi),
			stepper.Named("A", a),
			stepper.Named("f_y", fy),
			stepper.Named("gamma_M1", gamma),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			if err := requireClass123(class, "EN1993-1-1 §6.3.1.1"); err != nil {
				return units.Value{}, err
			}
			return ec3.BucklingResistance(chi.Magnitude(), a, fy, gm1)
		})
	if err != nil {
		return nil, tr, err
	}
	if _, err := tr.RecordStep("eta", "N_Ed / N_b,Rd",
		[]stepper.NamedValue{
			stepper.Named("N_Ed", nEd),
			stepper.Named("N_b,Rd", nbRd),
		},
		utilization(nEd, nbRd)); err != nil {
		return nil, tr, err
	}
	return finalize(tr)
}
