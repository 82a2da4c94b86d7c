package check

import (
	"github.com/steelcode/goec3/internal/annex"
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

// Bending verifies a member in major axis bending per EN 1993-1-1 §6.2.5.
// The section modulus follows the class: plastic for class 1 and 2, elastic
// for class 3. Class 4 sections fail the modulus step.
func Bending(sectionName, grade string, mEdy units.Value, reg *annex.Registry) (*stepper.Result, *stepper.Trace, error) {
	m, err := resolve(sectionName, grade)
	if err != nil {
		return nil, nil, err
	}
	tr := stepper.Begin()

	class, err := recordClassification(tr, m, units.Newtons(0), mEdy)
	if err != nil {
		return nil, tr, err
	}
	w, err := tr.RecordStep("W_y", "EN 10365", nil,
		func([]stepper.NamedValue) (units.Value, error) {
			switch {
			case class <= 2:
				return m.section.Wply, nil
			case class == 3:
				return m.section.Wely, nil
			default:
				return units.Value{}, requireClass123(class, "EN1993-1-1 §6.2.5")
			}
		})
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
	mcRd, err := tr.RecordStep("M_c,Rd", "EN1993-1-1 §6.2.5",
		[]stepper.NamedValue{
			stepper.Named("W_y", w),
			stepper.Named("f_y", fy),
			stepper.Named("gamma_M0", gamma),
		},
		func([]stepper.NamedValue) (units.Value, error) {
			return ec3.MomentResistance(w, fy, gm0)
		})
	if err != nil {
		return nil, tr, err
	}
	if _, err := tr.RecordStep("eta", "M_Ed,y / M_c,Rd",
		[]stepper.NamedValue{
			stepper.Named("M_Ed,y", mEdy),
			stepper.Named("M_c,Rd", mcRd),
		},
		utilization(mEdy, mcRd)); err != nil {
		return nil, tr, err
	}
	return finalize(tr)
}
