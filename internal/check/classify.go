package check

import (
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

// recordClassification records section classification as a grouped step
// with flange and web substeps and returns the governing class.
func recordClassification(tr *stepper.Trace, m member, nEd, mEdy units.Value) (int, error) {
	out, err := tr.RecordGroup("section class", "EN1993-1-1 Tab 5.2",
		[]stepper.NamedValue{
			stepper.Named("N_Ed", nEd),
			stepper.Named("M_Ed,y", mEdy),
		},
		func(sub *stepper.Trace) (units.Value, error) {
			flange, web, err := ec3.ISectionElements(m.section)
			if err != nil {
				return units.Value{}, err
			}
			fy := m.material.Fy()
			flangeClass, err := sub.RecordStep("flange class", "EN1993-1-1 Tab 5.2 sheet 2",
				[]stepper.NamedValue{
					stepper.Named("c", flange.C),
					stepper.Named("t", flange.T),
				},
				func([]stepper.NamedValue) (units.Value, error) {
					cl, err := ec3.ClassifyOutstandElement(flange.C, flange.T, fy, 1.0, 1.0, true)
					if err != nil {
						return units.Value{}, err
					}
					return units.Ratio(float64(cl)), nil
				})
			if err != nil {
				return units.Value{}, err
			}
			webClass, err := sub.RecordStep("web class", "EN1993-1-1 Tab 5.2 sheet 1",
				[]stepper.NamedValue{
					stepper.Named("c", web.C),
					stepper.Named("t", web.T),
				},
				func([]stepper.NamedValue) (units.Value, error) {
					cl, err := ec3.ClassifyISectionWeb(m.section, m.material, web, nEd, mEdy)
					if err != nil {
						return units.Value{}, err
					}
					return units.Ratio(float64(cl)), nil
				})
			if err != nil {
				return units.Value{}, err
			}
			worst := flangeClass
			if webClass.Magnitude() > worst.Magnitude() {
				worst = webClass
			}
			return worst, nil
		})
	if err != nil {
		return 0, err
	}
	return int(out.Magnitude()), nil
}

// ClassifySection classifies a rolled I-section under the given axial force
// and major axis moment. Compression is positive. The returned trace holds
// the flange and web classification substeps; it stays open because
// classification yields a class, not a utilization.
func ClassifySection(sectionName, grade string, nEd, mEdy units.Value) (int, *stepper.Trace, error) {
	m, err := resolve(sectionName, grade)
	if err != nil {
		return 0, nil, err
	}
	tr := stepper.Begin()
	class, err := recordClassification(tr, m, nEd, mEdy)
	if err != nil {
		return 0, tr, err
	}
	return class, tr, nil
}
