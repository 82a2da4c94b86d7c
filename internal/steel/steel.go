// Package steel provides nominal material properties for structural steel
// grades permitted within the Eurocode framework, per EN 10025-2.
//
// Yield and ultimate strengths depend on the element thickness; the common
// split at 40 mm is captured by the thin/thick pair on each grade.
package steel

import (
	"fmt"
	"sort"

	"github.com/steelcode/goec3/internal/units"
)

// Grade holds the nominal strengths of one steel grade in MPa.
type Grade struct {
	Name    string
	Norm    string
	FyThin  float64 // f_yk for t <= 40 mm
	FyThick float64 // f_yk for 40 mm < t <= 80 mm
	FuThin  float64 // f_uk for t <= 40 mm
	FuThick float64 // f_uk for 40 mm < t <= 80 mm
}

// Elastic constants shared by all structural steel, EN 1993-1-1 §3.2.6.
const (
	ElasticModulus     = 210000.0 // MPa
	ShearModulus       = 81000.0  // MPa
	PoissonsRatio      = 0.3
	ThermalCoefficient = 1.2e-5 // 1/K
)

var grades = map[string]Grade{
	"S235": {Name: "S235", Norm: "EN 10025-2", FyThin: 235, FyThick: 215, FuThin: 360, FuThick: 360},
	"S275": {Name: "S275", Norm: "EN 10025-2", FyThin: 275, FyThick: 255, FuThin: 430, FuThick: 410},
	"S355": {Name: "S355", Norm: "EN 10025-2", FyThin: 355, FyThick: 335, FuThin: 490, FuThick: 470},
	"S450": {Name: "S450", Norm: "EN 10025-2", FyThin: 440, FyThick: 410, FuThin: 550, FuThick: 550},
}

// Material is a steel grade together with the thickness range of the element
// it is used in.
type Material struct {
	Grade         Grade
	ThicknessLE40 bool
}

// Get returns the material for a grade name. thicknessLE40 selects the
// strength values for element thickness at or below 40 mm.
func Get(name string, thicknessLE40 bool) (Material, error) {
	g, ok := grades[name]
	if !ok {
		return Material{}, fmt.Errorf("steel grade %q not in library (available: %v)", name, Grades())
	}
	return Material{Grade: g, ThicknessLE40: thicknessLE40}, nil
}

// Grades returns the available grade names in sorted order.
func Grades() []string {
	names := make([]string, 0, len(grades))
	for n := range grades {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Fy returns the characteristic yield strength for the thickness range.
func (m Material) Fy() units.Value {
	if m.ThicknessLE40 {
		return units.MPa(m.Grade.FyThin)
	}
	return units.MPa(m.Grade.FyThick)
}

// Fu returns the characteristic ultimate strength for the thickness range.
func (m Material) Fu() units.Value {
	if m.ThicknessLE40 {
		return units.MPa(m.Grade.FuThin)
	}
	return units.MPa(m.Grade.FuThick)
}

// E returns the elastic modulus.
func (m Material) E() units.Value { return units.MPa(ElasticModulus) }

// G returns the shear modulus.
func (m Material) G() units.Value { return units.MPa(ShearModulus) }
