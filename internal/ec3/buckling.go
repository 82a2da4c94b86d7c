package ec3

import (
	"fmt"
	"math"

	"github.com/steelcode/goec3/internal/units"
)

// BucklingCurve identifies one of the five imperfection curves of
// EN 1993-1-1 Tab. 6.1.
type BucklingCurve int

const (
	CurveA0 BucklingCurve = iota
	CurveA
	CurveB
	CurveC
	CurveD
)

var curveNames = map[BucklingCurve]string{
	CurveA0: "a0",
	CurveA:  "a",
	CurveB:  "b",
	CurveC:  "c",
	CurveD:  "d",
}

func (c BucklingCurve) String() string {
	if n, ok := curveNames[c]; ok {
		return n
	}
	return fmt.Sprintf("curve(%d)", int(c))
}

// ParseCurve resolves a curve name ("a0", "a", ... "d").
func ParseCurve(name string) (BucklingCurve, error) {
	for c, n := range curveNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown buckling curve %q", name)
}

// ImperfectionFactor returns α for a buckling curve per EN 1993-1-1 Tab. 6.1.
func ImperfectionFactor(curve BucklingCurve) float64 {
	switch curve {
	case CurveA0:
		return 0.13
	case CurveA:
		return 0.21
	case CurveB:
		return 0.34
	case CurveC:
		return 0.49
	default:
		return 0.76
	}
}

// Chi is the flexural buckling reduction factor per EN 1993-1-1 §6.3.1.2.
// lambdaBar is the relative slenderness; χ = 1 for λ̄ ≤ 0.2.
func Chi(lambdaBar float64, curve BucklingCurve) (float64, error) {
	if lambdaBar < 0 {
		return 0, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 §6.3.1.2",
			Param:     "lambda_bar",
			Value:     fmt.Sprintf("%g", lambdaBar),
			Reason:    "relative slenderness must be non-negative",
		}
	}
	if lambdaBar <= 0.2 {
		return 1.0, nil
	}
	alpha := ImperfectionFactor(curve)
	phi := 0.5 * (1 + alpha*(lambdaBar-0.2) + lambdaBar*lambdaBar)
	chi := 1 / (phi + math.Sqrt(phi*phi-lambdaBar*lambdaBar))
	return math.Min(chi, 1.0), nil
}

// CriticalForce is the Euler elastic critical force N_cr = π² E I / L_cr².
func CriticalForce(e, i, lcr units.Value) (units.Value, error) {
	if lcr.Magnitude() <= 0 {
		return units.Value{}, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 §6.3.1.3",
			Param:     "L_cr",
			Value:     lcr.String(),
			Reason:    "buckling length must be positive",
		}
	}
	lsq, err := lcr.Pow(2)
	if err != nil {
		return units.Value{}, err
	}
	// I / L² has the kind of an area, E × area the kind of a force
	iOverLsq, err := i.Div(lsq)
	if err != nil {
		return units.Value{}, err
	}
	ncr, err := e.Mul(iOverLsq)
	if err != nil {
		return units.Value{}, err
	}
	return ncr.MulScalar(math.Pi * math.Pi), nil
}

// SlendernessBar is the relative slenderness λ̄ = √(A f_y / N_cr) for class
// 1 to 3 cross-sections, EN 1993-1-1 §6.3.1.3.
func SlendernessBar(a, fy, ncr units.Value) (float64, error) {
	plastic, err := a.Mul(fy)
	if err != nil {
		return 0, err
	}
	ratio, err := plastic.Div(ncr)
	if err != nil {
		return 0, err
	}
	if ratio.Magnitude() < 0 {
		return 0, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 §6.3.1.3",
			Param:     "A f_y / N_cr",
			Value:     ratio.String(),
			Reason:    "slenderness argument must be non-negative",
		}
	}
	return math.Sqrt(ratio.Magnitude()), nil
}

// Axis selects the bending/buckling axis of a section.
type Axis string

const (
	AxisY Axis = "y" // major axis
	AxisZ Axis = "z" // minor axis
)

// CurveForISection selects the buckling curve of a hot-rolled I-section per
// EN 1993-1-1 Tab. 6.2 for grades up to S450.
func CurveForISection(h, b, tf units.Value, axis Axis) (BucklingCurve, error) {
	hb, err := h.Div(b)
	if err != nil {
		return 0, err
	}
	tfMM, err := tf.In("mm")
	if err != nil {
		return 0, err
	}
	if axis != AxisY && axis != AxisZ {
		return 0, fmt.Errorf("unknown buckling axis %q", axis)
	}

	if hb.Magnitude() > 1.2 {
		if tfMM <= 40 {
			if axis == AxisY {
				return CurveA, nil
			}
			return CurveB, nil
		}
		if tfMM <= 100 {
			if axis == AxisY {
				return CurveB, nil
			}
			return CurveC, nil
		}
		return 0, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 Tab 6.2",
			Param:     "t_f",
			Value:     tf.String(),
			Reason:    "flange thickness above 100 mm not covered for h/b > 1.2",
		}
	}
	if tfMM <= 100 {
		if axis == AxisY {
			return CurveB, nil
		}
		return CurveC, nil
	}
	return CurveD, nil
}
