package ec3

import (
	"fmt"

	"github.com/steelcode/goec3/internal/units"
)

func requirePositive(formulaID, param string, v units.Value) error {
	if v.Magnitude() <= 0 {
		return &ApplicabilityRangeError{
			FormulaID: formulaID,
			Param:     param,
			Value:     v.String(),
			Reason:    "must be positive",
		}
	}
	return nil
}

// TensionResistance is the design plastic resistance of the gross
// cross-section N_pl,Rd = A f_y / γ_M0, EN 1993-1-1 §6.2.3.
func TensionResistance(a, fy units.Value, gammaM0 float64) (units.Value, error) {
	const formulaID = "EN1993-1-1 §6.2.3"
	if err := requirePositive(formulaID, "A", a); err != nil {
		return units.Value{}, err
	}
	if err := requirePositive(formulaID, "f_y", fy); err != nil {
		return units.Value{}, err
	}
	plastic, err := a.Mul(fy)
	if err != nil {
		return units.Value{}, err
	}
	return plastic.DivScalar(gammaM0)
}

// CompressionResistance is the design resistance to uniform compression
// N_c,Rd = A f_y / γ_M0 for class 1 to 3 cross-sections, EN 1993-1-1 §6.2.4.
func CompressionResistance(a, fy units.Value, gammaM0 float64) (units.Value, error) {
	const formulaID = "EN1993-1-1 §6.2.4"
	if err := requirePositive(formulaID, "A", a); err != nil {
		return units.Value{}, err
	}
	if err := requirePositive(formulaID, "f_y", fy); err != nil {
		return units.Value{}, err
	}
	plastic, err := a.Mul(fy)
	if err != nil {
		return units.Value{}, err
	}
	return plastic.DivScalar(gammaM0)
}

// MomentResistance is the design resistance for bending about one principal
// axis M_c,Rd = W f_y / γ_M0, EN 1993-1-1 §6.2.5. W is the plastic modulus
// for class 1 or 2 sections and the elastic modulus for class 3.
func MomentResistance(w, fy units.Value, gammaM0 float64) (units.Value, error) {
	const formulaID = "EN1993-1-1 §6.2.5"
	if err := requirePositive(formulaID, "W", w); err != nil {
		return units.Value{}, err
	}
	if err := requirePositive(formulaID, "f_y", fy); err != nil {
		return units.Value{}, err
	}
	m, err := w.Mul(fy)
	if err != nil {
		return units.Value{}, err
	}
	return m.DivScalar(gammaM0)
}

// BucklingResistance is the design buckling resistance of a compression
// member N_b,Rd = χ A f_y / γ_M1 for class 1 to 3 cross-sections,
// EN 1993-1-1 §6.3.1.1.
func BucklingResistance(chi float64, a, fy units.Value, gammaM1 float64) (units.Value, error) {
	const formulaID = "EN1993-1-1 §6.3.1.1"
	if chi <= 0 || chi > 1 {
		return units.Value{}, &ApplicabilityRangeError{
			FormulaID: formulaID,
			Param:     "chi",
			Value:     fmt.Sprintf("%g", chi),
			Reason:    "reduction factor must be in (0, 1]",
		}
	}
	if err := requirePositive(formulaID, "A", a); err != nil {
		return units.Value{}, err
	}
	if err := requirePositive(formulaID, "f_y", fy); err != nil {
		return units.Value{}, err
	}
	plastic, err := a.Mul(fy)
	if err != nil {
		return units.Value{}, err
	}
	reduced, err := plastic.DivScalar(gammaM1)
	if err != nil {
		return units.Value{}, err
	}
	return reduced.MulScalar(chi), nil
}
