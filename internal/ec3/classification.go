package ec3

import (
	"errors"
	"math"

	"github.com/steelcode/goec3/internal/profile"
	"github.com/steelcode/goec3/internal/steel"
	"github.com/steelcode/goec3/internal/units"
)

// Epsilon is the material factor ε = √(235 MPa / f_y) used throughout the
// slenderness limits of EN 1993-1-1 Tab. 5.2.
func Epsilon(fyk units.Value) (float64, error) {
	if fyk.Kind() != units.Stress {
		return 0, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 Tab 5.2",
			Param:     "f_yk",
			Value:     fyk.String(),
			Reason:    "yield strength must be a stress",
		}
	}
	fy, _ := fyk.In("MPa")
	if fy <= 0 {
		return 0, &ApplicabilityRangeError{
			FormulaID: "EN1993-1-1 Tab 5.2",
			Param:     "f_yk",
			Value:     fyk.String(),
			Reason:    "yield strength must be positive",
		}
	}
	return math.Sqrt(235 / fy), nil
}

// KSigma is the plate buckling coefficient for outstand compression
// elements per EN 1993-1-5 Tab. 4.2, used by the class 3 limit.
func KSigma(psi float64, compFreeEdge bool) float64 {
	if compFreeEdge {
		return 0.57 - 0.21*psi + 0.07*psi*psi
	}
	if psi == 1 {
		return 0.43
	}
	if psi >= 0 {
		return 0.578 / (psi + 0.34)
	}
	return 1.7 - 5*psi + 17.1*psi*psi
}

func slenderness(c, t units.Value) (float64, error) {
	ratio, err := c.Div(t)
	if err != nil {
		return 0, err
	}
	return ratio.Magnitude(), nil
}

// ClassifyInternalElement classifies an internal compression element
// (supported on both edges, e.g. an I-section web) per EN 1993-1-1 Tab. 5.2.
// alpha is the plastic compression zone ratio, psi the elastic stress
// ratio; pure compression is alpha = psi = 1.
func ClassifyInternalElement(c, t, fyk units.Value, alpha, psi float64) (int, error) {
	ct, err := slenderness(c, t)
	if err != nil {
		return 0, err
	}
	eps, err := Epsilon(fyk)
	if err != nil {
		return 0, err
	}

	var limit1, limit2 float64
	if alpha <= 0.5 {
		limit1 = 36 * eps / alpha
		limit2 = 41.5 * eps / alpha
	} else {
		limit1 = 396 * eps / (13*alpha - 1)
		limit2 = 456 * eps / (13*alpha - 1)
	}
	var limit3 float64
	if psi <= -1 {
		limit3 = 62 * eps * (1 - psi) * math.Sqrt(-psi)
	} else {
		limit3 = 42 * eps / (0.67 + 0.33*psi)
	}

	return classFromLimits(ct, limit1, limit2, limit3), nil
}

// ClassifyOutstandElement classifies an outstand compression element (one
// free edge, e.g. an I-section flange) per EN 1993-1-1 Tab. 5.2.
// compFreeEdge selects the limit set for compression at the free edge.
func ClassifyOutstandElement(c, t, fyk units.Value, alpha, psi float64, compFreeEdge bool) (int, error) {
	ct, err := slenderness(c, t)
	if err != nil {
		return 0, err
	}
	eps, err := Epsilon(fyk)
	if err != nil {
		return 0, err
	}

	limit1 := 9 * eps / alpha
	limit2 := 10 * eps / alpha
	if !compFreeEdge {
		limit1 /= math.Sqrt(alpha)
		limit2 /= math.Sqrt(alpha)
	}
	var limit3 float64
	if compFreeEdge && psi == 1 {
		limit3 = 14 * eps
	} else {
		limit3 = 21 * eps * math.Sqrt(KSigma(psi, compFreeEdge))
	}

	return classFromLimits(ct, limit1, limit2, limit3), nil
}

// ClassifyCHS classifies a circular hollow section by its d/t ratio per
// EN 1993-1-1 Tab. 5.2.
func ClassifyCHS(d, t, fyk units.Value) (int, error) {
	dt, err := slenderness(d, t)
	if err != nil {
		return 0, err
	}
	eps, err := Epsilon(fyk)
	if err != nil {
		return 0, err
	}
	return classFromLimits(dt, 50*eps*eps, 70*eps*eps, 90*eps*eps), nil
}

// ClassifyAngle classifies an angle section per EN 1993-1-1 Tab. 5.2 sheet 3.
// Angles are never better than class 3.
func ClassifyAngle(h, b, t, fyk units.Value) (int, error) {
	ht, err := slenderness(h, t)
	if err != nil {
		return 0, err
	}
	sum, err := b.Add(h)
	if err != nil {
		return 0, err
	}
	half := sum.MulScalar(0.5)
	bht, err := slenderness(half, t)
	if err != nil {
		return 0, err
	}
	eps, err := Epsilon(fyk)
	if err != nil {
		return 0, err
	}
	if ht <= 15*eps && bht <= 11.5*eps {
		return 3, nil
	}
	return 4, nil
}

func classFromLimits(ct, limit1, limit2, limit3 float64) int {
	switch {
	case ct > limit3:
		return 4
	case ct > limit2:
		return 3
	case ct > limit1:
		return 2
	default:
		return 1
	}
}

// ElementGeometry is the compressed flat width and thickness of one plate
// element of a section.
type ElementGeometry struct {
	C units.Value
	T units.Value
}

// ISectionElements derives the flat widths of flange and web of a rolled
// I-section from its gross dimensions.
func ISectionElements(s *profile.RolledISection) (flange, web ElementGeometry, err error) {
	// c_fl = (b - 2r - tw) / 2
	inner, err := s.B.Sub(s.R.MulScalar(2))
	if err != nil {
		return flange, web, err
	}
	cf, err := inner.Sub(s.Tw)
	if err != nil {
		return flange, web, err
	}
	flange = ElementGeometry{C: cf.MulScalar(0.5), T: s.Tf}

	// c_w = h - 2(tf + r)
	edge, err := s.Tf.Add(s.R)
	if err != nil {
		return flange, web, err
	}
	cw, err := s.H.Sub(edge.MulScalar(2))
	if err != nil {
		return flange, web, err
	}
	web = ElementGeometry{C: cw, T: s.Tw}
	return flange, web, nil
}

// errWebInTension marks the web-alpha case where the tension demand exceeds
// the web capacity; the caller classifies the web as class 1.
var errWebInTension = errors.New("tension demand larger than web capacity")

// AlphaWeb computes the plastic compression zone ratio α of an I-section
// web under axial force. Compression is positive.
func AlphaWeb(c, t, fyk, nEd units.Value) (float64, error) {
	// e = |N_Ed| / (t f_y), evaluated as (|N_Ed| / f_y) / t to stay inside
	// the composed kinds
	aEquiv, err := nEd.Abs().Div(fyk)
	if err != nil {
		return 0, err
	}
	e, err := aEquiv.Div(t)
	if err != nil {
		return 0, err
	}
	shift, err := e.Div(c.MulScalar(2))
	if err != nil {
		return 0, err
	}
	if nEd.Magnitude() < 0 {
		alpha := 0.5 - shift.Magnitude()
		if alpha <= 0 {
			return 0, errWebInTension
		}
		return alpha, nil
	}
	return math.Min(0.5+shift.Magnitude(), 1.0), nil
}

// PsiWeb computes the elastic stress ratio ψ over an I-section web for a
// doubly symmetric section under axial force and major axis bending.
// Compression is positive; ψ = σ_bottom / σ_top.
func PsiWeb(a, wely, nEd, mEdy units.Value) (float64, error) {
	if nEd.IsZero() && mEdy.IsZero() {
		return 1.0, nil
	}
	sigmaN, err := nEd.Div(a)
	if err != nil {
		return 0, err
	}
	sigmaM, err := mEdy.Abs().Div(wely)
	if err != nil {
		return 0, err
	}
	top, err := sigmaN.Add(sigmaM)
	if err != nil {
		return 0, err
	}
	bottom, err := sigmaN.Sub(sigmaM)
	if err != nil {
		return 0, err
	}
	psi, err := bottom.Div(top)
	if err != nil {
		return 0, err
	}
	return psi.Magnitude(), nil
}

// ClassifyISectionWeb classifies the web of a rolled I-section for the given
// axial force and major axis moment. Zero loads mean pure compression.
func ClassifyISectionWeb(s *profile.RolledISection, mat steel.Material, web ElementGeometry, nEd, mEdy units.Value) (int, error) {
	alpha, psi := 1.0, 1.0
	fy := mat.Fy()

	// with any load given, alpha and psi follow the elastic-plastic stress
	// distribution; pure bending resolves to alpha 0.5, psi -1
	if !nEd.IsZero() || !mEdy.IsZero() {
		var err error
		alpha, err = AlphaWeb(web.C, web.T, fy, nEd)
		if errors.Is(err, errWebInTension) {
			return 1, nil
		}
		if err != nil {
			return 0, err
		}
		psi, err = PsiWeb(s.A, s.Wely, nEd, mEdy)
		if err != nil {
			return 0, err
		}
	}
	if psi > 1 {
		// fully in tension under elastic conditions
		return 1, nil
	}
	return ClassifyInternalElement(web.C, web.T, fy, alpha, psi)
}

// ClassifyRolledISection classifies a rolled doubly symmetric I-section for
// major axis bending and/or axial force per EN 1993-1-1 §5.5. The section
// class is the worst of flange and web.
func ClassifyRolledISection(s *profile.RolledISection, mat steel.Material, nEd, mEdy units.Value) (int, error) {
	flange, web, err := ISectionElements(s)
	if err != nil {
		return 0, err
	}
	flangeClass, err := ClassifyOutstandElement(flange.C, flange.T, mat.Fy(), 1.0, 1.0, true)
	if err != nil {
		return 0, err
	}
	webClass, err := ClassifyISectionWeb(s, mat, web, nEd, mEdy)
	if err != nil {
		return 0, err
	}
	if webClass > flangeClass {
		return webClass, nil
	}
	return flangeClass, nil
}
