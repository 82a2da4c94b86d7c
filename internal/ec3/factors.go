// Package ec3 implements formulas from EN 1993-1-1 (Eurocode 3, steel
// structures): partial factors, cross-section classification, flexural
// buckling reduction and cross-section resistances.
//
// Every function takes dimensioned inputs and, where the standard permits a
// nationally determined parameter, an annex registry whose active
// jurisdiction may override the base value. A nil registry always resolves
// to the base standard.
package ec3

import "github.com/steelcode/goec3/internal/annex"

// NDP keys for the partial factors of EN 1993-1-1 §6.1 note 2b.
const (
	KeyGammaM0 = "EN1993-1-1_6.1_note_2b#gamma_M0"
	KeyGammaM1 = "EN1993-1-1_6.1_note_2b#gamma_M1"
	KeyGammaM2 = "EN1993-1-1_6.1_note_2b#gamma_M2"
)

// GammaM0 is the partial factor for resistance of cross-sections, whatever
// the class. Base value per EN 1993-1-1 §6.1 (1).
func GammaM0(r *annex.Registry) float64 {
	return r.Lookup(KeyGammaM0, 1.00)
}

// GammaM1 is the partial factor for resistance of members to instability
// assessed by member checks. Base value per EN 1993-1-1 §6.1 (1).
func GammaM1(r *annex.Registry) float64 {
	return r.Lookup(KeyGammaM1, 1.00)
}

// GammaM2 is the partial factor for resistance of cross-sections in tension
// to fracture. Base value per EN 1993-1-1 §6.1 (1).
func GammaM2(r *annex.Registry) float64 {
	return r.Lookup(KeyGammaM2, 1.25)
}
