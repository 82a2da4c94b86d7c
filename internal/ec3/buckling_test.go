package ec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcode/goec3/internal/units"
)

func TestImperfectionFactor(t *testing.T) {
	assert.Equal(t, 0.13, ImperfectionFactor(CurveA0))
	assert.Equal(t, 0.21, ImperfectionFactor(CurveA))
	assert.Equal(t, 0.34, ImperfectionFactor(CurveB))
	assert.Equal(t, 0.49, ImperfectionFactor(CurveC))
	assert.Equal(t, 0.76, ImperfectionFactor(CurveD))
}

func TestChi_StockyMember(t *testing.T) {
	for _, curve := range []BucklingCurve{CurveA0, CurveA, CurveB, CurveC, CurveD} {
		chi, err := Chi(0.2, curve)
		require.NoError(t, err)
		assert.Equal(t, 1.0, chi, "lambda_bar <= 0.2 means no reduction on curve %s", curve)
	}
}

func TestChi_SlenderMember(t *testing.T) {
	chi, err := Chi(1.0, CurveB)
	require.NoError(t, err)
	assert.InDelta(t, 0.5970, chi, 1e-3)

	chi, err = Chi(0.5, CurveA)
	require.NoError(t, err)
	assert.InDelta(t, 0.9243, chi, 1e-3)

	// chi never exceeds 1 and decreases with slenderness
	prev := 1.0
	for _, lb := range []float64{0.3, 0.6, 1.0, 1.5, 2.0} {
		chi, err := Chi(lb, CurveC)
		require.NoError(t, err)
		assert.LessOrEqual(t, chi, 1.0)
		assert.Less(t, chi, prev)
		prev = chi
	}
}

func TestChi_NegativeSlenderness(t *testing.T) {
	_, err := Chi(-0.1, CurveA)
	var ar *ApplicabilityRangeError
	require.ErrorAs(t, err, &ar)
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("a0")
	require.NoError(t, err)
	assert.Equal(t, CurveA0, c)

	c, err = ParseCurve("d")
	require.NoError(t, err)
	assert.Equal(t, CurveD, c)

	_, err = ParseCurve("e")
	require.Error(t, err)
}

func TestCriticalForce(t *testing.T) {
	// IPE300 about the major axis, L_cr = 6 m
	e := units.MPa(210000)
	iy := units.QuarticMillimeters(8.356e7)
	ncr, err := CriticalForce(e, iy, units.Meters(6))
	require.NoError(t, err)
	assert.Equal(t, units.Force, ncr.Kind())
	assert.InDelta(t, 4.811e6, ncr.Magnitude(), 5e3)
}

func TestCriticalForce_ZeroLength(t *testing.T) {
	_, err := CriticalForce(units.MPa(210000), units.QuarticMillimeters(1e7), units.Meters(0))
	var ar *ApplicabilityRangeError
	require.ErrorAs(t, err, &ar)
}

func TestSlendernessBar(t *testing.T) {
	a := units.SquareMillimeters(5380)
	fy := units.MPa(235)
	ncr := units.Newtons(4.811e6)
	lb, err := SlendernessBar(a, fy, ncr)
	require.NoError(t, err)
	assert.InDelta(t, 0.5126, lb, 1e-3)
}

func TestSlendernessBar_ZeroNcr(t *testing.T) {
	_, err := SlendernessBar(units.SquareMillimeters(1000), units.MPa(235), units.Newtons(0))
	var dz *units.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
}

func TestCurveForISection(t *testing.T) {
	// IPE300: h/b = 2, tf = 10.7 mm
	h, b, tf := units.Millimeters(300), units.Millimeters(150), units.Millimeters(10.7)

	c, err := CurveForISection(h, b, tf, AxisY)
	require.NoError(t, err)
	assert.Equal(t, CurveA, c)

	c, err = CurveForISection(h, b, tf, AxisZ)
	require.NoError(t, err)
	assert.Equal(t, CurveB, c)

	// HEB300: h/b = 1, tf = 19 mm
	h, b, tf = units.Millimeters(300), units.Millimeters(300), units.Millimeters(19)

	c, err = CurveForISection(h, b, tf, AxisY)
	require.NoError(t, err)
	assert.Equal(t, CurveB, c)

	c, err = CurveForISection(h, b, tf, AxisZ)
	require.NoError(t, err)
	assert.Equal(t, CurveC, c)

	_, err = CurveForISection(h, b, tf, Axis("x"))
	require.Error(t, err)
}
