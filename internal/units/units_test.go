package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownUnits(t *testing.T) {
	l, err := New(1, "m")
	require.NoError(t, err)
	assert.Equal(t, Length, l.Kind())
	assert.Equal(t, 1000.0, l.Magnitude(), "1 m is stored as 1000 mm")

	f, err := New(2, "kN")
	require.NoError(t, err)
	assert.Equal(t, Force, f.Kind())
	assert.Equal(t, 2000.0, f.Magnitude())

	s, err := New(355, "N/mm^2")
	require.NoError(t, err)
	assert.Equal(t, Stress, s.Kind())
	assert.Equal(t, 355.0, s.Magnitude())
}

func TestNew_UnknownUnit(t *testing.T) {
	_, err := New(1, "furlong")
	var un *UnknownUnitError
	require.ErrorAs(t, err, &un)
	assert.Equal(t, "furlong", un.Unit)
}

func TestIn_ConvertsWithinKind(t *testing.T) {
	l := Millimeters(1000)
	inM, err := l.In("m")
	require.NoError(t, err)
	assert.Equal(t, 1.0, inM)

	inCm, err := l.In("cm")
	require.NoError(t, err)
	assert.Equal(t, 100.0, inCm)

	// a length cannot be expressed in a force unit
	_, err = l.In("kN")
	var un *UnknownUnitError
	require.ErrorAs(t, err, &un)
	assert.Equal(t, Length, un.Kind)
}

func TestConversionConsistency(t *testing.T) {
	// convert(a, u) + convert(b, u) == (a + b) converted to u
	a := Millimeters(1000)
	b := Meters(1) // same physical length, other input unit
	sum, err := a.Add(b)
	require.NoError(t, err)

	aM, err := a.In("m")
	require.NoError(t, err)
	bM, err := b.In("m")
	require.NoError(t, err)
	sumM, err := sum.In("m")
	require.NoError(t, err)
	assert.InDelta(t, aM+bM, sumM, 1e-12)
}

func TestAdd_KindMismatch(t *testing.T) {
	_, err := Newtons(1).Add(Millimeters(1))
	var mm *UnitMismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, Force, mm.Left)
	assert.Equal(t, Length, mm.Right)
}

func TestMul_ComposedKinds(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want Kind
	}{
		{"length x length = area", Millimeters(5), Millimeters(5), Area},
		{"area x length = volume", SquareMillimeters(25), Millimeters(5), Volume},
		{"volume x length = second moment", CubicMillimeters(125), Millimeters(5), SecondMomentOfArea},
		{"force x length = moment", Newtons(3), Meters(5), Moment},
		{"stress x area = force", MPa(2), SquareMillimeters(10), Force},
		{"stress x volume = moment", MPa(2), CubicMillimeters(10), Moment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Mul(tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Kind())
			// reversed operand order composes to the same kind
			rev, err := tc.b.Mul(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, rev.Kind())
		})
	}
}

func TestMul_UndefinedCombination(t *testing.T) {
	_, err := Newtons(1).Mul(Newtons(1))
	var uo *UndefinedUnitOperationError
	require.ErrorAs(t, err, &uo)
	assert.Equal(t, Force, uo.Left)
	assert.Equal(t, Force, uo.Right)
}

func TestMul_DimensionlessIdentity(t *testing.T) {
	got, err := Ratio(2).Mul(KiloNewtons(3))
	require.NoError(t, err)
	assert.Equal(t, Force, got.Kind())
	assert.Equal(t, 6000.0, got.Magnitude())

	got, err = KiloNewtons(3).Mul(Ratio(2))
	require.NoError(t, err)
	assert.Equal(t, Force, got.Kind())
	assert.Equal(t, 6000.0, got.Magnitude())
}

func TestDiv(t *testing.T) {
	// force / area = stress
	sigma, err := Newtons(15).Div(SquareMillimeters(5))
	require.NoError(t, err)
	assert.Equal(t, Stress, sigma.Kind())
	assert.Equal(t, 3.0, sigma.Magnitude())

	// moment / force = length
	arm, err := KiloNewtonMeters(15).Div(KiloNewtons(3))
	require.NoError(t, err)
	assert.Equal(t, Length, arm.Kind())
	assert.InDelta(t, 5000.0, arm.Magnitude(), 1e-9)

	// same kind / same kind = dimensionless
	eta, err := KiloNewtons(100).Div(KiloNewtons(120))
	require.NoError(t, err)
	assert.Equal(t, Dimensionless, eta.Kind())
	assert.InDelta(t, 0.8333, eta.Magnitude(), 1e-4)
}

func TestDiv_ByZero(t *testing.T) {
	_, err := KiloNewtons(100).Div(KiloNewtons(0))
	var dz *DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	assert.Equal(t, Force, dz.Numerator)
	assert.Equal(t, Force, dz.Denominator)

	_, err = KiloNewtons(100).DivScalar(0)
	require.ErrorAs(t, err, &dz)
}

func TestDiv_UndefinedCombination(t *testing.T) {
	_, err := Millimeters(1).Div(Newtons(1))
	var uo *UndefinedUnitOperationError
	require.ErrorAs(t, err, &uo)
}

func TestPow(t *testing.T) {
	a, err := Millimeters(10).Pow(2)
	require.NoError(t, err)
	assert.Equal(t, Area, a.Kind())
	assert.Equal(t, 100.0, a.Magnitude())

	v, err := Millimeters(10).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, Volume, v.Kind())
	assert.Equal(t, 1000.0, v.Magnitude())

	i, err := Millimeters(10).Pow(4)
	require.NoError(t, err)
	assert.Equal(t, SecondMomentOfArea, i.Kind())
	assert.Equal(t, 10000.0, i.Magnitude())

	// force does not compose with itself
	_, err = Newtons(2).Pow(2)
	var uo *UndefinedUnitOperationError
	require.ErrorAs(t, err, &uo)
}

func TestComparison(t *testing.T) {
	l1 := Millimeters(1000)
	l2, err := New(1, "m")
	require.NoError(t, err)
	assert.True(t, l1.Equal(l2), "1000 mm equals 1 m after canonicalisation")

	less, err := Millimeters(1).Less(Millimeters(2))
	require.NoError(t, err)
	assert.True(t, less)

	_, err = Millimeters(1).Less(Newtons(1))
	var mm *UnitMismatchError
	require.ErrorAs(t, err, &mm)
}

func TestIsClose(t *testing.T) {
	ok, err := IsClose(MPa(235.00000001), MPa(235), 1e-5, 1e-8)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsClose(MPa(235), MPa(236), 1e-9, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = IsClose(MPa(1), Newtons(1), 1e-5, 1e-8)
	var mm *UnitMismatchError
	require.ErrorAs(t, err, &mm)
}

func TestString(t *testing.T) {
	assert.Equal(t, "355 MPa", MPa(355).String())
	assert.Equal(t, "0.85", Ratio(0.85).String())
	assert.Equal(t, "2000 N", KiloNewtons(2).String())
}
