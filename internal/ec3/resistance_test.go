package ec3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcode/goec3/internal/units"
)

func TestTensionResistance(t *testing.T) {
	// IPE300 S235: 5380 mm² x 235 MPa / 1.0 = 1264.3 kN
	nRd, err := TensionResistance(units.SquareMillimeters(5380), units.MPa(235), 1.0)
	require.NoError(t, err)
	assert.Equal(t, units.Force, nRd.Kind())
	assert.InDelta(t, 1.2643e6, nRd.Magnitude(), 1e2)

	// gamma_M0 = 1.1 reduces the resistance
	nRd, err = TensionResistance(units.SquareMillimeters(5380), units.MPa(235), 1.1)
	require.NoError(t, err)
	assert.InDelta(t, 1.2643e6/1.1, nRd.Magnitude(), 1e2)
}

func TestTensionResistance_Applicability(t *testing.T) {
	var ar *ApplicabilityRangeError

	_, err := TensionResistance(units.SquareMillimeters(0), units.MPa(235), 1.0)
	require.ErrorAs(t, err, &ar)
	assert.Equal(t, "A", ar.Param)

	_, err = TensionResistance(units.SquareMillimeters(100), units.MPa(-1), 1.0)
	require.ErrorAs(t, err, &ar)
	assert.Equal(t, "f_y", ar.Param)
}

func TestCompressionResistance(t *testing.T) {
	nRd, err := CompressionResistance(units.SquareMillimeters(5380), units.MPa(355), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.9099e6, nRd.Magnitude(), 1e2)
}

func TestMomentResistance(t *testing.T) {
	// IPE300 S235 plastic: 628e3 mm³ x 235 MPa = 147.6 kNm
	mRd, err := MomentResistance(units.CubicMillimeters(6.28e5), units.MPa(235), 1.0)
	require.NoError(t, err)
	assert.Equal(t, units.Moment, mRd.Kind())
	assert.InDelta(t, 1.4758e8, mRd.Magnitude(), 1e5)
}

func TestBucklingResistance(t *testing.T) {
	nbRd, err := BucklingResistance(0.6, units.SquareMillimeters(5380), units.MPa(235), 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.6*1.2643e6, nbRd.Magnitude(), 1e2)

	var ar *ApplicabilityRangeError
	_, err = BucklingResistance(0, units.SquareMillimeters(5380), units.MPa(235), 1.0)
	require.ErrorAs(t, err, &ar)

	_, err = BucklingResistance(1.2, units.SquareMillimeters(5380), units.MPa(235), 1.0)
	require.ErrorAs(t, err, &ar)
}
