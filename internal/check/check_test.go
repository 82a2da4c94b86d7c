package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcode/goec3/internal/annex"
	"github.com/steelcode/goec3/internal/ec3"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

func germanAnnex(t *testing.T) *annex.Registry {
	t.Helper()
	reg := annex.NewRegistry()
	reg.Register("DE", map[string]annex.Param{
		ec3.KeyGammaM1: annex.Number(1.10),
	})
	require.NoError(t, reg.Select("DE"))
	return reg
}

func TestTensionPass(t *testing.T) {
	res, tr, err := Tension("IPE270", "S235", units.KiloNewtons(800), nil)
	require.NoError(t, err)
	require.NotNil(t, res)

	// N_t,Rd = 4590 mm2 * 235 MPa / 1.00 = 1078650 N
	assert.InDelta(t, 800000.0/1078650.0, res.Utilization, 1e-9)
	assert.Equal(t, stepper.Pass, res.Verdict)
	assert.Equal(t, stepper.Closed, tr.State())

	steps := tr.Steps()
	require.Len(t, steps, 5)
	assert.Equal(t, "N_t,Rd", steps[3].Label)
	assert.InDelta(t, 1078650, steps[3].Output.Magnitude(), 1e-6)
	assert.Equal(t, "eta", steps[4].Label)
}

func TestTensionFailVerdict(t *testing.T) {
	res, _, err := Tension("IPE270", "S235", units.KiloNewtons(1200), nil)
	require.NoError(t, err)
	assert.Equal(t, stepper.Fail, res.Verdict)
	assert.Greater(t, res.Utilization, 1.0)
}

func TestTensionUnknownSection(t *testing.T) {
	_, tr, err := Tension("IPE9000", "S235", units.KiloNewtons(100), nil)
	require.Error(t, err)
	assert.Nil(t, tr)
}

func TestCompressionPass(t *testing.T) {
	res, tr, err := Compression("IPE270", "S235", units.KiloNewtons(309.704), nil)
	require.NoError(t, err)

	assert.InDelta(t, 309704.0/1078650.0, res.Utilization, 1e-6)
	assert.Equal(t, stepper.Pass, res.Verdict)

	steps := tr.Steps()
	require.Len(t, steps, 6)
	assert.Equal(t, "section class", steps[0].Label)
	require.Len(t, steps[0].Substeps, 2)
	assert.Equal(t, "flange class", steps[0].Substeps[0].Label)
	assert.Equal(t, "web class", steps[0].Substeps[1].Label)
	assert.InDelta(t, 1, steps[0].Output.Magnitude(), 1e-9)
}

func TestCompressionClassFourFails(t *testing.T) {
	// IPE330 in S355 has a class 4 web in compression
	res, tr, err := Compression("IPE330", "S355", units.KiloNewtons(500), nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var rangeErr *ec3.ApplicabilityRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "section class", rangeErr.Param)

	require.NotNil(t, tr)
	assert.Equal(t, stepper.Failed, tr.State())
	failed, ok := tr.FailedStep()
	require.True(t, ok)
	assert.Equal(t, "N_c,Rd", failed.Label)
}

func TestBendingClassOne(t *testing.T) {
	res, tr, err := Bending("IPE270", "S235", units.KiloNewtonMeters(100), nil)
	require.NoError(t, err)

	// class 1 in pure bending, so W = W_pl,y = 4.84e5 mm3
	// M_c,Rd = 4.84e5 * 235 / 1.00 = 1.1374e8 Nmm
	assert.InDelta(t, 1.0e8/1.1374e8, res.Utilization, 1e-6)
	assert.Equal(t, stepper.Pass, res.Verdict)

	steps := tr.Steps()
	require.Len(t, steps, 6)
	assert.InDelta(t, 1, steps[0].Output.Magnitude(), 1e-9)
	assert.Equal(t, "W_y", steps[1].Label)
	assert.InDelta(t, 4.84e5, steps[1].Output.Magnitude(), 1e-6)
}

func TestFlexuralBucklingMajorAxis(t *testing.T) {
	res, tr, err := FlexuralBuckling("IPE300", "S235", units.KiloNewtons(800), units.Meters(6), ec3.AxisY, nil)
	require.NoError(t, err)

	// N_cr = 4.811e6 N, lambda_bar = 0.5126, curve a, chi = 0.9203
	// N_b,Rd = 0.9203 * 5380 * 235 = 1.1635e6 N
	assert.InDelta(t, 0.6876, res.Utilization, 1e-3)
	assert.Equal(t, stepper.Pass, res.Verdict)

	byLabel := map[string]stepper.Step{}
	for _, s := range tr.Steps() {
		byLabel[s.Label] = s
	}
	assert.InDelta(t, 4.811e6, byLabel["N_cr"].Output.Magnitude(), 1e3)
	assert.InDelta(t, 0.5126, byLabel["lambda_bar"].Output.Magnitude(), 1e-3)
	assert.InDelta(t, 0.9203, byLabel["chi"].Output.Magnitude(), 1e-3)
	assert.Contains(t, byLabel["chi"].FormulaID, "curve a")
}

func TestFlexuralBucklingGermanAnnex(t *testing.T) {
	reg := germanAnnex(t)

	base, _, err := FlexuralBuckling("IPE300", "S235", units.KiloNewtons(800), units.Meters(6), ec3.AxisY, nil)
	require.NoError(t, err)
	german, _, err := FlexuralBuckling("IPE300", "S235", units.KiloNewtons(800), units.Meters(6), ec3.AxisY, reg)
	require.NoError(t, err)

	// DE raises gamma_M1 from 1.00 to 1.10
	assert.InDelta(t, base.Utilization*1.10, german.Utilization, 1e-9)
}

func TestFlexuralBucklingMinorAxisGoverns(t *testing.T) {
	major, _, err := FlexuralBuckling("IPE300", "S235", units.KiloNewtons(400), units.Meters(4), ec3.AxisY, nil)
	require.NoError(t, err)
	minor, _, err := FlexuralBuckling("IPE300", "S235", units.KiloNewtons(400), units.Meters(4), ec3.AxisZ, nil)
	require.NoError(t, err)

	assert.Greater(t, minor.Utilization, major.Utilization)
}

func TestClassifySection(t *testing.T) {
	class, tr, err := ClassifySection("IPE270", "S235", units.Newtons(0), units.NewtonMillimeters(0))
	require.NoError(t, err)
	assert.Equal(t, 2, class)
	assert.Equal(t, stepper.Open, tr.State())

	steps := tr.Steps()
	require.Len(t, steps, 1)
	require.Len(t, steps[0].Substeps, 2)
}

func TestClassifySectionPureBending(t *testing.T) {
	class, _, err := ClassifySection("IPE270", "S235", units.Newtons(0), units.KiloNewtonMeters(100))
	require.NoError(t, err)
	assert.Equal(t, 1, class)
}

func TestUtilizationStepDimensionless(t *testing.T) {
	res, _, err := Tension("HEB200", "S355", units.KiloNewtons(500), nil)
	require.NoError(t, err)
	steps := res.Trace.Steps()
	last := steps[len(steps)-1]
	assert.Equal(t, units.Dimensionless, last.Output.Kind())
}

func TestResolveUnknownGrade(t *testing.T) {
	_, tr, err := Compression("IPE200", "S999", units.KiloNewtons(10), nil)
	require.Error(t, err)
	assert.Nil(t, tr)
}
