package stepper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcode/goec3/internal/units"
)

func constant(v units.Value) ComputeFn {
	return func([]NamedValue) (units.Value, error) { return v, nil }
}

func failing(err error) ComputeFn {
	return func([]NamedValue) (units.Value, error) { return units.Value{}, err }
}

func TestTrace_PassScenario(t *testing.T) {
	tr := Begin()
	require.Equal(t, Open, tr.State())

	nEd, err := tr.RecordStep("N_Ed", "input", nil, constant(units.KiloNewtons(100)))
	require.NoError(t, err)

	nRd, err := tr.RecordStep("N_Rd", "EN1993-1-1 §6.2.3", nil, constant(units.KiloNewtons(120)))
	require.NoError(t, err)

	_, err = tr.RecordStep("utilization", "N_Ed/N_Rd", []NamedValue{
		Named("N_Ed", nEd), Named("N_Rd", nRd),
	}, func(in []NamedValue) (units.Value, error) {
		return in[0].Value.Div(in[1].Value)
	})
	require.NoError(t, err)

	res, err := tr.Finalize(1.0)
	require.NoError(t, err)
	assert.Equal(t, Pass, res.Verdict)
	assert.InDelta(t, 0.8333, res.Utilization, 1e-4)
	assert.Equal(t, Closed, tr.State())
	assert.Len(t, tr.Steps(), 3)
}

func TestTrace_VerdictBoundary(t *testing.T) {
	tr := Begin()
	_, err := tr.RecordStep("utilization", "ratio", nil, constant(units.Ratio(1.0)))
	require.NoError(t, err)

	res, err := tr.Finalize(1.0)
	require.NoError(t, err)
	assert.Equal(t, Pass, res.Verdict, "ratio equal to threshold passes")
}

func TestTrace_FailVerdict(t *testing.T) {
	tr := Begin()
	_, err := tr.RecordStep("utilization", "ratio", nil, constant(units.Ratio(1.07)))
	require.NoError(t, err)

	res, err := tr.Finalize(1.0)
	require.NoError(t, err)
	assert.Equal(t, Fail, res.Verdict)
	assert.InDelta(t, 1.07, res.Utilization, 1e-12)
}

func TestTrace_StepFailureIsRecorded(t *testing.T) {
	boom := errors.New("section outside applicability range")
	tr := Begin()
	_, err := tr.RecordStep("lambda_1", "EN1993-2 §9.5.2", nil, failing(boom))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Failed, tr.State())

	// the failure is part of the record
	step, ok := tr.FailedStep()
	require.True(t, ok)
	assert.Equal(t, "lambda_1", step.Label)
	assert.ErrorIs(t, step.Err, boom)

	// no further steps may be recorded
	_, err = tr.RecordStep("next", "x", nil, constant(units.Ratio(0)))
	var af *TraceAlreadyFailedError
	require.ErrorAs(t, err, &af)
	assert.Equal(t, "lambda_1", af.FailedStep)
	assert.Equal(t, "next", af.Rejected)

	// finalize is rejected the same way
	_, err = tr.Finalize(1.0)
	require.ErrorAs(t, err, &af)
	assert.Len(t, tr.Steps(), 1, "failed step stays recorded, rejected ones do not")
}

func TestTrace_RecordAfterClose(t *testing.T) {
	tr := Begin()
	_, err := tr.RecordStep("utilization", "ratio", nil, constant(units.Ratio(0.5)))
	require.NoError(t, err)
	_, err = tr.Finalize(1.0)
	require.NoError(t, err)

	_, err = tr.RecordStep("late", "x", nil, constant(units.Ratio(0)))
	var tc *TraceClosedError
	require.ErrorAs(t, err, &tc)

	_, err = tr.Finalize(1.0)
	require.ErrorAs(t, err, &tc)
}

func TestTrace_FinalizeEmpty(t *testing.T) {
	tr := Begin()
	_, err := tr.Finalize(1.0)
	var inc *IncompleteTraceError
	require.ErrorAs(t, err, &inc)
}

func TestTrace_FinalizeNonDimensionless(t *testing.T) {
	tr := Begin()
	_, err := tr.RecordStep("N_Rd", "resistance", nil, constant(units.KiloNewtons(120)))
	require.NoError(t, err)

	_, err = tr.Finalize(1.0)
	var inc *IncompleteTraceError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, "N_Rd", inc.LastStep)
	assert.Equal(t, units.Force, inc.LastKind)
	assert.Equal(t, Open, tr.State(), "failed finalize leaves the trace open")
}

func TestTrace_RecordGroup(t *testing.T) {
	tr := Begin()
	out, err := tr.RecordGroup("classification", "EN1993-1-1 §5.5", nil,
		func(sub *Trace) (units.Value, error) {
			if _, err := sub.RecordStep("flange", "Tab 5.2", nil, constant(units.Ratio(1))); err != nil {
				return units.Value{}, err
			}
			return sub.RecordStep("web", "Tab 5.2", nil, constant(units.Ratio(2)))
		})
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Magnitude())

	steps := tr.Steps()
	require.Len(t, steps, 1)
	require.Len(t, steps[0].Substeps, 2)
	assert.Equal(t, "flange", steps[0].Substeps[0].Label)
	assert.Equal(t, "web", steps[0].Substeps[1].Label)
}

func TestTrace_RecordGroupFailure(t *testing.T) {
	boom := errors.New("bad input")
	tr := Begin()
	_, err := tr.RecordGroup("classification", "EN1993-1-1 §5.5", nil,
		func(sub *Trace) (units.Value, error) {
			return sub.RecordStep("flange", "Tab 5.2", nil, failing(boom))
		})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, Failed, tr.State())
}

func TestTrace_UniqueIDs(t *testing.T) {
	a, b := Begin(), Begin()
	assert.NotEqual(t, a.ID(), b.ID())
}
