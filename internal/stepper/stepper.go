// Package stepper records verification runs as ordered, auditable traces.
//
// A check is executed as a sequence of named steps, each invoking one
// formula and keeping its label, inputs and output. The final step must
// yield the dimensionless utilization ratio; Finalize compares it against
// the threshold and closes the trace. A step failure is captured in the
// trace instead of being thrown past it, so a failed verification still
// explains which step broke and why.
//
// State machine: open -> failed (step error, terminal)
//
//	open -> closed (finalize, terminal)
//
// Failed and closed traces are immutable. A trace is owned by a single
// caller while open; once failed or closed it may be shared freely for
// reads.
package stepper

import (
	"github.com/google/uuid"

	"github.com/steelcode/goec3/internal/units"
)

// State is the lifecycle phase of a trace.
type State int

const (
	Open State = iota
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// NamedValue is a labelled input to a computation step.
type NamedValue struct {
	Name  string
	Value units.Value
}

// Named pairs a label with a value.
func Named(name string, v units.Value) NamedValue {
	return NamedValue{Name: name, Value: v}
}

// ComputeFn is the uniform shape every formula must satisfy at the stepper
// boundary: dimensioned inputs to one dimensioned output or an explicit
// failure.
type ComputeFn func(inputs []NamedValue) (units.Value, error)

// Step records one formula invocation inside a trace.
type Step struct {
	Label     string
	FormulaID string
	Inputs    []NamedValue
	Output    units.Value
	Err       error
	Substeps  []Step
}

// Trace is the append-only record of one verification run.
type Trace struct {
	id    uuid.UUID
	state State
	steps []Step
}

// Begin creates an empty open trace.
func Begin() *Trace {
	return &Trace{id: uuid.New(), state: Open}
}

// ID returns the trace identifier.
func (t *Trace) ID() uuid.UUID { return t.id }

// State returns the current lifecycle state.
func (t *Trace) State() State { return t.state }

// Steps returns a copy of the recorded steps for reporting.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}

// FailedStep returns the step that failed the trace, if any.
func (t *Trace) FailedStep() (Step, bool) {
	if t.state != Failed || len(t.steps) == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// RecordStep invokes fn, appends the step and returns the output for use in
// later steps. If fn fails the step is recorded with the failure, the trace
// transitions to failed, and the formula error is returned. Recording on a
// failed or closed trace is rejected.
func (t *Trace) RecordStep(label, formulaID string, inputs []NamedValue, fn ComputeFn) (units.Value, error) {
	if err := t.writable(label); err != nil {
		return units.Value{}, err
	}
	out, err := fn(inputs)
	step := Step{Label: label, FormulaID: formulaID, Inputs: inputs, Output: out, Err: err}
	t.steps = append(t.steps, step)
	if err != nil {
		t.state = Failed
		return units.Value{}, err
	}
	return out, nil
}

// RecordGroup runs fn against a child trace and appends its steps as
// substeps of a single grouping step whose output is the child's final
// result. A failure inside the group fails the parent the same way a flat
// step failure does.
func (t *Trace) RecordGroup(label, formulaID string, inputs []NamedValue, fn func(sub *Trace) (units.Value, error)) (units.Value, error) {
	if err := t.writable(label); err != nil {
		return units.Value{}, err
	}
	sub := Begin()
	out, err := fn(sub)
	step := Step{
		Label:     label,
		FormulaID: formulaID,
		Inputs:    inputs,
		Output:    out,
		Err:       err,
		Substeps:  sub.steps,
	}
	t.steps = append(t.steps, step)
	if err != nil {
		t.state = Failed
		return units.Value{}, err
	}
	return out, nil
}

func (t *Trace) writable(label string) error {
	switch t.state {
	case Failed:
		failedLabel := ""
		if s, ok := t.FailedStep(); ok {
			failedLabel = s.Label
		}
		return &TraceAlreadyFailedError{TraceID: t.id, FailedStep: failedLabel, Rejected: label}
	case Closed:
		return &TraceClosedError{TraceID: t.id, Rejected: label}
	default:
		return nil
	}
}

// Verdict is the binary outcome of a finalized verification.
type Verdict string

const (
	Pass Verdict = "pass"
	Fail Verdict = "fail"
)

// Result is the closed outcome of a verification: the utilization ratio,
// the verdict derived from it, and the full trace for reporting.
type Result struct {
	Utilization float64
	Threshold   float64
	Verdict     Verdict
	Trace       *Trace
}

// Finalize closes an open trace. The last recorded step must have produced
// a dimensionless utilization; the verdict is pass iff utilization is less
// than or equal to threshold.
func (t *Trace) Finalize(threshold float64) (*Result, error) {
	switch t.state {
	case Failed:
		failedLabel := ""
		if s, ok := t.FailedStep(); ok {
			failedLabel = s.Label
		}
		return nil, &TraceAlreadyFailedError{TraceID: t.id, FailedStep: failedLabel, Rejected: "finalize"}
	case Closed:
		return nil, &TraceClosedError{TraceID: t.id, Rejected: "finalize"}
	}
	if len(t.steps) == 0 {
		return nil, &IncompleteTraceError{TraceID: t.id, Reason: "no steps recorded"}
	}
	last := t.steps[len(t.steps)-1]
	if last.Output.Kind() != units.Dimensionless {
		return nil, &IncompleteTraceError{
			TraceID:  t.id,
			LastStep: last.Label,
			LastKind: last.Output.Kind(),
			Reason:   "final step output is not dimensionless",
		}
	}
	t.state = Closed
	utilization := last.Output.Magnitude()
	verdict := Fail
	if utilization <= threshold {
		verdict = Pass
	}
	return &Result{
		Utilization: utilization,
		Threshold:   threshold,
		Verdict:     verdict,
		Trace:       t,
	}, nil
}
