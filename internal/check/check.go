// Package check runs complete Eurocode 3 member verifications.
//
// Every check resolves its section and material from the catalogs, executes
// the governing clause formulas step by step against a trace, and finalizes
// with the utilization ratio. The trace is returned alongside the result so
// reports can show every intermediate quantity; on a failed check the trace
// still records which step broke.
package check

import (
	"github.com/steelcode/goec3/internal/profile"
	"github.com/steelcode/goec3/internal/steel"
	"github.com/steelcode/goec3/internal/stepper"
	"github.com/steelcode/goec3/internal/units"
)

// UtilizationLimit is the pass/fail threshold for all checks.
const UtilizationLimit = 1.0

// member bundles the resolved inputs shared by all member checks.
type member struct {
	section  *profile.RolledISection
	material steel.Material
}

// resolve loads section and material. The thickness-dependent strength is
// selected from the section's flange thickness.
func resolve(sectionName, grade string) (member, error) {
	s, err := profile.Get(sectionName)
	if err != nil {
		return member{}, err
	}
	tf, err := s.Tf.In("mm")
	if err != nil {
		return member{}, err
	}
	m, err := steel.Get(grade, tf <= 40)
	if err != nil {
		return member{}, err
	}
	return member{section: s, material: m}, nil
}

// given wraps an already-known value as a compute step, so inputs and
// catalog properties appear in the trace like every derived quantity.
func given(v units.Value) stepper.ComputeFn {
	return func([]stepper.NamedValue) (units.Value, error) { return v, nil }
}

// utilization divides demand by resistance.
func utilization(demand, resistance units.Value) stepper.ComputeFn {
	return func([]stepper.NamedValue) (units.Value, error) {
		return demand.Abs().Div(resistance)
	}
}

func finalize(tr *stepper.Trace) (*stepper.Result, *stepper.Trace, error) {
	res, err := tr.Finalize(UtilizationLimit)
	if err != nil {
		return nil, tr, err
	}
	return res, tr, nil
}
