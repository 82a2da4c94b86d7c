package stepper

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/steelcode/goec3/internal/units"
)

// TraceAlreadyFailedError reports an attempt to keep using a trace after one
// of its steps failed.
type TraceAlreadyFailedError struct {
	TraceID    uuid.UUID
	FailedStep string
	Rejected   string
}

func (e *TraceAlreadyFailedError) Error() string {
	return fmt.Sprintf("trace %s already failed at step %q: cannot record %q",
		e.TraceID, e.FailedStep, e.Rejected)
}

// TraceClosedError reports an attempt to modify a trace after Finalize.
type TraceClosedError struct {
	TraceID  uuid.UUID
	Rejected string
}

func (e *TraceClosedError) Error() string {
	return fmt.Sprintf("trace %s is closed: cannot record %q", e.TraceID, e.Rejected)
}

// IncompleteTraceError reports a Finalize call on a trace whose last step
// did not produce a dimensionless utilization ratio.
type IncompleteTraceError struct {
	TraceID  uuid.UUID
	LastStep string
	LastKind units.Kind
	Reason   string
}

func (e *IncompleteTraceError) Error() string {
	if e.LastStep == "" {
		return fmt.Sprintf("incomplete trace %s: %s", e.TraceID, e.Reason)
	}
	return fmt.Sprintf("incomplete trace %s: %s (last step %q produced %s)",
		e.TraceID, e.Reason, e.LastStep, e.LastKind)
}
