package units

import "fmt"

// UnitMismatchError reports addition, subtraction or comparison between
// values of different kinds.
type UnitMismatchError struct {
	Op    string
	Left  Kind
	Right Kind
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("unit mismatch: %s not defined between %s and %s", e.Op, e.Left, e.Right)
}

// UndefinedUnitOperationError reports a multiplication or division whose
// operand kinds have no entry in the composition table.
type UndefinedUnitOperationError struct {
	Op    string
	Left  Kind
	Right Kind
}

func (e *UndefinedUnitOperationError) Error() string {
	return fmt.Sprintf("undefined unit operation: %s %s %s has no composed kind", e.Left, e.Op, e.Right)
}

// UnknownUnitError reports a unit label that is not registered, or not
// registered for the requested kind.
type UnknownUnitError struct {
	Unit string
	Kind Kind
}

func (e *UnknownUnitError) Error() string {
	if e.Kind == Dimensionless {
		return fmt.Sprintf("unknown unit %q", e.Unit)
	}
	return fmt.Sprintf("unknown unit %q for kind %s", e.Unit, e.Kind)
}

// DivisionByZeroError reports division by a zero-magnitude value.
// Propagating infinity into a utilization ratio would hide the defect, so
// the operation fails instead.
type DivisionByZeroError struct {
	Numerator   Kind
	Denominator Kind
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: %s / zero-magnitude %s", e.Numerator, e.Denominator)
}
