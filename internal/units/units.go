// Package units implements dimensioned values for structural calculations.
//
// Every Value carries a quantity kind (length, force, stress, ...) and a
// magnitude stored in one canonical unit per kind. The canonical units form
// a consistent N-mm system, so derived quantities need no hidden conversion
// factors:
//   - length mm, area mm², volume/section modulus mm³, second moment mm⁴
//   - force N, moment N·mm, stress MPa (= N/mm²)
//
// Arithmetic between values is checked against the kind composition table;
// incompatible operands return an error instead of a silently wrong number.
package units

import (
	"fmt"
	"math"
)

// Kind identifies the physical quantity category of a Value.
type Kind int

const (
	Dimensionless Kind = iota
	Length
	Area
	Volume
	SecondMomentOfArea
	Force
	Moment
	Stress
)

var kindNames = map[Kind]string{
	Dimensionless:      "dimensionless",
	Length:             "length",
	Area:               "area",
	Volume:             "volume",
	SecondMomentOfArea: "second moment of area",
	Force:              "force",
	Moment:             "moment",
	Stress:             "stress",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// CanonicalUnit returns the label of the unit in which magnitudes of this
// kind are stored internally.
func (k Kind) CanonicalUnit() string {
	switch k {
	case Length:
		return "mm"
	case Area:
		return "mm2"
	case Volume:
		return "mm3"
	case SecondMomentOfArea:
		return "mm4"
	case Force:
		return "N"
	case Moment:
		return "Nmm"
	case Stress:
		return "MPa"
	default:
		return "-"
	}
}

// unitDef maps a unit label to its kind and the factor converting one of
// that unit into the kind's canonical unit.
type unitDef struct {
	kind   Kind
	factor float64
}

var unitTable = map[string]unitDef{
	// length, canonical mm
	"mm": {Length, 1},
	"cm": {Length, 10},
	"m":  {Length, 1000},

	// area, canonical mm²
	"mm2": {Area, 1},
	"cm2": {Area, 1e2},
	"m2":  {Area, 1e6},

	// volume / section modulus, canonical mm³
	"mm3": {Volume, 1},
	"cm3": {Volume, 1e3},
	"m3":  {Volume, 1e9},

	// second moment of area, canonical mm⁴
	"mm4": {SecondMomentOfArea, 1},
	"cm4": {SecondMomentOfArea, 1e4},
	"m4":  {SecondMomentOfArea, 1e12},

	// force, canonical N
	"N":  {Force, 1},
	"kN": {Force, 1e3},
	"MN": {Force, 1e6},

	// moment, canonical N·mm
	"Nmm": {Moment, 1},
	"Nm":  {Moment, 1e3},
	"kNm": {Moment, 1e6},

	// stress, canonical MPa = N/mm²
	"MPa":    {Stress, 1},
	"N/mm^2": {Stress, 1},
	"GPa":    {Stress, 1e3},
	"kPa":    {Stress, 1e-3},
	"Pa":     {Stress, 1e-6},

	// dimensionless ratio
	"-": {Dimensionless, 1},
}

// mulTable holds the kind composition rules for multiplication. Both operand
// orders are listed. Dimensionless is handled as identity before lookup.
var mulTable = map[[2]Kind]Kind{
	{Length, Length}: Area,
	{Length, Area}:   Volume,
	{Area, Length}:   Volume,
	{Length, Volume}: SecondMomentOfArea,
	{Volume, Length}: SecondMomentOfArea,
	{Area, Area}:     SecondMomentOfArea,
	{Force, Length}:  Moment,
	{Length, Force}:  Moment,
	{Stress, Area}:   Force,
	{Area, Stress}:   Force,
	{Stress, Volume}: Moment,
	{Volume, Stress}: Moment,
}

// divTable holds the kind composition rules for division of unlike kinds.
// Same-kind division always yields Dimensionless and is handled separately.
var divTable = map[[2]Kind]Kind{
	{Area, Length}:               Length,
	{Volume, Length}:             Area,
	{Volume, Area}:               Length,
	{SecondMomentOfArea, Length}: Volume,
	{SecondMomentOfArea, Area}:   Area,
	{SecondMomentOfArea, Volume}: Length,
	{Force, Area}:                Stress,
	{Force, Stress}:              Area,
	{Moment, Length}:             Force,
	{Moment, Force}:              Length,
	{Moment, Volume}:             Stress,
	{Moment, Stress}:             Volume,
}

// Value is an immutable dimensioned quantity. The zero Value is a
// dimensionless zero.
type Value struct {
	mag  float64
	kind Kind
}

// New builds a Value from a magnitude and a unit label. The kind is inferred
// from the label; unregistered labels return UnknownUnitError.
func New(magnitude float64, unit string) (Value, error) {
	def, ok := unitTable[unit]
	if !ok {
		return Value{}, &UnknownUnitError{Unit: unit}
	}
	return Value{mag: magnitude * def.factor, kind: def.kind}, nil
}

// Of builds a Value of the given kind with the magnitude already expressed
// in the kind's canonical unit.
func Of(magnitude float64, kind Kind) Value {
	return Value{mag: magnitude, kind: kind}
}

// Convenience constructors for common input quantities.

func Millimeters(v float64) Value        { return Value{v, Length} }
func Meters(v float64) Value             { return Value{v * 1000, Length} }
func SquareMillimeters(v float64) Value  { return Value{v, Area} }
func CubicMillimeters(v float64) Value   { return Value{v, Volume} }
func QuarticMillimeters(v float64) Value { return Value{v, SecondMomentOfArea} }
func Newtons(v float64) Value            { return Value{v, Force} }
func KiloNewtons(v float64) Value        { return Value{v * 1e3, Force} }
func NewtonMillimeters(v float64) Value  { return Value{v, Moment} }
func KiloNewtonMeters(v float64) Value   { return Value{v * 1e6, Moment} }
func MPa(v float64) Value                { return Value{v, Stress} }
func Ratio(v float64) Value              { return Value{v, Dimensionless} }

// Kind returns the quantity kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Magnitude returns the numeric magnitude in the kind's canonical unit.
func (v Value) Magnitude() float64 { return v.mag }

// IsZero reports whether the magnitude is exactly zero.
func (v Value) IsZero() bool { return v.mag == 0 }

// In converts the value to the requested unit and returns the magnitude
// expressed in that unit. The unit must be registered for the value's kind.
func (v Value) In(unit string) (float64, error) {
	def, ok := unitTable[unit]
	if !ok || def.kind != v.kind {
		return 0, &UnknownUnitError{Unit: unit, Kind: v.kind}
	}
	return v.mag / def.factor, nil
}

// Add returns v + o. Both operands must share the same kind.
func (v Value) Add(o Value) (Value, error) {
	if v.kind != o.kind {
		return Value{}, &UnitMismatchError{Op: "+", Left: v.kind, Right: o.kind}
	}
	return Value{v.mag + o.mag, v.kind}, nil
}

// Sub returns v - o. Both operands must share the same kind.
func (v Value) Sub(o Value) (Value, error) {
	if v.kind != o.kind {
		return Value{}, &UnitMismatchError{Op: "-", Left: v.kind, Right: o.kind}
	}
	return Value{v.mag - o.mag, v.kind}, nil
}

// Mul returns v × o with the composed kind from the multiplication table.
func (v Value) Mul(o Value) (Value, error) {
	if v.kind == Dimensionless {
		return Value{v.mag * o.mag, o.kind}, nil
	}
	if o.kind == Dimensionless {
		return Value{v.mag * o.mag, v.kind}, nil
	}
	kind, ok := mulTable[[2]Kind{v.kind, o.kind}]
	if !ok {
		return Value{}, &UndefinedUnitOperationError{Op: "*", Left: v.kind, Right: o.kind}
	}
	return Value{v.mag * o.mag, kind}, nil
}

// Div returns v ÷ o. Same-kind division yields a dimensionless ratio; other
// combinations come from the division table. A zero-magnitude divisor is an
// error so that verification ratios can never become non-finite.
func (v Value) Div(o Value) (Value, error) {
	if o.mag == 0 {
		return Value{}, &DivisionByZeroError{Numerator: v.kind, Denominator: o.kind}
	}
	if v.kind == o.kind {
		return Value{v.mag / o.mag, Dimensionless}, nil
	}
	if o.kind == Dimensionless {
		return Value{v.mag / o.mag, v.kind}, nil
	}
	kind, ok := divTable[[2]Kind{v.kind, o.kind}]
	if !ok {
		return Value{}, &UndefinedUnitOperationError{Op: "/", Left: v.kind, Right: o.kind}
	}
	return Value{v.mag / o.mag, kind}, nil
}

// Pow raises the value to a positive integer power. Only kinds that compose
// with themselves support this (length² = area, length³ = volume, ...).
func (v Value) Pow(n int) (Value, error) {
	if n < 1 {
		return Value{}, &UndefinedUnitOperationError{Op: fmt.Sprintf("^%d", n), Left: v.kind, Right: v.kind}
	}
	out := v
	var err error
	for i := 1; i < n; i++ {
		out, err = out.Mul(v)
		if err != nil {
			return Value{}, &UndefinedUnitOperationError{Op: fmt.Sprintf("^%d", n), Left: v.kind, Right: v.kind}
		}
	}
	return out, nil
}

// MulScalar scales the value by a plain number, keeping the kind.
func (v Value) MulScalar(s float64) Value {
	return Value{v.mag * s, v.kind}
}

// DivScalar divides the value by a plain number, keeping the kind.
func (v Value) DivScalar(s float64) (Value, error) {
	if s == 0 {
		return Value{}, &DivisionByZeroError{Numerator: v.kind, Denominator: Dimensionless}
	}
	return Value{v.mag / s, v.kind}, nil
}

// Abs returns the value with a non-negative magnitude.
func (v Value) Abs() Value {
	return Value{math.Abs(v.mag), v.kind}
}

// Neg returns the value with the sign of the magnitude flipped.
func (v Value) Neg() Value {
	return Value{-v.mag, v.kind}
}

// Compare returns -1, 0 or +1 ordering v against o. Both operands must
// share the same kind.
func (v Value) Compare(o Value) (int, error) {
	if v.kind != o.kind {
		return 0, &UnitMismatchError{Op: "cmp", Left: v.kind, Right: o.kind}
	}
	switch {
	case v.mag < o.mag:
		return -1, nil
	case v.mag > o.mag:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports v < o for same-kind operands.
func (v Value) Less(o Value) (bool, error) {
	c, err := v.Compare(o)
	return c < 0, err
}

// Equal reports exact equality of magnitude and kind.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.mag == o.mag
}

// IsClose reports approximate equality of two same-kind values within the
// given relative and absolute tolerances.
func IsClose(a, b Value, rtol, atol float64) (bool, error) {
	if a.kind != b.kind {
		return false, &UnitMismatchError{Op: "isclose", Left: a.kind, Right: b.kind}
	}
	return math.Abs(a.mag-b.mag) <= atol+rtol*math.Abs(b.mag), nil
}

// String renders the magnitude in the canonical unit, e.g. "355 MPa".
func (v Value) String() string {
	if v.kind == Dimensionless {
		return fmt.Sprintf("%g", v.mag)
	}
	return fmt.Sprintf("%g %s", v.mag, v.kind.CanonicalUnit())
}
