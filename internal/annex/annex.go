// Package annex resolves nationally determined parameters (NDPs).
//
// Eurocode formulas use base-standard values unless the configured national
// annex overrides them. A Registry holds one parameter set per jurisdiction
// and at most one active selection; lookups on the active set fall back to
// the caller-supplied base value, so formulas stay usable with no annex
// configured at all.
//
// A Registry is populated at startup and read-only afterwards. It carries no
// locking; concurrent Register/Select calls need external synchronisation.
package annex

import (
	"fmt"
	"sort"

	"github.com/steelcode/goec3/internal/units"
)

// Param is a single national annex override, either a plain number or a
// dimensioned value.
type Param struct {
	num         float64
	val         units.Value
	dimensioned bool
}

// Number builds a plain numeric parameter.
func Number(v float64) Param {
	return Param{num: v}
}

// Dimensioned builds a parameter carrying a dimensioned value.
func Dimensioned(v units.Value) Param {
	return Param{val: v, dimensioned: true}
}

// Float returns the parameter as a plain number. Dimensioned parameters
// yield their canonical magnitude.
func (p Param) Float() float64 {
	if p.dimensioned {
		return p.val.Magnitude()
	}
	return p.num
}

// Value returns the parameter as a dimensioned value. Plain numbers are
// reported as dimensionless ratios.
func (p Param) Value() units.Value {
	if p.dimensioned {
		return p.val
	}
	return units.Ratio(p.num)
}

// Registry maps jurisdiction identifiers to their parameter sets and tracks
// which jurisdiction is active.
type Registry struct {
	sets   map[string]map[string]Param
	active string
}

// NewRegistry returns an empty registry with no active annex.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]map[string]Param)}
}

// Register adds or replaces the parameter set for a jurisdiction.
// Last write wins. The parameters are copied, the caller's map stays
// untouched by later registrations.
func (r *Registry) Register(jurisdiction string, params map[string]Param) {
	set := make(map[string]Param, len(params))
	for k, v := range params {
		set[k] = v
	}
	r.sets[jurisdiction] = set
}

// Select makes a registered jurisdiction the active annex for subsequent
// lookups. The empty string clears the selection, restoring pure
// base-standard behaviour.
func (r *Registry) Select(jurisdiction string) error {
	if jurisdiction == "" {
		r.active = ""
		return nil
	}
	if _, ok := r.sets[jurisdiction]; !ok {
		return &UnknownAnnexError{Jurisdiction: jurisdiction, Registered: r.Jurisdictions()}
	}
	r.active = jurisdiction
	return nil
}

// Active returns the identifier of the selected annex, or "" if none.
func (r *Registry) Active() string {
	if r == nil {
		return ""
	}
	return r.active
}

// Lookup returns the active annex's value for key as a plain number, or def
// when no annex is selected or the key is absent. A nil registry always
// resolves to the default, so formula code never needs a nil check.
func (r *Registry) Lookup(key string, def float64) float64 {
	p, ok := r.lookup(key)
	if !ok {
		return def
	}
	return p.Float()
}

// LookupValue is Lookup for dimensioned defaults.
func (r *Registry) LookupValue(key string, def units.Value) units.Value {
	p, ok := r.lookup(key)
	if !ok {
		return def
	}
	return p.Value()
}

func (r *Registry) lookup(key string) (Param, bool) {
	if r == nil || r.active == "" {
		return Param{}, false
	}
	p, ok := r.sets[r.active][key]
	return p, ok
}

// Jurisdictions returns the registered jurisdiction identifiers in sorted
// order.
func (r *Registry) Jurisdictions() []string {
	ids := make([]string, 0, len(r.sets))
	for id := range r.sets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Parameters returns a copy of the parameter set registered for a
// jurisdiction.
func (r *Registry) Parameters(jurisdiction string) (map[string]Param, error) {
	set, ok := r.sets[jurisdiction]
	if !ok {
		return nil, &UnknownAnnexError{Jurisdiction: jurisdiction, Registered: r.Jurisdictions()}
	}
	out := make(map[string]Param, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out, nil
}

// UnknownAnnexError reports selection of a jurisdiction that was never
// registered.
type UnknownAnnexError struct {
	Jurisdiction string
	Registered   []string
}

func (e *UnknownAnnexError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("unknown national annex %q: no annexes registered", e.Jurisdiction)
	}
	return fmt.Sprintf("unknown national annex %q: registered annexes are %v", e.Jurisdiction, e.Registered)
}
