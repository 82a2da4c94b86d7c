package annex

// Builtin returns a registry preloaded with the shipped national annex
// parameter sets. Further jurisdictions can be merged in from YAML files,
// and shipped values can be overridden the same way.
func Builtin() *Registry {
	r := NewRegistry()

	// DIN EN 1993-1-1/NA, partial factors per NDP to 6.1 note 2b
	r.Register("DE", map[string]Param{
		"EN1993-1-1_6.1_note_2b#gamma_M0": Number(1.00),
		"EN1993-1-1_6.1_note_2b#gamma_M1": Number(1.10),
		"EN1993-1-1_6.1_note_2b#gamma_M2": Number(1.25),
	})

	return r
}
