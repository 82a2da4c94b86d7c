package annex

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/steelcode/goec3/internal/units"
)

// dimensionedParam is the YAML shape of an override that carries a unit.
type dimensionedParam struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

// Parse reads national annex parameter sets from YAML. The document maps
// jurisdiction identifiers to key/value pairs; a value is either a plain
// number or a {value, unit} pair:
//
//	DE:
//	  "EN1993-1-1_6.1_note_2b#gamma_M1": 1.10
//	  "EN1993-1-1_3.2#f_y_max":
//	    value: 460
//	    unit: MPa
func Parse(data []byte) (map[string]map[string]Param, error) {
	var raw map[string]map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse annex file: %w", err)
	}

	sets := make(map[string]map[string]Param, len(raw))
	for jurisdiction, entries := range raw {
		params := make(map[string]Param, len(entries))
		for key, node := range entries {
			p, err := decodeParam(&node)
			if err != nil {
				return nil, fmt.Errorf("annex %q key %q: %w", jurisdiction, key, err)
			}
			params[key] = p
		}
		sets[jurisdiction] = params
	}
	return sets, nil
}

func decodeParam(node *yaml.Node) (Param, error) {
	if node.Kind == yaml.MappingNode {
		var dp dimensionedParam
		if err := node.Decode(&dp); err != nil {
			return Param{}, err
		}
		v, err := units.New(dp.Value, dp.Unit)
		if err != nil {
			return Param{}, err
		}
		return Dimensioned(v), nil
	}
	var num float64
	if err := node.Decode(&num); err != nil {
		return Param{}, err
	}
	return Number(num), nil
}

// LoadFile parses a YAML annex file and registers every parameter set it
// contains.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read annex file: %w", err)
	}
	sets, err := Parse(data)
	if err != nil {
		return err
	}
	for jurisdiction, params := range sets {
		r.Register(jurisdiction, params)
	}
	return nil
}
