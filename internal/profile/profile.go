// Package profile is the catalog of hot-rolled steel section geometries.
//
// Dimension tables per EN 10365 are embedded as CSV and parsed on first
// use. Table units follow the standard tables (mm for dimensions, cm based
// units for section properties, kg/m for mass); all values are converted to
// the canonical N-mm system on load.
package profile

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"unicode"

	"github.com/steelcode/goec3/internal/units"
)

//go:embed data/*.csv
var dataFS embed.FS

var sectionFiles = map[string]string{
	"IPE": "data/ipe_en10365.csv",
	"HEA": "data/hea_en10365.csv",
	"HEB": "data/heb_en10365.csv",
}

// RolledISection holds the geometry of one hot-rolled, doubly symmetric
// I-section. All dimensioned properties are canonical units.Values.
type RolledISection struct {
	Name string

	H  units.Value // height
	B  units.Value // flange width
	Tw units.Value // web thickness
	Tf units.Value // flange thickness
	R  units.Value // root radius

	MassPerMeter float64 // kg/m

	A   units.Value // gross area
	Avz units.Value // shear area, z axis

	Iy   units.Value // second moment of area, y axis
	Iyr  units.Value // radius of gyration, y axis
	Wely units.Value // elastic section modulus, y axis
	Wply units.Value // plastic section modulus, y axis

	Iz   units.Value // second moment of area, z axis
	Izr  units.Value // radius of gyration, z axis
	Welz units.Value // elastic section modulus, z axis
	Wplz units.Value // plastic section modulus, z axis
}

var (
	loadOnce sync.Once
	loadErr  error
	tables   map[string][]*RolledISection
	byName   map[string]*RolledISection
)

func load() {
	tables = make(map[string][]*RolledISection, len(sectionFiles))
	byName = make(map[string]*RolledISection)
	for sectionType, file := range sectionFiles {
		rows, err := parseFile(file)
		if err != nil {
			loadErr = fmt.Errorf("section table %s: %w", sectionType, err)
			return
		}
		tables[sectionType] = rows
		for _, s := range rows {
			byName[s.Name] = s
		}
	}
}

func parseFile(file string) ([]*RolledISection, error) {
	f, err := dataFS.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	sections := make([]*RolledISection, 0, len(records)-1)
	for _, rec := range records[1:] {
		num := func(name string) (float64, error) {
			i, ok := col[name]
			if !ok {
				return 0, fmt.Errorf("missing column %q", name)
			}
			return strconv.ParseFloat(rec[i], 64)
		}
		s := &RolledISection{Name: rec[col["name"]]}
		fields := []struct {
			col  string
			dst  *units.Value
			make func(float64) units.Value
		}{
			{"h", &s.H, units.Millimeters},
			{"b", &s.B, units.Millimeters},
			{"tw", &s.Tw, units.Millimeters},
			{"tf", &s.Tf, units.Millimeters},
			{"r", &s.R, units.Millimeters},
			{"A", &s.A, fromCm2},
			{"Avz", &s.Avz, fromCm2},
			{"Iy", &s.Iy, fromCm4},
			{"iy", &s.Iyr, fromCm},
			{"Wely", &s.Wely, fromCm3},
			{"Wply", &s.Wply, fromCm3},
			{"Iz", &s.Iz, fromCm4},
			{"iz", &s.Izr, fromCm},
			{"Welz", &s.Welz, fromCm3},
			{"Wplz", &s.Wplz, fromCm3},
		}
		for _, fld := range fields {
			v, err := num(fld.col)
			if err != nil {
				return nil, fmt.Errorf("section %q column %q: %w", s.Name, fld.col, err)
			}
			*fld.dst = fld.make(v)
		}
		mass, err := num("m")
		if err != nil {
			return nil, fmt.Errorf("section %q column m: %w", s.Name, err)
		}
		s.MassPerMeter = mass
		sections = append(sections, s)
	}
	return sections, nil
}

func fromCm(v float64) units.Value  { return units.Millimeters(v * 10) }
func fromCm2(v float64) units.Value { return units.SquareMillimeters(v * 1e2) }
func fromCm3(v float64) units.Value { return units.CubicMillimeters(v * 1e3) }
func fromCm4(v float64) units.Value { return units.QuarticMillimeters(v * 1e4) }

// SectionType returns the leading letters of a section name, e.g. "IPE" for
// "IPE300". Empty result means the name carries no size digits.
func SectionType(name string) string {
	for i, r := range name {
		if unicode.IsDigit(r) {
			return name[:i]
		}
	}
	return ""
}

// Types returns the supported section type prefixes.
func Types() []string {
	return []string{"HEA", "HEB", "IPE"}
}

// Get looks up a section by its full name, e.g. "IPE300" or "HEB200".
func Get(name string) (*RolledISection, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	sectionType := SectionType(name)
	if _, ok := sectionFiles[sectionType]; !ok {
		return nil, fmt.Errorf("invalid section type for section %q (supported: %v)", name, Types())
	}
	s, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("section %q not in %s table", name, sectionType)
	}
	return s, nil
}

// Sections returns the catalog rows of one section type in table order.
func Sections(sectionType string) ([]*RolledISection, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	rows, ok := tables[sectionType]
	if !ok {
		return nil, fmt.Errorf("invalid section type %q (supported: %v)", sectionType, Types())
	}
	out := make([]*RolledISection, len(rows))
	copy(out, rows)
	return out, nil
}

// properties addressable by Optimal.
var propertyAccess = map[string]func(*RolledISection) float64{
	"A":    func(s *RolledISection) float64 { return s.A.Magnitude() },
	"Avz":  func(s *RolledISection) float64 { return s.Avz.Magnitude() },
	"Iy":   func(s *RolledISection) float64 { return s.Iy.Magnitude() },
	"Iz":   func(s *RolledISection) float64 { return s.Iz.Magnitude() },
	"Wely": func(s *RolledISection) float64 { return s.Wely.Magnitude() },
	"Wply": func(s *RolledISection) float64 { return s.Wply.Magnitude() },
	"Welz": func(s *RolledISection) float64 { return s.Welz.Magnitude() },
	"Wplz": func(s *RolledISection) float64 { return s.Wplz.Magnitude() },
	"m":    func(s *RolledISection) float64 { return s.MassPerMeter },
	"h":    func(s *RolledISection) float64 { return s.H.Magnitude() },
}

// Optimal returns the lightest section of the given type whose property is
// at least the required value. The property is named by its table column
// ("A", "Iy", "Wply", ...); the required value must be in the property's
// canonical unit.
func Optimal(sectionType, property string, required float64) (*RolledISection, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	rows, ok := tables[sectionType]
	if !ok {
		return nil, fmt.Errorf("invalid section type %q (supported: %v)", sectionType, Types())
	}
	access, ok := propertyAccess[property]
	if !ok {
		return nil, fmt.Errorf("invalid property %q for optimal search", property)
	}
	var best *RolledISection
	for _, s := range rows {
		if access(s) < required {
			continue
		}
		if best == nil || s.MassPerMeter < best.MassPerMeter {
			best = s
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no %s section with %s >= %g", sectionType, property, required)
	}
	return best, nil
}
