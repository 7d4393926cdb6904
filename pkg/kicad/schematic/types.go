// Package schematic reads KiCad schematic files (.kicad_sch, version
// 6.0 and later) far enough to enumerate the placed components and
// their properties. It deliberately ignores wiring, graphics and sheet
// hierarchy; the interesting output is the component list, in
// particular the resistors and their value fields.
package schematic

// Schematic is the parsed document.
type Schematic struct {
	Version      int    // File format version
	Generator    string // Generator info (e.g., "eeschema")
	GeneratorVer string // Generator version
	UUID         string
	Paper        string // Paper size (e.g., "A4")
	TitleBlock   TitleBlock
	Symbols      []Symbol // Symbol instances on the schematic
}

// TitleBlock contains schematic title block information
type TitleBlock struct {
	Title    string
	Date     string
	Revision string
	Company  string
}

// Symbol is a placed component instance.
type Symbol struct {
	LibID      string
	Unit       int
	InBom      bool
	DNP        bool
	Properties map[string]string
}

// Reference returns the reference designator (R1, C3), or "" when the
// property is missing.
func (s Symbol) Reference() string {
	return s.Properties["Reference"]
}

// Value returns the value field, for a resistor typically an RKM code
// like "4k7".
func (s Symbol) Value() string {
	return s.Properties["Value"]
}

// Property returns a named property.
func (s Symbol) Property(key string) (string, bool) {
	v, ok := s.Properties[key]
	return v, ok
}

// GetSymbol returns the symbol with the given reference designator, or
// nil if the schematic has none.
func (sch *Schematic) GetSymbol(reference string) *Symbol {
	for i := range sch.Symbols {
		if sch.Symbols[i].Reference() == reference {
			return &sch.Symbols[i]
		}
	}
	return nil
}

// GetAllReferences returns all reference designators in file order.
func (sch *Schematic) GetAllReferences() []string {
	refs := make([]string, 0, len(sch.Symbols))
	for _, s := range sch.Symbols {
		if ref := s.Reference(); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}
