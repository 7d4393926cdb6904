package schematic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
	"github.com/OpenTraceLab/OpenTraceResistor/pkg/rkm"
)

// ResistorRef ties a schematic symbol to its color code. When the
// value or a property cannot be encoded, Err records why and the code
// fields stay zero; callers report such entries instead of dropping
// them.
type ResistorRef struct {
	Reference string
	Value     string  // raw value field, e.g. "4k7"
	Ohms      float64 // parsed value
	Tolerance *float64
	TCR       *uint32
	DNP       bool
	Code      resistor.Resistor
	Err       error
}

// Resistors returns every resistor symbol (lib_id Device:R and its
// variants) with its value translated to a band sequence. Three-band
// codes are used when the symbol has no Tolerance property.
func (sch *Schematic) Resistors() []ResistorRef {
	var refs []ResistorRef
	for _, sym := range sch.Symbols {
		if !isResistor(sym.LibID) {
			continue
		}
		refs = append(refs, resolveResistor(sym))
	}
	return refs
}

func isResistor(libID string) bool {
	return libID == "Device:R" || strings.HasPrefix(libID, "Device:R_")
}

func resolveResistor(sym Symbol) ResistorRef {
	ref := ResistorRef{
		Reference: sym.Reference(),
		Value:     sym.Value(),
		DNP:       sym.DNP,
	}

	ohms, err := rkm.Parse(ref.Value)
	if err != nil {
		ref.Err = err
		return ref
	}
	ref.Ohms = ohms

	if raw, ok := sym.Property("Tolerance"); ok && raw != "" {
		tol, err := parseTolerance(raw)
		if err != nil {
			ref.Err = err
			return ref
		}
		ref.Tolerance = &tol
	}

	if raw, ok := sym.Property("TCR"); ok && raw != "" {
		tcr, err := parseTCR(raw)
		if err != nil {
			ref.Err = err
			return ref
		}
		ref.TCR = &tcr
	}

	code, err := resistor.Determine(ohms, ref.Tolerance, ref.TCR)
	if err != nil {
		ref.Err = err
		return ref
	}
	ref.Code = code
	return ref
}

// parseTolerance reads a Tolerance property such as "1%", "±5%" or
// "0.5" into percent.
func parseTolerance(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "±")
	s = strings.TrimSuffix(s, "%")
	tol, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("schematic: bad tolerance %q: %w", raw, err)
	}
	return tol, nil
}

// parseTCR reads a TCR property such as "50", "50ppm" or "50 ppm/K"
// into ppm/K.
func parseTCR(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "ppm/K")
	s = strings.TrimSuffix(s, "ppm")
	s = strings.TrimSpace(s)
	tcr, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("schematic: bad tcr %q: %w", raw, err)
	}
	return uint32(tcr), nil
}
