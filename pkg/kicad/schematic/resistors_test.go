package schematic

import (
	"reflect"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/resistor"
)

const resistorSheet = `(kicad_sch
	(version 20231120)
	(generator "eeschema")
	(uuid sheet-uuid)
	(paper "A4")
	(symbol (lib_id "Device:R")
		(property "Reference" "R1")
		(property "Value" "4k7")
		(property "Tolerance" "5%")
	)
	(symbol (lib_id "Device:R_Small")
		(property "Reference" "R2")
		(property "Value" "470")
	)
	(symbol (lib_id "Device:C")
		(property "Reference" "C1")
		(property "Value" "100n")
	)
	(symbol (lib_id "Device:R")
		(dnp yes)
		(property "Reference" "R3")
		(property "Value" "56R")
		(property "Tolerance" "±1%")
		(property "TCR" "50 ppm/K")
	)
	(symbol (lib_id "Device:R")
		(property "Reference" "R4")
		(property "Value" "brokenvalue")
	)
)`

func TestResistors(t *testing.T) {
	sch, err := Parse(strings.NewReader(resistorSheet))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	refs := sch.Resistors()
	if len(refs) != 4 {
		t.Fatalf("Resistors() found %d entries, want 4 (C1 excluded)", len(refs))
	}

	r1 := refs[0]
	if r1.Reference != "R1" || r1.Ohms != 4700 || r1.Err != nil {
		t.Fatalf("R1 = %+v", r1)
	}
	want := []resistor.Color{resistor.Yellow, resistor.Violet, resistor.Red, resistor.Gold}
	if !reflect.DeepEqual(r1.Code.Bands(), want) {
		t.Fatalf("R1 bands = %v, want %v", r1.Code.Bands(), want)
	}

	// No tolerance property: three-band code.
	r2 := refs[1]
	if r2.Err != nil {
		t.Fatalf("R2 error: %v", r2.Err)
	}
	if r2.Code.BandCount() != 3 || r2.Ohms != 470 {
		t.Fatalf("R2 = %+v", r2)
	}

	r3 := refs[2]
	if r3.Err != nil {
		t.Fatalf("R3 error: %v", r3.Err)
	}
	if !r3.DNP {
		t.Error("R3 should carry the dnp flag")
	}
	if r3.Tolerance == nil || *r3.Tolerance != 1.0 {
		t.Fatalf("R3 tolerance = %v, want 1", r3.Tolerance)
	}
	if r3.TCR == nil || *r3.TCR != 50 {
		t.Fatalf("R3 tcr = %v, want 50", r3.TCR)
	}
	if r3.Code.BandCount() != 6 {
		t.Fatalf("R3 bands = %v, want a 6-band code", r3.Code.Bands())
	}

	// Unparseable value is reported, not dropped.
	r4 := refs[3]
	if r4.Err == nil {
		t.Fatal("R4 should report a value error")
	}
	if r4.Reference != "R4" || r4.Value != "brokenvalue" {
		t.Fatalf("R4 = %+v", r4)
	}
}

func TestParseToleranceForms(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"5%", 5},
		{"±1%", 1},
		{"0.5", 0.5},
		{" 10 % ", 10},
	}
	for _, tc := range cases {
		got, err := parseTolerance(tc.in)
		if err != nil {
			t.Fatalf("parseTolerance(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseTolerance(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseTolerance("wide"); err == nil {
		t.Fatal("parseTolerance(wide) should fail")
	}
}

func TestParseTCRForms(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
	}{
		{"50", 50},
		{"50ppm", 50},
		{"50 ppm/K", 50},
		{"100ppm/K", 100},
	}
	for _, tc := range cases {
		got, err := parseTCR(tc.in)
		if err != nil {
			t.Fatalf("parseTCR(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseTCR(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := parseTCR("-5"); err == nil {
		t.Fatal("parseTCR(-5) should fail")
	}
}
