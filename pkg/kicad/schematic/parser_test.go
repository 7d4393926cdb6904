package schematic

import (
	"strings"
	"testing"
)

func TestParseMinimalSchematic(t *testing.T) {
	input := `(kicad_sch
		(version 20250114)
		(generator "eeschema")
		(generator_version "9.0")
		(uuid 862335ee-c981-4fe1-9eb9-84db19301dd4)
		(paper "A4")
		(lib_symbols)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if sch.Version != 20250114 {
		t.Errorf("Expected version 20250114, got %d", sch.Version)
	}
	if sch.Generator != "eeschema" {
		t.Errorf("Expected generator 'eeschema', got '%s'", sch.Generator)
	}
	if sch.GeneratorVer != "9.0" {
		t.Errorf("Expected generator version '9.0', got '%s'", sch.GeneratorVer)
	}
	if sch.Paper != "A4" {
		t.Errorf("Expected paper 'A4', got '%s'", sch.Paper)
	}
	if sch.UUID != "862335ee-c981-4fe1-9eb9-84db19301dd4" {
		t.Errorf("Unexpected uuid '%s'", sch.UUID)
	}
}

func TestParseSchematicWithSymbol(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(uuid test-uuid)
		(paper "A4")
		(lib_symbols
			(symbol "Device:R"
				(property "Reference" "R" (at 0 0 0))
				(property "Value" "R" (at 0 0 0))
			)
		)
		(symbol (lib_id "Device:R")
			(at 100 50 0)
			(unit 1)
			(uuid sym-uuid-1)
			(property "Reference" "R1" (at 100 45 0))
			(property "Value" "10k" (at 100 55 0))
		)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	if len(sch.Symbols) != 1 {
		t.Fatalf("Expected 1 symbol instance, got %d", len(sch.Symbols))
	}
	if sch.Symbols[0].LibID != "Device:R" {
		t.Errorf("Expected lib_id 'Device:R', got '%s'", sch.Symbols[0].LibID)
	}
	if sch.Symbols[0].Value() != "10k" {
		t.Errorf("Expected value '10k', got '%s'", sch.Symbols[0].Value())
	}

	r1 := sch.GetSymbol("R1")
	if r1 == nil {
		t.Error("GetSymbol('R1') returned nil")
	}

	refs := sch.GetAllReferences()
	if len(refs) != 1 || refs[0] != "R1" {
		t.Errorf("Expected refs ['R1'], got %v", refs)
	}
}

func TestParseTitleBlock(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(title_block
			(title "Amplifier Front End")
			(date "2024-11-02")
			(rev "B")
			(company "OpenTraceLab")
		)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}

	tb := sch.TitleBlock
	if tb.Title != "Amplifier Front End" || tb.Date != "2024-11-02" || tb.Revision != "B" || tb.Company != "OpenTraceLab" {
		t.Errorf("Unexpected title block: %+v", tb)
	}
}

func TestParseSymbolFlags(t *testing.T) {
	input := `(kicad_sch
		(version 20231120)
		(generator "eeschema")
		(symbol (lib_id "Device:R")
			(unit 2)
			(in_bom no)
			(dnp yes)
			(property "Reference" "R9")
			(property "Value" "1k")
		)
	)`

	sch, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse schematic: %v", err)
	}
	sym := sch.Symbols[0]
	if sym.Unit != 2 {
		t.Errorf("Expected unit 2, got %d", sym.Unit)
	}
	if sym.InBom {
		t.Error("Expected in_bom no")
	}
	if !sym.DNP {
		t.Error("Expected dnp yes")
	}
}

func TestParseRejectsOldVersion(t *testing.T) {
	input := `(kicad_sch (version 20200310) (generator "eeschema"))`
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("Parse should reject pre-6.0 files")
	}
}

func TestParseRejectsWrongRoot(t *testing.T) {
	input := `(kicad_pcb (version 20231120))`
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatal("Parse should reject non-schematic files")
	}
}
