package schematic

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceResistor/pkg/kicad/sexp"
)

// Minimum supported KiCad version for schematics (6.0 = 20211014)
const MinSupportedVersion = 20211014

// ParseFile reads and parses a KiCad schematic file
func ParseFile(filename string) (*Schematic, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads and parses a KiCad schematic from an io.Reader
func Parse(r io.Reader) (*Schematic, error) {
	sexps, err := sexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	// The root should be a (kicad_sch ...) expression
	root := sexps[0]
	rootName, err := sexp.GetNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}
	if rootName != "kicad_sch" {
		return nil, fmt.Errorf("not a KiCad schematic file: expected 'kicad_sch', got '%s'", rootName)
	}

	sch := &Schematic{}

	if err := parseHeader(root, sch); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	if uuidNode, found := sexp.FindNode(root, "uuid"); found {
		sch.UUID, _ = sexp.GetQuotedString(uuidNode, 1)
	}

	if paperNode, found := sexp.FindNode(root, "paper"); found {
		sch.Paper, _ = sexp.GetQuotedString(paperNode, 1)
	}

	if titleBlockNode, found := sexp.FindNode(root, "title_block"); found {
		sch.TitleBlock = parseTitleBlock(titleBlockNode)
	}

	// Only top-level symbol nodes are instances; the ones nested in
	// lib_symbols are library definitions.
	sch.Symbols = parseSymbols(root)

	return sch, nil
}

// parseHeader extracts version and generator information
func parseHeader(root sexp.Sexp, sch *Schematic) error {
	versionNode, found := sexp.FindNode(root, "version")
	if !found {
		return fmt.Errorf("missing required 'version' field")
	}

	ver, err := sexp.GetInt(versionNode, 1)
	if err != nil {
		return fmt.Errorf("failed to parse version: %w", err)
	}
	if ver < MinSupportedVersion {
		return fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)", ver, MinSupportedVersion)
	}
	sch.Version = ver

	if genNode, found := sexp.FindNode(root, "generator"); found {
		sch.Generator, _ = sexp.GetQuotedString(genNode, 1)
	}

	if genVerNode, found := sexp.FindNode(root, "generator_version"); found {
		sch.GeneratorVer, _ = sexp.GetQuotedString(genVerNode, 1)
	}

	return nil
}

// parseTitleBlock extracts title block information
func parseTitleBlock(node sexp.Sexp) TitleBlock {
	tb := TitleBlock{}

	if titleNode, found := sexp.FindNode(node, "title"); found {
		tb.Title, _ = sexp.GetQuotedString(titleNode, 1)
	}
	if dateNode, found := sexp.FindNode(node, "date"); found {
		tb.Date, _ = sexp.GetQuotedString(dateNode, 1)
	}
	if revNode, found := sexp.FindNode(node, "rev"); found {
		tb.Revision, _ = sexp.GetQuotedString(revNode, 1)
	}
	if companyNode, found := sexp.FindNode(node, "company"); found {
		tb.Company, _ = sexp.GetQuotedString(companyNode, 1)
	}

	return tb
}

// parseSymbols parses symbol instances
func parseSymbols(root sexp.Sexp) []Symbol {
	symbolNodes := sexp.FindAllNodes(root, "symbol")
	symbols := make([]Symbol, 0, len(symbolNodes))

	for _, symNode := range symbolNodes {
		symbols = append(symbols, parseSymbol(symNode))
	}

	return symbols
}

// parseSymbol parses a single symbol instance
func parseSymbol(node sexp.Sexp) Symbol {
	sym := Symbol{
		InBom:      true,
		Unit:       1,
		Properties: make(map[string]string),
	}

	if libNode, found := sexp.FindNode(node, "lib_id"); found {
		sym.LibID, _ = sexp.GetQuotedString(libNode, 1)
	}

	if unitNode, found := sexp.FindNode(node, "unit"); found {
		sym.Unit, _ = sexp.GetInt(unitNode, 1)
	}

	if ibNode, found := sexp.FindNode(node, "in_bom"); found {
		val, _ := sexp.GetString(ibNode, 1)
		sym.InBom = val == "yes"
	}

	// KiCad 7+ writes (dnp yes|no); on older files the node is absent.
	if dnpNode, found := sexp.FindNode(node, "dnp"); found {
		val, _ := sexp.GetString(dnpNode, 1)
		sym.DNP = val == "yes"
	}

	for _, pn := range sexp.FindAllNodes(node, "property") {
		key, err := sexp.GetQuotedString(pn, 1)
		if err != nil {
			continue
		}
		value, err := sexp.GetQuotedString(pn, 2)
		if err != nil {
			value = ""
		}
		sym.Properties[key] = value
	}

	return sym
}
