package rkm

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// rkmLexer tokenizes IEC 60062 RKM codes such as "4k7" or "0R47" as
// well as plain engineering notation like "4.7k" or "470 ohm".
var rkmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},

	// The unit word, optionally plural ("ohm", "Ohms").
	{Name: "Unit", Pattern: `(?i)ohms?`},

	// A multiplier letter. R and the ohm sign scale by one, k/M/G/T
	// scale up and a lowercase m scales down to milliohms. Case picks
	// between mega and milli, so this rule is case-sensitive.
	{Name: "Prefix", Pattern: `[RrkKMGTmΩ]`},

	{Name: "Digits", Pattern: `[0-9]+`},
	{Name: "Dot", Pattern: `\.`},
})
