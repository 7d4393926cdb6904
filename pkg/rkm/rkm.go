// Package rkm reads and writes the RKM resistance notation from
// IEC 60062, where a multiplier letter doubles as the decimal
// separator: "4k7" is 4.7 kiloohm, "0R47" is 0.47 ohm. Plain numbers
// ("470", "2.2") and suffix notation ("4.7k", "10M") are accepted too,
// with an optional trailing unit word.
package rkm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// code is the parsed shape of an RKM string. All parts are optional in
// the grammar; Parse rejects the combinations that make no sense.
type code struct {
	Whole    string `parser:"@Digits?"`
	Fraction string `parser:"( Dot @Digits )?"`
	Prefix   string `parser:"@Prefix?"`
	Tail     string `parser:"@Digits?"`
	Unit     string `parser:"@Unit?"`
}

var parser = participle.MustBuild[code](
	participle.Lexer(rkmLexer),
	participle.Elide("Whitespace"),
)

var multipliers = map[string]float64{
	"":  1,
	"R": 1,
	"r": 1,
	"Ω": 1,
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
	"m": 1e-3,
}

// Parse converts an RKM or engineering notation string to ohms.
func Parse(input string) (float64, error) {
	c, err := parser.ParseString("", input)
	if err != nil {
		return 0, fmt.Errorf("rkm: cannot parse %q: %w", input, err)
	}
	if c.Whole == "" && c.Fraction == "" && c.Tail == "" {
		return 0, fmt.Errorf("rkm: no digits in %q", input)
	}
	if c.Fraction != "" && c.Tail != "" {
		return 0, fmt.Errorf("rkm: %q mixes a decimal point with an embedded fraction", input)
	}

	num := c.Whole
	if num == "" {
		num = "0"
	}
	switch {
	case c.Fraction != "":
		num += "." + c.Fraction
	case c.Tail != "":
		num += "." + c.Tail
	}
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("rkm: cannot parse %q: %w", input, err)
	}
	return value * multipliers[c.Prefix], nil
}

// tiers orders the formatting prefixes largest first. Values below a
// tenth of an ohm drop to milliohms; anything from 0.1 up to 1k stays
// on the ones tier so that 0.47 renders as "0R47" and not "470m".
var tiers = []struct {
	prefix string
	scale  float64
}{
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
}

func split(ohms float64) (scaled float64, prefix string) {
	for _, t := range tiers {
		if ohms >= t.scale {
			return ohms / t.scale, t.prefix
		}
	}
	if ohms != 0 && ohms < 0.1 {
		return ohms * 1e3, "m"
	}
	return ohms, "R"
}

// Format renders ohms in engineering notation with a multiplier
// suffix: 4700 becomes "4.7k", 470 stays "470".
func Format(ohms float64) string {
	scaled, prefix := split(ohms)
	if prefix == "R" {
		prefix = ""
	}
	return strconv.FormatFloat(scaled, 'f', -1, 64) + prefix
}

// FormatRKM renders ohms as an RKM code, substituting the multiplier
// letter for the decimal point: 4700 becomes "4k7", 470 "470R" and
// 0.47 "0R47".
func FormatRKM(ohms float64) string {
	scaled, prefix := split(ohms)
	s := strconv.FormatFloat(scaled, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return strings.Replace(s, ".", prefix, 1)
	}
	return s + prefix
}
