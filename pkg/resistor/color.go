package resistor

import (
	"fmt"
	"strings"
)

// Color represents one of the 13 band colors defined by IEC 60062.
type Color uint8

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Gold
	Silver
	Pink
)

var colorNames = map[Color]string{
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	White:  "white",
	Gold:   "gold",
	Silver: "silver",
	Pink:   "pink",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor maps a color name to its Color. Matching is
// case-insensitive and accepts the "gray" spelling for Grey.
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "gray" {
		s = "grey"
	}
	for c, n := range colorNames {
		if n == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("resistor: unknown color %q", name)
}

// Palette returns all 13 band colors in code order, Black through Pink.
func Palette() []Color {
	return []Color{
		Black, Brown, Red, Orange, Yellow, Green, Blue,
		Violet, Grey, White, Gold, Silver, Pink,
	}
}

// digitValues covers the significant-digit role. The metallic bands and
// Pink never appear as digits.
var digitValues = map[Color]int{
	Black:  0,
	Brown:  1,
	Red:    2,
	Orange: 3,
	Yellow: 4,
	Green:  5,
	Blue:   6,
	Violet: 7,
	Grey:   8,
	White:  9,
}

// exponentValues covers the multiplier role, a power of ten from 10^-3
// (Pink) to 10^9 (White). All 13 colors have a defined exponent.
var exponentValues = map[Color]int{
	Black:  0,
	Brown:  1,
	Red:    2,
	Orange: 3,
	Yellow: 4,
	Green:  5,
	Blue:   6,
	Violet: 7,
	Grey:   8,
	White:  9,
	Gold:   -1,
	Silver: -2,
	Pink:   -3,
}

// toleranceValues maps a tolerance band to the tolerance as a fraction
// of the nominal value (Gold is 5%, stored as 0.05).
var toleranceValues = map[Color]float64{
	Brown:  0.01,
	Red:    0.02,
	Orange: 0.0005,
	Yellow: 0.0002,
	Green:  0.005,
	Blue:   0.0025,
	Violet: 0.001,
	Grey:   0.0001,
	Gold:   0.05,
	Silver: 0.1,
}

// tcrValues maps a temperature-coefficient band to ppm/K.
var tcrValues = map[Color]uint32{
	Black:  250,
	Brown:  100,
	Red:    50,
	Orange: 15,
	Yellow: 25,
	Green:  20,
	Blue:   10,
	Violet: 5,
	Grey:   1,
}

// Digit returns the significant-digit value of c, or ok=false when the
// color has no digit role.
func (c Color) Digit() (int, bool) {
	d, ok := digitValues[c]
	return d, ok
}

// Exponent returns the power of ten c stands for in the multiplier
// position, or ok=false when the color has no multiplier role.
func (c Color) Exponent() (int, bool) {
	e, ok := exponentValues[c]
	return e, ok
}

// Tolerance returns the tolerance fraction of c, or ok=false when the
// color has no tolerance role.
func (c Color) Tolerance() (float64, bool) {
	t, ok := toleranceValues[c]
	return t, ok
}

// TCR returns the temperature coefficient of c in ppm/K, or ok=false
// when the color has no TCR role.
func (c Color) TCR() (uint32, bool) {
	t, ok := tcrValues[c]
	return t, ok
}

// tolerancePercentColors is the inverse tolerance lookup, keyed by
// percent rather than fraction because that is how operators state
// tolerances ("5%" rather than 0.05).
var tolerancePercentColors = map[float64]Color{
	1.0:  Brown,
	2.0:  Red,
	0.05: Orange,
	0.02: Yellow,
	0.5:  Green,
	0.25: Blue,
	0.1:  Violet,
	0.01: Grey,
	5.0:  Gold,
	10.0: Silver,
}

var tcrColors = map[uint32]Color{
	250: Black,
	100: Brown,
	50:  Red,
	15:  Orange,
	25:  Yellow,
	20:  Green,
	10:  Blue,
	5:   Violet,
	1:   Grey,
}

func colorForTolerance(percent float64) (Color, bool) {
	c, ok := tolerancePercentColors[percent]
	return c, ok
}

func colorForTCR(ppm uint32) (Color, bool) {
	c, ok := tcrColors[ppm]
	return c, ok
}

// colorForExponent inverts the multiplier role. Exponents 0..9 map
// straight onto the digit colors, the negative ones onto the metallic
// bands and Pink.
func colorForExponent(e int) (Color, bool) {
	switch {
	case e >= 0 && e <= 9:
		return Color(e), true
	case e == -1:
		return Gold, true
	case e == -2:
		return Silver, true
	case e == -3:
		return Pink, true
	}
	return 0, false
}

// RGB returns the display color of the band as used on printed color
// charts. Colors with an obvious terminal equivalent keep it; the rest
// use common chart values.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case Black:
		return 0, 0, 0
	case Brown:
		return 165, 42, 42
	case Red:
		return 255, 0, 0
	case Orange:
		return 255, 165, 0
	case Yellow:
		return 255, 255, 0
	case Green:
		return 0, 128, 0
	case Blue:
		return 0, 0, 255
	case Violet:
		return 148, 0, 211
	case Grey:
		return 128, 128, 128
	case White:
		return 255, 255, 255
	case Gold:
		return 255, 215, 0
	case Silver:
		return 192, 192, 192
	case Pink:
		return 255, 105, 180
	}
	return 0, 0, 0
}
