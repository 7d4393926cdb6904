package resistor

// colorSet is a bitmask over the 13 band colors.
type colorSet uint16

func setOf(colors ...Color) colorSet {
	var s colorSet
	for _, c := range colors {
		s |= 1 << c
	}
	return s
}

func (s colorSet) has(c Color) bool {
	return c <= Pink && s&(1<<c) != 0
}

func (s colorSet) colors() []Color {
	out := make([]Color, 0, 13)
	for _, c := range Palette() {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}

var (
	zeroOhmColors   = setOf(Black)
	leadDigitColors = setOf(Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White)
	digitColors     = setOf(Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White)
	exponentColors  = setOf(Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White, Gold, Silver, Pink)
	toleranceColors = setOf(Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, Gold, Silver)
	tcrBandColors   = setOf(Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey)
)

// bandSlots maps a band count to the admissible color set of each
// position. The first digit of a multi-band code excludes Black so that
// codes never start with a leading zero; a single Black band is the
// zero-ohm link.
var bandSlots = map[int][]colorSet{
	1: {zeroOhmColors},
	3: {leadDigitColors, digitColors, exponentColors},
	4: {leadDigitColors, digitColors, exponentColors, toleranceColors},
	5: {leadDigitColors, digitColors, digitColors, exponentColors, toleranceColors},
	6: {leadDigitColors, digitColors, digitColors, exponentColors, toleranceColors, tcrBandColors},
}

// ValidColors returns the colors the band at position (0-based) may
// take in a resistor with the given band count, in code order. Unknown
// counts or positions yield an empty slice.
func ValidColors(count, position int) []Color {
	slots, ok := bandSlots[count]
	if !ok || position < 0 || position >= len(slots) {
		return nil
	}
	return slots[position].colors()
}
