package resistor

import (
	"fmt"
	"strings"
)

// Resistor is a validated band sequence. The zero value is not usable;
// construct one with New or Determine.
type Resistor struct {
	count uint8
	bands [6]Color
}

// New validates bands against the color code and returns the resistor
// they describe. Valid band counts are 1 (the zero-ohm link), 3, 4, 5
// and 6. The first error encountered is returned: an unsupported count,
// or the first position whose color is not admissible there.
func New(bands []Color) (Resistor, error) {
	slots, ok := bandSlots[len(bands)]
	if !ok {
		return Resistor{}, fmt.Errorf("resistor: %w: %d", ErrInvalidBandCount, len(bands))
	}
	for i, c := range bands {
		if !slots[i].has(c) {
			return Resistor{}, fmt.Errorf("resistor: %w: %s is not valid for band %d of a %d-band code",
				ErrInvalidBandColor, c, i+1, len(bands))
		}
	}
	r := Resistor{count: uint8(len(bands))}
	copy(r.bands[:], bands)
	return r, nil
}

// BandCount returns the number of bands.
func (r Resistor) BandCount() int {
	return int(r.count)
}

// Bands returns a copy of the band sequence, first digit to last band.
func (r Resistor) Bands() []Color {
	out := make([]Color, r.count)
	copy(out, r.bands[:r.count])
	return out
}

// WithColor returns a resistor equal to r except that the band at
// position (0-based) is replaced by c. The original is unchanged. The
// replacement is validated like a fresh construction, so an
// inadmissible color for that position is rejected.
func (r Resistor) WithColor(c Color, position int) (Resistor, error) {
	if position < 0 || position >= int(r.count) {
		return Resistor{}, fmt.Errorf("resistor: %w: position %d in a %d-band code",
			ErrOutOfBounds, position, r.count)
	}
	bands := r.Bands()
	bands[position] = c
	return New(bands)
}

// String renders the band sequence as dash-joined color names, e.g.
// "yellow-violet-brown-gold".
func (r Resistor) String() string {
	names := make([]string, r.count)
	for i, c := range r.Bands() {
		names[i] = c.String()
	}
	return strings.Join(names, "-")
}
