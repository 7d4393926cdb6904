package resistor

import (
	"fmt"
	"strconv"
)

// BandRole names what the band at position (0-based) of a code with
// the given band count stands for: "Digit 1".."Digit 3", "Multiplier",
// "Tolerance" or "TCR". Positions outside the layout yield "".
func BandRole(count, position int) string {
	switch {
	case (count == 3 || count == 4) && position >= 0 && position <= 1,
		(count == 5 || count == 6) && position >= 0 && position <= 2:
		return fmt.Sprintf("Digit %d", position+1)
	case (count == 3 || count == 4) && position == 2,
		(count == 5 || count == 6) && position == 3:
		return "Multiplier"
	case count == 4 && position == 3,
		(count == 5 || count == 6) && position == 4:
		return "Tolerance"
	case count == 6 && position == 5:
		return "TCR"
	}
	return ""
}

// BandValue renders the contribution of color c at position (0-based)
// in a code with the given band count. Digit bands yield the digit,
// the multiplier band "10^e", the tolerance band the percent padded to
// width 4 and the TCR band the ppm/K padded to width 3. A leading
// Black digit and roles the color does not define render as blanks of
// the same width.
func BandValue(count, position int, c Color) string {
	switch BandRole(count, position) {
	case "Digit 1", "Digit 2", "Digit 3":
		if position == 0 && c == Black {
			return " "
		}
		if d, ok := c.Digit(); ok {
			return strconv.Itoa(d)
		}
		return " "
	case "Multiplier":
		if e, ok := c.Exponent(); ok {
			return fmt.Sprintf("10^%d", e)
		}
		return ""
	case "Tolerance":
		if t, ok := c.Tolerance(); ok {
			return fmt.Sprintf("%4v", t*100)
		}
		return "    "
	case "TCR":
		if t, ok := c.TCR(); ok {
			return fmt.Sprintf("%3d", t)
		}
		return "   "
	}
	return ""
}
