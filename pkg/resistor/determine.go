package resistor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Determine encodes a resistance into the shortest band sequence that
// represents it exactly. tolerancePercent and tcr are optional; passing
// them selects codes that carry the corresponding bands. A resistance
// whose decimal form needs more than three significant digits, or
// whose magnitude falls outside the multiplier range, is rejected with
// ErrNotRepresentable rather than rounded.
//
// All input failures are reported together: an invalid tolerance does
// not mask an invalid resistance. Use errors.Is to test for the
// individual sentinels.
func Determine(ohms float64, tolerancePercent *float64, tcr *uint32) (Resistor, error) {
	var errs []error

	digits, exponent, err := mantissa(ohms)
	if err != nil {
		errs = append(errs, err)
	}

	var tolBand, tcrBand Color
	if tolerancePercent != nil {
		c, ok := colorForTolerance(*tolerancePercent)
		if !ok {
			errs = append(errs, fmt.Errorf("resistor: %w: %v", ErrInvalidTolerance, *tolerancePercent))
		}
		tolBand = c
	}
	if tcr != nil {
		c, ok := colorForTCR(*tcr)
		if !ok {
			errs = append(errs, fmt.Errorf("resistor: %w: %d", ErrInvalidTCR, *tcr))
		}
		tcrBand = c
	}
	if len(errs) == 1 {
		return Resistor{}, errs[0]
	}
	if len(errs) > 1 {
		return Resistor{}, errors.Join(errs...)
	}

	hasTol := tolerancePercent != nil
	hasTCR := tcr != nil

	switch {
	case len(digits) == 1 && exponent == 0 && !hasTol && !hasTCR:
		return New([]Color{Color(digits[0])})

	case len(digits) == 2 && !hasTol && !hasTCR:
		exp, err := exponentBand(exponent)
		if err != nil {
			return Resistor{}, err
		}
		return New([]Color{Color(digits[0]), Color(digits[1]), exp})

	case len(digits) == 2 && hasTol && !hasTCR:
		exp, err := exponentBand(exponent)
		if err != nil {
			return Resistor{}, err
		}
		return New([]Color{Color(digits[0]), Color(digits[1]), exp, tolBand})

	case len(digits) == 2 && hasTol && hasTCR:
		// A TCR band forces the 6-band form. Lead with a zero third
		// digit and shift the multiplier down to compensate.
		exp, err := exponentBand(exponent - 1)
		if err != nil {
			return Resistor{}, err
		}
		return New([]Color{Color(digits[0]), Color(digits[1]), Black, exp, tolBand, tcrBand})

	case len(digits) == 3 && hasTol && !hasTCR:
		exp, err := exponentBand(exponent)
		if err != nil {
			return Resistor{}, err
		}
		return New([]Color{Color(digits[0]), Color(digits[1]), Color(digits[2]), exp, tolBand})

	case len(digits) == 3 && hasTol && hasTCR:
		exp, err := exponentBand(exponent)
		if err != nil {
			return Resistor{}, err
		}
		return New([]Color{Color(digits[0]), Color(digits[1]), Color(digits[2]), exp, tolBand, tcrBand})

	case len(digits) == 3 && !hasTol:
		return Resistor{}, fmt.Errorf("resistor: %w: a 3-digit resistance needs a tolerance band", ErrMissingTolerance)
	}
	return Resistor{}, fmt.Errorf("resistor: %w: %v", ErrNotRepresentable, ohms)
}

func exponentBand(e int) (Color, error) {
	c, ok := colorForExponent(e)
	if !ok {
		return 0, fmt.Errorf("resistor: %w: multiplier 10^%d", ErrNotRepresentable, e)
	}
	return c, nil
}

// mantissa reduces ohms to at most three significant digits and a
// decimal exponent, so that digits x 10^exponent == ohms. The digit
// form prefers two digits: a trailing zero in a three-digit mantissa is
// folded into the exponent unless the value is too large for two
// bands. Values needing more than three significant digits are not
// representable.
func mantissa(ohms float64) ([]int, int, error) {
	if math.IsNaN(ohms) || math.IsInf(ohms, 0) || math.Signbit(ohms) {
		return nil, 0, fmt.Errorf("resistor: %w: %v", ErrNotRepresentable, ohms)
	}
	repr := strconv.FormatFloat(ohms, 'f', -1, 64)

	if len(strings.Trim(strings.ReplaceAll(repr, ".", ""), "0")) > 3 {
		return nil, 0, fmt.Errorf("resistor: %w: %v has more than three significant digits", ErrNotRepresentable, ohms)
	}

	exponent := 0
	if dot := strings.IndexByte(repr, '.'); dot >= 0 {
		exponent = -(len(repr) - dot - 1)
		repr = repr[:dot] + repr[dot+1:]
	}
	for len(repr) > 1 && repr[0] == '0' {
		repr = repr[1:]
	}
	// A single nonzero digit still needs two digit bands: widen 8 to
	// 80 x 10^(e-1).
	if len(repr) == 1 && repr != "0" {
		repr += "0"
		exponent--
	}
	twoDigitRange := ohms <= 99e9
	for len(repr) > 3 || (twoDigitRange && len(repr) == 3 && repr[2] == '0') {
		repr = repr[:len(repr)-1]
		exponent++
	}
	if _, ok := colorForExponent(exponent); !ok {
		return nil, 0, fmt.Errorf("resistor: %w: multiplier 10^%d", ErrNotRepresentable, exponent)
	}

	digits := make([]int, len(repr))
	for i := 0; i < len(repr); i++ {
		digits[i] = int(repr[i] - '0')
	}
	return digits, exponent, nil
}
