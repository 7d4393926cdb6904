// Package resistor implements the IEC 60062 resistor color code: the
// two-way mapping between a sequence of color bands and the resistance,
// tolerance and temperature coefficient they encode.
//
// # Overview
//
// The package provides:
//   - Color: one of the 13 band colors, with its role values (digit,
//     multiplier exponent, tolerance fraction, TCR)
//   - Resistor: a validated band sequence of 1, 3, 4, 5 or 6 bands
//   - Specs: the decoded characteristics (nominal, tolerance, min/max,
//     TCR)
//   - Determine: the encoder from numeric values to the shortest band
//     sequence
//
// # Band layouts
//
// A single black band is the zero-ohm jumper link. Three bands encode
// two digits and a multiplier at 20% tolerance. Four bands add a
// tolerance band, five bands a third digit, and six bands a
// temperature coefficient. The first digit band is never Black, so a
// code cannot begin with a leading zero.
//
// # Usage
//
//	// Decode a band sequence.
//	r, err := resistor.New([]resistor.Color{
//		resistor.Yellow, resistor.Violet, resistor.Brown, resistor.Gold,
//	})
//	specs := r.Specs() // 470 ohm, 5%, 446.5..493.5
//
//	// Encode a resistance.
//	tol := 5.0
//	r, err = resistor.Determine(4700, &tol, nil)
//	fmt.Println(r) // yellow-violet-red-gold
//
// # Exactness
//
// Determine never rounds: a value whose decimal form needs more than
// three significant digits, or whose magnitude falls outside the
// 10^-3..10^9 multiplier range, yields ErrNotRepresentable. Encoding a
// Specs nominal value therefore reproduces the original bands up to
// trailing-zero mantissa normalization.
package resistor
