package resistor

import "math"

// Specs holds the electrical characteristics encoded by a band
// sequence. Tolerance is a fraction of the nominal value (0.05 for a
// gold band). TCR is nil unless the code carries a sixth band.
type Specs struct {
	Ohms      float64
	Tolerance float64
	MinOhms   float64
	MaxOhms   float64
	TCR       *uint32
}

// Specs decodes the band sequence. Codes without a tolerance band (the
// zero-ohm link and 3-band codes) get the conventional 20% tolerance.
func (r Resistor) Specs() Specs {
	switch r.count {
	case 1:
		return newSpecs(0, 0, 0.2, nil)
	case 3:
		d1, _ := r.bands[0].Digit()
		d2, _ := r.bands[1].Digit()
		exp, _ := r.bands[2].Exponent()
		return newSpecs(float64(d1*10+d2), exp, 0.2, nil)
	case 4:
		d1, _ := r.bands[0].Digit()
		d2, _ := r.bands[1].Digit()
		exp, _ := r.bands[2].Exponent()
		tol, _ := r.bands[3].Tolerance()
		return newSpecs(float64(d1*10+d2), exp, tol, nil)
	case 5:
		d1, _ := r.bands[0].Digit()
		d2, _ := r.bands[1].Digit()
		d3, _ := r.bands[2].Digit()
		exp, _ := r.bands[3].Exponent()
		tol, _ := r.bands[4].Tolerance()
		return newSpecs(float64(d1*100+d2*10+d3), exp, tol, nil)
	case 6:
		d1, _ := r.bands[0].Digit()
		d2, _ := r.bands[1].Digit()
		d3, _ := r.bands[2].Digit()
		exp, _ := r.bands[3].Exponent()
		tol, _ := r.bands[4].Tolerance()
		tcr, _ := r.bands[5].TCR()
		return newSpecs(float64(d1*100+d2*10+d3), exp, tol, &tcr)
	}
	return Specs{}
}

func newSpecs(mantissa float64, exp int, tolerance float64, tcr *uint32) Specs {
	ohms := mantissa * math.Pow10(exp)
	spread := ohms * tolerance
	return Specs{
		Ohms:      ohms,
		Tolerance: tolerance,
		MinOhms:   ohms - spread,
		MaxOhms:   ohms + spread,
		TCR:       tcr,
	}
}
