package resistor

import "errors"

// Sentinel errors returned by the codec. Callers match them with
// errors.Is; the wrapped messages carry the offending values.
var (
	ErrInvalidBandCount = errors.New("invalid band count")
	ErrInvalidBandColor = errors.New("invalid band color")
	ErrInvalidTolerance = errors.New("not a valid tolerance value")
	ErrInvalidTCR       = errors.New("not a valid tcr value")
	ErrNotRepresentable = errors.New("not a representable resistance value")
	ErrMissingTolerance = errors.New("missing tolerance")
	ErrOutOfBounds      = errors.New("band index out of range")
)
