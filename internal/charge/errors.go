package charge

import "errors"

// Construction-time contract violations. Presets are static data; any of
// these indicates a programming error, not a runtime condition, and is
// raised before the first tick ever runs.
var (
	// ErrEmptyPreset indicates a preset with no charges.
	ErrEmptyPreset = errors.New("charge: preset has no charges")

	// ErrColorMismatch indicates charge and color sequences of unequal length.
	ErrColorMismatch = errors.New("charge: color count does not match charge count")

	// ErrNonPositiveMass indicates a charge with mass <= 0.
	ErrNonPositiveMass = errors.New("charge: mass must be positive")
)
