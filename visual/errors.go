package visual

import "errors"

var (
	// ErrNoSamples indicates the run has not been estimated.
	ErrNoSamples = errors.New("visual: run has no samples")

	// ErrFrameOutOfRange indicates a frame index outside [1, N).
	ErrFrameOutOfRange = errors.New("visual: frame out of range")
)
