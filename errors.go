// errors.go defines public error types for the afdetect package.

package afdetect

import "errors"

// Public error values for configuration and record processing.
var (
	// ErrInvalidThreshold indicates a Config.Threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("afdetect: invalid threshold (must be in (0, 1])")

	// ErrInvalidWindowSize indicates a Config.WindowSize other than the
	// fixed 127-word window the Pi-table is sized for.
	ErrInvalidWindowSize = errors.New("afdetect: invalid window size (must be 127)")

	// ErrInvalidSPS indicates a non-positive Config.SPSOverride.
	ErrInvalidSPS = errors.New("afdetect: invalid samples-per-second override (must be > 0)")
)
