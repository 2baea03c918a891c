package afdetect

// DefaultThreshold is the entropy cutoff above which a sample is labeled
// AF. This magic constant is part of the external interface: changing it
// alters observable behavior.
const DefaultThreshold = 0.353

// WindowSize is the sliding-window length of the entropy estimator. It is
// paired with the Pi-table, a fixed literal table with one entry per
// in-window count 0..127, so
// it is not configurable per record despite appearing in Config.
const WindowSize = 127

// DefaultSPS is the sampling rate assumed when a record source omits one.
const DefaultSPS = 250

// Config controls the classifier threshold and the record driver's
// fallback sampling rate. The zero value is not valid; use DefaultConfig.
type Config struct {
	// Threshold is the entropy cutoff for the AF decision: H >= Threshold
	// predicts AF. Default 0.353.
	Threshold float32

	// WindowSize is the entropy estimator's sliding-window length. It
	// must equal afdetect.WindowSize (127); this field exists to make
	// the window/Pi-table pairing an explicit, checked value rather
	// than an implicit constant.
	WindowSize int

	// SPSOverride is the sampling rate used when a record source cannot
	// report its own. Default 250 Hz.
	SPSOverride float64

	// DebugDump, when true, asks the record driver to retain a
	// per-sample debug tap (y, xl, xh, s, w, H) for the whole record
	// instead of discarding it after each step.
	DebugDump bool
}

// DefaultConfig returns the recommended production defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:   DefaultThreshold,
		WindowSize:  WindowSize,
		SPSOverride: DefaultSPS,
		DebugDump:   false,
	}
}

// Validate reports whether c is usable, without mutating c.
func (c Config) Validate() error {
	if c.Threshold <= 0 || c.Threshold > 1 {
		return ErrInvalidThreshold
	}
	if c.WindowSize != WindowSize {
		return ErrInvalidWindowSize
	}
	if c.SPSOverride <= 0 {
		return ErrInvalidSPS
	}
	return nil
}
