package afdetect

import "github.com/rrstream/afdetect/internal/pipeline"

// StepResult is the full debug tap for one sample, matching the external
// interface's "optional debug tap: y, xl, xh, s, w, H" plus the resulting
// boolean prediction.
type StepResult struct {
	Y         int32   // median-filtered RR
	XL        int32   // low-reference output
	XH        int32   // high-reference output
	Symbol    int     // symbolic-coder output, 0..9
	Word      int     // word-encoder output, 0..2457
	Entropy   float32 // sliding-window Shannon-entropy estimate
	Predicted bool    // Entropy >= Config.Threshold
}

// Detector runs one RR-interval stream through the median/low-ref/
// high-ref/symbolic/word/entropy pipeline and thresholds the resulting
// entropy estimate into an AF/not-AF prediction.
//
// A Detector holds no package-level mutable state; every field lives in
// the value the caller owns. Two RR streams may run concurrently only if
// each uses its own Detector. Detector is NOT safe for concurrent use by
// multiple goroutines.
type Detector struct {
	cfg Config
	pl  *pipeline.State
}

// New constructs a Detector from cfg. It returns ErrInvalidThreshold,
// ErrInvalidWindowSize, or ErrInvalidSPS if cfg does not validate.
func New(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{
		cfg: cfg,
		pl:  pipeline.New(),
	}, nil
}

// Step folds one raw RR-interval sample into the pipeline and returns the
// full debug tap, including the AF prediction.
func (d *Detector) Step(rr int32) StepResult {
	s := d.pl.Step(rr)
	return StepResult{
		Y:         s.Y,
		XL:        s.XL,
		XH:        s.XH,
		Symbol:    s.S,
		Word:      s.W,
		Entropy:   s.H,
		Predicted: s.H >= d.cfg.Threshold,
	}
}

// ClampCount reports how many words the entropy stage has had to clamp
// into range so far. It increases by at most one per occurrence;
// callers decide how to surface the diagnostic.
func (d *Detector) ClampCount() int64 {
	return d.pl.ClampCount()
}

// Config returns the configuration this Detector was constructed with.
func (d *Detector) Config() Config {
	return d.cfg
}
