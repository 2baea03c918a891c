// Package pipeline wires the median filter, the two reference integrators,
// the symbolic coder, the word encoder and the entropy engine into a
// single per-sample transducer: one RR interval in, one entropy estimate
// (plus every intermediate tap) out.
package pipeline

import (
	"github.com/rrstream/afdetect/internal/entropy"
	"github.com/rrstream/afdetect/internal/highref"
	"github.com/rrstream/afdetect/internal/lowref"
	"github.com/rrstream/afdetect/internal/median"
	"github.com/rrstream/afdetect/internal/symbolic"
	"github.com/rrstream/afdetect/internal/word"
)

// Sample is the full set of intermediate values produced by one step of
// the pipeline, matching the debug tap described in the external
// interface: y, xl, xh, s, w, H.
type Sample struct {
	Y  int32   // median-filtered RR
	XL int32   // low-reference output
	XH int32   // high-reference output
	S  int     // symbol (0..9)
	W  int     // word (0..2457)
	H  float32 // entropy estimate
}

// State owns one instance of every stage. Each record gets its own State;
// stages never share buffers with each other or across records.
type State struct {
	median   *median.State
	lowRef   *lowref.State
	highRef  *highref.State
	symbolic *symbolic.State
	word     *word.State
	entropy  *entropy.State
}

// New returns a pipeline with every stage freshly initialized.
func New() *State {
	return &State{
		median:   median.New(),
		lowRef:   lowref.New(),
		highRef:  highref.New(),
		symbolic: symbolic.New(),
		word:     word.New(),
		entropy:  entropy.New(),
	}
}

// Step folds one raw RR-interval sample through every stage and returns
// the full intermediate tap.
func (st *State) Step(rr int32) Sample {
	y := st.median.Update(rr)
	xl := st.lowRef.Update(y)
	xh := st.highRef.Update(xl)
	s := st.symbolic.Update(rr, xl, xh)
	w := st.word.Update(s)
	h := st.entropy.Update(w)

	return Sample{Y: y, XL: xl, XH: xh, S: s, W: w, H: h}
}

// ClampCount reports how many words this pipeline's entropy stage has had
// to clamp into range so far.
func (st *State) ClampCount() int64 {
	return st.entropy.ClampCount()
}
