// Package symbolic implements the delta-RR symbolic coder: it quantizes
// the gap between a delayed raw RR and a delayed low-reference output into
// one of ten symbols, using thresholds derived from the current
// high-reference output.
package symbolic

// XDelay and XLDelay are the depths of the two delay lines the coder
// reads its delta from.
const (
	XDelay  = 63
	XLDelay = 47
)

// State holds the two independent delay lines feeding the Δ computation.
// The zero value starts both lines at zero, so until a line has wrapped its
// delayed value reads as 0. Δ therefore starts at 0 - 0 = 0, which maps to
// symbol 9 while xh is small enough (below 8) that every threshold is zero.
type State struct {
	xBuf   [XDelay]int32
	xlBuf  [XLDelay]int32
	xHead  int
	xlHead int
}

// New returns a symbolic coder with empty delay lines.
func New() *State {
	return &State{}
}

// Update folds the current raw RR (x), low-reference output (xl), and
// high-reference output (xh) into the coder and returns a symbol in 0..9.
func (s *State) Update(x, xl, xh int32) int {
	xDelayed := s.xBuf[s.xHead]
	xlDelayed := s.xlBuf[s.xlHead]

	s.xBuf[s.xHead] = x
	s.xlBuf[s.xlHead] = xl
	s.xHead = (s.xHead + 1) % XDelay
	s.xlHead = (s.xlHead + 1) % XLDelay

	delta := xDelayed - xlDelayed

	t1 := xh >> 4
	t2 := xh >> 3
	t3 := t1 + t2
	t4 := xh >> 2
	t5 := t4 + t1

	switch {
	case delta < -t4:
		return 0
	case delta < -t3:
		return 1
	case delta < -t2:
		return 2
	case delta < -t1:
		return 3
	case delta < t1:
		return 4
	case delta < t2:
		return 5
	case delta < t3:
		return 6
	case delta < t4:
		return 7
	case delta < t5:
		return 8
	default:
		return 9
	}
}
