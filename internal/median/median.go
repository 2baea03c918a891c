// Package median implements the 17-tap causal running median filter that
// denoises the raw RR-interval stream before it reaches the reference
// integrators.
package median

import "sort"

// Size is the number of taps in the running median window.
const Size = 17

// State is a causal running median over the last Size samples (fewer
// during warm-up). The zero value is ready to use.
type State struct {
	window [Size]int32
	sorted [Size]int32
	head   int
	count  int
}

// New returns a running median filter with an empty window.
func New() *State {
	return &State{}
}

// Update appends new to the window and returns the median of the samples
// currently held. Before the window fills, the median of the first count
// samples is returned (upper median on even counts).
func (s *State) Update(sample int32) int32 {
	s.window[s.head] = sample
	s.head = (s.head + 1) % Size
	if s.count < Size {
		s.count++
	}

	copy(s.sorted[:s.count], s.window[:s.count])
	sort.Slice(s.sorted[:s.count], func(i, j int) bool {
		return s.sorted[i] < s.sorted[j]
	})

	return s.sorted[s.count/2]
}
