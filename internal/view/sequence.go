package view

import "sync/atomic"

// fetchSequence tags outgoing fetches with a monotonically increasing number
// so a response that is no longer the latest issued can be discarded instead
// of overwriting fresher state.
type fetchSequence struct {
	n atomic.Uint64
}

func (s *fetchSequence) next() uint64 {
	return s.n.Add(1)
}

func (s *fetchSequence) latest(seq uint64) bool {
	return s.n.Load() == seq
}
