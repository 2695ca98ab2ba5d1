// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Linear selects exactly one element from a weighted stream with exact
// proportional-to-weight probability. It keeps a running weight sum instead
// of a priority heap: after j elements with positive weight have streamed,
// element i is the selection with probability weight_i / sum of the first j
// weights, by induction over the replacement roll.
//
// Invariant: the sum of all weights observed by one instance must fit in a
// uint64. Overflow silently corrupts the selection probabilities; it is not
// detected at runtime.
//
// Elements with zero weight are never selected.
type Linear[T any] struct {
	rng *rng

	weightSum uint64
	selected  T
	hasValue  bool
}

// NewLinear returns a single-element sampler seeded from the operating
// system.
func NewLinear[T any]() *Linear[T] {
	return NewDeterministicLinear[T](nil)
}

// NewDeterministicLinear returns a single-element sampler drawing randomness
// from [source]. A nil source falls back to an OS-seeded one.
func NewDeterministicLinear[T any](source Source) *Linear[T] {
	return &Linear[T]{
		rng: newRNG(source),
	}
}

// Sample observes the next element of the stream with the given weight.
func (s *Linear[T]) Sample(weight uint64, elem T) {
	if weight == 0 {
		return
	}

	s.weightSum += weight
	if !s.hasValue {
		s.selected = elem
		s.hasValue = true
		return
	}

	if s.rng.Uint64Inclusive(s.weightSum-1) < weight {
		s.selected = elem
	}
}

// Len returns 1 once any element has been selected.
func (s *Linear[T]) Len() int {
	if s.hasValue {
		return 1
	}
	return 0
}

// Capacity returns the size of the final sample, which is always 1.
func (*Linear[T]) Capacity() int {
	return 1
}

// GetResult returns the currently selected element, if any.
func (s *Linear[T]) GetResult() (T, bool) {
	return s.selected, s.hasValue
}

// ConsumeResult moves the selection out of the sampler and resets it for a
// new stream.
func (s *Linear[T]) ConsumeResult() (T, bool) {
	elem, ok := s.selected, s.hasValue
	s.Reset()
	return elem, ok
}

// Reset discards the selection and the accumulated weight sum, keeping the
// rng state so the sampler can be reused.
func (s *Linear[T]) Reset() {
	var zero T
	s.weightSum = 0
	s.selected = zero
	s.hasValue = false
}
