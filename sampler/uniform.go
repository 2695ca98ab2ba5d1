// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// Uniform maintains a fixed-size uniform random sample over an unweighted
// stream using Li's "Algorithm L".
//
// After n elements have been observed, every element has probability
// min(1, capacity/n) of being in the sample. Instead of rolling a die per
// element, the sampler draws how many upcoming elements are guaranteed to
// lose their roll and skips them in O(1), which makes a full pass O(capacity
// * (1 + log(n/capacity))) random draws in expectation.
type Uniform[T any] struct {
	rng   *rng
	store Store[T]

	// Number of upcoming elements that will be discarded without consulting
	// the rng.
	indexesToSkip uint64

	// Running probability mass used to derive the next skip count. Grows
	// towards 1 as the stream gets longer and admissions get rarer.
	weightJumpOver float64
}

// NewUniform returns a sampler holding up to [capacity] elements, seeded from
// the operating system.
func NewUniform[T any](capacity int) (*Uniform[T], error) {
	return NewDeterministicUniform[T](capacity, nil)
}

// NewDeterministicUniform returns a sampler holding up to [capacity] elements
// drawing randomness from [source]. A nil source falls back to an OS-seeded
// one.
func NewDeterministicUniform[T any](capacity int, source Source) (*Uniform[T], error) {
	if capacity <= 0 {
		return nil, errZeroCapacity
	}
	return NewUniformFromStore(NewStore[T](capacity), source)
}

// NewUniformFromStore returns a sampler whose admitted elements live in
// [store]. Use this when element storage needs custom placement; most callers
// want NewUniform.
func NewUniformFromStore[T any](store Store[T], source Source) (*Uniform[T], error) {
	if store.Capacity() <= 0 {
		return nil, errZeroCapacity
	}
	return &Uniform[T]{
		rng:   newRNG(source),
		store: store,
	}, nil
}

// Sample observes the next element of the stream, admitting it into the
// reservoir if it wins its admission roll. Admitting an element once the
// reservoir is full evicts a uniformly chosen slot.
func (s *Uniform[T]) Sample(elem T) {
	if s.store.Len() < s.store.Capacity() {
		s.store.Append(elem)
		if s.store.Len() == s.store.Capacity() {
			s.weightJumpOver = math.Exp(math.Log(s.rng.Float64()) / float64(s.store.Capacity()))
			s.indexesToSkip = s.nextSkipCount()
		}
		return
	}

	if s.indexesToSkip > 0 {
		s.indexesToSkip--
		return
	}

	evicted := s.rng.Uint64Inclusive(uint64(s.store.Capacity()) - 1)
	s.store.Replace(int(evicted), elem)
	s.weightJumpOver *= math.Exp(math.Log(s.rng.Float64()) / float64(s.store.Capacity()))
	s.indexesToSkip = s.nextSkipCount()
}

// nextSkipCount draws the length of the run of upcoming elements that are
// guaranteed not to be admitted.
func (s *Uniform[T]) nextSkipCount() uint64 {
	// If weightJumpOver rounds up to 1, log(1-weightJumpOver) is -Inf and
	// the quotient collapses to 0: every element is considered. If the
	// uniform draw is 0, the quotient is +Inf and the count saturates.
	skip := math.Floor(math.Log(s.rng.Float64()) / math.Log(1-s.weightJumpOver))
	switch {
	case math.IsNaN(skip) || skip < 0:
		return 0
	case skip >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(skip)
	}
}

// WillConsiderNext reports whether the next observed element will be
// evaluated for admission. While it returns false the sampler is guaranteed
// to discard the next element, so a caller for whom materializing an element
// is expensive can call SkipNext instead of Sample.
func (s *Uniform[T]) WillConsiderNext() bool {
	return s.indexesToSkip == 0
}

// SkipNext passes over the next element of the stream without materializing
// it. Returns an error if the next element would be considered; replaying the
// stream through SkipNext and Sample stays bit-identical with replaying it
// through Sample alone.
func (s *Uniform[T]) SkipNext() error {
	if s.indexesToSkip == 0 {
		return errNotSkipping
	}
	s.indexesToSkip--
	return nil
}

// SkipCount returns the number of upcoming elements that are guaranteed not
// to be admitted.
func (s *Uniform[T]) SkipCount() uint64 {
	return s.indexesToSkip
}

// JumpAhead passes over [count] upcoming elements at once. Returns an error
// if [count] exceeds SkipCount().
func (s *Uniform[T]) JumpAhead(count uint64) error {
	if count > s.indexesToSkip {
		return errOutOfRange
	}
	s.indexesToSkip -= count
	return nil
}

// Len returns the number of elements currently sampled.
func (s *Uniform[T]) Len() int {
	return s.store.Len()
}

// Capacity returns the size of the final sample.
func (s *Uniform[T]) Capacity() int {
	return s.store.Capacity()
}

// GetResult returns a view of the current sample. The returned slice is only
// valid until the next mutating call.
func (s *Uniform[T]) GetResult() []T {
	return s.store.View()
}

// ConsumeResult moves the current sample out of the reservoir and resets it
// for a new stream.
func (s *Uniform[T]) ConsumeResult() []T {
	elems := s.store.Drain()
	s.indexesToSkip = 0
	s.weightJumpOver = 0
	return elems
}

// Reset discards the current sample and all skip-ahead state, keeping the
// rng state so the sampler can be reused.
func (s *Uniform[T]) Reset() {
	s.store.Clear()
	s.indexesToSkip = 0
	s.weightJumpOver = 0
}

// Reserve allocates the element storage up front instead of on the first
// Sample call.
func (s *Uniform[T]) Reserve() {
	s.store.Reserve()
}
