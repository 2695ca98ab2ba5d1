// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Store owns the elements admitted into a reservoir. The sampler decides
// which slot an admitted element occupies; a Store never reorders occupied
// slots on its own.
//
// Implementations are expected to hold at most Capacity() elements and to
// release element memory on Clear and Drain so that stored values don't
// outlive their sample.
type Store[T any] interface {
	// Capacity returns the number of slots.
	Capacity() int

	// Len returns the number of occupied slots.
	Len() int

	// Append places [elem] into the lowest free slot.
	//
	// Invariant: Len() < Capacity().
	Append(elem T)

	// Replace overwrites occupied slot [i] with [elem].
	Replace(i int, elem T)

	// View returns the occupied slots in order. The returned slice is only
	// valid until the next mutating call.
	View() []T

	// Drain moves the occupied slots out of the store and leaves it empty.
	Drain() []T

	// Clear releases every occupied slot.
	Clear()

	// Reserve allocates the backing storage now rather than on the first
	// Append.
	Reserve()
}

// NewStore returns the default slice-backed store. Storage for [capacity]
// elements is allocated lazily on the first Append, matching samplers that
// are constructed but never fed.
func NewStore[T any](capacity int) Store[T] {
	return &sliceStore[T]{capacity: capacity}
}

type sliceStore[T any] struct {
	capacity int
	elems    []T
}

func (s *sliceStore[T]) Capacity() int {
	return s.capacity
}

func (s *sliceStore[T]) Len() int {
	return len(s.elems)
}

func (s *sliceStore[T]) Append(elem T) {
	s.Reserve()
	s.elems = append(s.elems, elem)
}

func (s *sliceStore[T]) Replace(i int, elem T) {
	s.elems[i] = elem
}

func (s *sliceStore[T]) View() []T {
	return s.elems
}

func (s *sliceStore[T]) Drain() []T {
	elems := s.elems
	s.elems = nil
	return elems
}

func (s *sliceStore[T]) Clear() {
	// Zero the slots so the store doesn't pin the evicted elements.
	var zero T
	for i := range s.elems {
		s.elems[i] = zero
	}
	s.elems = s.elems[:0]
}

func (s *sliceStore[T]) Reserve() {
	if s.elems == nil {
		s.elems = make([]T, 0, s.capacity)
	}
}
