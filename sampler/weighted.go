// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

// Weighted maintains a fixed-size sample over a weighted stream using the
// "A-ExpJ" algorithm.
//
// Every element is assigned the priority key U^(1/weight) for a uniform draw
// U, and the sampler keeps the capacity elements with the highest keys seen
// so far, which makes an element's inclusion probability proportional to its
// share of the total streamed weight. Between admissions the sampler tracks
// how much cumulative weight can stream past before the lowest-keyed slot
// has to be challenged again, so skipped elements cost O(1) and admissions
// cost O(log capacity).
//
// Elements with non-positive weight are never admitted.
type Weighted[T any] struct {
	rng   *rng
	store Store[T]

	// Min-heap over the occupied slots, keyed ascending by priority. The
	// root is the next slot to be evicted. heap[i].index is the slot in
	// [store] holding the element that drew heap[i].priority.
	heap []weightedItem

	// Cumulative stream weight that can still pass before the root slot is
	// challenged. Only meaningful once the reservoir is full.
	weightJumpOver float64
}

type weightedItem struct {
	priority float64
	index    int
}

// NewWeighted returns a sampler holding up to [capacity] elements, seeded
// from the operating system.
func NewWeighted[T any](capacity int) (*Weighted[T], error) {
	return NewDeterministicWeighted[T](capacity, nil)
}

// NewDeterministicWeighted returns a sampler holding up to [capacity]
// elements drawing randomness from [source]. A nil source falls back to an
// OS-seeded one.
func NewDeterministicWeighted[T any](capacity int, source Source) (*Weighted[T], error) {
	if capacity <= 0 {
		return nil, errZeroCapacity
	}
	return NewWeightedFromStore(NewStore[T](capacity), source)
}

// NewWeightedFromStore returns a sampler whose admitted elements live in
// [store].
func NewWeightedFromStore[T any](store Store[T], source Source) (*Weighted[T], error) {
	if store.Capacity() <= 0 {
		return nil, errZeroCapacity
	}
	return &Weighted[T]{
		rng:   newRNG(source),
		store: store,
	}, nil
}

// Sample observes the next element of the stream with the given weight.
func (s *Weighted[T]) Sample(weight float64, elem T) {
	if weight <= 0 {
		return
	}

	if s.store.Len() < s.store.Capacity() {
		r := math.Pow(s.rng.Float64(), 1/weight)
		s.push(weightedItem{
			priority: r,
			index:    s.store.Len(),
		})
		s.store.Append(elem)
		if s.store.Len() == s.store.Capacity() {
			s.weightJumpOver = s.nextWeightJumpOver()
		}
		return
	}

	s.weightJumpOver -= weight
	if s.weightJumpOver > 0 {
		return
	}

	// The root slot lost its challenge. The replacement key is drawn above
	// the root's key raised to this element's weight, which is exactly the
	// conditional distribution of the maximum key given that it beats the
	// evicted one.
	t := math.Pow(s.heap[0].priority, weight)
	r := math.Pow(s.rng.Float64Range(t), 1/weight)

	s.store.Replace(s.heap[0].index, elem)
	s.heap[0].priority = r
	s.siftDown(0)
	s.weightJumpOver = s.nextWeightJumpOver()
}

// nextWeightJumpOver draws the cumulative stream weight that can pass before
// the root slot is challenged again.
//
// Priority keys live in (0,1), but extreme weights can saturate them to
// exactly 0 or 1 in floating point. Saturated keys get a defined limiting
// policy instead of a NaN quotient: a root key of 0 never re-challenges, a
// root key of 1 re-challenges immediately.
func (s *Weighted[T]) nextWeightJumpOver() float64 {
	switch minPriority := s.heap[0].priority; {
	case minPriority <= 0:
		return math.Inf(1)
	case minPriority >= 1:
		return math.Inf(-1)
	default:
		return math.Log(s.rng.Float64()) / math.Log(minPriority)
	}
}

func (s *Weighted[T]) push(item weightedItem) {
	s.heap = append(s.heap, item)
	i := len(s.heap) - 1
	for i > 0 {
		parentIndex := (i - 1) / 2
		if s.heap[parentIndex].priority <= s.heap[i].priority {
			break
		}
		s.heap[parentIndex], s.heap[i] = s.heap[i], s.heap[parentIndex]
		i = parentIndex
	}
}

func (s *Weighted[T]) siftDown(i int) {
	for {
		smallest := i
		if left := 2*i + 1; left < len(s.heap) && s.heap[left].priority < s.heap[smallest].priority {
			smallest = left
		}
		if right := 2*i + 2; right < len(s.heap) && s.heap[right].priority < s.heap[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		s.heap[i], s.heap[smallest] = s.heap[smallest], s.heap[i]
		i = smallest
	}
}

// WillConsiderNext reports whether an element with the given weight would be
// evaluated for admission. While it returns false the sampler is guaranteed
// to discard the next element of that weight, so a caller for whom
// materializing an element is expensive can call SkipNext instead of Sample.
func (s *Weighted[T]) WillConsiderNext(weight float64) bool {
	return s.weightJumpOver-weight <= 0
}

// SkipNext passes over the next element of the stream, of the given weight,
// without materializing it. Returns an error if an element of that weight
// would be considered.
func (s *Weighted[T]) SkipNext(weight float64) error {
	if s.WillConsiderNext(weight) {
		return errNotSkipping
	}
	s.weightJumpOver -= weight
	return nil
}

// Len returns the number of elements currently sampled.
func (s *Weighted[T]) Len() int {
	return s.store.Len()
}

// Capacity returns the size of the final sample.
func (s *Weighted[T]) Capacity() int {
	return s.store.Capacity()
}

// GetResult returns a view of the current sample. The returned slice is only
// valid until the next mutating call.
func (s *Weighted[T]) GetResult() []T {
	return s.store.View()
}

// ConsumeResult moves the current sample out of the reservoir and resets it
// for a new stream.
func (s *Weighted[T]) ConsumeResult() []T {
	elems := s.store.Drain()
	s.heap = nil
	s.weightJumpOver = 0
	return elems
}

// Reset discards the current sample and all priority state, keeping the rng
// state so the sampler can be reused.
func (s *Weighted[T]) Reset() {
	s.store.Clear()
	s.heap = s.heap[:0]
	s.weightJumpOver = 0
}

// Reserve allocates the element storage up front instead of on the first
// Sample call.
func (s *Weighted[T]) Reserve() {
	s.store.Reserve()
}
