// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUniformZeroCapacity(t *testing.T) {
	require := require.New(t)

	_, err := NewUniform[int](0)
	require.ErrorIs(err, errZeroCapacity)

	_, err = NewUniform[int](-1)
	require.ErrorIs(err, errZeroCapacity)
}

func TestUniformExhaustiveFill(t *testing.T) {
	require := require.New(t)

	s, err := NewUniform[int](5)
	require.NoError(err)

	s.Sample(10)
	s.Sample(20)
	s.Sample(30)

	require.Equal(3, s.Len())
	require.Equal(5, s.Capacity())
	require.Equal([]int{10, 20, 30}, s.GetResult())
}

func TestUniformCapacityBound(t *testing.T) {
	require := require.New(t)

	s, err := NewDeterministicUniform[int](5, NewSource(0))
	require.NoError(err)

	for i := 0; i < 1000; i++ {
		s.Sample(i)
		require.LessOrEqual(s.Len(), 5)
	}
	require.Equal(5, s.Len())
}

// Pins the exact Algorithm L bookkeeping for capacity 2 and the stream
// [A, B, C, D]: the first uniform draw of 0.25 makes the jump-over weight
// 0.5, the second draw of 0.5 makes the skip count 1, so C is passed over
// and D evicts the slot chosen by the masked integer draw.
func TestUniformDeterministicEviction(t *testing.T) {
	require := require.New(t)

	source := &testSource{vals: []uint64{
		float64Bits(0.25), // jump-over weight = exp(ln(0.25)/2) = 0.5
		float64Bits(0.5),  // skip count = floor(ln(0.5)/ln(0.5)) = 1
		2,                 // eviction slot = 2 & 1 = 0
		float64Bits(0.25), // jump-over weight *= 0.5
		float64Bits(0.5),  // skip count = floor(ln(0.5)/ln(0.75)) = 2
	}}
	s, err := NewDeterministicUniform[string](2, source)
	require.NoError(err)

	s.Sample("A")
	s.Sample("B")
	require.Equal([]string{"A", "B"}, s.GetResult())
	require.EqualValues(1, s.SkipCount())

	s.Sample("C") // skipped
	require.True(s.WillConsiderNext())

	s.Sample("D") // evicts slot 0
	require.Equal([]string{"D", "B"}, s.GetResult())
	require.EqualValues(2, s.SkipCount())
}

func TestUniformSkipEquivalence(t *testing.T) {
	require := require.New(t)

	plain, err := NewDeterministicUniform[int](10, NewSource(1234))
	require.NoError(err)
	skipping, err := NewDeterministicUniform[int](10, NewSource(1234))
	require.NoError(err)

	for i := 0; i < 10000; i++ {
		plain.Sample(i)

		if skipping.WillConsiderNext() {
			skipping.Sample(i)
		} else {
			require.NoError(skipping.SkipNext())
		}
	}

	require.Equal(plain.GetResult(), skipping.GetResult())
}

func TestUniformJumpAhead(t *testing.T) {
	require := require.New(t)

	source := &testSource{vals: []uint64{
		float64Bits(0.25), // jump-over weight = 0.5
		float64Bits(0.1),  // skip count = floor(ln(0.1)/ln(0.5)) = floor(3.32) = 3
	}}
	s, err := NewDeterministicUniform[int](2, source)
	require.NoError(err)

	s.Sample(1)
	s.Sample(2)
	require.EqualValues(3, s.SkipCount())

	require.ErrorIs(s.JumpAhead(4), errOutOfRange)
	require.NoError(s.JumpAhead(2))
	require.EqualValues(1, s.SkipCount())
	require.False(s.WillConsiderNext())

	require.NoError(s.SkipNext())
	require.True(s.WillConsiderNext())
	require.ErrorIs(s.SkipNext(), errNotSkipping)
	require.ErrorIs(s.JumpAhead(1), errOutOfRange)
	require.NoError(s.JumpAhead(0))
}

func TestUniformUniformity(t *testing.T) {
	require := require.New(t)

	const (
		capacity = 10
		n        = 100
		trials   = 2000
	)

	source := NewSource(42)
	counts := make([]int, n)
	for trial := 0; trial < trials; trial++ {
		s, err := NewDeterministicUniform[int](capacity, source)
		require.NoError(err)
		for i := 0; i < n; i++ {
			s.Sample(i)
		}
		for _, i := range s.GetResult() {
			counts[i]++
		}
	}

	// Each element should be sampled trials*capacity/n = 200 times. The
	// tolerance is ~5 standard deviations.
	for i, count := range counts {
		require.InDelta(200, count, 70, "element %d", i)
	}
}

func TestUniformResetMatchesFresh(t *testing.T) {
	require := require.New(t)

	s, err := NewDeterministicUniform[int](5, NewSource(7))
	require.NoError(err)

	// Partial fill performs no random draws, so after a reset the rng state
	// is still untouched.
	s.Sample(1)
	s.Sample(2)
	s.Reset()
	require.Zero(s.Len())
	require.Empty(s.GetResult())

	fresh, err := NewDeterministicUniform[int](5, NewSource(7))
	require.NoError(err)

	for i := 0; i < 100; i++ {
		s.Sample(i)
		fresh.Sample(i)
	}
	require.Equal(fresh.GetResult(), s.GetResult())
}

func TestUniformConsumeDrainsOnce(t *testing.T) {
	require := require.New(t)

	s, err := NewDeterministicUniform[string](3, NewSource(0))
	require.NoError(err)

	s.Sample("a")
	s.Sample("b")

	require.Equal([]string{"a", "b"}, s.ConsumeResult())
	require.Zero(s.Len())
	require.Empty(s.ConsumeResult())

	// The sampler is reusable after a consume.
	s.Sample("c")
	require.Equal([]string{"c"}, s.GetResult())
}

func TestUniformReserve(t *testing.T) {
	require := require.New(t)

	s, err := NewUniform[int](4)
	require.NoError(err)

	s.Reserve()
	s.Sample(1)
	require.Equal([]int{1}, s.GetResult())
}

func TestUniformCustomStore(t *testing.T) {
	require := require.New(t)

	store := NewStore[int](3)
	s, err := NewUniformFromStore(store, NewSource(9))
	require.NoError(err)

	for i := 0; i < 50; i++ {
		s.Sample(i)
	}
	require.Equal(3, store.Len())
	require.Equal(store.View(), s.GetResult())
}
