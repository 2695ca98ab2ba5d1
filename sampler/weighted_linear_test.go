// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearEmpty(t *testing.T) {
	require := require.New(t)

	s := NewLinear[string]()
	_, ok := s.GetResult()
	require.False(ok)
	require.Zero(s.Len())
	require.Equal(1, s.Capacity())
}

func TestLinearZeroWeightNeverSelected(t *testing.T) {
	require := require.New(t)

	s := NewLinear[string]()
	s.Sample(0, "unselectable")

	_, ok := s.GetResult()
	require.False(ok)
}

func TestLinearFirstAdmissibleSelected(t *testing.T) {
	require := require.New(t)

	s := NewLinear[string]()
	s.Sample(0, "unselectable")
	s.Sample(5, "first")

	elem, ok := s.GetResult()
	require.True(ok)
	require.Equal("first", elem)
	require.Equal(1, s.Len())
}

// Pins both outcomes of the replacement roll for weights [10, 1]: the draw
// in [0, 11) keeps the heavy element unless it lands below the light
// element's weight.
func TestLinearDeterministicReplace(t *testing.T) {
	t.Run("high draw keeps heavy", func(t *testing.T) {
		require := require.New(t)

		// 10 % 11 = 10, which is >= the challenger's weight of 1.
		s := NewDeterministicLinear[string](&testSource{vals: []uint64{10}})
		s.Sample(10, "heavy")
		s.Sample(1, "light")

		elem, ok := s.GetResult()
		require.True(ok)
		require.Equal("heavy", elem)
	})

	t.Run("low draw replaces", func(t *testing.T) {
		require := require.New(t)

		// 0 % 11 = 0, which is < the challenger's weight of 1.
		s := NewDeterministicLinear[string](&testSource{vals: []uint64{0}})
		s.Sample(10, "heavy")
		s.Sample(1, "light")

		elem, ok := s.GetResult()
		require.True(ok)
		require.Equal("light", elem)
	})
}

func TestLinearProportionality(t *testing.T) {
	require := require.New(t)

	const trials = 2200
	s := NewDeterministicLinear[string](NewSource(5))

	light := 0
	for trial := 0; trial < trials; trial++ {
		s.Sample(10, "heavy")
		s.Sample(1, "light")
		if elem, ok := s.ConsumeResult(); ok && elem == "light" {
			light++
		}
	}

	// Expect the light element to win 1/11 of the trials, within ~5 standard
	// deviations.
	require.InDelta(200, light, 70)
}

func TestLinearConsumeDrainsOnce(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicLinear[string](NewSource(0))
	s.Sample(3, "kept")

	elem, ok := s.ConsumeResult()
	require.True(ok)
	require.Equal("kept", elem)

	_, ok = s.ConsumeResult()
	require.False(ok)

	// The sampler is reusable after a consume.
	s.Sample(1, "again")
	elem, ok = s.GetResult()
	require.True(ok)
	require.Equal("again", elem)
}

func TestLinearReset(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicLinear[int](NewSource(0))
	s.Sample(7, 42)
	s.Reset()

	_, ok := s.GetResult()
	require.False(ok)
	require.Zero(s.Len())
}
