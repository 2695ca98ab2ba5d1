// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces the raw randomness consumed by every sampler in this
// package.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// NewSource returns a deterministic source. Two sources created with the same
// seed produce the same stream of values, so a sampler built on one replays
// the same admission decisions for the same input stream.
func NewSource(seed uint64) Source {
	source := prng.NewMT19937()
	source.Seed(seed)
	return source
}

func newRNG(source Source) *rng {
	if source == nil {
		// We don't need a cryptographically secure stream here, only an
		// unpredictable seed.
		source = NewSource(osSeed())
	}
	return &rng{rng: source}
}

func osSeed() uint64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.BigEndian.Uint64(buf[:])
}

type rng struct {
	rng Source
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (r *rng) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of
	// the compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get
	// a number in the requested range.
	case n > math.MaxInt64:
		v := r.uint64()
		for v > n {
			v = r.uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1)
	// is less than or equal to MaxUint64 because the calculation would
	// overflow.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Float64 returns a pseudo-random number in [0,1).
func (r *rng) Float64() float64 {
	return float64(r.uint64()>>11) / (1 << 53)
}

// Float64Range returns a pseudo-random number in [minimum,1).
func (r *rng) Float64Range(minimum float64) float64 {
	return minimum + (1-minimum)*r.Float64()
}

// uint63 returns a random number in [0, MaxInt64]
func (r *rng) uint63() uint64 {
	return r.uint64() & math.MaxInt64
}

// uint64 returns a random number in [0, MaxUint64]
func (r *rng) uint64() uint64 {
	return r.rng.Uint64()
}
