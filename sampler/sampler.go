// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sampler provides one-pass reservoir sampling over streams whose
// length is unknown in advance.
//
// Every sampler visits each element of its stream exactly once, holds at most
// its capacity in memory, and guarantees the theoretically correct inclusion
// probability for every element observed so far: uniform for [Uniform],
// proportional to weight for [Weighted] and [Linear].
//
// A sampler instance is not safe for concurrent mutation. Shard the stream
// across independent instances instead; see [SampleChan].
package sampler

import "errors"

var (
	errZeroCapacity = errors.New("capacity must be positive")
	errOutOfRange   = errors.New("out of range")
	errNotSkipping  = errors.New("next element will be considered")
)
