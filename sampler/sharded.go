// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	safemath "github.com/streamkit/reservoir/utils/math"
)

// SampleChan drains [elems] into a uniform sample of up to [capacity]
// elements, sharding the stream across [shards] goroutines. A non-positive
// shard count defaults to GOMAXPROCS.
//
// Each shard runs an independent Uniform sampler; the per-shard samples are
// then merged through a second-stage weighted reservoir in which every
// surviving element of shard i carries weight n_i/k_i, n_i being the number
// of elements the shard observed and k_i the size of its sample. This keeps
// the merged sample uniform over the whole stream.
//
// Returns the sample and the total number of elements observed.
func SampleChan[T any](ctx context.Context, elems <-chan T, capacity, shards int) ([]T, uint64, error) {
	if capacity <= 0 {
		return nil, 0, errZeroCapacity
	}
	if shards <= 0 {
		shards = runtime.GOMAXPROCS(0)
	}

	samplers := make([]*Uniform[T], shards)
	counts := make([]uint64, shards)
	for i := range samplers {
		s, err := NewUniform[T](capacity)
		if err != nil {
			return nil, 0, err
		}
		samplers[i] = s
	}

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		i := i
		eg.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case elem, ok := <-elems:
					if !ok {
						return nil
					}
					samplers[i].Sample(elem)
					counts[i]++
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	merged, err := NewWeighted[T](capacity)
	if err != nil {
		return nil, 0, err
	}

	total := uint64(0)
	for i, s := range samplers {
		total, err = safemath.Add64(total, counts[i])
		if err != nil {
			return nil, 0, err
		}

		result := s.ConsumeResult()
		if len(result) == 0 {
			continue
		}
		weight := float64(counts[i]) / float64(len(result))
		for _, elem := range result {
			merged.Sample(weight, elem)
		}
	}
	return merged.ConsumeResult(), total, nil
}
