// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metersampler wraps the reservoir samplers with prometheus
// instrumentation tracking how a stream is being consumed.
package metersampler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/streamkit/reservoir/sampler"
)

// Uniform is a sampler.Uniform that reports Sample latency and
// observed/admitted/skipped counts to a prometheus registerer.
type Uniform[T any] struct {
	*sampler.Uniform[T]

	metrics metrics
}

// NewUniform wraps [s], registering its metrics under [namespace].
func NewUniform[T any](
	namespace string,
	registerer prometheus.Registerer,
	s *sampler.Uniform[T],
) (*Uniform[T], error) {
	meter := &Uniform[T]{Uniform: s}
	return meter, meter.metrics.Initialize(namespace, registerer)
}

func (m *Uniform[T]) Sample(elem T) {
	// Once the skip count hits 0 the next observed element is admitted, so
	// considered and admitted coincide for Algorithm L.
	admitted := m.Uniform.WillConsiderNext()

	start := time.Now()
	m.Uniform.Sample(elem)
	m.metrics.sample.Observe(float64(time.Since(start)))

	m.metrics.observed.Inc()
	if admitted {
		m.metrics.admitted.Inc()
	} else {
		m.metrics.skipped.Inc()
	}
}

func (m *Uniform[T]) SkipNext() error {
	if err := m.Uniform.SkipNext(); err != nil {
		return err
	}
	m.metrics.observed.Inc()
	m.metrics.skipped.Inc()
	return nil
}

func (m *Uniform[T]) JumpAhead(count uint64) error {
	if err := m.Uniform.JumpAhead(count); err != nil {
		return err
	}
	m.metrics.observed.Add(float64(count))
	m.metrics.skipped.Add(float64(count))
	return nil
}

// Weighted is a sampler.Weighted that reports Sample latency and
// observed/admitted/skipped/rejected counts to a prometheus registerer.
type Weighted[T any] struct {
	*sampler.Weighted[T]

	metrics metrics
}

// NewWeighted wraps [s], registering its metrics under [namespace].
func NewWeighted[T any](
	namespace string,
	registerer prometheus.Registerer,
	s *sampler.Weighted[T],
) (*Weighted[T], error) {
	meter := &Weighted[T]{Weighted: s}
	return meter, meter.metrics.Initialize(namespace, registerer)
}

func (m *Weighted[T]) Sample(weight float64, elem T) {
	admitted := weight > 0 && m.Weighted.WillConsiderNext(weight)

	start := time.Now()
	m.Weighted.Sample(weight, elem)
	m.metrics.sample.Observe(float64(time.Since(start)))

	m.metrics.observed.Inc()
	switch {
	case weight <= 0:
		m.metrics.rejected.Inc()
	case admitted:
		m.metrics.admitted.Inc()
	default:
		m.metrics.skipped.Inc()
	}
}

func (m *Weighted[T]) SkipNext(weight float64) error {
	if err := m.Weighted.SkipNext(weight); err != nil {
		return err
	}
	m.metrics.observed.Inc()
	m.metrics.skipped.Inc()
	return nil
}
