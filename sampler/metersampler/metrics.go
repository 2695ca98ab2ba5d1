// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersampler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/streamkit/reservoir/utils/metric"
	"github.com/streamkit/reservoir/utils/wrappers"
)

func newCounterMetric(namespace, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of elements %s", help),
	})
}

type metrics struct {
	sample prometheus.Histogram

	observed,
	admitted,
	skipped,
	rejected prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.sample = metric.NewNanosecondsLatencyMetric(namespace, "sample")
	m.observed = newCounterMetric(namespace, "observed", "fed to the sampler")
	m.admitted = newCounterMetric(namespace, "admitted", "admitted into the reservoir")
	m.skipped = newCounterMetric(namespace, "skipped", "discarded by skip-ahead bookkeeping")
	m.rejected = newCounterMetric(namespace, "rejected", "discarded for non-positive weight")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.sample),
		registerer.Register(m.observed),
		registerer.Register(m.admitted),
		registerer.Register(m.skipped),
		registerer.Register(m.rejected),
	)
	return errs.Err
}
