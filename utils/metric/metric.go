// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// NewNanosecondsLatencyMetric returns a histogram tracking the latency of
// [name] operations in nanoseconds.
func NewNanosecondsLatencyMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("time (in ns) of a %s", name),
		Buckets:   NanosecondsBuckets,
	})
}
