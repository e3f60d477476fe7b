// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the instrumentation points exposed on every launch. Hashrate
// and launch-duration are the two externally-interesting numbers for an
// embedder deciding whether its search capacity is healthy; neither is part
// of the hash core itself, which is why it lives in this package rather
// than in the root kawpow package.
var (
	noncesHashed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "kawpow",
		Subsystem: "search",
		Name:      "nonces_hashed_total",
		Help:      "Total number of nonces evaluated across all kernel launches.",
	})

	launchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kawpow",
		Subsystem: "search",
		Name:      "launches_total",
		Help:      "Total number of kernel launches, partitioned by outcome.",
	}, []string{"outcome"})

	launchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "kawpow",
		Subsystem: "search",
		Name:      "launch_duration_seconds",
		Help:      "Wall-clock duration of a single kernel launch.",
		Buckets:   prometheus.DefBuckets,
	})
)

// RegisterMetrics registers this package's collectors with reg. An embedder
// that doesn't care about metrics can simply never call this; the counters
// still increment in memory but are never scraped.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{noncesHashed, launchesTotal, launchDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
