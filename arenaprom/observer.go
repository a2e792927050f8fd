// Package arenaprom exports arena allocation events as Prometheus metrics.
package arenaprom

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	arena "github.com/pavanmanishd/fixedarena"
)

var _ arena.MetricsObserver = (*Observer)(nil)

// Observer implements arena.MetricsObserver. One Observer may be shared by
// several arenas; gauges then report the sum over all of them.
type Observer struct {
	allocs    prometheus.Counter
	requested prometheus.Counter
	padding   prometheus.Counter
	failures  prometheus.Counter
	releases  prometheus.Counter
	inUse     prometheus.Gauge
	reserved  prometheus.Gauge
}

// NewObserver creates an Observer and registers its metrics on reg under the
// given namespace.
func NewObserver(reg prometheus.Registerer, namespace string) (*Observer, error) {
	const subsystem = "arena"
	o := &Observer{
		allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocations_total",
			Help:      "Total successful arena allocations",
		}),
		requested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requested_bytes_total",
			Help:      "Total bytes requested by successful allocations",
		}),
		padding: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "padding_bytes_total",
			Help:      "Total bytes skipped to satisfy alignment",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "allocation_failures_total",
			Help:      "Total allocations rejected for lack of space",
		}),
		releases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "releases_total",
			Help:      "Total arenas released",
		}),
		inUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "in_use_bytes",
			Help:      "Bytes consumed in live arenas, padding included",
		}),
		reserved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reserved_bytes",
			Help:      "Capacity of live arenas",
		}),
	}

	collectors := []prometheus.Collector{
		o.allocs, o.requested, o.padding, o.failures, o.releases, o.inUse, o.reserved,
	}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("arenaprom: register: %w", err)
		}
	}
	return o, nil
}

func (o *Observer) OnReserve(capacity int) {
	o.reserved.Add(float64(capacity))
}

func (o *Observer) OnAllocate(size, padding uintptr) {
	o.allocs.Inc()
	o.requested.Add(float64(size))
	o.padding.Add(float64(padding))
	o.inUse.Add(float64(size + padding))
}

func (o *Observer) OnAllocateFailure(size, align uintptr) {
	o.failures.Inc()
}

func (o *Observer) OnRelease(inUse, capacity int) {
	o.inUse.Sub(float64(inUse))
	o.reserved.Sub(float64(capacity))
	o.releases.Inc()
}
