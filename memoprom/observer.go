// Package memoprom exports memoizer events as Prometheus metrics.
package memoprom

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goforj/memo"
)

// Observer implements memo.Observer on top of Prometheus collectors.
type Observer struct {
	Operations  *prometheus.CounterVec
	Entries     *prometheus.GaugeVec
	LoadLatency *prometheus.HistogramVec
}

var _ memo.Observer = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg under namespace.
// Collectors already registered by an earlier call are reused.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	o := &Observer{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_operations_total",
			Help:      "Memoizer operations by memoizer name and operation",
		}, []string{"name", "op"}),
		Entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "memo_entries",
			Help:      "Results currently cached per memoizer",
		}, []string{"name"}),
		LoadLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "memo_load_duration_seconds",
			Help:      "Miss latency including key resolution",
			Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"name"}),
	}

	var err error
	if o.Operations, err = register(reg, o.Operations); err != nil {
		return nil, err
	}
	if o.Entries, err = register(reg, o.Entries); err != nil {
		return nil, err
	}
	if o.LoadLatency, err = register(reg, o.LoadLatency); err != nil {
		return nil, err
	}
	return o, nil
}

// OnMemoOp implements memo.Observer.
func (o *Observer) OnMemoOp(_ context.Context, name string, op memo.Op, _ any, _ error, dur time.Duration) {
	o.Operations.WithLabelValues(name, string(op)).Inc()
	switch op {
	case memo.OpMiss:
		o.Entries.WithLabelValues(name).Inc()
		o.LoadLatency.WithLabelValues(name).Observe(dur.Seconds())
	case memo.OpBypass:
		o.LoadLatency.WithLabelValues(name).Observe(dur.Seconds())
	case memo.OpEvict, memo.OpEvictSkip:
		o.Entries.WithLabelValues(name).Dec()
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, err
	}
	return c, nil
}
