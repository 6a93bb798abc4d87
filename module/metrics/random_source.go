package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-seq/module"
)

// RandomSourceCollector tracks the draws served by a random source.
// Collectors of different sources share the same metrics, distinguished by the source label.
type RandomSourceCollector struct {
	draws        prometheus.Counter
	drawFailures prometheus.Counter
	drawBounds   prometheus.Observer
}

var _ module.RandomSourceMetrics = (*RandomSourceCollector)(nil)

// NewRandomSourceCollector creates and registers the random source metrics on registerer.
// It panics if the metrics are already registered on registerer.
func NewRandomSourceCollector(registerer prometheus.Registerer, source string) *RandomSourceCollector {
	r := NewRegisterer(registerer)

	draws := r.RegisterNewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceSequence,
		Subsystem: subsystemRandomSource,
		Name:      "draws_total",
		Help:      "total number of bounded randoms drawn from the random source",
	}, []string{LabelSource})

	drawFailures := r.RegisterNewCounterVec(prometheus.CounterOpts{
		Namespace: namespaceSequence,
		Subsystem: subsystemRandomSource,
		Name:      "draw_failures_total",
		Help:      "total number of bounded draws the random source failed to serve",
	}, []string{LabelSource})

	drawBounds := r.RegisterNewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespaceSequence,
		Subsystem: subsystemRandomSource,
		Name:      "draw_bound",
		Help:      "histogram of the exclusive upper bounds of the draws",
		Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
	}, []string{LabelSource})

	return &RandomSourceCollector{
		draws:        draws.WithLabelValues(source),
		drawFailures: drawFailures.WithLabelValues(source),
		drawBounds:   drawBounds.WithLabelValues(source),
	}
}

func (c *RandomSourceCollector) OnDraw(bound uint64) {
	c.draws.Inc()
	c.drawBounds.Observe(float64(bound))
}

func (c *RandomSourceCollector) OnDrawFailure() {
	c.drawFailures.Inc()
}
