package random

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/onflow/flow-seq/module"
	"github.com/onflow/flow-seq/sequence"
)

// InstrumentedSource is a sequence.Source decorator reporting every draw of the
// wrapped source to a metrics collector, and logging the failing ones.
type InstrumentedSource struct {
	source    sequence.Source
	collector module.RandomSourceMetrics
	log       zerolog.Logger

	draws    *atomic.Uint64
	failures *atomic.Uint64
}

var _ sequence.Source = (*InstrumentedSource)(nil)

// NewInstrumentedSource wraps source so that each draw is counted, reported to
// collector, and logged with log when it fails.
func NewInstrumentedSource(source sequence.Source, collector module.RandomSourceMetrics, log zerolog.Logger) *InstrumentedSource {
	return &InstrumentedSource{
		source:    source,
		collector: collector,
		log:       log.With().Str("component", "random_source").Logger(),
		draws:     atomic.NewUint64(0),
		failures:  atomic.NewUint64(0),
	}
}

// UintN forwards the draw to the wrapped source. Errors are returned unchanged.
func (s *InstrumentedSource) UintN(n uint64) (uint64, error) {
	r, err := s.source.UintN(n)
	if err != nil {
		s.failures.Inc()
		s.collector.OnDrawFailure()
		s.log.Error().Err(err).Uint64("bound", n).Msg("random source failed to draw")
		return 0, err
	}
	s.draws.Inc()
	s.collector.OnDraw(n)
	s.log.Trace().Uint64("bound", n).Uint64("value", r).Msg("random drawn")
	return r, nil
}

// Draws returns the number of successful draws served so far.
func (s *InstrumentedSource) Draws() uint64 {
	return s.draws.Load()
}

// Failures returns the number of failed draws so far.
func (s *InstrumentedSource) Failures() uint64 {
	return s.failures.Load()
}
