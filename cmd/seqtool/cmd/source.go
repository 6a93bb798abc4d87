package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/onflow/flow-seq/module"
	"github.com/onflow/flow-seq/module/metrics"
	"github.com/onflow/flow-seq/random"
	"github.com/onflow/flow-seq/sequence"
	"github.com/onflow/flow-seq/utils/rand"
)

// session holds the random source of a command run and its metrics
type session struct {
	source   *random.InstrumentedSource
	registry *prometheus.Registry
}

// newSession creates the random source selected by the flags: a Chacha20 generator
// when a seed is given, the system RNG otherwise.
func newSession(opts *options) (*session, error) {
	label := metrics.SourceSystem
	var source sequence.Source = rand.Default()
	if opts.Seed != "" {
		seed, err := hex.DecodeString(opts.Seed)
		if err != nil {
			return nil, fmt.Errorf("could not decode seed: %w", err)
		}
		prg, err := random.NewChacha20(seed, []byte(opts.Customizer))
		if err != nil {
			return nil, fmt.Errorf("could not create random generator: %w", err)
		}
		source = prg
		label = metrics.SourceChacha20
	}

	s := &session{}
	var collector module.RandomSourceMetrics = metrics.NewNoopCollector()
	if opts.Metrics {
		s.registry = prometheus.NewRegistry()
		collector = metrics.NewRandomSourceCollector(s.registry, label)
	}
	s.source = random.NewInstrumentedSource(source, collector, log)

	log.Debug().Str("source", label).Msg("random source created")
	return s, nil
}

// report logs the gathered metrics of the session, if enabled
func (s *session) report() {
	if s.registry == nil {
		return
	}
	families, err := s.registry.Gather()
	if err != nil {
		log.Error().Err(err).Msg("could not gather metrics")
		return
	}
	for _, family := range families {
		for _, m := range family.GetMetric() {
			event := log.Info().Str("metric", family.GetName())
			if counter := m.GetCounter(); counter != nil {
				event = event.Float64("value", counter.GetValue())
			}
			if histogram := m.GetHistogram(); histogram != nil {
				event = event.Uint64("count", histogram.GetSampleCount()).Float64("sum", histogram.GetSampleSum())
			}
			event.Msg("random source metric")
		}
	}
}
