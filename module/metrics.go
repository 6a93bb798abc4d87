package module

// RandomSourceMetrics encapsulates the metrics collectors for the random sources
// driving the sequence algorithms.
type RandomSourceMetrics interface {
	// OnDraw tracks a successful bounded draw of a random in [0, bound).
	OnDraw(bound uint64)

	// OnDrawFailure tracks a bounded draw that the random source failed to serve.
	OnDrawFailure()
}
