package metrics

import (
	"github.com/onflow/flow-seq/module"
)

type NoopCollector struct{}

var _ module.RandomSourceMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) OnDraw(bound uint64) {}
func (nc *NoopCollector) OnDrawFailure()      {}
