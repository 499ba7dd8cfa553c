package metrics

import (
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// NoopMetrics discards everything
type NoopMetrics struct{}

var _ coreport.Metrics = NoopMetrics{}

// NewNoopMetrics returns a Metrics that records nothing
func NewNoopMetrics() coreport.Metrics {
	return NoopMetrics{}
}

func (NoopMetrics) ObserveMutation(string, string, coreport.Duration) {}

func (NoopMetrics) IncConflictRetry() {}

func (NoopMetrics) IncContinuationFailure(string) {}

func (NoopMetrics) AddReconciled(int) {}

func (NoopMetrics) ObserveGamePlay(string) {}
