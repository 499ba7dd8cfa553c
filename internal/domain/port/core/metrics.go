package core

// Metrics records ledger activity for monitoring
type Metrics interface {
	// ObserveMutation records a finished wallet mutation with its outcome
	// ("ok" or an error kind) and duration
	ObserveMutation(txType string, outcome string, duration Duration)
	// IncConflictRetry counts an optimistic-lock retry
	IncConflictRetry()
	// IncContinuationFailure counts a failed post-commit step ("aggregate" or "audit")
	IncContinuationFailure(stage string)
	// AddReconciled counts transactions re-driven by the reconciler
	AddReconciled(count int)
	// ObserveGamePlay records a round result
	ObserveGamePlay(result string)
}
