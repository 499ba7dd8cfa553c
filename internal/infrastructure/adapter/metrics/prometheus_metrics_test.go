package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

func TestPrometheusMetrics_LedgerCounters(t *testing.T) {
	m := NewPrometheusMetrics("test")

	m.IncConflictRetry()
	m.IncConflictRetry()
	m.IncContinuationFailure("aggregate")
	m.AddReconciled(5)
	m.AddReconciled(0)
	m.ObserveGamePlay("win")
	m.ObserveMutation("credit", "ok", 15*coreport.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.conflictRetries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.continuationFailure.WithLabelValues("aggregate")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.continuationFailure.WithLabelValues("audit")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.reconciled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamePlays.WithLabelValues("win")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.mutationDuration))
}

func TestPrometheusMetrics_DatabaseObservers(t *testing.T) {
	m := NewPrometheusMetrics("test")

	m.ObserveQuery("SELECT", "wallets", 3*time.Millisecond, false)
	m.ObserveQuery("UPDATE", "wallets", 4*time.Millisecond, true)
	m.ObserveQuery("", "", time.Millisecond, true)
	m.ObservePool(sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4, WaitCount: 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.queryErrors.WithLabelValues("UPDATE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.queryErrors.WithLabelValues("other")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.poolOpen))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.poolInUse))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.poolIdle))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.poolWaitCount))
}

func TestPrometheusMetrics_Handler(t *testing.T) {
	m := NewPrometheusMetrics("ledger")
	m.ObserveHTTPRequest("GET", "/health", "200", 2*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `ledger_http_requests_total{method="GET",path="/health",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()
	assert.NotPanics(t, func() {
		m.ObserveMutation("debit", "ok", coreport.Second)
		m.IncConflictRetry()
		m.IncContinuationFailure("audit")
		m.AddReconciled(3)
		m.ObserveGamePlay("loss")
	})
}
