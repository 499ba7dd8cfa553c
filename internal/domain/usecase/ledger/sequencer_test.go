package ledger

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/wallet-ledger/mocks/port/core"
)

func TestWalletSequencerRunsOneCallAtATime(t *testing.T) {
	seq := NewWalletSequencer(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), 8, coreport.Second)
	t.Cleanup(seq.Shutdown)

	var running, maxRunning, total int32
	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			return seq.Do(context.Background(), 1, func() {
				now := atomic.AddInt32(&running, 1)
				for {
					seen := atomic.LoadInt32(&maxRunning)
					if now <= seen || atomic.CompareAndSwapInt32(&maxRunning, seen, now) {
						break
					}
				}
				time.Sleep(100 * time.Microsecond)
				atomic.AddInt32(&total, 1)
				atomic.AddInt32(&running, -1)
			})
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), maxRunning)
	assert.Equal(t, int32(50), total)
}

func TestWalletSequencerWalletsRunInParallel(t *testing.T) {
	seq := NewWalletSequencer(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), 1, coreport.Second)
	t.Cleanup(seq.Shutdown)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = seq.Do(context.Background(), 1, func() {
			close(started)
			<-release
		})
	}()
	<-started

	done := make(chan error, 1)
	go func() {
		done <- seq.Do(context.Background(), 2, func() {})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("wallet 2 was blocked by wallet 1")
	}
	close(release)
}

func TestWalletSequencerSkipsCancelledCalls(t *testing.T) {
	seq := NewWalletSequencer(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), 4, coreport.Second)
	t.Cleanup(seq.Shutdown)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = seq.Do(context.Background(), 1, func() {
			close(started)
			<-release
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	var ran atomic.Bool
	errCh := make(chan error, 1)
	go func() {
		errCh <- seq.Do(ctx, 1, func() { ran.Store(true) })
	}()

	cancel()
	close(release)

	assert.ErrorIs(t, <-errCh, context.Canceled)
	assert.False(t, ran.Load())
}

func TestWalletSequencerRetiresIdleWorkers(t *testing.T) {
	idle := make(chan time.Time)
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().After(mock.Anything).Return(idle).Maybe()

	seq := NewWalletSequencer(logger.NewNoopLogger(), tp, 4, coreport.Minute)
	t.Cleanup(seq.Shutdown)

	require.NoError(t, seq.Do(context.Background(), 1, func() {}))
	require.NoError(t, seq.Do(context.Background(), 2, func() {}))
	assert.Equal(t, 2, seq.ActiveWallets())

	idle <- time.Now()
	idle <- time.Now()
	assert.Eventually(t, func() bool { return seq.ActiveWallets() == 0 }, time.Second, 5*time.Millisecond)

	// a retired wallet gets a fresh worker
	require.NoError(t, seq.Do(context.Background(), 1, func() {}))
	assert.Equal(t, 1, seq.ActiveWallets())
}

func TestWalletSequencerShutdown(t *testing.T) {
	seq := NewWalletSequencer(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), 16, coreport.Minute)

	var mu sync.Mutex
	var order []int
	release := make(chan struct{})
	started := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		return seq.Do(context.Background(), 1, func() {
			close(started)
			<-release
		})
	})
	<-started
	for i := 0; i < 3; i++ {
		g.Go(func() error {
			return seq.Do(context.Background(), 1, func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
			})
		})
	}
	assert.Eventually(t, func() bool {
		seq.mu.Lock()
		defer seq.mu.Unlock()
		return seq.queues[1] != nil && seq.queues[1].pending == 4
	}, time.Second, time.Millisecond)

	shutdown := make(chan struct{})
	go func() {
		seq.Shutdown()
		close(shutdown)
	}()
	close(release)

	select {
	case <-shutdown:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not finish admitted calls")
	}
	require.NoError(t, g.Wait())
	assert.Len(t, order, 3)
	assert.Equal(t, 0, seq.ActiveWallets())

	assert.ErrorIs(t, seq.Do(context.Background(), 1, func() {}), errs.ErrLedgerClosed)
}

func TestWalletSequencerRecoversPanics(t *testing.T) {
	seq := NewWalletSequencer(logger.NewNoopLogger(), timeadapter.NewRealTimeProvider(), 1, coreport.Second)
	t.Cleanup(seq.Shutdown)

	err := seq.Do(context.Background(), 5, func() { panic("boom") })
	assert.ErrorIs(t, err, errs.ErrInternalServer)

	assert.NoError(t, seq.Do(context.Background(), 5, func() {}))
}
