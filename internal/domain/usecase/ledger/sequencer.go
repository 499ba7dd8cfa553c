package ledger

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// WalletSequencer runs calls for the same wallet one at a time, in arrival
// order, on a goroutine owned by that wallet. Different wallets run in parallel.
// A wallet's goroutine exits after it has been idle for idleTimeout.
type WalletSequencer struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	queueSize    int
	idleTimeout  coreport.Duration

	mu      sync.Mutex
	queues  map[uint64]*walletQueue
	closed  bool
	quit    chan struct{}
	workers sync.WaitGroup
}

// walletQueue is the pending work of one wallet. pending counts calls that
// were admitted but not yet finished; the worker may only retire at zero.
type walletQueue struct {
	calls   chan *sequencedCall
	pending int
}

// sequencedCall represents a queued call
type sequencedCall struct {
	ctx  context.Context
	fn   func()
	err  error
	done chan struct{}
}

// NewWalletSequencer creates a new sequencer
func NewWalletSequencer(
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	queueSize int,
	idleTimeout coreport.Duration,
) *WalletSequencer {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &WalletSequencer{
		logger:       logger,
		timeProvider: timeProvider,
		queueSize:    queueSize,
		idleTimeout:  idleTimeout,
		queues:       make(map[uint64]*walletQueue),
		quit:         make(chan struct{}),
	}
}

// Do runs fn in the wallet's sequence and waits for it to finish. A call whose
// ctx is cancelled while still queued is skipped and ctx.Err() is returned;
// once fn has started it always runs to completion.
func (s *WalletSequencer) Do(ctx context.Context, walletID uint64, fn func()) error {
	call := &sequencedCall{
		ctx:  ctx,
		fn:   fn,
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrLedgerClosed
	}
	queue, ok := s.queues[walletID]
	if !ok {
		queue = &walletQueue{calls: make(chan *sequencedCall, s.queueSize)}
		s.queues[walletID] = queue
		s.workers.Add(1)
		go s.run(walletID, queue)

		s.logger.Debug("Started wallet sequence worker", map[string]any{
			"wallet_id": walletID,
		})
	}
	queue.pending++
	s.mu.Unlock()

	select {
	case queue.calls <- call:
	case <-ctx.Done():
		s.mu.Lock()
		queue.pending--
		s.mu.Unlock()
		return ctx.Err()
	}

	<-call.done
	return call.err
}

// run is the worker goroutine of one wallet
func (s *WalletSequencer) run(walletID uint64, queue *walletQueue) {
	defer s.workers.Done()

	quit := s.quit
	for {
		select {
		case call := <-queue.calls:
			s.execute(call)
			s.mu.Lock()
			queue.pending--
			s.mu.Unlock()
			if quit == nil && s.retire(walletID, queue) {
				return
			}
		case <-quit:
			// keep draining admitted calls, then retire
			quit = nil
			if s.retire(walletID, queue) {
				return
			}
		case <-s.timeProvider.After(s.idleTimeout):
			if s.retire(walletID, queue) {
				return
			}
		}
	}
}

// retire removes the queue if it has no admitted work left
func (s *WalletSequencer) retire(walletID uint64, queue *walletQueue) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if queue.pending > 0 {
		return false
	}
	delete(s.queues, walletID)
	s.logger.Debug("Stopped idle wallet sequence worker", map[string]any{
		"wallet_id": walletID,
	})
	return true
}

func (s *WalletSequencer) execute(call *sequencedCall) {
	defer close(call.done)

	if err := call.ctx.Err(); err != nil {
		call.err = err
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered panic in wallet sequence", map[string]any{
				"panic": r,
			})
			call.err = errs.ErrInternalServer
		}
	}()
	call.fn()
}

// ActiveWallets returns the number of wallets with a live worker
func (s *WalletSequencer) ActiveWallets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues)
}

// Shutdown rejects new calls, finishes the admitted ones and waits for all
// workers to exit
func (s *WalletSequencer) Shutdown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.quit)
	s.mu.Unlock()

	s.logger.Info("Shutting down wallet sequencer", nil)
	s.workers.Wait()
	s.logger.Info("Wallet sequencer shut down successfully", nil)
}
