package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// mutation is one balance change on its way through the atomic write path
type mutation struct {
	walletID uint64
	txType   entity.TransactionType
	// amount is the requested magnitude, or the target balance for adjustments
	amount      int64
	delta       func(wallet *entity.Wallet) (int64, error)
	opts        []entity.TransactionOption
	referenceID string
}

// writeResult is what one pass through the write path produced
type writeResult struct {
	tx *entity.Transaction
	// started is set once the caller's cancellation no longer applies
	started bool
	// balance is the last balance read under the wallet lock, nil if never read
	balance *int64
}

func fixedDelta(delta int64) func(*entity.Wallet) (int64, error) {
	return func(*entity.Wallet) (int64, error) {
		return delta, nil
	}
}

// ApplyTransaction applies a credit, debit, win or loss to a wallet
func (s *Service) ApplyTransaction(ctx context.Context, req usecase.ApplyTransactionRequest) (*entity.Transaction, error) {
	txType, delta, err := s.validator.ValidateApply(req)
	if err != nil {
		return nil, err
	}

	opts := []entity.TransactionOption{entity.WithDescription(req.Description)}
	if req.GameID != nil {
		opts = append(opts, entity.WithGameID(*req.GameID))
	}

	return s.mutate(ctx, mutation{
		walletID:    req.WalletID,
		txType:      txType,
		amount:      entity.AbsCents(delta),
		delta:       fixedDelta(delta),
		opts:        opts,
		referenceID: req.ReferenceID,
	})
}

// AdjustBalance sets a wallet to an absolute balance. The recorded amount is
// the distance from the current balance.
func (s *Service) AdjustBalance(ctx context.Context, req usecase.AdjustBalanceRequest) (*entity.Transaction, error) {
	target, err := s.validator.ValidateAdjust(req)
	if err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		description = "Balance adjustment to $" + entity.AmountInCentsToString(target)
	}

	return s.mutate(ctx, mutation{
		walletID: req.WalletID,
		txType:   entity.TypeAdjustment,
		amount:   target,
		delta: func(wallet *entity.Wallet) (int64, error) {
			if wallet.Balance() == math.MinInt64 {
				return 0, errs.ErrAmountOverflow
			}
			delta, err := entity.AddCents(target, -wallet.Balance())
			if err != nil {
				return 0, err
			}
			if delta == 0 {
				return 0, fmt.Errorf("%w: balance is already %s", errs.ErrInvalidAmount, wallet.GetBalance())
			}
			return delta, nil
		},
		opts:        []entity.TransactionOption{entity.WithDescription(description)},
		referenceID: req.ReferenceID,
	})
}

// mutate serializes the change per wallet, runs the atomic write and then the
// post-commit continuations
func (s *Service) mutate(ctx context.Context, m mutation) (*entity.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.referenceID = strings.TrimSpace(m.referenceID)
	start := s.timeProvider.Now()

	var (
		res writeResult
		err error
	)
	run := func() {
		res, err = s.mutateExclusive(ctx, m)
	}

	if s.sequencer != nil {
		if seqErr := s.sequencer.Do(ctx, m.walletID, run); seqErr != nil && !res.started {
			err = seqErr
		}
	} else {
		run()
	}
	tx := res.tx

	s.metrics.ObserveMutation(string(m.txType), outcome(err), s.timeProvider.Since(start))

	if err != nil {
		if res.started {
			fields := errs.Fields(err)
			fields["wallet_id"] = m.walletID
			fields["type"] = string(m.txType)
			s.logger.Warn("Balance mutation failed", fields)
			s.auditFailure(ctx, m, res.balance, err)
		}
		return nil, err
	}

	s.logger.Info("Transaction committed", map[string]any{
		"transaction_id": tx.ID,
		"wallet_id":      tx.WalletID,
		"type":           string(tx.Type),
		"amount":         entity.AmountInCentsToString(tx.Amount),
		"balance_after":  entity.AmountInCentsToString(tx.BalanceAfter),
	})
	s.afterCommit(ctx, tx)
	return tx, nil
}

// mutateExclusive runs while this process holds the wallet's sequence
func (s *Service) mutateExclusive(ctx context.Context, m mutation) (writeResult, error) {
	if err := ctx.Err(); err != nil {
		return writeResult{}, err
	}
	writeCtx := context.WithoutCancel(ctx)
	res := writeResult{started: true}

	release, err := s.lockWallet(ctx, writeCtx, m.walletID)
	if err != nil {
		return res, err
	}
	defer release()

	err = retryOnConflict(ctx, s.cfg.Retry, s.timeProvider, s.logger, s.metrics, func(int) error {
		var attemptErr error
		res.tx, attemptErr = s.applyOnce(writeCtx, m, &res)
		return attemptErr
	})
	if err != nil {
		res.tx = nil
		return res, err
	}
	return res, nil
}

// applyOnce is one attempt of the atomic unit: lock and read the wallet, check
// the reference id, compare-and-swap the wallet, append the transaction
func (s *Service) applyOnce(ctx context.Context, m mutation, res *writeResult) (*entity.Transaction, error) {
	ctx, cancel := s.timeProvider.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback transaction", map[string]any{
				"wallet_id": m.walletID,
				"error":     rbErr.Error(),
			})
		}
	}()

	walletRepo := s.uow.GetWalletRepository(txCtx)
	txRepo := s.uow.GetTransactionRepository(txCtx)

	wallet, err := walletRepo.GetForUpdate(txCtx, m.walletID)
	if err != nil {
		return nil, err
	}
	balance := wallet.Balance()
	res.balance = &balance

	if err := s.idempotency.CheckReference(txCtx, txRepo, wallet.ID, m.referenceID); err != nil {
		return nil, err
	}

	delta, err := m.delta(wallet)
	if err != nil {
		return nil, s.balanceError(wallet, m, err)
	}

	opts := make([]entity.TransactionOption, 0, len(m.opts)+1)
	opts = append(opts, m.opts...)
	opts = append(opts, entity.WithReferenceID(m.referenceID))

	tx, err := entity.NewTransaction(wallet, m.txType, delta, s.timeProvider, opts...)
	if err != nil {
		return nil, s.balanceError(wallet, m, err)
	}

	expectedVersion := wallet.Version
	if err := wallet.ApplyDelta(delta, s.timeProvider); err != nil {
		return nil, s.balanceError(wallet, m, err)
	}

	if err := walletRepo.UpdateBalance(txCtx, wallet, expectedVersion); err != nil {
		return nil, err
	}
	if err := txRepo.Create(txCtx, tx); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return tx, nil
}

func (s *Service) balanceError(wallet *entity.Wallet, m mutation, err error) error {
	return errs.NewBalanceError(wallet.ID, string(m.txType), entity.AmountInCentsToString(m.amount), wallet.GetBalance(), err)
}

// lockWallet takes the cross-process wallet lock, retrying while another
// process holds it. The returned release never fails the caller.
func (s *Service) lockWallet(ctx, writeCtx context.Context, walletID uint64) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	var token string
	err := retryOnConflict(ctx, s.cfg.Retry, s.timeProvider, s.logger, s.metrics, func(int) error {
		var err error
		token, err = s.locker.AcquireLock(writeCtx, walletID, s.cfg.LockTTL.Std())
		if errors.Is(err, errs.ErrWalletLocked) {
			return fmt.Errorf("%w: %w", errs.ErrConcurrentModification, err)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, errs.ErrWalletLocked) {
			return nil, errs.ErrWalletLocked
		}
		return nil, err
	}

	return func() {
		releaseCtx, cancel := s.timeProvider.WithTimeout(writeCtx, s.cfg.QueryTimeout)
		defer cancel()
		if err := s.locker.ReleaseLock(releaseCtx, walletID, token); err != nil {
			s.logger.Warn("Failed to release wallet lock", map[string]any{
				"wallet_id": walletID,
				"error":     err.Error(),
			})
		}
	}, nil
}

// afterCommit drives the aggregator and the audit trail. Failures are logged
// and counted; the reconciler repairs them later.
func (s *Service) afterCommit(ctx context.Context, tx *entity.Transaction) {
	detached := context.WithoutCancel(ctx)

	aggCtx, cancel := s.timeProvider.WithTimeout(detached, s.cfg.QueryTimeout)
	if _, err := s.aggregator.OnTransactionCommitted(aggCtx, tx); err != nil {
		s.metrics.IncContinuationFailure("aggregate")
		s.logger.Error("Failed to aggregate committed transaction", map[string]any{
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
	}
	cancel()

	auditCtx, cancel := s.timeProvider.WithTimeout(detached, s.cfg.QueryTimeout)
	defer cancel()
	if _, err := s.audit.RecordTransaction(auditCtx, tx, coreport.ActorFromContext(ctx)); err != nil {
		s.metrics.IncContinuationFailure("audit")
		s.logger.Error("Failed to audit committed transaction", map[string]any{
			"transaction_id": tx.ID,
			"error":          err.Error(),
		})
	}
}

// auditFailure records a rejected mutation in the audit trail. When the
// wallet was read, the entry states its balance, which the failure left as is.
func (s *Service) auditFailure(ctx context.Context, m mutation, balance *int64, err error) {
	var description string
	if m.txType == entity.TypeAdjustment {
		description = fmt.Sprintf("Failed adjustment to $%s", entity.AmountInCentsToString(m.amount))
	} else {
		description = fmt.Sprintf("Failed %s of $%s", m.txType, entity.AmountInCentsToString(m.amount))
	}
	if balance != nil {
		current := entity.AmountInCentsToString(*balance)
		description += fmt.Sprintf(", balance from $%s to $%s (unchanged)", current, current)
	}
	description += ": " + err.Error()

	newData := map[string]any{
		"type":       string(m.txType),
		"amount":     entity.AmountInCentsToString(m.amount),
		"error_code": errs.ErrorCode(err),
	}
	if m.referenceID != "" {
		newData["reference_id"] = m.referenceID
	}

	entry := usecase.AuditEntry{
		Action:      entity.ActionBalanceChange,
		EntityType:  entity.EntityWallet,
		EntityID:    strconv.FormatUint(m.walletID, 10),
		Description: description,
		NewData:     newData,
	}
	if balance != nil {
		entry.OldData = map[string]any{"balance": entity.AmountInCentsToString(*balance)}
		newData["balance"] = entity.AmountInCentsToString(*balance)
	}
	s.audit.Log(ctx, entry)
}

// outcome classifies a mutation result for metrics
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errs.IsConcurrentModificationError(err), errors.Is(err, errs.ErrWalletLocked):
		return "conflict"
	case errs.IsStorageUnavailableError(err):
		return "unavailable"
	case errs.IsCallerError(err):
		return "rejected"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "error"
	}
}
