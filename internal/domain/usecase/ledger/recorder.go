package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// RecordGamePlay settles one externally decided round. The net effect is
// written as a single win or loss transaction keyed by the round id, then the
// round is stored in the game history. Round ids are scoped to the user; a
// retry after a failed history write completes the round without charging
// the wallet again.
func (s *Service) RecordGamePlay(ctx context.Context, req usecase.GamePlayRequest) (*entity.GameHistory, error) {
	play, err := s.validator.ValidateGamePlay(req)
	if err != nil {
		return nil, err
	}

	game, err := s.catalog.ValidateBet(ctx, req.GameID, play.bet)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive() {
		return nil, fmt.Errorf("%w: user %d is %s", errs.ErrInvalidUserStatus, user.ID, user.Status)
	}

	wallet, err := s.uow.GetWalletRepository(ctx).GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	odds := play.odds
	if odds.IsZero() {
		odds = game.Odds
	}
	roundID := strings.TrimSpace(req.RoundID)
	clientRound := roundID != ""
	if !clientRound {
		roundID = uuid.NewString()
	}
	reference := RoundReference(roundID)

	net, err := entity.NetDelta(play.bet, play.win)
	if err != nil {
		return nil, err
	}

	// a settlement without history is left by a failed history write
	var tx *entity.Transaction
	if clientRound {
		tx, err = s.priorSettlement(ctx, user.ID, wallet.ID, game.ID, roundID, net)
		if err != nil {
			return nil, err
		}
		if tx != nil {
			s.logger.Info("Completing previously settled round", map[string]any{
				"transaction_id": tx.ID,
				"user_id":        user.ID,
				"round_id":       roundID,
			})
		}
	}

	if net != 0 && tx == nil {
		tx, err = s.mutate(ctx, mutation{
			walletID: wallet.ID,
			txType:   entity.NetTransactionType(net),
			amount:   entity.AbsCents(net),
			delta:    fixedDelta(net),
			opts: []entity.TransactionOption{
				entity.WithGameID(game.ID),
				entity.WithDescription(fmt.Sprintf("%s round %s: bet $%s, won $%s", game.Name, roundID,
					entity.AmountInCentsToString(play.bet), entity.AmountInCentsToString(play.win))),
			},
			referenceID: reference,
		})
		if err != nil {
			return nil, err
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	history := &entity.GameHistory{
		UserID:     user.ID,
		GameID:     game.ID,
		RoundID:    roundID,
		BetAmount:  play.bet,
		WinAmount:  play.win,
		Result:     play.result,
		OddsAtPlay: odds,
		GameData:   req.GameData,
		PlayedAt:   s.timeProvider.Now(),
	}
	history.LinkTransaction(tx)

	if err := s.saveHistory(ctx, history); err != nil {
		if tx == nil && errors.Is(err, errs.ErrConstraintViolation) {
			return nil, errs.NewDuplicateReferenceError(wallet.ID, reference, 0)
		}

		fields := map[string]any{
			"user_id":  user.ID,
			"game_id":  game.ID,
			"round_id": roundID,
			"error":    err.Error(),
		}
		if tx != nil {
			fields["transaction_id"] = tx.ID
		}
		s.metrics.IncContinuationFailure("history")
		s.logger.Error("Failed to store game history", fields)

		return nil, errs.NewTransactionError(wallet.ID, user.ID, string(entity.NetTransactionType(net)),
			entity.AmountInCentsToString(entity.AbsCents(net)), reference,
			"round settled but game history was not stored", err)
	}

	s.audit.Log(ctx, usecase.AuditEntry{
		Action:     entity.ActionGamePlay,
		EntityType: entity.EntityGameHistory,
		EntityID:   strconv.FormatUint(history.ID, 10),
		Description: fmt.Sprintf("Played %s: bet $%s, %s $%s", game.Name,
			entity.AmountInCentsToString(play.bet), play.result, entity.AmountInCentsToString(play.win)),
		NewData: history.Snapshot(),
	})
	s.metrics.ObserveGamePlay(string(play.result))

	s.logger.Info("Game play recorded", map[string]any{
		"history_id": history.ID,
		"user_id":    user.ID,
		"game_id":    game.ID,
		"round_id":   roundID,
		"result":     string(play.result),
		"net":        entity.AmountInCentsToString(net),
	})
	return history, nil
}

// priorSettlement checks the user's earlier attempts at a round. A recorded
// round is a duplicate. A settlement on the wallet is returned for reuse when
// it matches this round's game and net effect, and is a duplicate otherwise.
func (s *Service) priorSettlement(ctx context.Context, userID, walletID, gameID uint64, roundID string, net int64) (*entity.Transaction, error) {
	reference := RoundReference(roundID)

	recorded, found, err := s.uow.GetGameHistoryRepository(ctx).FindByRound(ctx, userID, roundID)
	if err != nil {
		return nil, err
	}
	if found {
		var txID uint64
		if recorded.TransactionID != nil {
			txID = *recorded.TransactionID
		}
		return nil, errs.NewDuplicateReferenceError(walletID, reference, txID)
	}

	settled, found, err := s.uow.GetTransactionRepository(ctx).FindByReference(ctx, walletID, reference, time.Time{})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	if net == 0 || settled.SignedAmount() != net || settled.GameID == nil || *settled.GameID != gameID {
		return nil, errs.NewDuplicateReferenceError(walletID, reference, settled.ID)
	}
	return settled, nil
}

// saveHistory stores a settled round. Transient storage failures are retried;
// the write is detached from the caller because the round is already settled.
func (s *Service) saveHistory(ctx context.Context, history *entity.GameHistory) error {
	writeCtx := context.WithoutCancel(ctx)

	var err error
	for attempt := 0; ; attempt++ {
		attemptCtx, cancel := s.timeProvider.WithTimeout(writeCtx, s.cfg.QueryTimeout)
		err = s.uow.GetGameHistoryRepository(attemptCtx).Create(attemptCtx, history)
		cancel()

		if err == nil {
			return nil
		}
		if !errs.IsStorageUnavailableError(err) && !errs.IsConcurrentModificationError(err) {
			return err
		}
		if attempt >= s.cfg.HistoryWriteRetries {
			return err
		}

		s.logger.Warn("Retrying game history write", map[string]any{
			"round_id": history.RoundID,
			"attempt":  attempt + 1,
			"error":    err.Error(),
		})
		<-s.timeProvider.After(backoffWithJitter(attempt, s.cfg.Retry))
	}
}
