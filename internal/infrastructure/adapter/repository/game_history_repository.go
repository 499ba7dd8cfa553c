package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// GameHistoryRepository implements GameHistoryRepository interface using GORM
type GameHistoryRepository struct {
	repositoryBase
}

// NewGameHistoryRepository creates a new GameHistoryRepository instance
func NewGameHistoryRepository(db *gorm.DB, logger coreport.Logger) *GameHistoryRepository {
	return &GameHistoryRepository{repositoryBase: newRepositoryBase(db, logger)}
}

func historyToEntity(m *model.GameHistory) *entity.GameHistory {
	return &entity.GameHistory{
		ID:            m.ID,
		UserID:        m.UserID,
		GameID:        m.GameID,
		TransactionID: m.TransactionID,
		RoundID:       m.RoundID,
		BetAmount:     m.BetAmount,
		WinAmount:     m.WinAmount,
		Result:        entity.GameResult(m.Result),
		OddsAtPlay:    m.OddsAtPlay,
		GameData:      map[string]any(m.GameData),
		PlayedAt:      m.PlayedAt,
	}
}

// Create records a played round. A round id the user already recorded is a
// constraint violation.
func (r *GameHistoryRepository) Create(ctx context.Context, history *entity.GameHistory) error {
	historyModel := model.GameHistory{
		UserID:        history.UserID,
		GameID:        history.GameID,
		TransactionID: history.TransactionID,
		RoundID:       history.RoundID,
		BetAmount:     history.BetAmount,
		WinAmount:     history.WinAmount,
		Result:        string(history.Result),
		OddsAtPlay:    history.OddsAtPlay,
		GameData:      datatypes.JSONMap(history.GameData),
		PlayedAt:      history.PlayedAt,
	}

	if err := r.db.WithContext(ctx).Create(&historyModel).Error; err != nil {
		return r.handleDatabaseError("creating game history", err, nil, map[string]any{
			"user_id":  history.UserID,
			"game_id":  history.GameID,
			"round_id": history.RoundID,
		})
	}

	history.ID = historyModel.ID
	return nil
}

// FindByRound looks up the user's record of a round
func (r *GameHistoryRepository) FindByRound(ctx context.Context, userID uint64, roundID string) (*entity.GameHistory, bool, error) {
	var models []model.GameHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND round_id = ?", userID, roundID).
		Limit(1).
		Find(&models).Error
	if err != nil {
		return nil, false, r.handleDatabaseError("finding game history by round", err, nil, map[string]any{
			"user_id":  userID,
			"round_id": roundID,
		})
	}
	if len(models) == 0 {
		return nil, false, nil
	}
	return historyToEntity(&models[0]), true, nil
}

// List returns rounds matching the filter, newest first
func (r *GameHistoryRepository) List(ctx context.Context, filter persistence.GameHistoryFilter) ([]*entity.GameHistory, error) {
	query := r.db.WithContext(ctx).Model(&model.GameHistory{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.GameID != nil {
		query = query.Where("game_id = ?", *filter.GameID)
	}

	var models []model.GameHistory
	if err := query.Order("id DESC").Limit(clampLimit(filter.Limit)).Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing game history", err, nil, nil)
	}

	histories := make([]*entity.GameHistory, 0, len(models))
	for i := range models {
		histories = append(histories, historyToEntity(&models[i]))
	}
	return histories, nil
}

// Totals summarizes rounds played in [from, to)
func (r *GameHistoryRepository) Totals(ctx context.Context, from, to time.Time) (entity.GamePlayTotals, error) {
	var totals entity.GamePlayTotals
	err := r.db.WithContext(ctx).Model(&model.GameHistory{}).
		Select(`COUNT(*) AS rounds,
			COALESCE(SUM(CASE WHEN result = ? THEN 1 ELSE 0 END), 0) AS wins,
			COALESCE(SUM(bet_amount), 0) AS bet_amount,
			COALESCE(SUM(win_amount), 0) AS win_amount,
			COALESCE(SUM(CASE WHEN result = ? THEN bet_amount ELSE 0 END), 0) AS loss_amount`,
			string(entity.ResultWin), string(entity.ResultLoss)).
		Where("played_at >= ? AND played_at < ?", from, to).
		Scan(&totals).Error
	if err != nil {
		return entity.GamePlayTotals{}, r.handleDatabaseError("summing game history", err, nil, nil)
	}
	return totals, nil
}
