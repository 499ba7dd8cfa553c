package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// GameRepository implements GameRepository interface using GORM
type GameRepository struct {
	repositoryBase
}

// NewGameRepository creates a new GameRepository instance
func NewGameRepository(db *gorm.DB, logger coreport.Logger) *GameRepository {
	return &GameRepository{repositoryBase: newRepositoryBase(db, logger)}
}

func gameToModel(game *entity.Game) model.Game {
	return model.Game{
		ID:          game.ID,
		Name:        game.Name,
		Description: game.Description,
		Category:    game.Category,
		MinBet:      game.MinBet,
		MaxBet:      game.MaxBet,
		Odds:        game.Odds,
		Status:      string(game.Status),
		Rules:       datatypes.JSONMap(game.Rules),
		ImageURL:    game.ImageURL,
		CreatedAt:   game.CreatedAt,
		UpdatedAt:   game.UpdatedAt,
	}
}

func gameToEntity(m *model.Game) *entity.Game {
	return &entity.Game{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		MinBet:      m.MinBet,
		MaxBet:      m.MaxBet,
		Odds:        m.Odds,
		Status:      entity.GameStatus(m.Status),
		Rules:       map[string]any(m.Rules),
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create adds a game to the catalog
func (r *GameRepository) Create(ctx context.Context, game *entity.Game) error {
	gameModel := gameToModel(game)
	if err := r.db.WithContext(ctx).Create(&gameModel).Error; err != nil {
		return r.handleDatabaseError("creating game", err, nil, map[string]any{
			"name": game.Name,
		})
	}
	game.ID = gameModel.ID
	return nil
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id uint64) (*entity.Game, error) {
	var gameModel model.Game
	if err := r.db.WithContext(ctx).First(&gameModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting game", err, errs.ErrGameNotFound, map[string]any{
			"game_id": id,
		})
	}
	return gameToEntity(&gameModel), nil
}

// Update saves catalog changes
func (r *GameRepository) Update(ctx context.Context, game *entity.Game) error {
	gameModel := gameToModel(game)
	result := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", game.ID).
		Updates(map[string]any{
			"name":        gameModel.Name,
			"description": gameModel.Description,
			"category":    gameModel.Category,
			"min_bet":     gameModel.MinBet,
			"max_bet":     gameModel.MaxBet,
			"odds":        gameModel.Odds,
			"status":      gameModel.Status,
			"rules":       gameModel.Rules,
			"image_url":   gameModel.ImageURL,
			"updated_at":  gameModel.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating game", result.Error, errs.ErrGameNotFound, map[string]any{
			"game_id": game.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

// Delete removes a game from the catalog
func (r *GameRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Game{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting game", result.Error, errs.ErrGameNotFound, map[string]any{
			"game_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

// List returns games ordered by name
func (r *GameRepository) List(ctx context.Context, status string) ([]*entity.Game, error) {
	query := r.db.WithContext(ctx).Model(&model.Game{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var models []model.Game
	if err := query.Order("name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing games", err, nil, map[string]any{
			"status": status,
		})
	}

	games := make([]*entity.Game, 0, len(models))
	for i := range models {
		games = append(games, gameToEntity(&models[i]))
	}
	return games, nil
}

// CountActive returns the number of games open for play
func (r *GameRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("status = ?", string(entity.GameStatusActive)).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting active games", err, nil, nil)
	}
	return count, nil
}
