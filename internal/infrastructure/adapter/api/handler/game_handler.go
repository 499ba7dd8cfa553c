package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// GameHandler handles the game catalog and game play endpoints
type GameHandler struct {
	catalog usecase.GameCatalog
	ledger  usecase.LedgerUseCase
	logger  coreport.Logger
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(catalog usecase.GameCatalog, ledger usecase.LedgerUseCase, logger coreport.Logger) *GameHandler {
	return &GameHandler{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// CreateGame handles POST /games
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req dto.GameRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.catalog.CreateGame(c.Request.Context(), req.ToUseCase())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGameResponse(game))
}

// UpdateGame handles PUT /games/:gameId
func (h *GameHandler) UpdateGame(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.GameRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.catalog.UpdateGame(c.Request.Context(), gameID, req.ToUseCase())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// DeleteGame handles DELETE /games/:gameId
func (h *GameHandler) DeleteGame(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.catalog.DeleteGame(c.Request.Context(), gameID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetGame handles GET /games/:gameId
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, err := parseID(c, "gameId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	game, err := h.catalog.GetGame(c.Request.Context(), gameID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// ListGames handles GET /games?status=
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.catalog.ListGames(c.Request.Context(), c.Query("status"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, dto.NewGameResponse(g))
	}
	c.JSON(http.StatusOK, out)
}

// RecordGamePlay handles POST /game-plays
func (h *GameHandler) RecordGamePlay(c *gin.Context) {
	var req dto.GamePlayRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	history, err := h.ledger.RecordGamePlay(c.Request.Context(), req.ToUseCase())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGameHistoryResponse(history))
}

// ListGameHistory handles GET /game-history?userId=&gameId=&limit=
func (h *GameHandler) ListGameHistory(c *gin.Context) {
	var (
		filter persistence.GameHistoryFilter
		err    error
	)
	if filter.UserID, err = optionalID(c, "userId"); err != nil {
		_ = c.Error(err)
		return
	}
	if filter.GameID, err = optionalID(c, "gameId"); err != nil {
		_ = c.Error(err)
		return
	}
	if filter.Limit, err = queryLimit(c); err != nil {
		_ = c.Error(err)
		return
	}

	histories, err := h.ledger.ListGameHistory(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.GameHistoryResponse, 0, len(histories))
	for _, gh := range histories {
		out = append(out, dto.NewGameHistoryResponse(gh))
	}
	c.JSON(http.StatusOK, out)
}
