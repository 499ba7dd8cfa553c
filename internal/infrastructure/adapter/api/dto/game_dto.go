package dto

import (
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
)

// GameRequest is the body of POST /games and PUT /games/:gameId
type GameRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	MinBet      string         `json:"minBet" binding:"required"`
	MaxBet      string         `json:"maxBet" binding:"required"`
	Odds        string         `json:"odds" binding:"required"`
	Status      string         `json:"status"`
	Rules       map[string]any `json:"rules"`
	ImageURL    string         `json:"imageUrl"`
}

// ToUseCase converts the body to a catalog request
func (r GameRequest) ToUseCase() usecase.GameRequest {
	return usecase.GameRequest{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		MinBet:      r.MinBet,
		MaxBet:      r.MaxBet,
		Odds:        r.Odds,
		Status:      r.Status,
		Rules:       r.Rules,
		ImageURL:    r.ImageURL,
	}
}

// GameResponse represents a catalog entry
type GameResponse struct {
	ID          uint64         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	MinBet      string         `json:"minBet"`
	MaxBet      string         `json:"maxBet"`
	Odds        string         `json:"odds"`
	Status      string         `json:"status"`
	Rules       map[string]any `json:"rules,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// NewGameResponse maps a game entity
func NewGameResponse(g *entity.Game) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		MinBet:      entity.AmountInCentsToString(g.MinBet),
		MaxBet:      entity.AmountInCentsToString(g.MaxBet),
		Odds:        g.Odds.String(),
		Status:      string(g.Status),
		Rules:       g.Rules,
		ImageURL:    g.ImageURL,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// GamePlayRequest is the body of POST /game-plays
type GamePlayRequest struct {
	UserID     uint64         `json:"userId" binding:"required"`
	GameID     uint64         `json:"gameId" binding:"required"`
	BetAmount  string         `json:"betAmount" binding:"required"`
	WinAmount  string         `json:"winAmount"`
	OddsAtPlay string         `json:"oddsAtPlay"`
	Result     string         `json:"result" binding:"required,oneof=win loss"`
	GameData   map[string]any `json:"gameData"`
	RoundID    string         `json:"roundId"`
}

// ToUseCase converts the body to a ledger request
func (r GamePlayRequest) ToUseCase() usecase.GamePlayRequest {
	winAmount := r.WinAmount
	if winAmount == "" {
		winAmount = "0"
	}
	return usecase.GamePlayRequest{
		UserID:     r.UserID,
		GameID:     r.GameID,
		BetAmount:  r.BetAmount,
		WinAmount:  winAmount,
		OddsAtPlay: r.OddsAtPlay,
		Result:     r.Result,
		GameData:   r.GameData,
		RoundID:    r.RoundID,
	}
}

// GameHistoryResponse represents a played round
type GameHistoryResponse struct {
	ID            uint64         `json:"id"`
	UserID        uint64         `json:"userId"`
	GameID        uint64         `json:"gameId"`
	TransactionID *uint64        `json:"transactionId,omitempty"`
	RoundID       string         `json:"roundId"`
	BetAmount     string         `json:"betAmount"`
	WinAmount     string         `json:"winAmount"`
	Result        string         `json:"result"`
	OddsAtPlay    string         `json:"oddsAtPlay"`
	GameData      map[string]any `json:"gameData,omitempty"`
	PlayedAt      time.Time      `json:"playedAt"`
}

// NewGameHistoryResponse maps a game history entity
func NewGameHistoryResponse(h *entity.GameHistory) GameHistoryResponse {
	return GameHistoryResponse{
		ID:            h.ID,
		UserID:        h.UserID,
		GameID:        h.GameID,
		TransactionID: h.TransactionID,
		RoundID:       h.RoundID,
		BetAmount:     entity.AmountInCentsToString(h.BetAmount),
		WinAmount:     entity.AmountInCentsToString(h.WinAmount),
		Result:        string(h.Result),
		OddsAtPlay:    h.OddsAtPlay.String(),
		GameData:      h.GameData,
		PlayedAt:      h.PlayedAt,
	}
}
