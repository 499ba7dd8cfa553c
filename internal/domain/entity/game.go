package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// GameStatus represents the availability of a game
type GameStatus string

// Game statuses
const (
	GameStatusActive      GameStatus = "active"
	GameStatusInactive    GameStatus = "inactive"
	GameStatusMaintenance GameStatus = "maintenance"
)

// Game is a catalog entry that bets are validated against
type Game struct {
	ID          uint64
	Name        string
	Description string
	Category    string
	MinBet      int64
	MaxBet      int64
	Odds        decimal.Decimal
	Status      GameStatus
	Rules       map[string]any
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GameAttributes carries the mutable catalog fields of a game
type GameAttributes struct {
	Name        string
	Description string
	Category    string
	MinBet      int64
	MaxBet      int64
	Odds        decimal.Decimal
	Status      string
	Rules       map[string]any
	ImageURL    string
}

// NewGame creates a catalog entry after validating its limits
func NewGame(attrs GameAttributes, timeProvider coreport.TimeProvider) (*Game, error) {
	now := timeProvider.Now()
	g := &Game{CreatedAt: now}
	if err := g.apply(attrs, now); err != nil {
		return nil, err
	}
	return g, nil
}

// Update replaces the mutable fields of the game
func (g *Game) Update(attrs GameAttributes, timeProvider coreport.TimeProvider) error {
	updated := *g
	if err := updated.apply(attrs, timeProvider.Now()); err != nil {
		return err
	}
	*g = updated
	return nil
}

func (g *Game) apply(attrs GameAttributes, now time.Time) error {
	name := strings.TrimSpace(attrs.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", errs.ErrInvalidGameData)
	}
	if attrs.MinBet <= 0 || attrs.MaxBet < attrs.MinBet {
		return fmt.Errorf("%w: bet limits must satisfy 0 < min_bet <= max_bet", errs.ErrInvalidGameData)
	}
	if !attrs.Odds.IsPositive() {
		return fmt.Errorf("%w: odds must be positive", errs.ErrInvalidGameData)
	}
	if !OddsFit(attrs.Odds) {
		return fmt.Errorf("%w: odds must be below %s with at most 2 decimal places", errs.ErrInvalidGameData, maxOdds)
	}
	status := attrs.Status
	if status == "" {
		status = string(GameStatusActive)
	}
	if !IsValidGameStatus(status) {
		return fmt.Errorf("%w: unknown status %s", errs.ErrInvalidGameData, status)
	}

	g.Name = name
	g.Description = strings.TrimSpace(attrs.Description)
	g.Category = strings.TrimSpace(attrs.Category)
	g.MinBet = attrs.MinBet
	g.MaxBet = attrs.MaxBet
	g.Odds = attrs.Odds
	g.Status = GameStatus(status)
	g.Rules = attrs.Rules
	g.ImageURL = strings.TrimSpace(attrs.ImageURL)
	g.UpdatedAt = now
	return nil
}

// IsActive reports whether bets may be placed on the game
func (g *Game) IsActive() bool {
	return g.Status == GameStatusActive
}

// ValidateBet enforces the catalog policy for a stake on this game
func (g *Game) ValidateBet(betAmount int64) error {
	if !g.IsActive() {
		return fmt.Errorf("%w: game %d is %s", errs.ErrGameNotActive, g.ID, g.Status)
	}
	if betAmount < g.MinBet || betAmount > g.MaxBet {
		return errs.NewBetLimitError(g.ID,
			AmountInCentsToString(betAmount),
			AmountInCentsToString(g.MinBet),
			AmountInCentsToString(g.MaxBet))
	}
	return nil
}

// Snapshot returns the audit representation of the game
func (g *Game) Snapshot() map[string]any {
	return map[string]any{
		"id":       g.ID,
		"name":     g.Name,
		"category": g.Category,
		"min_bet":  AmountInCentsToString(g.MinBet),
		"max_bet":  AmountInCentsToString(g.MaxBet),
		"odds":     g.Odds.String(),
		"status":   string(g.Status),
	}
}

// IsValidGameStatus validates if the status is allowed
func IsValidGameStatus(status string) bool {
	switch GameStatus(status) {
	case GameStatusActive, GameStatusInactive, GameStatusMaintenance:
		return true
	}
	return false
}

// maxOdds is the exclusive upper bound of stored odds
var maxOdds = decimal.New(1, 8)

// OddsFit reports whether odds are stored without rounding
func OddsFit(odds decimal.Decimal) bool {
	return odds.Equal(odds.Round(2)) && odds.Abs().LessThan(maxOdds)
}
