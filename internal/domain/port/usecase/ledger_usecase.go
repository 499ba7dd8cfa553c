package usecase

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
)

// ApplyTransactionRequest is a relative balance change. Amount is a positive
// decimal string with at most two decimal places.
type ApplyTransactionRequest struct {
	WalletID    uint64
	Type        string
	Amount      string
	GameID      *uint64
	Description string
	ReferenceID string
}

// AdjustBalanceRequest sets a wallet to an absolute balance
type AdjustBalanceRequest struct {
	WalletID      uint64
	TargetBalance string
	Description   string
	ReferenceID   string
}

// GamePlayRequest is one externally decided game round.
// OddsAtPlay and RoundID are optional.
type GamePlayRequest struct {
	UserID     uint64
	GameID     uint64
	BetAmount  string
	WinAmount  string
	OddsAtPlay string
	Result     string
	GameData   map[string]any
	RoundID    string
}

// LedgerUseCase is the wallet ledger: the only path that changes balances
type LedgerUseCase interface {
	// GetWallet returns the wallet owned by a user
	GetWallet(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// ApplyTransaction applies a credit, debit, win or loss to a wallet and
	// records it in the ledger
	ApplyTransaction(ctx context.Context, req ApplyTransactionRequest) (*entity.Transaction, error)

	// AdjustBalance moves a wallet to an absolute target balance
	AdjustBalance(ctx context.Context, req AdjustBalanceRequest) (*entity.Transaction, error)

	// RecordGamePlay settles a round's net effect and stores its history
	RecordGamePlay(ctx context.Context, req GamePlayRequest) (*entity.GameHistory, error)

	// ListTransactions returns transactions newest first
	ListTransactions(ctx context.Context, filter persistence.TransactionFilter) ([]*entity.Transaction, error)

	// ListGameHistory returns played rounds newest first
	ListGameHistory(ctx context.Context, filter persistence.GameHistoryFilter) ([]*entity.GameHistory, error)

	// GetOperatingBalance returns the platform totals
	GetOperatingBalance(ctx context.Context) (*entity.OperatingBalance, error)

	// ListSystemLogs returns audit entries newest first
	ListSystemLogs(ctx context.Context, limit int) ([]*entity.SystemLog, error)
}
