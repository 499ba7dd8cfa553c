package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles balance mutations and ledger queries
type TransactionHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		logger: logger,
	}
}

// ApplyTransaction handles POST /wallets/:walletId/transactions
func (h *TransactionHandler) ApplyTransaction(c *gin.Context) {
	walletID, err := parseID(c, "walletId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.TransactionRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	tx, err := h.ledger.ApplyTransaction(c.Request.Context(), usecase.ApplyTransactionRequest{
		WalletID:    walletID,
		Type:        req.Type,
		Amount:      req.Amount,
		GameID:      req.GameID,
		Description: req.Description,
		ReferenceID: req.ReferenceID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// AdjustBalance handles POST /wallets/:walletId/adjustments
func (h *TransactionHandler) AdjustBalance(c *gin.Context) {
	walletID, err := parseID(c, "walletId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.AdjustmentRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	tx, err := h.ledger.AdjustBalance(c.Request.Context(), usecase.AdjustBalanceRequest{
		WalletID:      walletID,
		TargetBalance: req.TargetBalance,
		Description:   req.Description,
		ReferenceID:   req.ReferenceID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// ListTransactions handles GET /transactions?userId=&walletId=&gameId=&limit=
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var (
		filter persistence.TransactionFilter
		err    error
	)
	if filter.UserID, err = optionalID(c, "userId"); err != nil {
		_ = c.Error(err)
		return
	}
	if filter.WalletID, err = optionalID(c, "walletId"); err != nil {
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

	txs, err := h.ledger.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionListResponse(txs))
}
