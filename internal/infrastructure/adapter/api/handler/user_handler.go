package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user and wallet HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	ledger      usecase.LedgerUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	ledger usecase.LedgerUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		ledger:      ledger,
		logger:      logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, wallet, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		AvatarURL:      req.AvatarURL,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateUserResponse{
		User:   dto.NewUserResponse(user),
		Wallet: dto.NewWalletResponse(wallet),
	})
}

// GetUser handles GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUseCase.GetUser(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateStatus handles PATCH /users/:userId/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.userUseCase.UpdateStatus(c.Request.Context(), userID, req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetWallet handles GET /users/:userId/wallet
func (h *UserHandler) GetWallet(c *gin.Context) {
	userID, err := parseID(c, "userId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	wallet, err := h.ledger.GetWallet(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewWalletResponse(wallet))
}
