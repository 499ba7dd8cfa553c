package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// StatusCode maps a domain error to an HTTP status. Bet policy errors are
// checked before ErrInvalidAmount, which ErrBetOutOfRange also matches.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrBetOutOfRange), errors.Is(err, errs.ErrGameNotActive):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrInvalidResult),
		errors.Is(err, errs.ErrInvalidTransactionType),
		errors.Is(err, errs.ErrInvalidUserID),
		errors.Is(err, errs.ErrInvalidUserData),
		errors.Is(err, errs.ErrInvalidUserStatus),
		errors.Is(err, errs.ErrInvalidGameData),
		errors.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrDuplicateReference),
		errors.Is(err, errs.ErrDuplicateUser),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrWalletLocked),
		errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStorageUnavailable), errors.Is(err, errs.ErrLedgerClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler recovers from panics and renders errors that handlers attached
// with c.Error
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": coreport.RequestIDFromContext(c.Request.Context()),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:      errs.ErrorCode(errs.ErrInternalServer),
					Message:   "Internal server error",
					RequestID: coreport.RequestIDFromContext(c.Request.Context()),
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusCode(err)
		message := err.Error()

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"status":     status,
			"error":      err.Error(),
			"request_id": coreport.RequestIDFromContext(c.Request.Context()),
		}
		var lf interface{ LogFields() map[string]any }
		if errors.As(err, &lf) {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
			if status == http.StatusInternalServerError {
				message = "Internal server error"
			}
		} else {
			logger.Debug("Request rejected", fields)
		}

		c.JSON(status, dto.ErrorResponse{
			Code:      errs.ErrorCode(err),
			Message:   message,
			RequestID: coreport.RequestIDFromContext(c.Request.Context()),
		})
	}
}
