package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// Header names read and written by the API
const (
	HeaderRequestID = "X-Request-ID"
	HeaderActorID   = "X-Actor-ID"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Header(HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// Actor puts the acting identity on the request context for audit entries.
// The user comes from X-Actor-ID and the address from the client IP.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := coreport.Actor{IPAddress: c.ClientIP()}

		if raw := c.GetHeader(HeaderActorID); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				_ = c.Error(fmt.Errorf("%w: %s header must be a positive integer", errs.ErrInvalidRequest, HeaderActorID))
				c.Abort()
				return
			}
			actor.UserID = &id
		}

		c.Request = c.Request.WithContext(coreport.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
