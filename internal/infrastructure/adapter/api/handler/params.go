package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errs.ErrInvalidRequest, name)
	}
	return id, nil
}

// optionalID reads an optional positive integer query parameter
func optionalID(c *gin.Context, name string) (*uint64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", errs.ErrInvalidRequest, name)
	}
	return &id, nil
}

// queryLimit reads the limit query parameter; zero means the store default
func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: limit must be a non-negative integer", errs.ErrInvalidRequest)
	}
	return limit, nil
}

// bindJSON binds the body and wraps binding failures as ErrInvalidRequest
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidRequest, err)
	}
	return nil
}
