package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
	ConflictError     ErrorType = "conflict"
	UnavailableError  ErrorType = "unavailable"
	NotFoundError     ErrorType = "not_found"
)

// MySQL server error numbers
const (
	mysqlDuplicateEntry   = 1062
	mysqlLockWaitTimeout  = 1205
	mysqlDeadlock         = 1213
	mysqlRowIsReferenced  = 1451
	mysqlNoReferencedRow  = 1452
	mysqlColumnCannotNull = 1048
	mysqlTooManyConns     = 1040
	mysqlQueryInterrupted = 1317
	mysqlCheckViolated    = 3819
)

// ErrorClassifier classifies driver errors by SQLSTATE or server error number
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it is not recognized
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DuplicateKeyError
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return ConstraintError
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return UnavailableError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifySQLState(pgErr.Code)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return classifyMySQL(myErr.Number)
	}

	if pgconn.Timeout(err) {
		return UnavailableError
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return UnavailableError
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return UnavailableError
	}
	return ""
}

func classifySQLState(code string) ErrorType {
	switch {
	case code == "23505":
		return DuplicateKeyError
	case strings.HasPrefix(code, "23"):
		return ConstraintError
	case code == "40001", code == "40P01", code == "55P03":
		return ConflictError
	case code == "57014", code == "57P01", strings.HasPrefix(code, "08"), strings.HasPrefix(code, "53"):
		return UnavailableError
	}
	return ""
}

func classifyMySQL(number uint16) ErrorType {
	switch number {
	case mysqlDuplicateEntry:
		return DuplicateKeyError
	case mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlColumnCannotNull, mysqlCheckViolated:
		return ConstraintError
	case mysqlDeadlock, mysqlLockWaitTimeout:
		return ConflictError
	case mysqlTooManyConns, mysqlQueryInterrupted:
		return UnavailableError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}

// IsTransientError checks if an error may succeed when retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	switch c.Classify(err) {
	case ConflictError, UnavailableError:
		return true
	}
	return false
}

// MapError translates a driver error into the domain taxonomy. notFound is
// returned for missing rows; nil means the generic ErrNotFound.
func (c *ErrorClassifier) MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch c.Classify(err) {
	case NotFoundError:
		if notFound == nil {
			return errs.ErrNotFound
		}
		return notFound
	case DuplicateKeyError, ConstraintError:
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	case ConflictError:
		return fmt.Errorf("%w: %v", errs.ErrConcurrentModification, err)
	case UnavailableError:
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}
}

var defaultClassifier = NewErrorClassifier()

// MapError translates err with the default classifier
func MapError(err error, notFound error) error {
	return defaultClassifier.MapError(err, notFound)
}

// IsTransientError reports whether err may succeed when retried
func IsTransientError(err error) bool {
	return defaultClassifier.IsTransientError(err)
}

// repositoryBase carries what every gorm repository needs
type repositoryBase struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

func newRepositoryBase(db *gorm.DB, logger coreport.Logger) repositoryBase {
	return repositoryBase{
		db:              db,
		logger:          logger,
		errorClassifier: defaultClassifier,
	}
}

// handleDatabaseError standardizes database error handling
func (r *repositoryBase) handleDatabaseError(operation string, err error, notFound error, fields map[string]any) error {
	mapped := r.errorClassifier.MapError(err, notFound)

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}

	switch {
	case errors.Is(mapped, errs.ErrNotFound):
		r.logger.Debug("Record not found", logFields)
	case errors.Is(mapped, errs.ErrConcurrentModification), errors.Is(mapped, errs.ErrConstraintViolation):
		r.logger.Warn(fmt.Sprintf("Database conflict when %s", operation), logFields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	}
	return mapped
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
