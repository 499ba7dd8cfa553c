package persistence

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// ReportRepository stores generated financial reports
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error

	// GetByID retrieves a report by ID
	//
	// Possible errors:
	// - ErrReportNotFound: If report doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Report, error)

	// List returns the most recent reports, newest first
	List(ctx context.Context, limit int) ([]*entity.Report, error)
}
