package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

// GenerateReportRequest selects the report period. The bounds are only used
// for custom reports.
type GenerateReportRequest struct {
	ReportType  string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// ReportUseCase is the read-side reporting surface
type ReportUseCase interface {
	// DashboardStats summarizes recent activity over a bounded window
	DashboardStats(ctx context.Context) (*entity.DashboardStats, error)

	// GenerateReport computes and stores a financial report
	GenerateReport(ctx context.Context, req GenerateReportRequest) (*entity.Report, error)

	GetReport(ctx context.Context, reportID uint64) (*entity.Report, error)
	ListReports(ctx context.Context, limit int) ([]*entity.Report, error)
}
