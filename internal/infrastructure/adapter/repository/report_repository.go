package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/model"
)

// ReportRepository implements ReportRepository interface using GORM
type ReportRepository struct {
	repositoryBase
}

// NewReportRepository creates a new ReportRepository instance
func NewReportRepository(db *gorm.DB, logger coreport.Logger) *ReportRepository {
	return &ReportRepository{repositoryBase: newRepositoryBase(db, logger)}
}

func reportToEntity(m *model.Report) *entity.Report {
	return &entity.Report{
		ID:                m.ID,
		ReportType:        entity.ReportType(m.ReportType),
		PeriodStart:       m.PeriodStart,
		PeriodEnd:         m.PeriodEnd,
		TotalBets:         m.TotalBets,
		TotalWins:         m.TotalWins,
		TotalLosses:       m.TotalLosses,
		NetProfit:         m.NetProfit,
		TotalTransactions: m.TotalTransactions,
		ReportData:        map[string]any(m.ReportData),
		CreatedAt:         m.CreatedAt,
	}
}

// Create stores a generated report
func (r *ReportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportModel := model.Report{
		ReportType:        string(report.ReportType),
		PeriodStart:       report.PeriodStart,
		PeriodEnd:         report.PeriodEnd,
		TotalBets:         report.TotalBets,
		TotalWins:         report.TotalWins,
		TotalLosses:       report.TotalLosses,
		NetProfit:         report.NetProfit,
		TotalTransactions: report.TotalTransactions,
		ReportData:        datatypes.JSONMap(report.ReportData),
		CreatedAt:         report.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&reportModel).Error; err != nil {
		return r.handleDatabaseError("creating report", err, nil, map[string]any{
			"report_type": string(report.ReportType),
		})
	}

	report.ID = reportModel.ID
	return nil
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*entity.Report, error) {
	var reportModel model.Report
	if err := r.db.WithContext(ctx).First(&reportModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting report", err, errs.ErrReportNotFound, map[string]any{
			"report_id": id,
		})
	}
	return reportToEntity(&reportModel), nil
}

// List returns the most recent reports, newest first
func (r *ReportRepository) List(ctx context.Context, limit int) ([]*entity.Report, error) {
	var models []model.Report
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(clampLimit(limit)).Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing reports", err, nil, nil)
	}

	reports := make([]*entity.Report, 0, len(models))
	for i := range models {
		reports = append(reports, reportToEntity(&models[i]))
	}
	return reports, nil
}
