package memstore

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

type reportRepository struct {
	store *Store
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		s.nextReportID++
		report.ID = s.nextReportID
		stored := *report
		s.reports = append(s.reports, &stored)

		count := len(s.reports) - 1
		tx.onRollback(func() {
			s.reports = s.reports[:count]
			s.nextReportID--
		})
		return nil
	})
}

func (r *reportRepository) GetByID(ctx context.Context, id uint64) (*entity.Report, error) {
	var report *entity.Report
	err := r.store.run(ctx, func(*memTx) error {
		for _, stored := range r.store.reports {
			if stored.ID == id {
				c := *stored
				report = &c
				return nil
			}
		}
		return errs.ErrReportNotFound
	})
	return report, err
}

func (r *reportRepository) List(ctx context.Context, limit int) ([]*entity.Report, error) {
	var result []*entity.Report
	err := r.store.run(ctx, func(*memTx) error {
		n := clampLimit(limit, len(r.store.reports))
		for i := len(r.store.reports) - 1; i >= len(r.store.reports)-n; i-- {
			c := *r.store.reports[i]
			result = append(result, &c)
		}
		return nil
	})
	return result, err
}
