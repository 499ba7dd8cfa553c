package memstore

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
)

type systemLogRepository struct {
	store *Store
}

func (r *systemLogRepository) Create(ctx context.Context, log *entity.SystemLog) (bool, error) {
	created := false
	err := r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		if log.CorrelationKey != nil {
			if _, exists := s.correlationKey[*log.CorrelationKey]; exists {
				return nil
			}
			s.correlationKey[*log.CorrelationKey] = struct{}{}
		}

		s.nextLogID++
		log.ID = s.nextLogID
		stored := *log
		s.systemLogs = append(s.systemLogs, &stored)
		created = true

		count := len(s.systemLogs) - 1
		tx.onRollback(func() {
			s.systemLogs = s.systemLogs[:count]
			if stored.CorrelationKey != nil {
				delete(s.correlationKey, *stored.CorrelationKey)
			}
			s.nextLogID--
		})
		return nil
	})
	return created, err
}

func (r *systemLogRepository) List(ctx context.Context, limit int) ([]*entity.SystemLog, error) {
	var result []*entity.SystemLog
	err := r.store.run(ctx, func(*memTx) error {
		n := clampLimit(limit, len(r.store.systemLogs))
		for i := len(r.store.systemLogs) - 1; i >= len(r.store.systemLogs)-n; i-- {
			c := *r.store.systemLogs[i]
			result = append(result, &c)
		}
		return nil
	})
	return result, err
}
