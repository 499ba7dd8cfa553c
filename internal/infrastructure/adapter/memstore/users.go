package memstore

import (
	"context"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		if _, taken := s.usersByName[user.Username]; taken {
			return errs.ErrDuplicateUser
		}
		if _, taken := s.usersByEmail[user.Email]; taken {
			return errs.ErrDuplicateUser
		}

		s.nextUserID++
		user.ID = s.nextUserID
		stored := *user
		s.users[user.ID] = &stored
		s.usersByName[user.Username] = user.ID
		s.usersByEmail[user.Email] = user.ID

		tx.onRollback(func() {
			delete(s.users, stored.ID)
			delete(s.usersByName, stored.Username)
			delete(s.usersByEmail, stored.Email)
			s.nextUserID--
		})
		return nil
	})
}

func (r *userRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var user *entity.User
	err := r.store.run(ctx, func(*memTx) error {
		stored, ok := r.store.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		u := *stored
		user = &u
		return nil
	})
	return user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.store.run(ctx, func(tx *memTx) error {
		s := r.store
		previous, ok := s.users[user.ID]
		if !ok {
			return errs.ErrUserNotFound
		}
		if owner, taken := s.usersByName[user.Username]; taken && owner != user.ID {
			return errs.ErrDuplicateUser
		}
		if owner, taken := s.usersByEmail[user.Email]; taken && owner != user.ID {
			return errs.ErrDuplicateUser
		}

		delete(s.usersByName, previous.Username)
		delete(s.usersByEmail, previous.Email)
		stored := *user
		s.users[user.ID] = &stored
		s.usersByName[user.Username] = user.ID
		s.usersByEmail[user.Email] = user.ID

		tx.onRollback(func() {
			delete(s.usersByName, stored.Username)
			delete(s.usersByEmail, stored.Email)
			s.users[previous.ID] = previous
			s.usersByName[previous.Username] = previous.ID
			s.usersByEmail[previous.Email] = previous.ID
		})
		return nil
	})
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.store.run(ctx, func(*memTx) error {
		count = int64(len(r.store.users))
		return nil
	})
	return count, err
}
