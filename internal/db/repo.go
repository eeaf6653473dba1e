package db

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
	}

	return nil
}

// WithTransaction runs fn against a repository bound to a single transaction.
// When the repository is already transaction-bound (tests), fn runs on it as is.
func (r *Repository) WithTransaction(ctx context.Context, fn func(*Repository) error) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			return fn(New(tx))
		})
	}

	return fn(r)
}

// IsConflict reports whether err is a unique or foreign key violation
// raised by the store. Uniqueness races are resolved here, not in-process.
func IsConflict(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.IntegrityViolation()
	}
	return false
}
