package postgres

import (
	"context"
	"database/sql"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/domain/walks"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() *UsersRepo { return &UsersRepo{q: s.db} }
func (s *Store) Animals() *AnimalsRepo { return &AnimalsRepo{q: s.db} }
func (s *Store) Walks() *WalksRepo { return &WalksRepo{q: s.db} }
func (s *Store) Adoptions() *AdoptionsRepo { return &AdoptionsRepo{q: s.db} }

// WithinTx corre fn en una transacción; rollback si fn devuelve error.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx adoptions.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(ctx, &tx{q: sqlTx}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}
	return sqlTx.Commit()
}

type tx struct {
	q *sql.Tx
}

func (t *tx) Adoptions() adoptions.Repository { return &AdoptionsRepo{q: t.q} }
func (t *tx) Animals() adoptions.AnimalStatusWriter { return &AnimalsRepo{q: t.q} }

var (
	_ users.Repository       = (*UsersRepo)(nil)
	_ animals.Repository     = (*AnimalsRepo)(nil)
	_ animals.TypeRepository = (*AnimalsRepo)(nil)
	_ walks.Repository       = (*WalksRepo)(nil)
	_ adoptions.Repository   = (*AdoptionsRepo)(nil)
	_ adoptions.UnitOfWork   = (*Store)(nil)
)
