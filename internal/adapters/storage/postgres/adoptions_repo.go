package postgres

import (
	"context"
	"database/sql"

	"animal-shelter/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	q dbtx
}

const adoptionColumns = `id, animal_id, user_id, status, notes, created_at, updated_at`

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.AnimalID,
		a.UserID,
		string(a.Status),
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapError(err)
}

// Update no toca created_at.
func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE adoptions
		SET
			animal_id = $2,
			user_id = $3,
			status = $4,
			notes = $5,
			updated_at = $6
		WHERE id = $1
	`,
		a.ID,
		a.AnimalID,
		a.UserID,
		string(a.Status),
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	return rowsAffected(res)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	return scanAdoption(r.q.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adoptions WHERE id = $1`, id))
}

func (r *AdoptionsRepo) FindByAnimalAndUser(ctx context.Context, animalID, userID string) (adoptions.Adoption, error) {
	return scanAdoption(r.q.QueryRowContext(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE animal_id = $1 AND user_id = $2
	`, animalID, userID))
}

func (r *AdoptionsRepo) HasPending(ctx context.Context, animalID, userID, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM adoptions
			WHERE animal_id = $1
			  AND user_id = $2
			  AND status = 'pending'
			  AND ($3 = '' OR id::text <> $3)
		)
	`, animalID, userID, excludeID).Scan(&exists)
	if err != nil {
		return false, mapError(err)
	}
	return exists, nil
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.Filter) ([]adoptions.Adoption, error) {
	if f.Status == "" {
		return r.list(ctx, `SELECT `+adoptionColumns+` FROM adoptions ORDER BY created_at DESC, id DESC`)
	}
	return r.list(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE status = $1
		ORDER BY created_at DESC, id DESC
	`, string(f.Status))
}

func (r *AdoptionsRepo) list(ctx context.Context, query string, args ...any) ([]adoptions.Adoption, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAdoption(s scanner) (adoptions.Adoption, error) {
	var (
		a     adoptions.Adoption
		notes sql.NullString
	)
	if err := s.Scan(
		&a.ID,
		&a.AnimalID,
		&a.UserID,
		&a.Status,
		&notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return adoptions.Adoption{}, mapError(err)
	}
	a.Notes = notes.String
	return a, nil
}
