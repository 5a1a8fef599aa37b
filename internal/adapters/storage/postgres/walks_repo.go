package postgres

import (
	"context"
	"database/sql"

	"animal-shelter/internal/domain/walks"
)

type WalksRepo struct {
	q dbtx
}

func (r *WalksRepo) Create(ctx context.Context, w walks.Walk) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO walks (id, date, description, user_id, animal_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		w.ID,
		w.Date,
		w.Description,
		w.UserID,
		toNullString(w.AnimalID),
		w.CreatedAt,
	)
	return mapError(err)
}

func (r *WalksRepo) ListByUser(ctx context.Context, userID string) ([]walks.Walk, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, description, user_id, animal_id, created_at
		FROM walks
		WHERE user_id = $1
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]walks.Walk, 0)
	for rows.Next() {
		var (
			w        walks.Walk
			animalID sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.Date, &w.Description, &w.UserID, &animalID, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.AnimalID = animalID.String
		out = append(out, w)
	}
	return out, rows.Err()
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
