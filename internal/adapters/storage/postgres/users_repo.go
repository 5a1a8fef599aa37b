package postgres

import (
	"context"

	"animal-shelter/internal/domain/users"
)

type UsersRepo struct {
	q dbtx
}

const userColumns = `id, username, phone_number, first_name, last_name, is_staff, created_at, updated_at`

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		u.ID,
		u.Username,
		u.PhoneNumber,
		u.FirstName,
		u.LastName,
		u.IsStaff,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapError(err)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE users
		SET
			username = $2,
			phone_number = $3,
			first_name = $4,
			last_name = $5,
			is_staff = $6,
			updated_at = $7
		WHERE id = $1
	`,
		u.ID,
		u.Username,
		u.PhoneNumber,
		u.FirstName,
		u.LastName,
		u.IsStaff,
		u.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	return rowsAffected(res)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg any) (users.User, error) {
	var u users.User
	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.PhoneNumber,
		&u.FirstName,
		&u.LastName,
		&u.IsStaff,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return users.User{}, mapError(err)
	}
	return u, nil
}
