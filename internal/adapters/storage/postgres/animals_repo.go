package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/apperror"
)

type AnimalsRepo struct {
	q dbtx
}

const animalColumns = `id, name, age, type_id, gender, description, status, admission_date, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.Name,
		a.Age,
		a.TypeID,
		string(a.Gender),
		a.Description,
		string(a.Status),
		a.AdmissionDate,
		a.UpdatedAt,
	)
	return mapError(err)
}

// Update no toca admission_date.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			age = $3,
			type_id = $4,
			gender = $5,
			description = $6,
			status = $7,
			updated_at = $8
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Age,
		a.TypeID,
		string(a.Gender),
		a.Description,
		string(a.Status),
		a.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	return rowsAffected(res)
}

// Delete: el schema hace la cascada (adoptions) y el SET NULL (walks).
func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return rowsAffected(res)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)

	var a animals.Animal
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Age,
		&a.TypeID,
		&a.Gender,
		&a.Description,
		&a.Status,
		&a.AdmissionDate,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, mapError(err)
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.Filter, limit, offset int) ([]animals.Animal, int, error) {
	where, args := animalFilter(f)

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`+where, args...).Scan(&total); err != nil {
		return nil, 0, mapError(err)
	}

	query := `SELECT ` + animalColumns + ` FROM animals` + where + ` ORDER BY name ASC, id ASC`
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, mapError(err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var a animals.Animal
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Age,
			&a.TypeID,
			&a.Gender,
			&a.Description,
			&a.Status,
			&a.AdmissionDate,
			&a.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func animalFilter(f animals.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if f.Status != "" {
		add("status", string(f.Status))
	}
	if f.TypeID != "" {
		add("type_id", f.TypeID)
	}
	if f.Gender != "" {
		add("gender", string(f.Gender))
	}
	if f.Age != nil {
		add("age", *f.Age)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *AnimalsRepo) CountByStatus(ctx context.Context) (map[animals.Status]int, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT status, COUNT(*) FROM animals GROUP BY status`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make(map[animals.Status]int)
	for rows.Next() {
		var (
			st animals.Status
			n  int
		)
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		out[st] = n
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) SetStatus(ctx context.Context, id string, status animals.Status, at time.Time) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE animals SET status = $2, updated_at = $3 WHERE id = $1
	`, id, string(status), at)
	if err != nil {
		return mapError(err)
	}
	return rowsAffected(res)
}

// ---- tipos ----

func (r *AnimalsRepo) CreateType(ctx context.Context, t animals.AnimalType) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO animal_types (id, name, created_at) VALUES ($1,$2,$3)
	`, t.ID, t.Name, t.CreatedAt)
	return mapError(err)
}

func (r *AnimalsRepo) DeleteType(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM animal_types WHERE id = $1`, id)
	if err != nil {
		// ON DELETE RESTRICT
		if err = mapError(err); errors.Is(err, apperror.ErrConstraintViolation) {
			return apperror.Wrap(apperror.ErrInUse, "animal type has animals", err)
		}
		return err
	}
	return rowsAffected(res)
}

func (r *AnimalsRepo) GetType(ctx context.Context, id string) (animals.AnimalType, error) {
	return r.getType(ctx, `SELECT id, name, created_at FROM animal_types WHERE id = $1`, id)
}

func (r *AnimalsRepo) GetTypeByName(ctx context.Context, name string) (animals.AnimalType, error) {
	return r.getType(ctx, `SELECT id, name, created_at FROM animal_types WHERE lower(name) = lower($1)`, name)
}

func (r *AnimalsRepo) getType(ctx context.Context, query string, arg any) (animals.AnimalType, error) {
	var t animals.AnimalType
	if err := r.q.QueryRowContext(ctx, query, arg).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		return animals.AnimalType{}, mapError(err)
	}
	return t, nil
}

func (r *AnimalsRepo) ListTypes(ctx context.Context) ([]animals.AnimalType, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM animal_types ORDER BY name ASC`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]animals.AnimalType, 0)
	for rows.Next() {
		var t animals.AnimalType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
