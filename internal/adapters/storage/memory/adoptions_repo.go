package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/platform/apperror"
)

type AdoptionsRepo struct {
	db db
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adoption id required")
	}
	return r.db.write(func(st *state) error {
		if _, exists := st.adoptions[a.ID]; exists {
			return apperror.ErrConstraintViolation
		}
		if _, ok := st.animals[a.AnimalID]; !ok {
			return apperror.ErrConstraintViolation
		}
		if _, ok := st.users[a.UserID]; !ok {
			return apperror.ErrConstraintViolation
		}
		// unique (animal_id, user_id)
		for _, other := range st.adoptions {
			if other.AnimalID == a.AnimalID && other.UserID == a.UserID {
				return apperror.ErrConstraintViolation
			}
		}
		st.adoptions[a.ID] = a
		return nil
	})
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	return r.db.write(func(st *state) error {
		prev, exists := st.adoptions[a.ID]
		if !exists {
			return apperror.ErrNotFound
		}
		if prev.AnimalID != a.AnimalID || prev.UserID != a.UserID {
			for id, other := range st.adoptions {
				if id != a.ID && other.AnimalID == a.AnimalID && other.UserID == a.UserID {
					return apperror.ErrConstraintViolation
				}
			}
		}
		a.CreatedAt = prev.CreatedAt
		st.adoptions[a.ID] = a
		return nil
	})
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	var out adoptions.Adoption
	err := r.db.read(func(st *state) error {
		a, ok := st.adoptions[id]
		if !ok {
			return apperror.ErrNotFound
		}
		out = a
		return nil
	})
	return out, err
}

func (r *AdoptionsRepo) FindByAnimalAndUser(ctx context.Context, animalID, userID string) (adoptions.Adoption, error) {
	var out adoptions.Adoption
	err := r.db.read(func(st *state) error {
		for _, a := range st.adoptions {
			if a.AnimalID == animalID && a.UserID == userID {
				out = a
				return nil
			}
		}
		return apperror.ErrNotFound
	})
	return out, err
}

func (r *AdoptionsRepo) HasPending(ctx context.Context, animalID, userID, excludeID string) (bool, error) {
	found := false
	err := r.db.read(func(st *state) error {
		for _, a := range st.adoptions {
			if a.ID != excludeID && a.AnimalID == animalID && a.UserID == userID && a.Status == adoptions.StatusPending {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return a.UserID == userID })
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.Filter) ([]adoptions.Adoption, error) {
	return r.list(func(a adoptions.Adoption) bool { return f.Status == "" || a.Status == f.Status })
}

func (r *AdoptionsRepo) list(keep func(adoptions.Adoption) bool) ([]adoptions.Adoption, error) {
	var out []adoptions.Adoption
	err := r.db.read(func(st *state) error {
		out = make([]adoptions.Adoption, 0)
		for _, a := range st.adoptions {
			if keep(a) {
				out = append(out, a)
			}
		}
		// más nuevas primero
		sort.Slice(out, func(i, j int) bool {
			if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].CreatedAt.After(out[j].CreatedAt)
			}
			return out[i].ID > out[j].ID
		})
		return nil
	})
	return out, err
}
