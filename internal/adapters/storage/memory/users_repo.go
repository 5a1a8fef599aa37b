package memory

import (
	"context"
	"errors"
	"strings"

	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/platform/apperror"
)

type UsersRepo struct {
	db db
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	return r.db.write(func(st *state) error {
		if _, exists := st.users[u.ID]; exists {
			return apperror.ErrConstraintViolation
		}
		if usernameTaken(st, u.Username, u.ID) {
			return apperror.ErrConstraintViolation
		}
		st.users[u.ID] = u
		return nil
	})
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	return r.db.write(func(st *state) error {
		if _, exists := st.users[u.ID]; !exists {
			return apperror.ErrNotFound
		}
		if usernameTaken(st, u.Username, u.ID) {
			return apperror.ErrConstraintViolation
		}
		st.users[u.ID] = u
		return nil
	})
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var out users.User
	err := r.db.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return apperror.ErrNotFound
		}
		out = u
		return nil
	})
	return out, err
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	var out users.User
	err := r.db.read(func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				out = u
				return nil
			}
		}
		return apperror.ErrNotFound
	})
	return out, err
}

func usernameTaken(st *state, username, exceptID string) bool {
	for _, other := range st.users {
		if other.ID != exceptID && other.Username == username {
			return true
		}
	}
	return false
}
