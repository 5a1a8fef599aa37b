package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"animal-shelter/internal/domain/walks"
	"animal-shelter/internal/platform/apperror"
)

type WalksRepo struct {
	db db
}

func (r *WalksRepo) Create(ctx context.Context, w walks.Walk) error {
	if strings.TrimSpace(w.ID) == "" {
		return errors.New("walk id required")
	}
	return r.db.write(func(st *state) error {
		if _, exists := st.walks[w.ID]; exists {
			return apperror.ErrConstraintViolation
		}
		if _, ok := st.users[w.UserID]; !ok {
			return apperror.ErrConstraintViolation
		}
		if w.AnimalID != "" {
			if _, ok := st.animals[w.AnimalID]; !ok {
				return apperror.ErrConstraintViolation
			}
		}
		st.walks[w.ID] = w
		return nil
	})
}

func (r *WalksRepo) ListByUser(ctx context.Context, userID string) ([]walks.Walk, error) {
	var out []walks.Walk
	err := r.db.read(func(st *state) error {
		out = make([]walks.Walk, 0)
		for _, w := range st.walks {
			if w.UserID == userID {
				out = append(out, w)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
		return nil
	})
	return out, err
}
