package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/apperror"
)

// AnimalsRepo guarda animales y tipos de animal.
type AnimalsRepo struct {
	db db
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	return r.db.write(func(st *state) error {
		if _, exists := st.animals[a.ID]; exists {
			return apperror.ErrConstraintViolation
		}
		if _, ok := st.types[a.TypeID]; !ok {
			return apperror.ErrConstraintViolation
		}
		st.animals[a.ID] = a
		return nil
	})
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.db.write(func(st *state) error {
		prev, exists := st.animals[a.ID]
		if !exists {
			return apperror.ErrNotFound
		}
		if _, ok := st.types[a.TypeID]; !ok {
			return apperror.ErrConstraintViolation
		}
		a.AdmissionDate = prev.AdmissionDate
		st.animals[a.ID] = a
		return nil
	})
}

// Delete: adopciones en cascada, paseos quedan sin animal.
func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	return r.db.write(func(st *state) error {
		if _, exists := st.animals[id]; !exists {
			return apperror.ErrNotFound
		}
		delete(st.animals, id)

		for aid, ad := range st.adoptions {
			if ad.AnimalID == id {
				delete(st.adoptions, aid)
			}
		}
		for wid, w := range st.walks {
			if w.AnimalID == id {
				w.AnimalID = ""
				st.walks[wid] = w
			}
		}
		return nil
	})
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	var out animals.Animal
	err := r.db.read(func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return apperror.ErrNotFound
		}
		out = a
		return nil
	})
	return out, err
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.Filter, limit, offset int) ([]animals.Animal, int, error) {
	var (
		page  []animals.Animal
		total int
	)
	err := r.db.read(func(st *state) error {
		all := make([]animals.Animal, 0)
		for _, a := range st.animals {
			if matches(a, f) {
				all = append(all, a)
			}
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Name != all[j].Name {
				return all[i].Name < all[j].Name
			}
			return all[i].ID < all[j].ID
		})

		total = len(all)
		if offset >= total {
			page = []animals.Animal{}
			return nil
		}
		end := total
		if limit > 0 && offset+limit < total {
			end = offset + limit
		}
		page = all[offset:end]
		return nil
	})
	return page, total, err
}

func matches(a animals.Animal, f animals.Filter) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.TypeID != "" && a.TypeID != f.TypeID {
		return false
	}
	if f.Gender != "" && a.Gender != f.Gender {
		return false
	}
	if f.Age != nil && a.Age != *f.Age {
		return false
	}
	return true
}

func (r *AnimalsRepo) CountByStatus(ctx context.Context) (map[animals.Status]int, error) {
	out := make(map[animals.Status]int)
	err := r.db.read(func(st *state) error {
		for _, a := range st.animals {
			out[a.Status]++
		}
		return nil
	})
	return out, err
}

func (r *AnimalsRepo) SetStatus(ctx context.Context, id string, status animals.Status, at time.Time) error {
	return r.db.write(func(st *state) error {
		a, ok := st.animals[id]
		if !ok {
			return apperror.ErrNotFound
		}
		a.Status = status
		a.UpdatedAt = at
		st.animals[id] = a
		return nil
	})
}

// ---- tipos ----

func (r *AnimalsRepo) CreateType(ctx context.Context, t animals.AnimalType) error {
	return r.db.write(func(st *state) error {
		for _, other := range st.types {
			if other.ID == t.ID || other.Name == t.Name {
				return apperror.ErrConstraintViolation
			}
		}
		st.types[t.ID] = t
		return nil
	})
}

func (r *AnimalsRepo) DeleteType(ctx context.Context, id string) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.types[id]; !ok {
			return apperror.ErrNotFound
		}
		for _, a := range st.animals {
			if a.TypeID == id {
				return apperror.ErrInUse
			}
		}
		delete(st.types, id)
		return nil
	})
}

func (r *AnimalsRepo) GetType(ctx context.Context, id string) (animals.AnimalType, error) {
	var out animals.AnimalType
	err := r.db.read(func(st *state) error {
		t, ok := st.types[id]
		if !ok {
			return apperror.ErrNotFound
		}
		out = t
		return nil
	})
	return out, err
}

func (r *AnimalsRepo) GetTypeByName(ctx context.Context, name string) (animals.AnimalType, error) {
	var out animals.AnimalType
	err := r.db.read(func(st *state) error {
		for _, t := range st.types {
			if strings.EqualFold(t.Name, name) {
				out = t
				return nil
			}
		}
		return apperror.ErrNotFound
	})
	return out, err
}

func (r *AnimalsRepo) ListTypes(ctx context.Context) ([]animals.AnimalType, error) {
	var out []animals.AnimalType
	err := r.db.read(func(st *state) error {
		out = make([]animals.AnimalType, 0, len(st.types))
		for _, t := range st.types {
			out = append(out, t)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return nil
	})
	return out, err
}
