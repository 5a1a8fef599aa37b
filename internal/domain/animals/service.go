package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/sanitize"

	"github.com/google/uuid"
)

const DefaultPageSize = 6

// Tipos sembrados al arrancar.
var DefaultTypeNames = []string{"cat", "dog", "others"}

type Service struct {
	repo     Repository
	types    TypeRepository
	pageSize int
	now      func() time.Time
}

func NewService(repo Repository, types TypeRepository, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		repo:     repo,
		types:    types,
		pageSize: pageSize,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name        string
	Age         int
	TypeID      string
	Gender      Gender
	Description string
	Status      Status
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	now := s.now()
	a := Animal{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(in.Name),
		Age:           in.Age,
		TypeID:        strings.TrimSpace(in.TypeID),
		Gender:        in.Gender,
		Description:   sanitize.Text(in.Description),
		Status:        in.Status,
		AdmissionDate: now,
		UpdatedAt:     now,
	}
	if a.Gender == "" {
		a.Gender = GenderUnknown
	}
	if a.Status == "" {
		a.Status = StatusAvailable
	}

	if err := s.checkBeforeSave(ctx, a); err != nil {
		return Animal{}, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// UpdateInput: punteros para PATCH (nil = no tocar).
type UpdateInput struct {
	Name        *string
	Age         *int
	TypeID      *string
	Gender      *Gender
	Description *string
	Status      *Status
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Age != nil {
		a.Age = *in.Age
	}
	if in.TypeID != nil {
		a.TypeID = strings.TrimSpace(*in.TypeID)
	}
	if in.Gender != nil {
		a.Gender = *in.Gender
	}
	if desc := sanitize.TextPtr(in.Description); desc != nil {
		a.Description = *desc
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	a.UpdatedAt = s.now()

	if err := s.checkBeforeSave(ctx, a); err != nil {
		return Animal{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) checkBeforeSave(ctx context.Context, a Animal) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if _, err := s.types.GetType(ctx, a.TypeID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.Field(apperror.ErrInvalidEntity, "type_id", "Select a valid animal type.")
		}
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, apperror.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Delete borra el animal; sus adopciones caen en cascada y sus paseos
// quedan sin animal (lo resuelve el store).
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

type ListQuery struct {
	TypeName string
	Gender   Gender
	Age      *int
	Page     int
}

// ListAvailable lista los animales adoptables, paginado.
// Página vacía si el tipo pedido no existe; NotFound si la página
// pedida queda fuera de rango.
func (s *Service) ListAvailable(ctx context.Context, q ListQuery) (Page, error) {
	f := Filter{Status: StatusAvailable, Gender: q.Gender, Age: q.Age}

	if f.Gender != "" && !f.Gender.Valid() {
		return Page{}, apperror.Field(apperror.ErrInvalidEntity, "gender", "Select a valid gender.")
	}

	number := q.Page
	if number < 1 {
		number = 1
	}

	if name := strings.TrimSpace(q.TypeName); name != "" {
		t, err := s.types.GetTypeByName(ctx, name)
		if errors.Is(err, apperror.ErrNotFound) {
			return Page{Items: []Animal{}, Number: 1, Size: s.pageSize, TotalPages: 1}, nil
		}
		if err != nil {
			return Page{}, err
		}
		f.TypeID = t.ID
	}

	items, total, err := s.repo.List(ctx, f, s.pageSize, (number-1)*s.pageSize)
	if err != nil {
		return Page{}, err
	}

	pages := (total + s.pageSize - 1) / s.pageSize
	if pages == 0 {
		pages = 1
	}
	if number > pages {
		return Page{}, apperror.ErrNotFound
	}

	return Page{
		Items:      items,
		Number:     number,
		Size:       s.pageSize,
		Total:      total,
		TotalPages: pages,
	}, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		Adopted:   counts[StatusAdopted],
		Available: counts[StatusAvailable],
	}
	for _, n := range counts {
		st.Total += n
	}
	return st, nil
}

// ---- tipos ----

func (s *Service) CreateType(ctx context.Context, name string) (AnimalType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AnimalType{}, apperror.Field(apperror.ErrInvalidEntity, "name", msgEmptyName)
	}

	if _, err := s.types.GetTypeByName(ctx, name); err == nil {
		return AnimalType{}, apperror.Field(apperror.ErrInvalidEntity, "name", "An animal type with that name already exists.")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return AnimalType{}, err
	}

	t := AnimalType{ID: uuid.NewString(), Name: name, CreatedAt: s.now()}
	if err := s.types.CreateType(ctx, t); err != nil {
		return AnimalType{}, err
	}
	return t, nil
}

func (s *Service) DeleteType(ctx context.Context, id string) error {
	if _, err := s.types.GetType(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	return s.types.DeleteType(ctx, strings.TrimSpace(id))
}

func (s *Service) ListTypes(ctx context.Context) ([]AnimalType, error) {
	return s.types.ListTypes(ctx)
}

// EnsureDefaultTypes crea los tipos base si faltan. Idempotente.
func (s *Service) EnsureDefaultTypes(ctx context.Context) error {
	for _, name := range DefaultTypeNames {
		_, err := s.CreateType(ctx, name)
		if err != nil && !errors.Is(err, apperror.ErrInvalidEntity) && !errors.Is(err, apperror.ErrConstraintViolation) {
			return err
		}
	}
	return nil
}
