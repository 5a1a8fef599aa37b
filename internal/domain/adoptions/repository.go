package adoptions

import (
	"context"
	"time"

	"animal-shelter/internal/domain/animals"
)

type Repository interface {
	// Create devuelve apperror.ErrConstraintViolation si ya existe el par (animal, usuario).
	Create(ctx context.Context, a Adoption) error
	Update(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	FindByAnimalAndUser(ctx context.Context, animalID, userID string) (Adoption, error)

	// HasPending: ¿hay otra adopción pending para el par, distinta de excludeID?
	HasPending(ctx context.Context, animalID, userID, excludeID string) (bool, error)

	// Listados, más nuevas primero.
	ListByUser(ctx context.Context, userID string) ([]Adoption, error)
	List(ctx context.Context, f Filter) ([]Adoption, error)
}

type AnimalStatusWriter interface {
	SetStatus(ctx context.Context, animalID string, status animals.Status, at time.Time) error
}

// Tx agrupa los repos que participan de una misma unidad de trabajo.
type Tx interface {
	Adoptions() Repository
	Animals() AnimalStatusWriter
}

// UnitOfWork ejecuta fn de forma atómica: si fn devuelve error no queda nada escrito.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
