package animals

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)

	// List devuelve la página pedida (orden por nombre) y el total sin paginar.
	List(ctx context.Context, f Filter, limit, offset int) ([]Animal, int, error)
	CountByStatus(ctx context.Context) (map[Status]int, error)

	SetStatus(ctx context.Context, id string, status Status, at time.Time) error
}

type TypeRepository interface {
	CreateType(ctx context.Context, t AnimalType) error
	// DeleteType devuelve apperror.ErrInUse si quedan animales de ese tipo.
	DeleteType(ctx context.Context, id string) error
	GetType(ctx context.Context, id string) (AnimalType, error)
	GetTypeByName(ctx context.Context, name string) (AnimalType, error)
	ListTypes(ctx context.Context) ([]AnimalType, error)
}
