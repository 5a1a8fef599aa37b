package walks

import "context"

type Repository interface {
	Create(ctx context.Context, w Walk) error
	// ListByUser ordena por fecha ascendente.
	ListByUser(ctx context.Context, userID string) ([]Walk, error)
}
