package walks

import (
	"context"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/sanitize"

	"github.com/google/uuid"
)

// AnimalLookup: solo necesitamos saber que el animal existe.
type AnimalLookup interface {
	Get(ctx context.Context, id string) (animals.Animal, error)
}

type Service struct {
	repo    Repository
	animals AnimalLookup
	window  Window
	now     func() time.Time
}

func NewService(repo Repository, animalLookup AnimalLookup, window Window) *Service {
	return &Service{
		repo:    repo,
		animals: animalLookup,
		window:  window,
		now:     time.Now,
	}
}

type ScheduleInput struct {
	Date        time.Time
	Description string
}

func (s *Service) Schedule(ctx context.Context, userID, animalID string, in ScheduleInput) (Walk, error) {
	if strings.TrimSpace(userID) == "" {
		return Walk{}, apperror.ErrUnauthorized
	}
	a, err := s.animals.Get(ctx, animalID)
	if err != nil {
		return Walk{}, err
	}

	now := s.now()
	if err := s.window.Check(in.Date, now); err != nil {
		return Walk{}, err
	}

	desc := sanitize.Text(in.Description)
	if desc == "" {
		desc = DefaultDescription
	}

	w := Walk{
		ID:          uuid.NewString(),
		Date:        in.Date,
		Description: desc,
		UserID:      userID,
		AnimalID:    a.ID,
		CreatedAt:   now,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return Walk{}, err
	}
	return w, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Walk, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Bounds expone los límites sugeridos para el día de hoy.
func (s *Service) Bounds() (earliest, latest string) {
	return s.window.Bounds(s.now())
}

func (s *Service) Window() Window {
	return s.window
}
