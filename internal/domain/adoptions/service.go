package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/logger"
	"animal-shelter/internal/platform/sanitize"

	"github.com/google/uuid"
)

const (
	msgPendingExists  = "You already have a pending adoption request for this animal."
	msgAlreadyApplied = "You have already submitted an adoption request for this animal."
	msgPhoneRequired  = "You must provide a phone number to submit your adoption request."
)

type AnimalLookup interface {
	Get(ctx context.Context, id string) (animals.Animal, error)
}

type UserLookup interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

type Service struct {
	repo    Repository
	uow     UnitOfWork
	animals AnimalLookup
	users   UserLookup
	log     logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, uow UnitOfWork, animalLookup AnimalLookup, userLookup UserLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:    repo,
		uow:     uow,
		animals: animalLookup,
		users:   userLookup,
		log:     log,
		now:     time.Now,
	}
}

// Request es la solicitud de un visitante. Orden de chequeos:
// animal existe, no hay solicitud previa del usuario para ese animal
// (en cualquier estado), el usuario tiene teléfono. Luego se guarda pending.
func (s *Service) Request(ctx context.Context, userID, animalID, notes string) (Adoption, error) {
	if strings.TrimSpace(userID) == "" {
		return Adoption{}, apperror.ErrUnauthorized
	}

	animal, err := s.animals.Get(ctx, animalID)
	if err != nil {
		return Adoption{}, err
	}

	if _, err := s.repo.FindByAnimalAndUser(ctx, animal.ID, userID); err == nil {
		return Adoption{}, apperror.Form(apperror.ErrDuplicateRequest, msgAlreadyApplied)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return Adoption{}, err
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Adoption{}, err
	}
	if !u.HasContactInfo() {
		return Adoption{}, apperror.Form(apperror.ErrMissingContactInfo, msgPhoneRequired)
	}

	return s.RecordAdoptionDecision(ctx, Adoption{
		AnimalID: animal.ID,
		UserID:   u.ID,
		Status:   StatusPending,
		Notes:    sanitize.Text(notes),
	})
}

// RecordAdoptionDecision guarda la adopción (alta si no existe) y deja al animal
// en el status que corresponde, todo en la misma unidad de trabajo.
// Si falla la escritura del animal no queda nada guardado y se devuelve
// apperror.ErrSynchronizationFailure.
//
// Dos decisiones concurrentes sobre el mismo animal: gana la última.
func (s *Service) RecordAdoptionDecision(ctx context.Context, a Adoption) (Adoption, error) {
	animalStatus, ok := a.Status.AnimalStatus()
	if !ok {
		return Adoption{}, apperror.Field(apperror.ErrInvalidEntity, "status", "Select a valid status.")
	}
	if strings.TrimSpace(a.AnimalID) == "" || strings.TrimSpace(a.UserID) == "" {
		return Adoption{}, apperror.Form(apperror.ErrInvalidEntity, "animal and user are required")
	}

	now := s.now()
	var saved Adoption

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx Tx) error {
		repo := tx.Adoptions()

		isNew := a.ID == ""
		if !isNew {
			existing, err := repo.GetByID(ctx, a.ID)
			switch {
			case errors.Is(err, apperror.ErrNotFound):
				isNew = true
			case err != nil:
				return err
			default:
				a.CreatedAt = existing.CreatedAt
			}
		}

		pending, err := repo.HasPending(ctx, a.AnimalID, a.UserID, a.ID)
		if err != nil {
			return err
		}
		if pending {
			return apperror.Form(apperror.ErrInvalidEntity, msgPendingExists)
		}

		a.UpdatedAt = now
		if isNew {
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			if a.CreatedAt.IsZero() {
				a.CreatedAt = now
			}
			err = repo.Create(ctx, a)
		} else {
			err = repo.Update(ctx, a)
		}
		if err != nil {
			return err
		}

		if err := tx.Animals().SetStatus(ctx, a.AnimalID, animalStatus, now); err != nil {
			return apperror.Wrap(apperror.ErrSynchronizationFailure, "animal status", err)
		}

		saved = a
		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrSynchronizationFailure) {
			logger.FromContext(ctx, s.log).Error("adoption rolled back", logger.Fields{
				"adoption_id": a.ID,
				"animal_id":   a.AnimalID,
				"err":         err,
			})
		}
		return Adoption{}, err
	}

	logger.FromContext(ctx, s.log).Info("adoption recorded", logger.Fields{
		"adoption_id":   saved.ID,
		"animal_id":     saved.AnimalID,
		"user_id":       saved.UserID,
		"status":        string(saved.Status),
		"animal_status": string(animalStatus),
	})
	return saved, nil
}

// Decide cambia el status de una adopción existente (staff) y re-sincroniza al animal.
func (s *Service) Decide(ctx context.Context, adoptionID string, status Status) (Adoption, error) {
	a, err := s.Get(ctx, adoptionID)
	if err != nil {
		return Adoption{}, err
	}
	a.Status = status
	return s.RecordAdoptionDecision(ctx, a)
}

func (s *Service) Get(ctx context.Context, id string) (Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adoption{}, apperror.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Adoption, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Adoption, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, apperror.Field(apperror.ErrInvalidEntity, "status", "Select a valid status.")
	}
	return s.repo.List(ctx, f)
}
