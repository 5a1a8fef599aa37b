package adoptions

import (
	"time"

	"animal-shelter/internal/domain/animals"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	_, ok := s.AnimalStatus()
	return ok
}

// AnimalStatus es la tabla de sincronización adopción -> animal.
func (s Status) AnimalStatus() (animals.Status, bool) {
	switch s {
	case StatusPending:
		return animals.StatusPending, true
	case StatusApproved:
		return animals.StatusAdopted, true
	case StatusRejected:
		return animals.StatusAvailable, true
	default:
		return "", false
	}
}

// Adoption es una solicitud de un usuario por un animal.
// Hay como mucho una por par (animal, usuario), en cualquier estado.
type Adoption struct {
	ID       string
	AnimalID string
	UserID   string
	Status   Status
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	Status Status
}
