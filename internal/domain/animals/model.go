package animals

import "time"

type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
	StatusPending   Status = "pending"
	StatusReserved  Status = "reserved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAdopted, StatusPending, StatusReserved:
		return true
	default:
		return false
	}
}

type Gender string

const (
	GenderBoy     Gender = "boy"
	GenderGirl    Gender = "girl"
	GenderUnknown Gender = "unknown"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderBoy, GenderGirl, GenderUnknown:
		return true
	default:
		return false
	}
}

// AnimalType clasifica animales (cat, dog, others...).
type AnimalType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type Animal struct {
	ID          string
	Name        string
	Age         int
	TypeID      string
	Gender      Gender
	Description string
	Status      Status

	// AdmissionDate se fija al crear y nunca se reescribe.
	AdmissionDate time.Time
	UpdatedAt     time.Time
}

// Filter para listados. Campos vacíos/nil = sin filtro.
type Filter struct {
	Status Status
	TypeID string
	Gender Gender
	Age    *int
}

type Page struct {
	Items      []Animal
	Number     int
	Size       int
	Total      int
	TotalPages int
}

func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) HasPrev() bool { return p.Number > 1 }

// Stats alimenta la home.
type Stats struct {
	Total     int
	Adopted   int
	Available int
}
