package animals

import (
	"strings"

	"animal-shelter/internal/platform/apperror"
)

const (
	msgNegativeAge = "Age cannot be negative."
	msgEmptyName   = "Name cannot be empty."
)

// Validate corre antes de cada persistencia (create y update).
func (a Animal) Validate() error {
	if a.Age < 0 {
		return apperror.Field(apperror.ErrInvalidEntity, "age", msgNegativeAge)
	}
	if strings.TrimSpace(a.Name) == "" {
		return apperror.Field(apperror.ErrInvalidEntity, "name", msgEmptyName)
	}
	if !a.Gender.Valid() {
		return apperror.Field(apperror.ErrInvalidEntity, "gender", "Select a valid gender.")
	}
	if !a.Status.Valid() {
		return apperror.Field(apperror.ErrInvalidEntity, "status", "Select a valid status.")
	}
	if strings.TrimSpace(a.TypeID) == "" {
		return apperror.Field(apperror.ErrInvalidEntity, "type_id", "Animal type is required.")
	}
	return nil
}
