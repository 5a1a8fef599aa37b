package users

import "time"

// User es la cuenta de un visitante o de staff.
type User struct {
	ID       string
	Username string

	PhoneNumber string // E.164, opcional (requerido para adoptar)
	FirstName   string
	LastName    string

	IsStaff bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContactInfo indica si el usuario dejó un teléfono de contacto.
func (u User) HasContactInfo() bool {
	return u.PhoneNumber != ""
}
