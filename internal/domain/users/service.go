package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/platform/apperror"

	"github.com/google/uuid"
)

const msgUsernameTaken = "A user with that username already exists."

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Username    string
	PhoneNumber string
	FirstName   string
	LastName    string
	IsStaff     bool
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return User{}, apperror.Field(apperror.ErrInvalidEntity, "username", "Username cannot be empty.")
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, apperror.Field(apperror.ErrInvalidEntity, "username", msgUsernameTaken)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return User{}, err
	}

	now := s.now()
	u := User{
		ID:          uuid.NewString(),
		Username:    username,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		IsStaff:     in.IsStaff,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, apperror.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, strings.TrimSpace(username))
}

// UpdateProfileInput: punteros para PATCH (nil = no tocar).
type UpdateProfileInput struct {
	Username    *string
	PhoneNumber *string
	FirstName   *string
	LastName    *string
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return User{}, apperror.Field(apperror.ErrInvalidEntity, "username", "Username cannot be empty.")
		}
		if username != u.Username {
			other, err := s.repo.GetByUsername(ctx, username)
			switch {
			case err == nil && other.ID != u.ID:
				return User{}, apperror.Field(apperror.ErrInvalidEntity, "username", msgUsernameTaken)
			case err != nil && !errors.Is(err, apperror.ErrNotFound):
				return User{}, err
			}
		}
		u.Username = username
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// IsStaff lo usa el middleware de /admin.
func (s *Service) IsStaff(ctx context.Context, userID string) (bool, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsStaff, nil
}

// PromoteToStaff marca un usuario existente como staff (bootstrap).
func (s *Service) PromoteToStaff(ctx context.Context, userID string) (User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if u.IsStaff {
		return u, nil
	}
	u.IsStaff = true
	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}
