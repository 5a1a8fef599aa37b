package bootstrap

import (
	"context"
	"errors"
	"strings"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
	"animal-shelter/internal/platform/apperror"
	"animal-shelter/internal/platform/logger"
)

// Seed deja la base lista para usar: tipos cat/dog/others y, si se indica,
// un usuario staff (se crea o se promueve). Idempotente.
func Seed(ctx context.Context, animalsSvc *animals.Service, usersSvc *users.Service, staffUsername string, log logger.Logger) error {
	if err := animalsSvc.EnsureDefaultTypes(ctx); err != nil {
		return err
	}

	staffUsername = strings.TrimSpace(staffUsername)
	if staffUsername == "" {
		return nil
	}

	u, err := usersSvc.GetByUsername(ctx, staffUsername)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		u, err = usersSvc.Register(ctx, users.RegisterInput{Username: staffUsername, IsStaff: true})
		if err != nil {
			return err
		}
		log.Info("staff user created", logger.Fields{"user_id": u.ID, "username": u.Username})
		return nil
	case err != nil:
		return err
	}

	if u.IsStaff {
		return nil
	}
	if _, err := usersSvc.PromoteToStaff(ctx, u.ID); err != nil {
		return err
	}
	log.Info("user promoted to staff", logger.Fields{"user_id": u.ID, "username": u.Username})
	return nil
}
