package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/pta-api/internal/models"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// validateID rejects identifiers that are not UUIDs.
func validateID(v *validator.Validate, field, id string) error {
	if err := v.Var(id, "required,uuid"); err != nil {
		return appErrors.Validation(err, field+" must be a valid id")
	}
	return nil
}

// loadUser resolves a user and, when role is set, requires it.
func loadUser(ctx context.Context, repo userFinder, id string, role models.UserRole) (*models.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			label := "user"
			if role != "" {
				label = string(role)
			}
			return nil, appErrors.Clone(appErrors.ErrNotFound, label+" not found")
		}
		return nil, appErrors.Internal(err, "failed to load user")
	}
	if role != "" && user.Role != role {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "user is not a "+string(role))
	}
	return user, nil
}
