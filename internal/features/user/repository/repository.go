package repository

import (
	"context"
	"errors"

	"community-portal-backend/internal/features/user/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ListPending(ctx context.Context) ([]models.PendingUser, error)
	// NextUserCodeSeq atomically advances and returns the per
	// (state, gender) sequence backing user code generation.
	NextUserCodeSeq(ctx context.Context, stateCode, gender string) (int64, error)
}
