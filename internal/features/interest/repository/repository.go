package repository

import (
	"context"

	"community-portal-backend/internal/features/interest/models"
)

type InterestRepository interface {
	// Add records an interest row; returns false when the row already
	// existed (expressing interest is idempotent per pair).
	Add(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	// Exists reports whether the given directed interest is on record.
	Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	// MarkMatched flags both directions of a pair as matched.
	MarkMatched(ctx context.Context, userA, userB int64) error
	// ListByUser returns all interests sent or received by the user.
	ListByUser(ctx context.Context, userID int64) (*models.InterestList, error)
}
