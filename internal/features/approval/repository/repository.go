package repository

import (
	"context"
	"errors"

	"community-portal-backend/internal/features/approval/models"
	usermodels "community-portal-backend/internal/features/user/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDecisionNotFound = errors.New("decision not found")
)

// ApprovalRepository owns the approval ledger and the aggregate status
// persisted on the user record.
type ApprovalRepository interface {
	// Decide runs fn inside a single transaction that holds a row lock on
	// the user record for the whole decide-recompute-persist sequence, so
	// two concurrent decisions for the same user serialize instead of
	// racing on a stale ledger read.
	Decide(ctx context.Context, userID int64, fn func(tx Tx) error) error
}

// Tx is the per-user transactional view handed to Decide callbacks.
type Tx interface {
	// User returns the locked user snapshot loaded at transaction start.
	User() *usermodels.User
	// GetDecision returns this admin's current ledger row, or
	// ErrDecisionNotFound.
	GetDecision(ctx context.Context, adminID int64) (*models.Decision, error)
	// UpsertDecision inserts the admin's row or overwrites it in place.
	UpsertDecision(ctx context.Context, d *models.Decision) error
	// ListDecisions returns every ledger row for the user.
	ListDecisions(ctx context.Context) ([]models.Decision, error)
	// SetUserStatus persists the recomputed aggregate onto the user record.
	SetUserStatus(ctx context.Context, status usermodels.Status, isApproved bool) error
}
