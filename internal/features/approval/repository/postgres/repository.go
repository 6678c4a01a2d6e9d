package postgres

import (
	"context"
	"fmt"

	apperrors "community-portal-backend/internal/common/errors"
	"community-portal-backend/internal/features/approval/models"
	"community-portal-backend/internal/features/approval/repository"
	usermodels "community-portal-backend/internal/features/user/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.ApprovalRepository {
	return &postgresRepository{pool: pool}
}

// Decide opens a transaction, locks the user row and hands the callback a
// transactional ledger view. Commit happens only when fn returns nil.
func (r *postgresRepository) Decide(ctx context.Context, userID int64, fn func(tx repository.Tx) error) error {
	pgxTx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransactionFailed, "failed to begin decision transaction")
	}
	defer func() { _ = pgxTx.Rollback(ctx) }()

	user, err := lockUser(ctx, pgxTx, userID)
	if err != nil {
		return err
	}

	t := &ledgerTx{tx: pgxTx, user: user}
	if err := fn(t); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeTransactionFailed, "failed to commit decision transaction")
	}
	return nil
}

func lockUser(ctx context.Context, tx pgx.Tx, userID int64) (*usermodels.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), gender, state_code, user_code,
		       status, is_approved, created_at, updated_at
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var user usermodels.User
	err := tx.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Gender, &user.StateCode, &user.UserCode,
		&user.Status, &user.IsApproved, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return &user, nil
}

type ledgerTx struct {
	tx   pgx.Tx
	user *usermodels.User
}

func (t *ledgerTx) User() *usermodels.User {
	return t.user
}

func (t *ledgerTx) GetDecision(ctx context.Context, adminID int64) (*models.Decision, error) {
	query := `
		SELECT user_id, admin_id, status, admin_name, COALESCE(reason, ''),
		       created_at, updated_at
		FROM approval_decisions
		WHERE user_id = $1 AND admin_id = $2
	`

	var d models.Decision
	err := t.tx.QueryRow(ctx, query, t.user.ID, adminID).Scan(
		&d.UserID, &d.AdminID, &d.Status, &d.AdminName, &d.Reason,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrDecisionNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return &d, nil
}

func (t *ledgerTx) UpsertDecision(ctx context.Context, d *models.Decision) error {
	query := `
		INSERT INTO approval_decisions (user_id, admin_id, status, admin_name, reason)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		ON CONFLICT (user_id, admin_id)
		DO UPDATE SET
			status     = EXCLUDED.status,
			admin_name = EXCLUDED.admin_name,
			reason     = EXCLUDED.reason,
			updated_at = NOW()
	`

	_, err := t.tx.Exec(ctx, query, t.user.ID, d.AdminID, d.Status, d.AdminName, d.Reason)
	if err != nil {
		return fmt.Errorf("failed to upsert decision: %w", err)
	}
	return nil
}

func (t *ledgerTx) ListDecisions(ctx context.Context) ([]models.Decision, error) {
	query := `
		SELECT user_id, admin_id, status, admin_name, COALESCE(reason, ''),
		       created_at, updated_at
		FROM approval_decisions
		WHERE user_id = $1
	`

	rows, err := t.tx.Query(ctx, query, t.user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	defer rows.Close()

	var decisions []models.Decision
	for rows.Next() {
		var d models.Decision
		err := rows.Scan(
			&d.UserID, &d.AdminID, &d.Status, &d.AdminName, &d.Reason,
			&d.CreatedAt, &d.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

func (t *ledgerTx) SetUserStatus(ctx context.Context, status usermodels.Status, isApproved bool) error {
	query := `
		UPDATE users
		SET status = $2, is_approved = $3, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := t.tx.Exec(ctx, query, t.user.ID, status, isApproved); err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
	}
	t.user.Status = status
	t.user.IsApproved = isApproved
	return nil
}
