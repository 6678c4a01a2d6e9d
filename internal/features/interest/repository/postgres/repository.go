package postgres

import (
	"context"
	"fmt"

	"community-portal-backend/internal/features/interest/models"
	"community-portal-backend/internal/features/interest/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.InterestRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Add(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	query := `
		INSERT INTO matrimony_interests (from_user_id, to_user_id)
		VALUES ($1, $2)
		ON CONFLICT (from_user_id, to_user_id) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query, fromUserID, toUserID)
	if err != nil {
		return false, fmt.Errorf("failed to add interest: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) Exists(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM matrimony_interests
			WHERE from_user_id = $1 AND to_user_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, fromUserID, toUserID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check interest: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) MarkMatched(ctx context.Context, userA, userB int64) error {
	query := `
		UPDATE matrimony_interests
		SET matched = TRUE
		WHERE (from_user_id = $1 AND to_user_id = $2)
		   OR (from_user_id = $2 AND to_user_id = $1)
	`

	if _, err := r.pool.Exec(ctx, query, userA, userB); err != nil {
		return fmt.Errorf("failed to mark interests matched: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID int64) (*models.InterestList, error) {
	query := `
		SELECT from_user_id, to_user_id, matched, created_at
		FROM matrimony_interests
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	defer rows.Close()

	list := &models.InterestList{}
	for rows.Next() {
		var in models.Interest
		if err := rows.Scan(&in.FromUserID, &in.ToUserID, &in.Matched, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interest: %w", err)
		}
		if in.FromUserID == userID {
			list.Sent = append(list.Sent, in)
		} else {
			list.Received = append(list.Received, in)
		}
	}
	return list, rows.Err()
}
