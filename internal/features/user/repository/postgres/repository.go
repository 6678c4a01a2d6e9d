package postgres

import (
	"context"
	"fmt"

	"community-portal-backend/internal/features/user/models"
	"community-portal-backend/internal/features/user/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, gender, state_code, user_code,
		                   phone, city, occupation, education, about, photo_url,
		                   status, is_approved)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.Gender, user.StateCode, user.UserCode,
		user.Phone, user.City, user.Occupation, user.Education, user.About, user.PhotoURL,
		user.Status, user.IsApproved,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), gender, state_code, user_code,
		       COALESCE(phone, ''), COALESCE(city, ''), COALESCE(occupation, ''),
		       COALESCE(education, ''), COALESCE(about, ''), COALESCE(photo_url, ''),
		       status, is_approved, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Gender, &user.StateCode, &user.UserCode,
		&user.Phone, &user.City, &user.Occupation,
		&user.Education, &user.About, &user.PhotoURL,
		&user.Status, &user.IsApproved, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET phone = $2, city = $3, occupation = $4, education = $5,
		    about = $6, photo_url = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		user.ID, user.Phone, user.City, user.Occupation, user.Education,
		user.About, user.PhotoURL)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (r *postgresRepository) ListPending(ctx context.Context) ([]models.PendingUser, error) {
	query := `
		SELECT u.id, u.name, COALESCE(u.email, ''), u.gender, u.state_code, u.user_code,
		       COALESCE(u.phone, ''), COALESCE(u.city, ''), COALESCE(u.occupation, ''),
		       COALESCE(u.education, ''), COALESCE(u.about, ''), COALESCE(u.photo_url, ''),
		       u.status, u.is_approved, u.created_at, u.updated_at,
		       COUNT(d.admin_id) FILTER (WHERE d.status = 'approved') AS approved_count,
		       COUNT(d.admin_id) FILTER (WHERE d.status = 'rejected') AS rejected_count
		FROM users u
		LEFT JOIN approval_decisions d ON d.user_id = u.id
		WHERE u.status = 'pending'
		GROUP BY u.id
		ORDER BY u.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	defer rows.Close()

	var out []models.PendingUser
	for rows.Next() {
		var p models.PendingUser
		u := &p.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Gender, &u.StateCode, &u.UserCode,
			&u.Phone, &u.City, &u.Occupation,
			&u.Education, &u.About, &u.PhotoURL,
			&u.Status, &u.IsApproved, &u.CreatedAt, &u.UpdatedAt,
			&p.ApprovedCount, &p.RejectedCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending user: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postgresRepository) NextUserCodeSeq(ctx context.Context, stateCode, gender string) (int64, error) {
	query := `
		INSERT INTO user_code_seqs (state_code, gender, seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (state_code, gender)
		DO UPDATE SET seq = user_code_seqs.seq + 1
		RETURNING seq
	`

	var seq int64
	if err := r.pool.QueryRow(ctx, query, stateCode, gender).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to advance user code sequence: %w", err)
	}
	return seq, nil
}
