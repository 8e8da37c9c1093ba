package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/profile/model"
)

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

const profileColumns = `
	id, email, display_name, role, password_hash, avatar_url, banned_at,
	created_at, updated_at
`

func scanProfile(row pgx.Row) (*model.Profile, error) {
	profile := &model.Profile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&profile.Role,
		&profile.PasswordHash,
		&profile.AvatarURL,
		&profile.BannedAt,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *postgresProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (
			id, email, display_name, role, password_hash, avatar_url, banned_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		profile.Role,
		profile.PasswordHash,
		profile.AvatarURL,
		profile.BannedAt,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation on the email index
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrEmailTaken
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *postgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r *postgresProfileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`

	profile, err := scanProfile(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return profile, nil
}

func (r *postgresProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $2, avatar_url = $3, updated_at = $4
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.DisplayName,
		profile.AvatarURL,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

func (r *postgresProfileRepository) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	query := `UPDATE profiles SET role = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, role)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

func (r *postgresProfileRepository) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	var query string
	if banned {
		query = `UPDATE profiles SET banned_at = NOW(), updated_at = NOW() WHERE id = $1`
	} else {
		query = `UPDATE profiles SET banned_at = NULL, updated_at = NOW() WHERE id = $1`
	}

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to set banned state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

func (r *postgresProfileRepository) List(ctx context.Context, page, limit int) ([]*model.Profile, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*model.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, total, nil
}

func (r *postgresProfileRepository) Stats(ctx context.Context) (*model.UserStats, error) {
	stats := &model.UserStats{ByRole: map[string]int64{}}

	query := `
		SELECT role, COUNT(*), COUNT(banned_at)
		FROM profiles
		GROUP BY role
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var count, banned int64
		if err := rows.Scan(&role, &count, &banned); err != nil {
			return nil, fmt.Errorf("failed to scan user stats: %w", err)
		}
		stats.ByRole[role] = count
		stats.TotalUsers += count
		stats.BannedUsers += banned
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user stats: %w", err)
	}

	return stats, nil
}
