package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/banner/model"
)

type postgresBannerRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBannerRepository(pool *pgxpool.Pool) BannerRepository {
	return &postgresBannerRepository{pool: pool}
}

const bannerColumns = `
	id, title, image_url, link_url, position, is_active, starts_at, ends_at,
	created_at, updated_at
`

func scanBanner(row pgx.Row) (*model.Banner, error) {
	banner := &model.Banner{}
	err := row.Scan(
		&banner.ID,
		&banner.Title,
		&banner.ImageURL,
		&banner.LinkURL,
		&banner.Position,
		&banner.IsActive,
		&banner.StartsAt,
		&banner.EndsAt,
		&banner.CreatedAt,
		&banner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return banner, nil
}

func (r *postgresBannerRepository) Create(ctx context.Context, banner *model.Banner) error {
	query := `
		INSERT INTO banners (
			id, title, image_url, link_url, position, is_active, starts_at, ends_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.Position,
		banner.IsActive,
		banner.StartsAt,
		banner.EndsAt,
		banner.CreatedAt,
		banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}

	return nil
}

func (r *postgresBannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners WHERE id = $1`

	banner, err := scanBanner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}

	return banner, nil
}

func (r *postgresBannerRepository) Update(ctx context.Context, banner *model.Banner) error {
	query := `
		UPDATE banners SET
			title = $2, image_url = $3, link_url = $4, position = $5,
			is_active = $6, starts_at = $7, ends_at = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.Position,
		banner.IsActive,
		banner.StartsAt,
		banner.EndsAt,
		banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBannerNotFound
	}

	return nil
}

func (r *postgresBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBannerNotFound
	}

	return nil
}

func (r *postgresBannerRepository) List(ctx context.Context) ([]*model.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	return collectBanners(rows)
}

func (r *postgresBannerRepository) ListVisible(ctx context.Context, at time.Time, position string) ([]*model.Banner, error) {
	query := `
		SELECT ` + bannerColumns + `
		FROM banners
		WHERE is_active = TRUE
			AND (starts_at IS NULL OR starts_at <= $1)
			AND (ends_at IS NULL OR ends_at >= $1)
	`
	args := []interface{}{at}

	if position != "" {
		query += ` AND position = $2`
		args = append(args, position)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible banners: %w", err)
	}
	defer rows.Close()

	return collectBanners(rows)
}

func collectBanners(rows pgx.Rows) ([]*model.Banner, error) {
	var banners []*model.Banner
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, banner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banners: %w", err)
	}

	return banners, nil
}
