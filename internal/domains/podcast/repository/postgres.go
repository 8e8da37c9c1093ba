package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/podcast/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresPodcastRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPodcastRepository(pool *pgxpool.Pool) PodcastRepository {
	return &postgresPodcastRepository{pool: pool}
}

const podcastColumns = `
	id, title, slug, description, audio_url, duration_seconds, thumbnail_url,
	author_id, category_id, status, is_featured, view_count, published_at,
	created_at, updated_at
`

func scanPodcast(row pgx.Row) (*model.Podcast, error) {
	podcast := &model.Podcast{}

	err := row.Scan(
		&podcast.ID,
		&podcast.Title,
		&podcast.Slug,
		&podcast.Description,
		&podcast.AudioURL,
		&podcast.DurationSeconds,
		&podcast.ThumbnailURL,
		&podcast.AuthorID,
		&podcast.CategoryID,
		&podcast.Status,
		&podcast.IsFeatured,
		&podcast.ViewCount,
		&podcast.PublishedAt,
		&podcast.CreatedAt,
		&podcast.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return podcast, nil
}

func (r *postgresPodcastRepository) Create(ctx context.Context, podcast *model.Podcast) error {
	query := `
		INSERT INTO podcasts (
			id, title, slug, description, audio_url, duration_seconds, thumbnail_url,
			author_id, category_id, status, is_featured, view_count, published_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Slug,
		podcast.Description,
		podcast.AudioURL,
		podcast.DurationSeconds,
		podcast.ThumbnailURL,
		podcast.AuthorID,
		podcast.CategoryID,
		podcast.Status,
		podcast.IsFeatured,
		podcast.ViewCount,
		podcast.PublishedAt,
		podcast.CreatedAt,
		podcast.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create podcast: %w", err)
	}

	return nil
}

func (r *postgresPodcastRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Podcast, error) {
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE id = $1`

	podcast, err := scanPodcast(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPodcastNotFound
		}
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	return podcast, nil
}

func (r *postgresPodcastRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Podcast, error) {
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE slug = $1 AND status = $2`

	podcast, err := scanPodcast(r.pool.QueryRow(ctx, query, slug, model.StatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPodcastNotFound
		}
		return nil, fmt.Errorf("failed to get podcast by slug: %w", err)
	}

	return podcast, nil
}

func (r *postgresPodcastRepository) Update(ctx context.Context, podcast *model.Podcast) error {
	query := `
		UPDATE podcasts SET
			title = $2, description = $3, audio_url = $4, duration_seconds = $5,
			thumbnail_url = $6, category_id = $7, status = $8, published_at = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		podcast.ID,
		podcast.Title,
		podcast.Description,
		podcast.AudioURL,
		podcast.DurationSeconds,
		podcast.ThumbnailURL,
		podcast.CategoryID,
		podcast.Status,
		podcast.PublishedAt,
		podcast.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update podcast: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPodcastNotFound
	}

	return nil
}

func (r *postgresPodcastRepository) Publish(ctx context.Context, podcast *model.Podcast) error {
	query := `
		UPDATE podcasts
		SET status = $2, published_at = $3, updated_at = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, podcast.ID, model.StatusPublished, podcast.PublishedAt)
	if err != nil {
		return fmt.Errorf("failed to publish podcast: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPodcastNotFound
	}

	return nil
}

func (r *postgresPodcastRepository) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	query := `UPDATE podcasts SET is_featured = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, featured)
	if err != nil {
		return fmt.Errorf("failed to set featured flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPodcastNotFound
	}

	return nil
}

func (r *postgresPodcastRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM podcasts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete podcast: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPodcastNotFound
	}

	return nil
}

func (r *postgresPodcastRepository) List(ctx context.Context, status, categorySlug string, page, limit int) ([]*model.Podcast, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argPos)
		args = append(args, status)
		argPos++
	}
	if categorySlug != "" {
		where += fmt.Sprintf(" AND p.category_id = (SELECT id FROM categories WHERE slug = $%d)", argPos)
		args = append(args, categorySlug)
		argPos++
	}

	countQuery := `SELECT COUNT(*) FROM podcasts p` + where

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count podcasts: %w", err)
	}

	query := `
		SELECT
			p.id, p.title, p.slug, p.description, p.audio_url, p.duration_seconds, p.thumbnail_url,
			p.author_id, p.category_id, p.status, p.is_featured, p.view_count, p.published_at,
			p.created_at, p.updated_at
		FROM podcasts p` + where + fmt.Sprintf(`
		ORDER BY COALESCE(p.published_at, p.created_at) DESC
		LIMIT $%d OFFSET $%d`, argPos, argPos+1)

	args = append(args, limit, (page-1)*limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list podcasts: %w", err)
	}
	defer rows.Close()

	var podcasts []*model.Podcast
	for rows.Next() {
		podcast, err := scanPodcast(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, podcast)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate podcasts: %w", err)
	}

	return podcasts, total, nil
}

func (r *postgresPodcastRepository) ListFeatured(ctx context.Context, limit int) ([]*model.Podcast, error) {
	query := `
		SELECT ` + podcastColumns + `
		FROM podcasts
		WHERE status = $1 AND is_featured = TRUE
		ORDER BY published_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, model.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured podcasts: %w", err)
	}
	defer rows.Close()

	var podcasts []*model.Podcast
	for rows.Next() {
		podcast, err := scanPodcast(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, podcast)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate featured podcasts: %w", err)
	}

	return podcasts, nil
}
