package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/shared"
)

type postgresAnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAnalyticsRepository(pool *pgxpool.Pool) AnalyticsRepository {
	return &postgresAnalyticsRepository{pool: pool}
}

func (r *postgresAnalyticsRepository) IncrementViewCount(ctx context.Context, contentType string, contentID uuid.UUID) (int64, error) {
	var table string
	switch contentType {
	case shared.ContentTypeArticle:
		table = "articles"
	case shared.ContentTypePodcast:
		table = "podcasts"
	default:
		return 0, fmt.Errorf("unknown content type: %s", contentType)
	}

	// The increment happens inside the database, so concurrent requests
	// serialize on the row and every view is counted.
	query := fmt.Sprintf(`
		UPDATE %s
		SET view_count = view_count + 1
		WHERE id = $1 AND status = 'published'
		RETURNING view_count
	`, table)

	var count int64
	if err := r.pool.QueryRow(ctx, query, contentID).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrContentNotFound
		}
		return 0, fmt.Errorf("failed to increment view count: %w", err)
	}

	return count, nil
}

func (r *postgresAnalyticsRepository) InsertEngagement(ctx context.Context, event *model.EngagementEvent) error {
	query := `
		INSERT INTO engagement_events (id, content_type, content_id, event_type, value, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.ContentType,
		event.ContentID,
		event.EventType,
		event.Value,
		event.UserID,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert engagement event: %w", err)
	}

	return nil
}

func (r *postgresAnalyticsRepository) Report(ctx context.Context) (*model.ContentReport, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM articles WHERE status = 'published'),
			(SELECT COUNT(*) FROM podcasts WHERE status = 'published'),
			(SELECT COALESCE(SUM(view_count), 0) FROM articles),
			(SELECT COALESCE(SUM(view_count), 0) FROM podcasts),
			(SELECT COUNT(*) FROM comments WHERE status = 'pending'),
			(SELECT COUNT(*) FROM newsletter_subscribers WHERE is_active = TRUE)
	`

	report := &model.ContentReport{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&report.PublishedArticles,
		&report.PublishedPodcasts,
		&report.TotalArticleViews,
		&report.TotalPodcastViews,
		&report.PendingComments,
		&report.ActiveSubscribers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build content report: %w", err)
	}

	return report, nil
}
