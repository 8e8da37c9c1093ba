package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/audit/model"
)

type postgresAccessLogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccessLogRepository(pool *pgxpool.Pool) AccessLogRepository {
	return &postgresAccessLogRepository{pool: pool}
}

func (r *postgresAccessLogRepository) Insert(ctx context.Context, entry *model.AccessLog) error {
	query := `
		INSERT INTO access_logs (id, actor_id, action, resource, success, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.Action,
		entry.Resource,
		entry.Success,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert access log: %w", err)
	}

	return nil
}

func (r *postgresAccessLogRepository) ListSince(ctx context.Context, since time.Time, limit int) ([]*model.AccessLog, error) {
	query := `
		SELECT id, actor_id, action, resource, success, created_at
		FROM access_logs
		WHERE created_at >= $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	defer rows.Close()

	var entries []*model.AccessLog
	for rows.Next() {
		entry := &model.AccessLog{}
		if err := rows.Scan(
			&entry.ID,
			&entry.ActorID,
			&entry.Action,
			&entry.Resource,
			&entry.Success,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate access logs: %w", err)
	}

	return entries, nil
}

func (r *postgresAccessLogRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM access_logs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge access logs: %w", err)
	}

	return tag.RowsAffected(), nil
}
