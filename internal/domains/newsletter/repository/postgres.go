package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsportal-backend/internal/domains/newsletter/model"
)

type postgresSubscriberRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSubscriberRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &postgresSubscriberRepository{pool: pool}
}

func (r *postgresSubscriberRepository) Upsert(ctx context.Context, subscriber *model.Subscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, is_active, subscribed_at, unsubscribed_at)
		VALUES ($1, $2, TRUE, $3, NULL)
		ON CONFLICT (email) DO UPDATE
		SET is_active = TRUE, subscribed_at = EXCLUDED.subscribed_at, unsubscribed_at = NULL
	`

	_, err := r.pool.Exec(ctx, query,
		subscriber.ID,
		subscriber.Email,
		subscriber.SubscribedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert subscriber: %w", err)
	}

	return nil
}

func (r *postgresSubscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	query := `
		SELECT id, email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	subscriber := &model.Subscriber{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&subscriber.ID,
		&subscriber.Email,
		&subscriber.IsActive,
		&subscriber.SubscribedAt,
		&subscriber.UnsubscribedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber: %w", err)
	}

	return subscriber, nil
}

func (r *postgresSubscriberRepository) Deactivate(ctx context.Context, email string) error {
	query := `
		UPDATE newsletter_subscribers
		SET is_active = FALSE, unsubscribed_at = NOW()
		WHERE email = $1
	`

	tag, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		return fmt.Errorf("failed to deactivate subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubscriberNotFound
	}

	return nil
}

func (r *postgresSubscriberRepository) List(ctx context.Context, activeOnly bool, page, limit int) ([]*model.Subscriber, int, error) {
	where := ""
	if activeOnly {
		where = " WHERE is_active = TRUE"
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	query := `
		SELECT id, email, is_active, subscribed_at, unsubscribed_at
		FROM newsletter_subscribers` + where + `
		ORDER BY subscribed_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*model.Subscriber
	for rows.Next() {
		subscriber := &model.Subscriber{}
		err := rows.Scan(
			&subscriber.ID,
			&subscriber.Email,
			&subscriber.IsActive,
			&subscriber.SubscribedAt,
			&subscriber.UnsubscribedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subscribers, total, nil
}
