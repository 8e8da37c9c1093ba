package repository

import (
	"context"

	"newsportal-backend/internal/domains/newsletter/model"
)

type SubscriberRepository interface {
	// Upsert inserts a new subscriber or reactivates an existing one
	// with the same email.
	Upsert(ctx context.Context, subscriber *model.Subscriber) error

	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Deactivate(ctx context.Context, email string) error
	List(ctx context.Context, activeOnly bool, page, limit int) ([]*model.Subscriber, int, error)
}
