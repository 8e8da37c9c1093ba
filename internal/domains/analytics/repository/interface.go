package repository

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/analytics/model"
)

type AnalyticsRepository interface {
	// IncrementViewCount bumps the view counter in a single UPDATE and
	// returns the new value. Concurrent calls never lose increments.
	IncrementViewCount(ctx context.Context, contentType string, contentID uuid.UUID) (int64, error)

	// InsertEngagement stores one engagement event (worker side).
	InsertEngagement(ctx context.Context, event *model.EngagementEvent) error

	// Report builds the aggregate content report.
	Report(ctx context.Context) (*model.ContentReport, error)
}
