package repository

import (
	"context"
	"time"

	"newsportal-backend/internal/domains/audit/model"
)

// =====================================================
// ACCESS LOG REPOSITORY INTERFACE
// =====================================================

type AccessLogRepository interface {
	// Insert appends one audit row.
	Insert(ctx context.Context, entry *model.AccessLog) error

	// ListSince lists the most recent entries created after the cutoff,
	// newest first, capped at limit.
	ListSince(ctx context.Context, since time.Time, limit int) ([]*model.AccessLog, error)

	// PurgeOlderThan deletes entries older than the cutoff and returns
	// the number of rows removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
