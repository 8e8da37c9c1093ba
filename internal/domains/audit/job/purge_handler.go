package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"newsportal-backend/internal/domains/audit/model"
	"newsportal-backend/internal/domains/audit/repository"
	"newsportal-backend/pkg/logger"
)

// PurgeHandler enforces the access-log retention window.
type PurgeHandler struct {
	repo repository.AccessLogRepository
}

func NewPurgeHandler(repo repository.AccessLogRepository) *PurgeHandler {
	return &PurgeHandler{repo: repo}
}

func (h *PurgeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.PurgeAccessLogsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid purge payload: %w", err)
	}

	retention := payload.RetentionDays
	if retention <= 0 {
		retention = 90
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -retention)

	removed, err := h.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge access logs: %w", err)
	}

	logger.Info("audit: purged old access logs", map[string]interface{}{
		"removed": removed,
		"cutoff":  cutoff,
	})

	return nil
}
