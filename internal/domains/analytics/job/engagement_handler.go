package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/domains/analytics/repository"
	"newsportal-backend/pkg/logger"
)

// RecordEngagementHandler persists queued engagement events.
type RecordEngagementHandler struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewRecordEngagementHandler(analyticsRepo repository.AnalyticsRepository) *RecordEngagementHandler {
	return &RecordEngagementHandler{analyticsRepo: analyticsRepo}
}

func (h *RecordEngagementHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.RecordEngagementPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal engagement payload: %v: %w", err, asynq.SkipRetry)
	}

	event := &model.EngagementEvent{
		ID:          uuid.New(),
		ContentType: payload.ContentType,
		ContentID:   payload.ContentID,
		EventType:   payload.EventType,
		Value:       payload.Value,
		UserID:      payload.UserID,
		CreatedAt:   payload.OccurredAt,
	}

	if err := h.analyticsRepo.InsertEngagement(ctx, event); err != nil {
		// Engagement data is best effort; drop on failure instead of
		// letting the queue back up.
		logger.Warn("dropping engagement event: " + err.Error(), nil)
		return nil
	}

	return nil
}
