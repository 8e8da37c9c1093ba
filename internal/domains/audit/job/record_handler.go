package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"newsportal-backend/internal/domains/audit/model"
	"newsportal-backend/internal/domains/audit/repository"
	"newsportal-backend/pkg/logger"
)

// RecordAccessHandler persists audit rows enqueued by the API process.
type RecordAccessHandler struct {
	repo repository.AccessLogRepository
}

func NewRecordAccessHandler(repo repository.AccessLogRepository) *RecordAccessHandler {
	return &RecordAccessHandler{repo: repo}
}

func (h *RecordAccessHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.RecordAccessPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid access log payload: %w", err)
	}

	entry := &model.AccessLog{
		ID:        uuid.New(),
		Action:    payload.Action,
		Resource:  payload.Resource,
		Success:   payload.Success,
		CreatedAt: payload.OccurredAt,
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if payload.ActorID != "" {
		actorID, err := uuid.Parse(payload.ActorID)
		if err != nil {
			return fmt.Errorf("invalid actor id %q: %w", payload.ActorID, err)
		}
		entry.ActorID = &actorID
	}

	if err := h.repo.Insert(ctx, entry); err != nil {
		// Best effort end to end: log and drop rather than retry.
		logger.Error("audit: failed to write access log", err)
	}

	return nil
}
