package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"newsportal-backend/internal/domains/audit/model"
	"newsportal-backend/internal/shared"
	"newsportal-backend/pkg/logger"
)

// Recorder dispatches audit entries asynchronously.
//
// Contract: best effort, non-blocking, failures swallowed. Callers must
// never see an error from Record; a lost audit row must not fail the
// primary operation.
type Recorder interface {
	Record(ctx context.Context, actorID *uuid.UUID, action, resource string, success bool)
}

// =====================================================
// ASYNQ RECORDER
// =====================================================

type asynqRecorder struct {
	client *asynq.Client
}

func NewAsynqRecorder(client *asynq.Client) Recorder {
	return &asynqRecorder{client: client}
}

func (r *asynqRecorder) Record(ctx context.Context, actorID *uuid.UUID, action, resource string, success bool) {
	payload := model.RecordAccessPayload{
		Action:     action,
		Resource:   resource,
		Success:    success,
		OccurredAt: time.Now().UTC(),
	}
	if actorID != nil {
		payload.ActorID = actorID.String()
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("audit: failed to marshal access payload", err)
		return
	}

	task := asynq.NewTask(shared.TypeRecordAccessLog, data)

	// MaxRetry(0): the audit trail is at-most-once by design.
	_, err = r.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueAudit),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		logger.Error("audit: failed to enqueue access log", err)
	}
}

// =====================================================
// NOP RECORDER
// =====================================================

// NopRecorder discards every entry. Used when the queue is unavailable
// and in tests.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, *uuid.UUID, string, string, bool) {}
