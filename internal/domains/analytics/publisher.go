package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/shared"
	"newsportal-backend/pkg/logger"
)

// Publisher hands engagement events to the background queue. Publishing
// is best effort: a full or unreachable queue loses the event, never
// the request.
type Publisher interface {
	Publish(ctx context.Context, payload model.RecordEngagementPayload)
}

type asynqPublisher struct {
	client *asynq.Client
}

func NewAsynqPublisher(client *asynq.Client) Publisher {
	return &asynqPublisher{client: client}
}

func (p *asynqPublisher) Publish(ctx context.Context, payload model.RecordEngagementPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("failed to marshal engagement payload: " + err.Error(), nil)
		return
	}

	task := asynq.NewTask(shared.TypeRecordEngagement, data)

	_, err = p.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueAnalytics),
		asynq.MaxRetry(0),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		logger.Warn("failed to enqueue engagement event: " + err.Error(), nil)
	}
}

// NopPublisher drops every event. Used when the queue is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.RecordEngagementPayload) {}
