package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"newsportal-backend/internal/shared"
)

// Tracking actions accepted by the engagement endpoint.
const (
	ActionView       = "view"
	ActionEngagement = "engagement"
	ActionReport     = "report"
)

// Engagement event types.
const (
	EventShare    = "share"
	EventLike     = "like"
	EventReadTime = "read_time"
)

// Errors
var (
	ErrContentNotFound = errors.New("content not found")
	ErrForbidden       = errors.New("insufficient permissions")
)

// Error codes
const (
	ErrCodeContentNotFound = "ANL001"
	ErrCodeForbidden       = "ANL002"
)

// EngagementTrackingRequest is the action-discriminated body of the
// engagement tracking endpoint.
type EngagementTrackingRequest struct {
	Action      string `json:"action"`
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId"`
	EventType   string `json:"eventType"`
	Value       int64  `json:"value"`
}

func (r EngagementTrackingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(ActionView, ActionEngagement, ActionReport).Error("invalid action"),
		),
		validation.Field(&r.ContentType,
			validation.When(r.Action != ActionReport,
				validation.Required.Error("content type required"),
				validation.In(shared.ContentTypeArticle, shared.ContentTypePodcast).
					Error("content type must be article or podcast"),
			),
		),
		validation.Field(&r.ContentID,
			validation.When(r.Action != ActionReport,
				validation.Required.Error("content ID required"),
				is.UUIDv4.Error("content ID must be a UUID"),
			),
		),
		validation.Field(&r.EventType,
			validation.When(r.Action == ActionEngagement,
				validation.Required.Error("event type required"),
				validation.In(EventShare, EventLike, EventReadTime).Error("invalid event type"),
			),
		),
	)
}

// EngagementEvent is the durable record written by the worker.
type EngagementEvent struct {
	ID          uuid.UUID  `json:"id"`
	ContentType string     `json:"content_type"`
	ContentID   uuid.UUID  `json:"content_id"`
	EventType   string     `json:"event_type"`
	Value       int64      `json:"value"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// RecordEngagementPayload is the queue payload for engagement events.
type RecordEngagementPayload struct {
	ContentType string     `json:"content_type"`
	ContentID   uuid.UUID  `json:"content_id"`
	EventType   string     `json:"event_type"`
	Value       int64      `json:"value"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// ContentReport aggregates publishing and readership numbers for the
// admin dashboard.
type ContentReport struct {
	PublishedArticles int64 `json:"published_articles"`
	PublishedPodcasts int64 `json:"published_podcasts"`
	TotalArticleViews int64 `json:"total_article_views"`
	TotalPodcastViews int64 `json:"total_podcast_views"`
	PendingComments   int64 `json:"pending_comments"`
	ActiveSubscribers int64 `json:"active_subscribers"`
}
