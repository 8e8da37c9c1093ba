package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Comment statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Comment is a reader comment on an article. New comments start
// pending and only show publicly once approved.
type Comment struct {
	ID         uuid.UUID `json:"id"`
	ArticleID  uuid.UUID `json:"article_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrInvalidStatus   = errors.New("invalid comment status")
)

// Error codes
const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodeInvalidStatus   = "CMT002"
)

type CreateCommentRequest struct {
	ArticleID string `json:"article_id"`
	Content   string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID, validation.Required.Error("article ID is required")),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

type ModerateCommentRequest struct {
	Status string `json:"status"`
}

func (r ModerateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusApproved, StatusRejected).Error("status must be approved or rejected"),
		),
	)
}
