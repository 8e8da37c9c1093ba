package repository

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/comment/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	// ListApprovedByArticleSlug lists approved comments for a published
	// article, oldest first.
	ListApprovedByArticleSlug(ctx context.Context, slug string) ([]*model.Comment, error)

	// ListByStatus pages through comments for moderation; empty status
	// means all.
	ListByStatus(ctx context.Context, status string, page, limit int) ([]*model.Comment, int, error)

	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
