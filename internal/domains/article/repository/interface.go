package repository

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/article/model"
)

// =====================================================
// ARTICLE REPOSITORY INTERFACE
// =====================================================

type ArticleRepository interface {
	// Create inserts a new article row.
	Create(ctx context.Context, article *model.Article) error

	// GetByID gets an article regardless of status.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)

	// GetPublishedBySlug gets a published article by its slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error)

	// Update persists all editable fields of the article.
	Update(ctx context.Context, article *model.Article) error

	// Publish flips status to published and stamps published_at,
	// in a single write.
	Publish(ctx context.Context, article *model.Article) error

	// SetFeatured updates the is-featured flag.
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error

	// Delete removes the row unconditionally.
	Delete(ctx context.Context, id uuid.UUID) error

	// List pages through articles; filters: status (empty = any),
	// category slug (empty = any). Returns items and total count.
	List(ctx context.Context, status, categorySlug string, page, limit int) ([]*model.Article, int, error)

	// ListFeatured lists published featured articles, newest first.
	ListFeatured(ctx context.Context, limit int) ([]*model.Article, error)
}
