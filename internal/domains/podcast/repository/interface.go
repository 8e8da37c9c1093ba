package repository

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/podcast/model"
)

type PodcastRepository interface {
	Create(ctx context.Context, podcast *model.Podcast) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Podcast, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Podcast, error)
	Update(ctx context.Context, podcast *model.Podcast) error
	Publish(ctx context.Context, podcast *model.Podcast) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status, categorySlug string, page, limit int) ([]*model.Podcast, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Podcast, error)
}
