package service

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/shared"
)

// ServiceInterface exposes the article lifecycle operations.
// Privileged calls receive the caller identity explicitly.
type ServiceInterface interface {
	// Content-mutation operations
	Create(ctx context.Context, caller shared.Caller, req model.CreateArticleRequest) (*model.Article, error)
	Publish(ctx context.Context, caller shared.Caller, articleID uuid.UUID) (*model.Article, error)
	Feature(ctx context.Context, caller shared.Caller, articleID uuid.UUID) (*model.Article, error)
	Delete(ctx context.Context, caller shared.Caller, articleID uuid.UUID) error

	// Admin console
	Update(ctx context.Context, caller shared.Caller, articleID uuid.UUID, req model.UpdateArticleRequest) (*model.Article, error)
	AdminList(ctx context.Context, req model.ListArticlesRequest) ([]*model.Article, int, error)

	// Public reads
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error)
	ListPublished(ctx context.Context, req model.ListArticlesRequest) ([]*model.Article, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Article, error)
}

// RoleLookup resolves the caller's current role from the profile store.
// Privileged checks use the stored role, not the token claim, so a
// demotion takes effect before the old token expires.
type RoleLookup interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}
