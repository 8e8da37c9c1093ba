package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/banner/model"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *model.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Banner, error)
	Update(ctx context.Context, banner *model.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Banner, error)

	// ListVisible lists active banners whose window covers the given
	// time, optionally filtered by position.
	ListVisible(ctx context.Context, at time.Time, position string) ([]*model.Banner, error)
}
