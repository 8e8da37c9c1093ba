package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/banner/model"
	"newsportal-backend/internal/domains/banner/repository"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateBannerRequest) (*model.Banner, error)
	Update(ctx context.Context, bannerID uuid.UUID, req model.UpdateBannerRequest) (*model.Banner, error)
	Delete(ctx context.Context, bannerID uuid.UUID) error
	List(ctx context.Context) ([]*model.Banner, error)
	ListVisible(ctx context.Context, position string) ([]*model.Banner, error)
}

type bannerService struct {
	bannerRepo repository.BannerRepository
	now        func() time.Time
}

func NewBannerService(bannerRepo repository.BannerRepository) ServiceInterface {
	return &bannerService{
		bannerRepo: bannerRepo,
		now:        time.Now,
	}
}

func (s *bannerService) Create(ctx context.Context, req model.CreateBannerRequest) (*model.Banner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	banner := &model.Banner{
		ID:        uuid.New(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Position:  req.Position,
		IsActive:  req.IsActive,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.LinkURL != "" {
		banner.LinkURL = &req.LinkURL
	}

	if err := s.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *bannerService) Update(ctx context.Context, bannerID uuid.UUID, req model.UpdateBannerRequest) (*model.Banner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	banner, err := s.bannerRepo.GetByID(ctx, bannerID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		banner.Title = req.Title
	}
	if req.ImageURL != "" {
		banner.ImageURL = req.ImageURL
	}
	if req.LinkURL != "" {
		banner.LinkURL = &req.LinkURL
	}
	if req.Position != "" {
		banner.Position = req.Position
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	if req.StartsAt != nil {
		banner.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		banner.EndsAt = req.EndsAt
	}
	banner.UpdatedAt = s.now()

	if err := s.bannerRepo.Update(ctx, banner); err != nil {
		return nil, err
	}

	return banner, nil
}

func (s *bannerService) Delete(ctx context.Context, bannerID uuid.UUID) error {
	return s.bannerRepo.Delete(ctx, bannerID)
}

func (s *bannerService) List(ctx context.Context) ([]*model.Banner, error) {
	return s.bannerRepo.List(ctx)
}

func (s *bannerService) ListVisible(ctx context.Context, position string) ([]*model.Banner, error) {
	return s.bannerRepo.ListVisible(ctx, s.now(), position)
}
