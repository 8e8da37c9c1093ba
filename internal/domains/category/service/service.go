package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/category/model"
	"newsportal-backend/internal/domains/category/repository"
	"newsportal-backend/internal/shared/utils"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)
	Update(ctx context.Context, categoryID uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) ServiceInterface {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	// Category slugs stay stable across renames, so no timestamp suffix;
	// a duplicate name surfaces as ErrSlugTaken.
	category := &model.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, categoryID uuid.UUID, req model.UpdateCategoryRequest) (*model.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != category.Name {
		category.Name = req.Name
		category.Slug = utils.GenerateSlug(req.Name)
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, categoryID)
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.List(ctx)
}
