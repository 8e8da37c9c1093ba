package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/domains/podcast/model"
	"newsportal-backend/internal/domains/podcast/repository"
	"newsportal-backend/internal/shared"
	"newsportal-backend/internal/shared/utils"
)

// =====================================================
// PODCAST SERVICE
// =====================================================

// RoleLookup resolves the caller's current role from the profile store.
type RoleLookup interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

type ServiceInterface interface {
	Create(ctx context.Context, caller shared.Caller, req model.CreatePodcastRequest) (*model.Podcast, error)
	Update(ctx context.Context, caller shared.Caller, podcastID uuid.UUID, req model.UpdatePodcastRequest) (*model.Podcast, error)
	Publish(ctx context.Context, caller shared.Caller, podcastID uuid.UUID) (*model.Podcast, error)
	Feature(ctx context.Context, caller shared.Caller, podcastID uuid.UUID) (*model.Podcast, error)
	Delete(ctx context.Context, caller shared.Caller, podcastID uuid.UUID) error
	AdminList(ctx context.Context, req model.ListPodcastsRequest) ([]*model.Podcast, int, error)

	GetPublishedBySlug(ctx context.Context, slug string) (*model.Podcast, error)
	ListPublished(ctx context.Context, req model.ListPodcastsRequest) ([]*model.Podcast, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.Podcast, error)
}

type podcastService struct {
	podcastRepo repository.PodcastRepository
	roles       RoleLookup
	auditor     audit.Recorder
}

func NewPodcastService(
	podcastRepo repository.PodcastRepository,
	roles RoleLookup,
	auditor audit.Recorder,
) ServiceInterface {
	return &podcastService{
		podcastRepo: podcastRepo,
		roles:       roles,
		auditor:     auditor,
	}
}

func (s *podcastService) Create(
	ctx context.Context,
	caller shared.Caller,
	req model.CreatePodcastRequest,
) (*model.Podcast, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	podcast := &model.Podcast{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            utils.SlugWithTimestamp(req.Title, now),
		Description:     req.Description,
		AudioURL:        req.AudioURL,
		DurationSeconds: req.DurationSeconds,
		AuthorID:        caller.ID,
		Status:          model.StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.ThumbnailURL != "" {
		podcast.ThumbnailURL = &req.ThumbnailURL
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		podcast.CategoryID = &categoryID
	}

	if err := s.podcastRepo.Create(ctx, podcast); err != nil {
		return nil, fmt.Errorf("failed to create podcast: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "podcast_create", podcast.ID.String(), true)

	return podcast, nil
}

func (s *podcastService) Update(
	ctx context.Context,
	caller shared.Caller,
	podcastID uuid.UUID,
	req model.UpdatePodcastRequest,
) (*model.Podcast, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	podcast, err := s.podcastRepo.GetByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	role, err := s.roles.GetRole(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller role: %w", err)
	}
	if role != "admin" && role != "editor" && podcast.AuthorID != caller.ID {
		return nil, model.NewForbiddenError("You can only edit your own podcasts")
	}

	if req.Title != "" {
		podcast.Title = req.Title
	}
	if req.Description != "" {
		podcast.Description = req.Description
	}
	if req.AudioURL != "" {
		podcast.AudioURL = req.AudioURL
	}
	if req.DurationSeconds > 0 {
		podcast.DurationSeconds = req.DurationSeconds
	}
	if req.ThumbnailURL != "" {
		podcast.ThumbnailURL = &req.ThumbnailURL
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		podcast.CategoryID = &categoryID
	}
	if req.Status != "" && req.Status != podcast.Status {
		if req.Status == model.StatusPublished {
			if !podcast.CanPublish() {
				return nil, model.NewAudioRequiredError()
			}
			now := time.Now()
			podcast.PublishedAt = &now
		}
		podcast.Status = req.Status
	}
	podcast.UpdatedAt = time.Now()

	if err := s.podcastRepo.Update(ctx, podcast); err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to update podcast: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "podcast_update", podcastID.String(), true)

	return podcast, nil
}

func (s *podcastService) Publish(
	ctx context.Context,
	caller shared.Caller,
	podcastID uuid.UUID,
) (*model.Podcast, error) {
	podcast, err := s.podcastRepo.GetByID(ctx, podcastID)
	if err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	if !podcast.CanPublish() {
		return nil, model.NewAudioRequiredError()
	}

	now := time.Now()
	podcast.Status = model.StatusPublished
	podcast.PublishedAt = &now
	podcast.UpdatedAt = now

	if err := s.podcastRepo.Publish(ctx, podcast); err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to publish podcast: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "podcast_publish", podcastID.String(), true)

	return podcast, nil
}

func (s *podcastService) Feature(
	ctx context.Context,
	caller shared.Caller,
	podcastID uuid.UUID,
) (*model.Podcast, error) {
	role, err := s.roles.GetRole(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller role: %w", err)
	}
	if role != "admin" && role != "editor" {
		return nil, model.NewForbiddenError("Insufficient permissions to feature podcasts")
	}

	if err := s.podcastRepo.SetFeatured(ctx, podcastID, true); err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to feature podcast: %w", err)
	}

	podcast, err := s.podcastRepo.GetByID(ctx, podcastID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload podcast: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "podcast_feature", podcastID.String(), true)

	return podcast, nil
}

func (s *podcastService) Delete(
	ctx context.Context,
	caller shared.Caller,
	podcastID uuid.UUID,
) error {
	if err := s.podcastRepo.Delete(ctx, podcastID); err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return model.NewPodcastNotFoundError()
		}
		return fmt.Errorf("failed to delete podcast: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "podcast_delete", podcastID.String(), true)

	return nil
}

func (s *podcastService) AdminList(ctx context.Context, req model.ListPodcastsRequest) ([]*model.Podcast, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	page, limit := utils.NormalizePagination(req.Page, req.Limit)
	return s.podcastRepo.List(ctx, req.Status, req.CategorySlug, page, limit)
}

func (s *podcastService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Podcast, error) {
	podcast, err := s.podcastRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrPodcastNotFound) {
			return nil, model.NewPodcastNotFoundError()
		}
		return nil, fmt.Errorf("failed to get podcast by slug: %w", err)
	}
	return podcast, nil
}

func (s *podcastService) ListPublished(ctx context.Context, req model.ListPodcastsRequest) ([]*model.Podcast, int, error) {
	page, limit := utils.NormalizePagination(req.Page, req.Limit)
	return s.podcastRepo.List(ctx, model.StatusPublished, req.CategorySlug, page, limit)
}

func (s *podcastService) ListFeatured(ctx context.Context, limit int) ([]*model.Podcast, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	return s.podcastRepo.ListFeatured(ctx, limit)
}
