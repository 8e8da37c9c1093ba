package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/analytics"
	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/domains/analytics/repository"
	"newsportal-backend/internal/shared"
)

// RoleLookup resolves the caller's current role from the profile store.
type RoleLookup interface {
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

type ServiceInterface interface {
	// RecordView bumps the view counter and returns the new total.
	// Anonymous; no caller required.
	RecordView(ctx context.Context, contentType string, contentID uuid.UUID) (int64, error)

	// TrackEngagement queues an engagement event without blocking the
	// request on the write.
	TrackEngagement(ctx context.Context, userID *uuid.UUID, req model.EngagementTrackingRequest) error

	// Report returns the admin content report.
	Report(ctx context.Context, caller shared.Caller) (*model.ContentReport, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	publisher     analytics.Publisher
	roles         RoleLookup
}

func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepository,
	publisher analytics.Publisher,
	roles RoleLookup,
) ServiceInterface {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		publisher:     publisher,
		roles:         roles,
	}
}

func (s *analyticsService) RecordView(ctx context.Context, contentType string, contentID uuid.UUID) (int64, error) {
	count, err := s.analyticsRepo.IncrementViewCount(ctx, contentType, contentID)
	if err != nil {
		if errors.Is(err, model.ErrContentNotFound) {
			return 0, model.ErrContentNotFound
		}
		return 0, fmt.Errorf("failed to record view: %w", err)
	}
	return count, nil
}

func (s *analyticsService) TrackEngagement(ctx context.Context, userID *uuid.UUID, req model.EngagementTrackingRequest) error {
	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return fmt.Errorf("invalid content id: %w", err)
	}

	s.publisher.Publish(ctx, model.RecordEngagementPayload{
		ContentType: req.ContentType,
		ContentID:   contentID,
		EventType:   req.EventType,
		Value:       req.Value,
		UserID:      userID,
		OccurredAt:  time.Now(),
	})

	return nil
}

func (s *analyticsService) Report(ctx context.Context, caller shared.Caller) (*model.ContentReport, error) {
	role, err := s.roles.GetRole(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller role: %w", err)
	}
	if role != "admin" {
		return nil, model.ErrForbidden
	}

	return s.analyticsRepo.Report(ctx)
}
