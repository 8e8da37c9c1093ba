package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/newsletter/model"
	"newsportal-backend/internal/domains/newsletter/repository"
	"newsportal-backend/internal/shared/utils"
)

type ServiceInterface interface {
	// Subscribe activates a subscription, reviving a previously
	// unsubscribed address.
	Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscriber, error)

	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, activeOnly bool, page, limit int) ([]*model.Subscriber, int, error)
}

type newsletterService struct {
	subscriberRepo repository.SubscriberRepository
}

func NewNewsletterService(subscriberRepo repository.SubscriberRepository) ServiceInterface {
	return &newsletterService{subscriberRepo: subscriberRepo}
}

func (s *newsletterService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscriber, error) {
	// Normalize before validating so "  Leitor@… " passes as the
	// address it resolves to.
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := (model.SubscribeRequest{Email: email}).Validate(); err != nil {
		return nil, err
	}

	subscriber := &model.Subscriber{
		ID:           uuid.New(),
		Email:        email,
		IsActive:     true,
		SubscribedAt: time.Now(),
	}

	if err := s.subscriberRepo.Upsert(ctx, subscriber); err != nil {
		return nil, err
	}

	// Upsert may have kept an earlier row; return what is stored.
	return s.subscriberRepo.GetByEmail(ctx, email)
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.subscriberRepo.Deactivate(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *newsletterService) List(ctx context.Context, activeOnly bool, page, limit int) ([]*model.Subscriber, int, error) {
	page, limit = utils.NormalizePagination(page, limit)
	return s.subscriberRepo.List(ctx, activeOnly, page, limit)
}
