package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/newsletter/model"
)

type fakeSubscriberRepo struct {
	byEmail map[string]*model.Subscriber
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{byEmail: map[string]*model.Subscriber{}}
}

func (r *fakeSubscriberRepo) Upsert(_ context.Context, subscriber *model.Subscriber) error {
	if existing, ok := r.byEmail[subscriber.Email]; ok {
		existing.IsActive = true
		existing.SubscribedAt = subscriber.SubscribedAt
		existing.UnsubscribedAt = nil
		return nil
	}
	cp := *subscriber
	r.byEmail[subscriber.Email] = &cp
	return nil
}

func (r *fakeSubscriberRepo) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	subscriber, ok := r.byEmail[email]
	if !ok {
		return nil, model.ErrSubscriberNotFound
	}
	cp := *subscriber
	return &cp, nil
}

func (r *fakeSubscriberRepo) Deactivate(_ context.Context, email string) error {
	subscriber, ok := r.byEmail[email]
	if !ok {
		return model.ErrSubscriberNotFound
	}
	now := time.Now()
	subscriber.IsActive = false
	subscriber.UnsubscribedAt = &now
	return nil
}

func (r *fakeSubscriberRepo) List(_ context.Context, activeOnly bool, _, _ int) ([]*model.Subscriber, int, error) {
	var out []*model.Subscriber
	for _, s := range r.byEmail {
		if activeOnly && !s.IsActive {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewNewsletterService(repo)

	subscriber, err := svc.Subscribe(context.Background(), model.SubscribeRequest{
		Email: "  Leitor@Example.COM ",
	})

	require.NoError(t, err)
	assert.Equal(t, "leitor@example.com", subscriber.Email)
	assert.True(t, subscriber.IsActive)
}

func TestSubscribeRevivesUnsubscribedAddress(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewNewsletterService(repo)

	first, err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "leitor@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(context.Background(), "leitor@example.com"))

	revived, err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "leitor@example.com"})
	require.NoError(t, err)

	// Same row comes back, reactivated.
	assert.Equal(t, first.ID, revived.ID)
	assert.True(t, revived.IsActive)
	assert.Nil(t, revived.UnsubscribedAt)
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewNewsletterService(newFakeSubscriberRepo())

	_, err := svc.Subscribe(context.Background(), model.SubscribeRequest{Email: "not-an-email"})

	assert.Error(t, err)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc := NewNewsletterService(newFakeSubscriberRepo())

	err := svc.Unsubscribe(context.Background(), "desconhecido@example.com")

	assert.ErrorIs(t, err, model.ErrSubscriberNotFound)
}
