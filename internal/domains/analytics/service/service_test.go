package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/shared"
)

// =====================================================
// TEST DOUBLES
// =====================================================

type fakeAnalyticsRepo struct {
	views       map[uuid.UUID]int64
	report      *model.ContentReport
	reportCalls int
}

func (r *fakeAnalyticsRepo) IncrementViewCount(_ context.Context, _ string, contentID uuid.UUID) (int64, error) {
	if _, ok := r.views[contentID]; !ok {
		return 0, model.ErrContentNotFound
	}
	r.views[contentID]++
	return r.views[contentID], nil
}

func (r *fakeAnalyticsRepo) InsertEngagement(_ context.Context, _ *model.EngagementEvent) error {
	return nil
}

func (r *fakeAnalyticsRepo) Report(_ context.Context) (*model.ContentReport, error) {
	r.reportCalls++
	return r.report, nil
}

type capturingPublisher struct {
	payloads []model.RecordEngagementPayload
}

func (p *capturingPublisher) Publish(_ context.Context, payload model.RecordEngagementPayload) {
	p.payloads = append(p.payloads, payload)
}

type staticRoles map[uuid.UUID]string

func (s staticRoles) GetRole(_ context.Context, userID uuid.UUID) (string, error) {
	role, ok := s[userID]
	if !ok {
		return "", errors.New("profile not found")
	}
	return role, nil
}

// =====================================================
// RECORD VIEW
// =====================================================

func TestRecordViewReturnsNewCount(t *testing.T) {
	contentID := uuid.New()
	repo := &fakeAnalyticsRepo{views: map[uuid.UUID]int64{contentID: 41}}
	svc := NewAnalyticsService(repo, &capturingPublisher{}, staticRoles{})

	count, err := svc.RecordView(context.Background(), shared.ContentTypeArticle, contentID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestRecordViewUnknownContent(t *testing.T) {
	repo := &fakeAnalyticsRepo{views: map[uuid.UUID]int64{}}
	svc := NewAnalyticsService(repo, &capturingPublisher{}, staticRoles{})

	_, err := svc.RecordView(context.Background(), shared.ContentTypeArticle, uuid.New())

	assert.ErrorIs(t, err, model.ErrContentNotFound)
}

// =====================================================
// TRACK ENGAGEMENT
// =====================================================

func TestTrackEngagementQueuesEvent(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, publisher, staticRoles{})

	contentID := uuid.New()
	userID := uuid.New()

	err := svc.TrackEngagement(context.Background(), &userID, model.EngagementTrackingRequest{
		Action:      model.ActionEngagement,
		ContentType: shared.ContentTypePodcast,
		ContentID:   contentID.String(),
		EventType:   model.EventReadTime,
		Value:       95,
	})

	require.NoError(t, err)
	require.Len(t, publisher.payloads, 1)

	payload := publisher.payloads[0]
	assert.Equal(t, shared.ContentTypePodcast, payload.ContentType)
	assert.Equal(t, contentID, payload.ContentID)
	assert.Equal(t, model.EventReadTime, payload.EventType)
	assert.Equal(t, int64(95), payload.Value)
	require.NotNil(t, payload.UserID)
	assert.Equal(t, userID, *payload.UserID)
	assert.False(t, payload.OccurredAt.IsZero())
}

func TestTrackEngagementAnonymous(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, publisher, staticRoles{})

	err := svc.TrackEngagement(context.Background(), nil, model.EngagementTrackingRequest{
		Action:      model.ActionEngagement,
		ContentType: shared.ContentTypeArticle,
		ContentID:   uuid.NewString(),
		EventType:   model.EventShare,
	})

	require.NoError(t, err)
	require.Len(t, publisher.payloads, 1)
	assert.Nil(t, publisher.payloads[0].UserID)
}

func TestTrackEngagementRejectsBadContentID(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, publisher, staticRoles{})

	err := svc.TrackEngagement(context.Background(), nil, model.EngagementTrackingRequest{
		Action:      model.ActionEngagement,
		ContentType: shared.ContentTypeArticle,
		ContentID:   "not-a-uuid",
		EventType:   model.EventShare,
	})

	assert.Error(t, err)
	assert.Empty(t, publisher.payloads)
}

// =====================================================
// REPORT
// =====================================================

func TestReportRequiresAdminRole(t *testing.T) {
	subscriberID := uuid.New()
	editorID := uuid.New()
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, &capturingPublisher{}, staticRoles{
		subscriberID: "subscriber",
		editorID:     "editor",
	})

	_, err := svc.Report(context.Background(), shared.Caller{ID: subscriberID})
	assert.ErrorIs(t, err, model.ErrForbidden)

	// Editors curate content but the aggregate report stays admin-only.
	_, err = svc.Report(context.Background(), shared.Caller{ID: editorID})
	assert.ErrorIs(t, err, model.ErrForbidden)

	// A refused caller must not trigger any aggregation query.
	assert.Zero(t, repo.reportCalls)
}

func TestReportForAdmin(t *testing.T) {
	adminID := uuid.New()
	expected := &model.ContentReport{
		PublishedArticles: 12,
		PublishedPodcasts: 3,
		TotalArticleViews: 4800,
		PendingComments:   7,
		ActiveSubscribers: 950,
	}
	svc := NewAnalyticsService(&fakeAnalyticsRepo{report: expected}, &capturingPublisher{}, staticRoles{
		adminID: "admin",
	})

	report, err := svc.Report(context.Background(), shared.Caller{ID: adminID})

	require.NoError(t, err)
	assert.Equal(t, expected, report)
}
