package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/domains/comment/model"
	"newsportal-backend/internal/shared"
)

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uuid.UUID]*model.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	cp := *comment
	r.comments[comment.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	cp := *comment
	return &cp, nil
}

func (r *fakeCommentRepo) ListApprovedByArticleSlug(_ context.Context, _ string) ([]*model.Comment, error) {
	var out []*model.Comment
	for _, c := range r.comments {
		if c.Status == model.StatusApproved {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) ListByStatus(_ context.Context, status string, _, _ int) ([]*model.Comment, int, error) {
	var out []*model.Comment
	for _, c := range r.comments {
		if status == "" || c.Status == status {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *fakeCommentRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	comment, ok := r.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	comment.Status = status
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.comments[id]; !ok {
		return model.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func newTestCommentService(repo *fakeCommentRepo) ServiceInterface {
	return NewCommentService(repo, audit.NopRecorder{})
}

func commenter() shared.Caller {
	return shared.Caller{ID: uuid.New(), Email: "leitor@example.com", Role: "subscriber"}
}

func TestCreateStartsPending(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestCommentService(repo)
	caller := commenter()

	comment, err := svc.Create(context.Background(), caller, model.CreateCommentRequest{
		ArticleID: uuid.NewString(),
		Content:   "Ótima reportagem!",
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, comment.Status)
	assert.Equal(t, caller.ID, comment.AuthorID)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestCommentService(repo)

	_, err := svc.Create(context.Background(), commenter(), model.CreateCommentRequest{
		ArticleID: uuid.NewString(),
	})

	assert.Error(t, err)
	assert.Empty(t, repo.comments)
}

func TestPendingCommentsStayHiddenFromReaders(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestCommentService(repo)

	_, err := svc.Create(context.Background(), commenter(), model.CreateCommentRequest{
		ArticleID: uuid.NewString(),
		Content:   "Aguardando moderação",
	})
	require.NoError(t, err)

	visible, err := svc.ListApprovedForArticle(context.Background(), "qualquer-slug")

	require.NoError(t, err)
	assert.Empty(t, visible)
}

func TestModerateApprovesComment(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestCommentService(repo)

	created, err := svc.Create(context.Background(), commenter(), model.CreateCommentRequest{
		ArticleID: uuid.NewString(),
		Content:   "Ótima reportagem!",
	})
	require.NoError(t, err)

	moderator := shared.Caller{ID: uuid.New(), Role: "editor"}
	moderated, err := svc.Moderate(context.Background(), moderator, created.ID, model.ModerateCommentRequest{
		Status: model.StatusApproved,
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, moderated.Status)
}

func TestModerateRejectsInvalidStatus(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := newTestCommentService(repo)

	created, err := svc.Create(context.Background(), commenter(), model.CreateCommentRequest{
		ArticleID: uuid.NewString(),
		Content:   "Ótima reportagem!",
	})
	require.NoError(t, err)

	// Moderation can only approve or reject; back to pending is not a
	// valid transition.
	_, err = svc.Moderate(context.Background(), shared.Caller{ID: uuid.New()}, created.ID, model.ModerateCommentRequest{
		Status: model.StatusPending,
	})

	assert.Error(t, err)
	assert.Equal(t, model.StatusPending, repo.comments[created.ID].Status)
}

func TestListForModerationRejectsUnknownStatus(t *testing.T) {
	svc := newTestCommentService(newFakeCommentRepo())

	_, _, err := svc.ListForModeration(context.Background(), "spam", 1, 20)

	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}
