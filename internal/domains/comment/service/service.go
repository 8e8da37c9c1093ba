package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/domains/comment/model"
	"newsportal-backend/internal/domains/comment/repository"
	"newsportal-backend/internal/shared"
	"newsportal-backend/internal/shared/utils"
)

type ServiceInterface interface {
	// Create stores a new comment as pending moderation.
	Create(ctx context.Context, caller shared.Caller, req model.CreateCommentRequest) (*model.Comment, error)

	// ListApprovedForArticle lists approved comments on a published article.
	ListApprovedForArticle(ctx context.Context, articleSlug string) ([]*model.Comment, error)

	// Moderation (admin console)
	ListForModeration(ctx context.Context, status string, page, limit int) ([]*model.Comment, int, error)
	Moderate(ctx context.Context, caller shared.Caller, commentID uuid.UUID, req model.ModerateCommentRequest) (*model.Comment, error)
	Delete(ctx context.Context, caller shared.Caller, commentID uuid.UUID) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	auditor     audit.Recorder
}

func NewCommentService(commentRepo repository.CommentRepository, auditor audit.Recorder) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
		auditor:     auditor,
	}
}

func (s *commentService) Create(
	ctx context.Context,
	caller shared.Caller,
	req model.CreateCommentRequest,
) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	articleID, err := uuid.Parse(req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("invalid article id: %w", err)
	}

	now := time.Now()
	comment := &model.Comment{
		ID:        uuid.New(),
		ArticleID: articleID,
		AuthorID:  caller.ID,
		Content:   req.Content,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) ListApprovedForArticle(ctx context.Context, articleSlug string) ([]*model.Comment, error) {
	return s.commentRepo.ListApprovedByArticleSlug(ctx, articleSlug)
}

func (s *commentService) ListForModeration(ctx context.Context, status string, page, limit int) ([]*model.Comment, int, error) {
	if status != "" && status != model.StatusPending && status != model.StatusApproved && status != model.StatusRejected {
		return nil, 0, model.ErrInvalidStatus
	}
	page, limit = utils.NormalizePagination(page, limit)
	return s.commentRepo.ListByStatus(ctx, status, page, limit)
}

func (s *commentService) Moderate(
	ctx context.Context,
	caller shared.Caller,
	commentID uuid.UUID,
	req model.ModerateCommentRequest,
) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.commentRepo.SetStatus(ctx, commentID, req.Status); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload comment: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "comment_"+req.Status, commentID.String(), true)

	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, caller shared.Caller, commentID uuid.UUID) error {
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.auditor.Record(ctx, &caller.ID, "comment_delete", commentID.String(), true)

	return nil
}
