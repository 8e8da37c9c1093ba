package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/domains/article/repository"
	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/shared"
	"newsportal-backend/internal/shared/utils"
	"newsportal-backend/pkg/cache"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

const (
	cacheKeySlugPrefix = "article:slug:"
	cacheTTL           = 5 * time.Minute
)

type articleService struct {
	articleRepo repository.ArticleRepository
	roles       RoleLookup
	auditor     audit.Recorder
	cache       cache.Cache
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	roles RoleLookup,
	auditor audit.Recorder,
	cacheStore cache.Cache,
) ServiceInterface {
	return &articleService{
		articleRepo: articleRepo,
		roles:       roles,
		auditor:     auditor,
		cache:       cacheStore,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *articleService) Create(
	ctx context.Context,
	caller shared.Caller,
	req model.CreateArticleRequest,
) (*model.Article, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	// Step 2: Derive slug and excerpt
	// The epoch-millisecond suffix keeps slugs unique across identical
	// titles without a round trip to check for collisions.
	slug := utils.SlugWithTimestamp(req.Title, now)

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = utils.Excerpt(req.Content, model.ExcerptLength)
	}

	// Step 3: Build entity — new articles always start as drafts with
	// the caller as author.
	article := &model.Article{
		ID:         uuid.New(),
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Excerpt:    excerpt,
		Tags:       req.Tags,
		AuthorID:   caller.ID,
		Status:     model.StatusDraft,
		IsFeatured: false,
		ViewCount:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		article.CategoryID = &categoryID
	}
	if req.FeaturedImageURL != "" {
		article.FeaturedImageURL = &req.FeaturedImageURL
	}

	// Step 4: Persist
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "article_create", article.ID.String(), true)

	return article, nil
}

// =====================================================
// PUBLISH
// =====================================================

func (s *articleService) Publish(
	ctx context.Context,
	caller shared.Caller,
	articleID uuid.UUID,
) (*model.Article, error) {
	// Step 1: Fetch the article
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	// Step 2: Validate content length before publishing.
	// A failed check must leave the stored status untouched, so the
	// check happens before any write.
	if !article.CanPublish() {
		return nil, model.NewContentTooShortError()
	}

	// Step 3: Single write: status + publish timestamp
	now := time.Now()
	article.Status = model.StatusPublished
	article.PublishedAt = &now
	article.UpdatedAt = now

	if err := s.articleRepo.Publish(ctx, article); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to publish article: %w", err)
	}

	s.invalidateCache(ctx, article.Slug)
	s.auditor.Record(ctx, &caller.ID, "article_publish", article.ID.String(), true)

	return article, nil
}

// =====================================================
// FEATURE
// =====================================================

func (s *articleService) Feature(
	ctx context.Context,
	caller shared.Caller,
	articleID uuid.UUID,
) (*model.Article, error) {
	// Step 1: Check permissions against the stored profile role
	role, err := s.roles.GetRole(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller role: %w", err)
	}
	if role != "admin" && role != "editor" {
		return nil, model.NewForbiddenError("Insufficient permissions to feature articles")
	}

	// Step 2: Flip the flag
	if err := s.articleRepo.SetFeatured(ctx, articleID, true); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to feature article: %w", err)
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload article: %w", err)
	}

	s.invalidateCache(ctx, article.Slug)
	s.auditor.Record(ctx, &caller.ID, "article_feature", articleID.String(), true)

	return article, nil
}

// =====================================================
// DELETE
// =====================================================

func (s *articleService) Delete(
	ctx context.Context,
	caller shared.Caller,
	articleID uuid.UUID,
) error {
	// Route policy already guarantees an authenticated caller; no
	// further role check here, and no reference-integrity check
	// against comments.
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return model.NewArticleNotFoundError()
		}
		return fmt.Errorf("failed to get article: %w", err)
	}

	if err := s.articleRepo.Delete(ctx, articleID); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return model.NewArticleNotFoundError()
		}
		return fmt.Errorf("failed to delete article: %w", err)
	}

	s.invalidateCache(ctx, article.Slug)
	s.auditor.Record(ctx, &caller.ID, "article_delete", articleID.String(), true)

	return nil
}

// =====================================================
// UPDATE (admin console)
// =====================================================

func (s *articleService) Update(
	ctx context.Context,
	caller shared.Caller,
	articleID uuid.UUID,
	req model.UpdateArticleRequest,
) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	// Authors may edit their own drafts; anything else needs an
	// editorial role.
	role, err := s.roles.GetRole(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caller role: %w", err)
	}
	if role != "admin" && role != "editor" && article.AuthorID != caller.ID {
		return nil, model.NewForbiddenError("You can only edit your own articles")
	}

	if req.Title != "" {
		article.Title = req.Title
	}
	if req.Content != "" {
		article.Content = req.Content
	}
	if req.Excerpt != "" {
		article.Excerpt = req.Excerpt
	}
	if req.Tags != nil {
		article.Tags = req.Tags
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		article.CategoryID = &categoryID
	}
	if req.FeaturedImageURL != "" {
		article.FeaturedImageURL = &req.FeaturedImageURL
	}
	if req.Status != "" && req.Status != article.Status {
		if req.Status == model.StatusPublished {
			if !article.CanPublish() {
				return nil, model.NewContentTooShortError()
			}
			now := time.Now()
			article.PublishedAt = &now
		}
		article.Status = req.Status
	}
	article.UpdatedAt = time.Now()

	if err := s.articleRepo.Update(ctx, article); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	s.invalidateCache(ctx, article.Slug)
	s.auditor.Record(ctx, &caller.ID, "article_update", articleID.String(), true)

	return article, nil
}

// =====================================================
// READS
// =====================================================

func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	// Cache hot public reads; misses fall through to the store.
	if s.cache != nil {
		var cached model.Article
		if found, err := s.cache.Get(ctx, cacheKeySlugPrefix+slug, &cached); err == nil && found {
			return &cached, nil
		}
	}

	article, err := s.articleRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKeySlugPrefix+slug, article, cacheTTL)
	}

	return article, nil
}

func (s *articleService) ListPublished(ctx context.Context, req model.ListArticlesRequest) ([]*model.Article, int, error) {
	page, limit := utils.NormalizePagination(req.Page, req.Limit)
	return s.articleRepo.List(ctx, model.StatusPublished, req.CategorySlug, page, limit)
}

func (s *articleService) AdminList(ctx context.Context, req model.ListArticlesRequest) ([]*model.Article, int, error) {
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	page, limit := utils.NormalizePagination(req.Page, req.Limit)
	return s.articleRepo.List(ctx, req.Status, req.CategorySlug, page, limit)
}

func (s *articleService) ListFeatured(ctx context.Context, limit int) ([]*model.Article, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}
	return s.articleRepo.ListFeatured(ctx, limit)
}

func (s *articleService) invalidateCache(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, cacheKeySlugPrefix+slug)
}
