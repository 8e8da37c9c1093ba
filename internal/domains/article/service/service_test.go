package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/domains/audit"
	"newsportal-backend/internal/shared"
)

// =====================================================
// TEST DOUBLES
// =====================================================

type fakeArticleRepo struct {
	articles map[uuid.UUID]*model.Article

	publishCalls int
	updateCalls  int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[uuid.UUID]*model.Article{}}
}

func (r *fakeArticleRepo) Create(_ context.Context, article *model.Article) error {
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Article, error) {
	article, ok := r.articles[id]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	cp := *article
	return &cp, nil
}

func (r *fakeArticleRepo) GetPublishedBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug && a.Status == model.StatusPublished {
			cp := *a
			return &cp, nil
		}
	}
	return nil, model.ErrArticleNotFound
}

func (r *fakeArticleRepo) Update(_ context.Context, article *model.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return model.ErrArticleNotFound
	}
	r.updateCalls++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) Publish(_ context.Context, article *model.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return model.ErrArticleNotFound
	}
	r.publishCalls++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) SetFeatured(_ context.Context, id uuid.UUID, featured bool) error {
	article, ok := r.articles[id]
	if !ok {
		return model.ErrArticleNotFound
	}
	article.IsFeatured = featured
	return nil
}

func (r *fakeArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.articles[id]; !ok {
		return model.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) List(_ context.Context, status, _ string, _, _ int) ([]*model.Article, int, error) {
	var out []*model.Article
	for _, a := range r.articles {
		if status == "" || a.Status == status {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *fakeArticleRepo) ListFeatured(_ context.Context, _ int) ([]*model.Article, error) {
	var out []*model.Article
	for _, a := range r.articles {
		if a.IsFeatured && a.Status == model.StatusPublished {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type staticRoles map[uuid.UUID]string

func (s staticRoles) GetRole(_ context.Context, userID uuid.UUID) (string, error) {
	role, ok := s[userID]
	if !ok {
		return "", errors.New("profile not found")
	}
	return role, nil
}

type nopCache struct{}

func (nopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (nopCache) Set(context.Context, string, interface{}, time.Duration) error {
	return nil
}
func (nopCache) Delete(context.Context, ...string) error { return nil }
func (nopCache) DeletePattern(context.Context, string) error { return nil }
func (nopCache) Ping(context.Context) error { return nil }

func newTestService(repo *fakeArticleRepo, roles staticRoles) ServiceInterface {
	return NewArticleService(repo, roles, audit.NopRecorder{}, nopCache{})
}

func caller(id uuid.UUID, role string) shared.Caller {
	return shared.Caller{ID: id, Email: "user@example.com", Role: role}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateDefaultsToDraft(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	article, err := svc.Create(context.Background(), caller(authorID, "author"), model.CreateArticleRequest{
		Title:   "Município Aprova Nova Lei",
		Content: strings.Repeat("conteúdo ", 30),
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusDraft, article.Status)
	assert.Equal(t, authorID, article.AuthorID)
	assert.False(t, article.IsFeatured)
	assert.Zero(t, article.ViewCount)
	assert.Nil(t, article.PublishedAt)
}

func TestCreateDerivesTimestampedSlug(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	article, err := svc.Create(context.Background(), caller(authorID, "author"), model.CreateArticleRequest{
		Title:   "Município Aprova Nova Lei",
		Content: "conteúdo",
	})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^municipio-aprova-nova-lei-\d+$`), article.Slug)
}

func TestCreateDerivesExcerptWhenMissing(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	content := strings.Repeat("a", 300)
	article, err := svc.Create(context.Background(), caller(authorID, "author"), model.CreateArticleRequest{
		Title:   "Sem Resumo",
		Content: content,
	})

	require.NoError(t, err)
	assert.Equal(t, content[:200]+"...", article.Excerpt)
}

func TestCreateKeepsExplicitExcerpt(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	article, err := svc.Create(context.Background(), caller(authorID, "author"), model.CreateArticleRequest{
		Title:   "Com Resumo",
		Content: strings.Repeat("a", 300),
		Excerpt: "resumo editorial",
	})

	require.NoError(t, err)
	assert.Equal(t, "resumo editorial", article.Excerpt)
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	_, err := svc.Create(context.Background(), caller(authorID, "author"), model.CreateArticleRequest{
		Content: "conteúdo",
	})

	assert.Error(t, err)
	assert.Empty(t, repo.articles)
}

// =====================================================
// PUBLISH
// =====================================================

func seedArticle(repo *fakeArticleRepo, authorID uuid.UUID, content string) *model.Article {
	article := &model.Article{
		ID:       uuid.New(),
		Title:    "Notícia",
		Slug:     "noticia-1700000000000",
		Content:  content,
		AuthorID: authorID,
		Status:   model.StatusDraft,
	}
	repo.articles[article.ID] = article
	return article
}

func TestPublishRejectsShortContent(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	article := seedArticle(repo, uuid.New(), strings.Repeat("a", model.MinPublishContentLength-1))

	_, err := svc.Publish(context.Background(), caller(editorID, "editor"), article.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrContentTooShort)

	var artErr *model.ArticleError
	require.ErrorAs(t, err, &artErr)
	assert.Equal(t, model.ErrCodeContentTooShort, artErr.Code)

	// The stored status must be untouched after a failed check.
	stored := repo.articles[article.ID]
	assert.Equal(t, model.StatusDraft, stored.Status)
	assert.Nil(t, stored.PublishedAt)
	assert.Zero(t, repo.publishCalls)
}

func TestPublishSetsStatusAndTimestamp(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	article := seedArticle(repo, uuid.New(), strings.Repeat("a", model.MinPublishContentLength))

	published, err := svc.Publish(context.Background(), caller(editorID, "editor"), article.ID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)
	assert.WithinDuration(t, time.Now(), *published.PublishedAt, 5*time.Second)
	assert.Equal(t, 1, repo.publishCalls)
}

func TestPublishUnknownArticle(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	_, err := svc.Publish(context.Background(), caller(editorID, "editor"), uuid.New())

	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

// =====================================================
// FEATURE
// =====================================================

func TestFeatureRequiresEditorialRole(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	article := seedArticle(repo, authorID, strings.Repeat("a", 200))

	_, err := svc.Feature(context.Background(), caller(authorID, "author"), article.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbidden)
	assert.False(t, repo.articles[article.ID].IsFeatured)
}

func TestFeatureUsesStoredRoleNotClaim(t *testing.T) {
	repo := newFakeArticleRepo()
	demotedID := uuid.New()
	// The token still claims editor, but the stored role says subscriber.
	svc := newTestService(repo, staticRoles{demotedID: "subscriber"})

	article := seedArticle(repo, uuid.New(), strings.Repeat("a", 200))

	_, err := svc.Feature(context.Background(), caller(demotedID, "editor"), article.ID)

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestFeatureFlipsFlag(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	article := seedArticle(repo, uuid.New(), strings.Repeat("a", 200))

	featured, err := svc.Feature(context.Background(), caller(editorID, "editor"), article.ID)

	require.NoError(t, err)
	assert.True(t, featured.IsFeatured)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdateAllowsOwnArticle(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author"})

	article := seedArticle(repo, authorID, "conteúdo original")

	updated, err := svc.Update(context.Background(), caller(authorID, "author"), article.ID, model.UpdateArticleRequest{
		Title: "Título Revisado",
	})

	require.NoError(t, err)
	assert.Equal(t, "Título Revisado", updated.Title)
}

func TestUpdateRejectsForeignArticleForAuthors(t *testing.T) {
	repo := newFakeArticleRepo()
	authorID := uuid.New()
	otherID := uuid.New()
	svc := newTestService(repo, staticRoles{authorID: "author", otherID: "author"})

	article := seedArticle(repo, otherID, "conteúdo original")

	_, err := svc.Update(context.Background(), caller(authorID, "author"), article.ID, model.UpdateArticleRequest{
		Title: "Tentativa",
	})

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestUpdateToPublishedEnforcesContentThreshold(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	article := seedArticle(repo, uuid.New(), "curto")

	_, err := svc.Update(context.Background(), caller(editorID, "editor"), article.ID, model.UpdateArticleRequest{
		Status: model.StatusPublished,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrContentTooShort)
	assert.Equal(t, model.StatusDraft, repo.articles[article.ID].Status)
}

// =====================================================
// DELETE
// =====================================================

func TestDeleteRemovesArticle(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	article := seedArticle(repo, uuid.New(), strings.Repeat("a", 200))

	err := svc.Delete(context.Background(), caller(editorID, "editor"), article.ID)

	require.NoError(t, err)
	assert.Empty(t, repo.articles)
}

func TestDeleteUnknownArticle(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	err := svc.Delete(context.Background(), caller(editorID, "editor"), uuid.New())

	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

// =====================================================
// PUBLIC READS
// =====================================================

func TestGetPublishedBySlugIgnoresDrafts(t *testing.T) {
	repo := newFakeArticleRepo()
	editorID := uuid.New()
	svc := newTestService(repo, staticRoles{editorID: "editor"})

	seedArticle(repo, uuid.New(), strings.Repeat("a", 200))

	_, err := svc.GetPublishedBySlug(context.Background(), "noticia-1700000000000")

	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}
