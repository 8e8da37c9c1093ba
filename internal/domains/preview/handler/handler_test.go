package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/domains/preview"
	"newsportal-backend/internal/shared"
)

// stubArticleService serves a single published article by slug. Only
// the read path is reachable from the preview handler.
type stubArticleService struct {
	article *articlemodel.Article
}

func (s *stubArticleService) GetPublishedBySlug(_ context.Context, slug string) (*articlemodel.Article, error) {
	if s.article != nil && s.article.Slug == slug {
		return s.article, nil
	}
	return nil, articlemodel.NewArticleNotFoundError()
}

func (s *stubArticleService) Create(context.Context, shared.Caller, articlemodel.CreateArticleRequest) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}

func (s *stubArticleService) Publish(context.Context, shared.Caller, uuid.UUID) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}

func (s *stubArticleService) Feature(context.Context, shared.Caller, uuid.UUID) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}

func (s *stubArticleService) Delete(context.Context, shared.Caller, uuid.UUID) error {
	return articlemodel.ErrArticleNotFound
}

func (s *stubArticleService) Update(context.Context, shared.Caller, uuid.UUID, articlemodel.UpdateArticleRequest) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}

func (s *stubArticleService) AdminList(context.Context, articlemodel.ListArticlesRequest) ([]*articlemodel.Article, int, error) {
	return nil, 0, nil
}

func (s *stubArticleService) ListPublished(context.Context, articlemodel.ListArticlesRequest) ([]*articlemodel.Article, int, error) {
	return nil, 0, nil
}

func (s *stubArticleService) ListFeatured(context.Context, int) ([]*articlemodel.Article, error) {
	return nil, nil
}

func newTestRouter(svc *stubArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewPreviewHandler(
		svc,
		preview.NewCrawlerDetector([]string{"bot", "whatsapp", "facebook"}),
		Config{
			SiteName:         "Frances News",
			TwitterHandle:    "@francesnews",
			FallbackImageURL: "https://cdn.example.com/fallback.jpg",
			SiteURL:          "https://francesnews.example.com/",
		},
	)

	router := gin.New()
	router.GET("/share/:slug", h.Handle)
	return router
}

func publishedArticle(slug string) *articlemodel.Article {
	publishedAt := time.UnixMilli(1700000000000)
	image := "https://cdn.example.com/imagem.jpg"
	return &articlemodel.Article{
		ID:               uuid.New(),
		Title:            "Município Aprova Nova Lei",
		Slug:             slug,
		Excerpt:          "A câmara aprovou por unanimidade...",
		FeaturedImageURL: &image,
		Status:           articlemodel.StatusPublished,
		PublishedAt:      &publishedAt,
	}
}

func TestCrawlerGetsPreviewPage(t *testing.T) {
	router := newTestRouter(&stubArticleService{article: publishedArticle("municipio-aprova-nova-lei-1700000000000")})

	req := httptest.NewRequest(http.MethodGet, "/share/municipio-aprova-nova-lei-1700000000000", nil)
	req.Header.Set("User-Agent", "WhatsApp/2.23.20.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `og:title" content="Município Aprova Nova Lei"`)
	assert.Contains(t, body, `og:description" content="A câmara aprovou por unanimidade..."`)
	assert.Contains(t, body, `og:image:width" content="1200"`)
	assert.Contains(t, body, `og:image:height" content="630"`)
	assert.Contains(t, body, `twitter:card" content="summary_large_image"`)
	assert.Contains(t, body, `twitter:site" content="@francesnews"`)
	assert.Contains(t, body, "article:published_time")
}

func TestPreviewImageCarriesCacheBuster(t *testing.T) {
	router := newTestRouter(&stubArticleService{article: publishedArticle("noticia-1")})

	req := httptest.NewRequest(http.MethodGet, "/share/noticia-1", nil)
	req.Header.Set("User-Agent", "facebookexternalhit/1.1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Cache-buster derives from the publish timestamp so crawlers
	// refetch the image after a republish.
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/imagem.jpg?v=1700000000000")
}

func TestPreviewFallsBackToDefaultImage(t *testing.T) {
	article := publishedArticle("noticia-sem-imagem")
	article.FeaturedImageURL = nil
	router := newTestRouter(&stubArticleService{article: article})

	req := httptest.NewRequest(http.MethodGet, "/share/noticia-sem-imagem", nil)
	req.Header.Set("User-Agent", "TelegramBot (like TwitterBot)")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/fallback.jpg?v=1700000000000")
}

func TestBrowserGetsRedirectToCanonicalURL(t *testing.T) {
	router := newTestRouter(&stubArticleService{article: publishedArticle("qualquer-slug")})

	req := httptest.NewRequest(http.MethodGet, "/share/qualquer-slug", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://francesnews.example.com/noticia/qualquer-slug", rec.Header().Get("Location"))
}

func TestBrowserWithUnknownSlugGets404NotRedirect(t *testing.T) {
	// The slug is resolved before the caller is classified; a browser
	// must not be bounced to a dead canonical URL.
	router := newTestRouter(&stubArticleService{})

	req := httptest.NewRequest(http.MethodGet, "/share/nao-existe", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), "Frances News")
}

func TestCrawlerWithUnknownSlugGets404Page(t *testing.T) {
	router := newTestRouter(&stubArticleService{})

	req := httptest.NewRequest(http.MethodGet, "/share/nao-existe", nil)
	req.Header.Set("User-Agent", "Googlebot/2.1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Frances News")
}
