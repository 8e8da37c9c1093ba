package handler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	articlemodel "newsportal-backend/internal/domains/article/model"
	articleservice "newsportal-backend/internal/domains/article/service"
	"newsportal-backend/internal/domains/preview"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// SOCIAL PREVIEW HANDLER
// =====================================================

// Config carries the static pieces of the share page.
type Config struct {
	SiteName         string
	TwitterHandle    string
	FallbackImageURL string
	SiteURL          string
}

// PreviewHandler serves GET /share/:slug. Crawlers get a static HTML
// page with social metadata; browsers get redirected to the reader
// site.
type PreviewHandler struct {
	articleService articleservice.ServiceInterface
	detector       *preview.CrawlerDetector
	config         Config
}

func NewPreviewHandler(
	articleService articleservice.ServiceInterface,
	detector *preview.CrawlerDetector,
	config Config,
) *PreviewHandler {
	return &PreviewHandler{
		articleService: articleService,
		detector:       detector,
		config:         config,
	}
}

// Handle handles GET /share/:slug.
func (h *PreviewHandler) Handle(c *gin.Context) {
	slug := c.Param("slug")
	canonicalURL := strings.TrimRight(h.config.SiteURL, "/") + "/noticia/" + url.PathEscape(slug)

	// Resolve the article before classifying the caller: an unknown
	// slug is a 404 for crawlers and browsers alike, never a redirect
	// to a dead page.
	article, err := h.articleService.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, articlemodel.ErrArticleNotFound) {
			h.renderNotFound(c)
			return
		}
		logger.Error("failed to build share preview", err)
		c.String(500, "Internal server error")
		return
	}

	if !h.detector.IsCrawler(c.GetHeader("User-Agent")) {
		c.Redirect(302, canonicalURL)
		return
	}

	data := preview.PageData{
		SiteName:      h.config.SiteName,
		TwitterHandle: h.config.TwitterHandle,
		Title:         article.Title,
		Description:   article.Excerpt,
		ImageURL:      h.imageURL(article),
		CanonicalURL:  canonicalURL,
	}
	if article.PublishedAt != nil {
		data.PublishedAt = article.PublishedAt.Format(time.RFC3339)
	}

	c.Status(200)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := preview.RenderPreview(c.Writer, data); err != nil {
		logger.Error("failed to render share preview", err)
	}
}

// imageURL picks the article image or the fallback, with a cache-buster
// derived from the publish timestamp so crawlers refetch after edits
// that republish.
func (h *PreviewHandler) imageURL(article *articlemodel.Article) string {
	imageURL := h.config.FallbackImageURL
	if article.FeaturedImageURL != nil && *article.FeaturedImageURL != "" {
		imageURL = *article.FeaturedImageURL
	}

	if article.PublishedAt == nil {
		return imageURL
	}

	sep := "?"
	if strings.Contains(imageURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sv=%d", imageURL, sep, article.PublishedAt.UnixMilli())
}

func (h *PreviewHandler) renderNotFound(c *gin.Context) {
	c.Status(404)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := preview.RenderNotFound(c.Writer, h.config.SiteName); err != nil {
		logger.Error("failed to render not-found page", err)
	}
}
