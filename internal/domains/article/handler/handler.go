package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/article/model"
	"newsportal-backend/internal/domains/article/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// ARTICLE HANDLER
// =====================================================

type ArticleHandler struct {
	articleService service.ServiceInterface
}

func NewArticleHandler(articleService service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// mapArticleError translates domain errors to HTTP status + code.
func mapArticleError(err error) (int, string, string) {
	var articleErr *model.ArticleError
	if errors.As(err, &articleErr) {
		switch {
		case errors.Is(err, model.ErrArticleNotFound):
			return 404, articleErr.Code, articleErr.Message
		case errors.Is(err, model.ErrForbidden):
			return 403, articleErr.Code, articleErr.Message
		case errors.Is(err, model.ErrContentTooShort),
			errors.Is(err, model.ErrInvalidAction):
			return 400, articleErr.Code, articleErr.Message
		default:
			return 400, articleErr.Code, articleErr.Message
		}
	}

	return 500, "SYS_001", "Internal server error"
}

// =====================================================
// PUBLIC ROUTES
// =====================================================

// List handles GET /articles
func (h *ArticleHandler) List(c *gin.Context) {
	var req model.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	articles, total, err := h.articleService.ListPublished(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to list articles", err)
		response.InternalServerError(c, "Failed to list articles")
		return
	}

	response.SuccessWithMeta(c, 200, articles, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// GetBySlug handles GET /articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.articleService.GetPublishedBySlug(c.Request.Context(), slug)
	if err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to get article by slug", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, article)
}

// ListFeatured handles GET /articles/featured
func (h *ArticleHandler) ListFeatured(c *gin.Context) {
	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	articles, err := h.articleService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		logger.Error("failed to list featured articles", err)
		response.InternalServerError(c, "Failed to list featured articles")
		return
	}

	response.Success(c, 200, articles)
}

// =====================================================
// ADMIN ROUTES
// =====================================================

// AdminList handles GET /admin/articles
func (h *ArticleHandler) AdminList(c *gin.Context) {
	var req model.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	articles, total, err := h.articleService.AdminList(c.Request.Context(), req)
	if err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to list articles", err)
			response.InternalServerError(c, "Failed to list articles")
			return
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.SuccessWithMeta(c, 200, articles, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), caller, req)
	if err != nil {
		// Validation errors come straight from ozzo and read fine as-is
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, article)
}

// Update handles PUT /admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), caller, articleID, req)
	if err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to update article", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, article)
}

// Publish handles POST /admin/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.Publish(c.Request.Context(), caller, articleID)
	if err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to publish article", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, article)
}

// Feature handles POST /admin/articles/:id/feature
func (h *ArticleHandler) Feature(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.Feature(c.Request.Context(), caller, articleID)
	if err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to feature article", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, article)
}

// Delete handles DELETE /admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	articleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), caller, articleID); err != nil {
		status, code, message := mapArticleError(err)
		if status == 500 {
			logger.Error("failed to delete article", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}
