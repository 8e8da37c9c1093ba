package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/podcast/model"
	"newsportal-backend/internal/domains/podcast/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// PODCAST HANDLER
// =====================================================

type PodcastHandler struct {
	podcastService service.ServiceInterface
}

func NewPodcastHandler(podcastService service.ServiceInterface) *PodcastHandler {
	return &PodcastHandler{podcastService: podcastService}
}

func mapPodcastError(err error) (int, string, string) {
	var podcastErr *model.PodcastError
	if errors.As(err, &podcastErr) {
		switch {
		case errors.Is(err, model.ErrPodcastNotFound):
			return 404, podcastErr.Code, podcastErr.Message
		case errors.Is(err, model.ErrForbidden):
			return 403, podcastErr.Code, podcastErr.Message
		default:
			return 400, podcastErr.Code, podcastErr.Message
		}
	}

	return 500, "SYS_001", "Internal server error"
}

// List handles GET /podcasts
func (h *PodcastHandler) List(c *gin.Context) {
	var req model.ListPodcastsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	podcasts, total, err := h.podcastService.ListPublished(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to list podcasts", err)
		response.InternalServerError(c, "Failed to list podcasts")
		return
	}

	response.SuccessWithMeta(c, 200, podcasts, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// GetBySlug handles GET /podcasts/:slug
func (h *PodcastHandler) GetBySlug(c *gin.Context) {
	podcast, err := h.podcastService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to get podcast by slug", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, podcast)
}

// ListFeatured handles GET /podcasts/featured
func (h *PodcastHandler) ListFeatured(c *gin.Context) {
	limit := 5
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	podcasts, err := h.podcastService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		logger.Error("failed to list featured podcasts", err)
		response.InternalServerError(c, "Failed to list featured podcasts")
		return
	}

	response.Success(c, 200, podcasts)
}

// AdminList handles GET /admin/podcasts
func (h *PodcastHandler) AdminList(c *gin.Context) {
	var req model.ListPodcastsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	podcasts, total, err := h.podcastService.AdminList(c.Request.Context(), req)
	if err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to list podcasts", err)
			response.InternalServerError(c, "Failed to list podcasts")
			return
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.SuccessWithMeta(c, 200, podcasts, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// Create handles POST /admin/podcasts
func (h *PodcastHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreatePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	podcast, err := h.podcastService.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, podcast)
}

// Update handles PUT /admin/podcasts/:id
func (h *PodcastHandler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	podcastID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid podcast ID")
		return
	}

	var req model.UpdatePodcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	podcast, err := h.podcastService.Update(c.Request.Context(), caller, podcastID, req)
	if err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to update podcast", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, podcast)
}

// Publish handles POST /admin/podcasts/:id/publish
func (h *PodcastHandler) Publish(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	podcastID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid podcast ID")
		return
	}

	podcast, err := h.podcastService.Publish(c.Request.Context(), caller, podcastID)
	if err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to publish podcast", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, podcast)
}

// Feature handles POST /admin/podcasts/:id/feature
func (h *PodcastHandler) Feature(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	podcastID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid podcast ID")
		return
	}

	podcast, err := h.podcastService.Feature(c.Request.Context(), caller, podcastID)
	if err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to feature podcast", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, podcast)
}

// Delete handles DELETE /admin/podcasts/:id
func (h *PodcastHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	podcastID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid podcast ID")
		return
	}

	if err := h.podcastService.Delete(c.Request.Context(), caller, podcastID); err != nil {
		status, code, message := mapPodcastError(err)
		if status == 500 {
			logger.Error("failed to delete podcast", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}
