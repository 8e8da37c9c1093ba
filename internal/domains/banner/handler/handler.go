package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/banner/model"
	"newsportal-backend/internal/domains/banner/service"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

type BannerHandler struct {
	bannerService service.ServiceInterface
}

func NewBannerHandler(bannerService service.ServiceInterface) *BannerHandler {
	return &BannerHandler{bannerService: bannerService}
}

// ListVisible handles GET /banners?position=top
func (h *BannerHandler) ListVisible(c *gin.Context) {
	banners, err := h.bannerService.ListVisible(c.Request.Context(), c.Query("position"))
	if err != nil {
		logger.Error("failed to list banners", err)
		response.InternalServerError(c, "Failed to list banners")
		return
	}

	response.Success(c, 200, banners)
}

// AdminList handles GET /admin/banners
func (h *BannerHandler) AdminList(c *gin.Context) {
	banners, err := h.bannerService.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list banners", err)
		response.InternalServerError(c, "Failed to list banners")
		return
	}

	response.Success(c, 200, banners)
}

// Create handles POST /admin/banners
func (h *BannerHandler) Create(c *gin.Context) {
	var req model.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	banner, err := h.bannerService.Create(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, banner)
}

// Update handles PUT /admin/banners/:id
func (h *BannerHandler) Update(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID")
		return
	}

	var req model.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	banner, err := h.bannerService.Update(c.Request.Context(), bannerID, req)
	if err != nil {
		if errors.Is(err, model.ErrBannerNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeBannerNotFound, "Banner not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 200, banner)
}

// Delete handles DELETE /admin/banners/:id
func (h *BannerHandler) Delete(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID")
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), bannerID); err != nil {
		if errors.Is(err, model.ErrBannerNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeBannerNotFound, "Banner not found")
			return
		}
		logger.Error("failed to delete banner", err)
		response.InternalServerError(c, "Failed to delete banner")
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}
