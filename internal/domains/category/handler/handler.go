package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/category/model"
	"newsportal-backend/internal/domains/category/service"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list categories", err)
		response.InternalServerError(c, "Failed to list categories")
		return
	}

	response.Success(c, 200, categories)
}

// GetBySlug handles GET /categories/:slug
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.categoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeCategoryNotFound, "Category not found")
			return
		}
		logger.Error("failed to get category", err)
		response.InternalServerError(c, "Failed to get category")
		return
	}

	response.Success(c, 200, category)
}

// Create handles POST /admin/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req model.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrSlugTaken) {
			response.ErrorResponse(c, 409, model.ErrCodeSlugTaken, "A category with this name already exists")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, category)
}

// Update handles PUT /admin/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req model.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), categoryID, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCategoryNotFound):
			response.ErrorResponse(c, 404, model.ErrCodeCategoryNotFound, "Category not found")
		case errors.Is(err, model.ErrSlugTaken):
			response.ErrorResponse(c, 409, model.ErrCodeSlugTaken, "A category with this name already exists")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, 200, category)
}

// Delete handles DELETE /admin/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, model.ErrCategoryNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeCategoryNotFound, "Category not found")
			return
		}
		logger.Error("failed to delete category", err)
		response.InternalServerError(c, "Failed to delete category")
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}
