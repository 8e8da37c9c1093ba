package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/comment/model"
	"newsportal-backend/internal/domains/comment/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListForArticle handles GET /articles/:slug/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	comments, err := h.commentService.ListApprovedForArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		logger.Error("failed to list comments", err)
		response.InternalServerError(c, "Failed to list comments")
		return
	}

	response.Success(c, 200, comments)
}

// Create handles POST /comments (authenticated)
func (h *CommentHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, comment)
}

// AdminList handles GET /admin/comments?status=pending
func (h *CommentHandler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	status := c.Query("status")

	comments, total, err := h.commentService.ListForModeration(c.Request.Context(), status, page, limit)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			response.ErrorResponse(c, 400, model.ErrCodeInvalidStatus, "Invalid comment status filter")
			return
		}
		logger.Error("failed to list comments for moderation", err)
		response.InternalServerError(c, "Failed to list comments")
		return
	}

	response.SuccessWithMeta(c, 200, comments, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Moderate handles PUT /admin/comments/:id/status
func (h *CommentHandler) Moderate(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req model.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Moderate(c.Request.Context(), caller, commentID, req)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeCommentNotFound, "Comment not found")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 200, comment)
}

// Delete handles DELETE /admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), caller, commentID); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeCommentNotFound, "Comment not found")
			return
		}
		logger.Error("failed to delete comment", err)
		response.InternalServerError(c, "Failed to delete comment")
		return
	}

	response.Success(c, 200, gin.H{"deleted": true})
}
