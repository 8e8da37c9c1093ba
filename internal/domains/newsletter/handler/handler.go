package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsportal-backend/internal/domains/newsletter/model"
	"newsportal-backend/internal/domains/newsletter/service"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

type NewsletterHandler struct {
	newsletterService service.ServiceInterface
}

func NewNewsletterHandler(newsletterService service.ServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// Subscribe handles POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	subscriber, err := h.newsletterService.Subscribe(c.Request.Context(), req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, subscriber)
}

// Unsubscribe handles POST /newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.newsletterService.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, model.ErrSubscriberNotFound) {
			response.ErrorResponse(c, 404, model.ErrCodeSubscriberNotFound, "Subscriber not found")
			return
		}
		logger.Error("failed to unsubscribe", err)
		response.InternalServerError(c, "Failed to unsubscribe")
		return
	}

	response.Success(c, 200, gin.H{"unsubscribed": true})
}

// AdminList handles GET /admin/newsletter/subscribers
func (h *NewsletterHandler) AdminList(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	activeOnly := c.Query("active") == "true"

	subscribers, total, err := h.newsletterService.List(c.Request.Context(), activeOnly, page, limit)
	if err != nil {
		logger.Error("failed to list subscribers", err)
		response.InternalServerError(c, "Failed to list subscribers")
		return
	}

	response.SuccessWithMeta(c, 200, subscribers, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}
