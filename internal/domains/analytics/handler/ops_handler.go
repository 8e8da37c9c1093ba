package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/analytics/model"
	"newsportal-backend/internal/domains/analytics/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// ENGAGEMENT TRACKING OPERATION ENDPOINT
// =====================================================

// EngagementTrackingHandler serves the action-discriminated analytics
// endpoint. View and engagement actions are open to anonymous readers;
// the report action needs an admin caller.
type EngagementTrackingHandler struct {
	analyticsService service.ServiceInterface
}

func NewEngagementTrackingHandler(analyticsService service.ServiceInterface) *EngagementTrackingHandler {
	return &EngagementTrackingHandler{analyticsService: analyticsService}
}

// Handle handles POST /functions/engagement-tracking.
func (h *EngagementTrackingHandler) Handle(c *gin.Context) {
	var req model.EngagementTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case model.ActionView:
		contentID, _ := uuid.Parse(req.ContentID)
		count, err := h.analyticsService.RecordView(ctx, req.ContentType, contentID)
		if err != nil {
			if errors.Is(err, model.ErrContentNotFound) {
				response.ErrorResponse(c, 404, model.ErrCodeContentNotFound, "Content not found")
				return
			}
			logger.Error("failed to record view", err)
			response.InternalServerError(c, "Failed to record view")
			return
		}
		response.Success(c, 200, gin.H{"view_count": count})

	case model.ActionEngagement:
		// Identity is optional here; attach it when the reader is
		// logged in.
		var userID *uuid.UUID
		if caller, ok := middleware.CallerFromContext(c); ok {
			userID = &caller.ID
		}

		if err := h.analyticsService.TrackEngagement(ctx, userID, req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		// The event is queued, not yet stored.
		response.Success(c, 202, gin.H{"queued": true})

	case model.ActionReport:
		caller, ok := middleware.CallerFromContext(c)
		if !ok {
			response.Unauthorized(c, "Authentication required")
			return
		}

		report, err := h.analyticsService.Report(ctx, caller)
		if err != nil {
			if errors.Is(err, model.ErrForbidden) {
				response.ErrorResponse(c, 403, model.ErrCodeForbidden, "Insufficient permissions for reports")
				return
			}
			logger.Error("failed to build report", err)
			response.InternalServerError(c, "Failed to build report")
			return
		}
		response.Success(c, 200, report)

	default:
		response.BadRequest(c, "Invalid action: "+req.Action)
	}
}
