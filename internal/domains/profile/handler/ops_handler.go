package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/domains/profile/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// IDENTITY ADMINISTRATION OPERATION ENDPOINT
// =====================================================

// IdentityAdminHandler serves the action-discriminated user
// administration endpoint used by the admin console.
type IdentityAdminHandler struct {
	adminService service.AdminServiceInterface
}

func NewIdentityAdminHandler(adminService service.AdminServiceInterface) *IdentityAdminHandler {
	return &IdentityAdminHandler{adminService: adminService}
}

// Handle handles POST /functions/identity-administration.
func (h *IdentityAdminHandler) Handle(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.IdentityAdminRequest
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
	case model.ActionCreateUser:
		profile, err := h.adminService.CreateUser(ctx, caller, model.CreateUserRequest{
			Email:       req.Email,
			Password:    uuid.NewString(), // temporary; the user resets it on first login
			DisplayName: req.Name,
			Role:        req.Role,
		})
		if err != nil {
			h.respondError(c, err, "create_user")
			return
		}
		response.Success(c, 201, profile)

	case model.ActionListUsers:
		profiles, total, err := h.adminService.ListUsers(ctx, caller, req.Page, req.Limit)
		if err != nil {
			h.respondError(c, err, "list_users")
			return
		}
		response.SuccessWithMeta(c, 200, profiles, &response.Meta{
			Page:  req.Page,
			Limit: req.Limit,
			Total: total,
		})

	case model.ActionUpdateRole:
		userID, _ := uuid.Parse(req.UserID)
		profile, err := h.adminService.UpdateRole(ctx, caller, userID, req.Role)
		if err != nil {
			h.respondError(c, err, "update_role")
			return
		}
		response.Success(c, 200, profile)

	case model.ActionBanUser:
		userID, _ := uuid.Parse(req.UserID)
		profile, err := h.adminService.SetBanned(ctx, caller, userID, true)
		if err != nil {
			h.respondError(c, err, "ban_user")
			return
		}
		response.Success(c, 200, profile)

	case model.ActionUnbanUser:
		userID, _ := uuid.Parse(req.UserID)
		profile, err := h.adminService.SetBanned(ctx, caller, userID, false)
		if err != nil {
			h.respondError(c, err, "unban_user")
			return
		}
		response.Success(c, 200, profile)

	case model.ActionGetStats:
		stats, err := h.adminService.GetStats(ctx, caller)
		if err != nil {
			h.respondError(c, err, "get_stats")
			return
		}
		response.Success(c, 200, stats)

	default:
		profileErr := model.NewInvalidActionError(req.Action)
		response.ErrorResponse(c, 400, profileErr.Code, profileErr.Message)
	}
}

func (h *IdentityAdminHandler) respondError(c *gin.Context, err error, action string) {
	status, code, message := mapProfileError(err)
	if status == 500 {
		logger.Error("identity administration failed: "+action, err)
	}
	response.ErrorResponse(c, status, code, message)
}
