package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/domains/profile/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// USER ADMIN HANDLER (REST)
// =====================================================

type UserAdminHandler struct {
	adminService service.AdminServiceInterface
}

func NewUserAdminHandler(adminService service.AdminServiceInterface) *UserAdminHandler {
	return &UserAdminHandler{adminService: adminService}
}

// List handles GET /admin/users
func (h *UserAdminHandler) List(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	profiles, total, err := h.adminService.ListUsers(c.Request.Context(), caller, page, limit)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to list users", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.SuccessWithMeta(c, 200, profiles, &response.Meta{
		Page:  page,
		Limit: limit,
		Total: total,
	})
}

// Create handles POST /admin/users
func (h *UserAdminHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.adminService.CreateUser(c.Request.Context(), caller, req)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to create user", err)
			response.ErrorResponse(c, status, code, message)
			return
		}
		if status != 400 {
			response.ErrorResponse(c, status, code, message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, profile)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *UserAdminHandler) UpdateRole(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.adminService.UpdateRole(c.Request.Context(), caller, userID, req.Role)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to update role", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, profile)
}

// Ban handles POST /admin/users/:id/ban
func (h *UserAdminHandler) Ban(c *gin.Context) {
	h.setBanned(c, true)
}

// Unban handles POST /admin/users/:id/unban
func (h *UserAdminHandler) Unban(c *gin.Context) {
	h.setBanned(c, false)
}

func (h *UserAdminHandler) setBanned(c *gin.Context, banned bool) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	profile, err := h.adminService.SetBanned(c.Request.Context(), caller, userID, banned)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to change banned state", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, profile)
}

// Stats handles GET /admin/users/stats
func (h *UserAdminHandler) Stats(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.adminService.GetStats(c.Request.Context(), caller)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to load user stats", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, stats)
}
