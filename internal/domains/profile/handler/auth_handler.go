package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/domains/profile/service"
	"newsportal-backend/internal/shared/middleware"
	"newsportal-backend/internal/shared/response"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// AUTH HANDLER
// =====================================================

type AuthHandler struct {
	authService service.AuthServiceInterface
}

func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func mapProfileError(err error) (int, string, string) {
	var profileErr *model.ProfileError
	if errors.As(err, &profileErr) {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			return 404, profileErr.Code, profileErr.Message
		case errors.Is(err, model.ErrEmailTaken):
			return 409, profileErr.Code, profileErr.Message
		case errors.Is(err, model.ErrInvalidCredentials):
			return 401, profileErr.Code, profileErr.Message
		case errors.Is(err, model.ErrUserBanned),
			errors.Is(err, model.ErrForbidden):
			return 403, profileErr.Code, profileErr.Message
		default:
			return 400, profileErr.Code, profileErr.Message
		}
	}

	return 500, "SYS_001", "Internal server error"
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("registration failed", err)
			response.ErrorResponse(c, status, code, message)
			return
		}
		if status == 400 || status == 409 {
			response.ErrorResponse(c, status, code, message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, 201, auth)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("login failed", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, auth)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	auth, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("token refresh failed", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, auth)
}

// GetMe handles GET /users/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.authService.GetMe(c.Request.Context(), caller.ID)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to get profile", err)
		}
		response.ErrorResponse(c, status, code, message)
		return
	}

	response.Success(c, 200, profile)
}

// UpdateMe handles PUT /users/me
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.authService.UpdateMe(c.Request.Context(), caller, req)
	if err != nil {
		status, code, message := mapProfileError(err)
		if status == 500 {
			logger.Error("failed to update profile", err)
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

	response.Success(c, 200, profile)
}
