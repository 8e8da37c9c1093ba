package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Administration actions accepted by the identity endpoint.
const (
	ActionCreateUser = "create_user"
	ActionListUsers  = "list_users"
	ActionUpdateRole = "update_role"
	ActionBanUser    = "ban_user"
	ActionUnbanUser  = "unban_user"
	ActionGetStats   = "get_stats"
)

// IdentityAdminRequest is the action-discriminated body of the identity
// administration endpoint.
type IdentityAdminRequest struct {
	Action string `json:"action"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

func (r IdentityAdminRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(
				ActionCreateUser, ActionListUsers, ActionUpdateRole,
				ActionBanUser, ActionUnbanUser, ActionGetStats,
			).Error("invalid action"),
		),
		validation.Field(&r.UserID,
			validation.When(
				r.Action == ActionUpdateRole || r.Action == ActionBanUser || r.Action == ActionUnbanUser,
				validation.Required.Error("user ID required"),
				is.UUIDv4.Error("user ID must be a UUID"),
			),
		),
		validation.Field(&r.Email,
			validation.When(r.Action == ActionCreateUser,
				validation.Required.Error("email required"),
				is.EmailFormat,
			),
		),
		validation.Field(&r.Role,
			validation.When(r.Action == ActionUpdateRole,
				validation.Required.Error("role required"),
				validation.In(RoleSubscriber, RoleEditor, RoleAdmin).Error("role not assignable"),
			),
		),
	)
}

// =====================================================
// AUTH DTOs
// =====================================================

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72).Error("password must be 8-72 characters"),
		),
		validation.Field(&r.DisplayName,
			validation.Required.Error("display name is required"),
			validation.Length(1, 100),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required.Error("refresh token is required")),
	)
}

// AuthResponse carries the token pair plus the profile.
type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	User         *Profile `json:"user"`
}

type UpdateMeRequest struct {
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func (r UpdateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DisplayName, validation.Length(0, 100)),
		validation.Field(&r.AvatarURL,
			validation.When(r.AvatarURL != "", is.URL),
		),
	)
}

// CreateUserRequest is the admin-initiated account creation payload.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("email is required"), is.EmailFormat),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72),
		),
		validation.Field(&r.DisplayName, validation.Required.Error("display name is required")),
		validation.Field(&r.Role,
			validation.When(r.Role != "",
				validation.In(RoleSubscriber, RoleAuthor, RoleEditor, RoleAdmin),
			),
		),
	)
}
