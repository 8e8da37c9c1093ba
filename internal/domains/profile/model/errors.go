package model

import "errors"

// Error codes
const (
	ErrCodeUserNotFound       = "USR001"
	ErrCodeEmailTaken         = "USR002"
	ErrCodeInvalidCredentials = "USR003"
	ErrCodeUserBanned         = "USR004"
	ErrCodeInvalidRole        = "USR005"
	ErrCodeForbidden          = "USR006"
	ErrCodeInvalidAction      = "USR007"
)

// Errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBanned         = errors.New("account is banned")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInvalidAction      = errors.New("invalid action")
)

// ProfileError carries a stable code alongside the message.
type ProfileError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProfileError) Error() string {
	return e.Message
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewUserNotFoundError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeUserNotFound,
		Message: "User not found",
		Err:     ErrUserNotFound,
	}
}

func NewEmailTakenError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeEmailTaken,
		Message: "Email is already registered",
		Err:     ErrEmailTaken,
	}
}

func NewInvalidCredentialsError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid email or password",
		Err:     ErrInvalidCredentials,
	}
}

func NewUserBannedError() *ProfileError {
	return &ProfileError{
		Code:    ErrCodeUserBanned,
		Message: "This account has been banned",
		Err:     ErrUserBanned,
	}
}

func NewInvalidRoleError(role string) *ProfileError {
	return &ProfileError{
		Code:    ErrCodeInvalidRole,
		Message: "Invalid role: " + role,
		Err:     ErrInvalidRole,
	}
}

func NewForbiddenError(message string) *ProfileError {
	return &ProfileError{
		Code:    ErrCodeForbidden,
		Message: message,
		Err:     ErrForbidden,
	}
}

func NewInvalidActionError(action string) *ProfileError {
	return &ProfileError{
		Code:    ErrCodeInvalidAction,
		Message: "Invalid action: " + action,
		Err:     ErrInvalidAction,
	}
}
