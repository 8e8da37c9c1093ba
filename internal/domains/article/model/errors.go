package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArticleNotFound  = "ART001"
	ErrCodeTitleRequired    = "ART002"
	ErrCodeContentRequired  = "ART003"
	ErrCodeContentTooShort  = "ART004"
	ErrCodeForbidden        = "ART005"
	ErrCodeInvalidAction    = "ART006"
	ErrCodeInvalidStatus    = "ART007"
)

// Errors
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrContentTooShort = errors.New("article content too short for publishing")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrInvalidAction   = errors.New("invalid action")
)

// ArticleError carries a stable code alongside the message.
type ArticleError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArticleError) Error() string {
	return e.Message
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewArticleNotFoundError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeArticleNotFound,
		Message: "Article not found",
		Err:     ErrArticleNotFound,
	}
}

func NewContentTooShortError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeContentTooShort,
		Message: fmt.Sprintf("Article content too short for publishing (minimum %d characters)", MinPublishContentLength),
		Err:     ErrContentTooShort,
	}
}

func NewForbiddenError(message string) *ArticleError {
	return &ArticleError{
		Code:    ErrCodeForbidden,
		Message: message,
		Err:     ErrForbidden,
	}
}

func NewInvalidActionError(action string) *ArticleError {
	return &ArticleError{
		Code:    ErrCodeInvalidAction,
		Message: fmt.Sprintf("Invalid action: %s", action),
		Err:     ErrInvalidAction,
	}
}
