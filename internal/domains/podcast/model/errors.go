package model

import "errors"

// Error codes
const (
	ErrCodePodcastNotFound = "POD001"
	ErrCodeAudioRequired   = "POD002"
	ErrCodeForbidden       = "POD003"
)

// Errors
var (
	ErrPodcastNotFound = errors.New("podcast not found")
	ErrAudioRequired   = errors.New("audio URL required for publishing")
	ErrForbidden       = errors.New("insufficient permissions")
)

// PodcastError carries a stable code alongside the message.
type PodcastError struct {
	Code    string
	Message string
	Err     error
}

func (e *PodcastError) Error() string {
	return e.Message
}

func (e *PodcastError) Unwrap() error {
	return e.Err
}

func NewPodcastNotFoundError() *PodcastError {
	return &PodcastError{
		Code:    ErrCodePodcastNotFound,
		Message: "Podcast not found",
		Err:     ErrPodcastNotFound,
	}
}

func NewAudioRequiredError() *PodcastError {
	return &PodcastError{
		Code:    ErrCodeAudioRequired,
		Message: "An audio file is required before publishing",
		Err:     ErrAudioRequired,
	}
}

func NewForbiddenError(message string) *PodcastError {
	return &PodcastError{
		Code:    ErrCodeForbidden,
		Message: message,
		Err:     ErrForbidden,
	}
}
