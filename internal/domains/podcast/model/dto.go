package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreatePodcastRequest validates the create payload.
type CreatePodcastRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	AudioURL        string `json:"audio_url"`
	DurationSeconds int    `json:"duration_seconds"`
	ThumbnailURL    string `json:"thumbnail_url"`
	CategoryID      string `json:"category_id"`
}

func (r CreatePodcastRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.AudioURL,
			validation.When(r.AudioURL != "", is.URL),
		),
		validation.Field(&r.DurationSeconds, validation.Min(0)),
		validation.Field(&r.ThumbnailURL,
			validation.When(r.ThumbnailURL != "", is.URL),
		),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != "", is.UUIDv4),
		),
	)
}

// UpdatePodcastRequest updates editable fields; zero values are ignored.
type UpdatePodcastRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	AudioURL        string `json:"audio_url"`
	DurationSeconds int    `json:"duration_seconds"`
	ThumbnailURL    string `json:"thumbnail_url"`
	CategoryID      string `json:"category_id"`
	Status          string `json:"status"`
}

func (r UpdatePodcastRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 300)),
		validation.Field(&r.AudioURL,
			validation.When(r.AudioURL != "", is.URL),
		),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != "", is.UUIDv4),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived),
			),
		),
	)
}

// ListPodcastsRequest filters public and admin listings.
type ListPodcastsRequest struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	CategorySlug string `form:"category"`
	Status       string `form:"status"` // admin only
}

func (r ListPodcastsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived),
			),
		),
	)
}
