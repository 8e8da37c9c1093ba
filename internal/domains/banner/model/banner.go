package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Banner is a promotional slot shown on the reader site. It appears
// only while active and inside its scheduling window.
type Banner struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	LinkURL   *string    `json:"link_url,omitempty"`
	Position  string     `json:"position"`
	IsActive  bool       `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Banner positions on the reader site.
const (
	PositionTop     = "top"
	PositionSidebar = "sidebar"
	PositionInline  = "inline"
)

// Errors
var ErrBannerNotFound = errors.New("banner not found")

// Error codes
const ErrCodeBannerNotFound = "BAN001"

// VisibleAt reports whether the banner should render at the given time.
func (b *Banner) VisibleAt(t time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && t.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && t.After(*b.EndsAt) {
		return false
	}
	return true
}

type CreateBannerRequest struct {
	Title    string     `json:"title"`
	ImageURL string     `json:"image_url"`
	LinkURL  string     `json:"link_url"`
	Position string     `json:"position"`
	IsActive bool       `json:"is_active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (r CreateBannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.ImageURL,
			validation.Required.Error("image URL is required"),
			is.URL,
		),
		validation.Field(&r.LinkURL,
			validation.When(r.LinkURL != "", is.URL),
		),
		validation.Field(&r.Position,
			validation.Required.Error("position is required"),
			validation.In(PositionTop, PositionSidebar, PositionInline),
		),
	)
}

type UpdateBannerRequest struct {
	Title    string     `json:"title"`
	ImageURL string     `json:"image_url"`
	LinkURL  string     `json:"link_url"`
	Position string     `json:"position"`
	IsActive *bool      `json:"is_active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (r UpdateBannerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 200)),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL),
		),
		validation.Field(&r.LinkURL,
			validation.When(r.LinkURL != "", is.URL),
		),
		validation.Field(&r.Position,
			validation.When(r.Position != "",
				validation.In(PositionTop, PositionSidebar, PositionInline),
			),
		),
	)
}
