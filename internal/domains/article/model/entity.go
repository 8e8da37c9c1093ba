package model

import (
	"time"

	"github.com/google/uuid"
)

// Article lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// MinPublishContentLength is the minimum content length (in characters)
// an article must have before it can transition to published.
const MinPublishContentLength = 100

// ExcerptLength is how much of the content becomes the default excerpt.
const ExcerptLength = 200

// Article represents a news article entity
type Article struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`

	// Content
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	FeaturedImageURL *string  `json:"featured_image_url"`
	Tags             []string `json:"tags"`

	// Relations
	AuthorID   uuid.UUID  `json:"author_id"`
	CategoryID *uuid.UUID `json:"category_id"`

	// Lifecycle
	Status      string     `json:"status"`
	IsFeatured  bool       `json:"is_featured"`
	ViewCount   int        `json:"view_count"`
	PublishedAt *time.Time `json:"published_at"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanPublish reports whether the article meets the publish threshold.
func (a *Article) CanPublish() bool {
	return len([]rune(a.Content)) >= MinPublishContentLength
}

func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}

func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
