package model

import (
	"time"

	"github.com/google/uuid"
)

// Podcast statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Podcast is an audio episode published on the portal.
type Podcast struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	AudioURL        string     `json:"audio_url"`
	DurationSeconds int        `json:"duration_seconds"`
	ThumbnailURL    *string    `json:"thumbnail_url,omitempty"`
	AuthorID        uuid.UUID  `json:"author_id"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	Status          string     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	ViewCount       int64      `json:"view_count"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (p *Podcast) IsPublished() bool {
	return p.Status == StatusPublished
}

// CanPublish requires an audio file before an episode goes live.
func (p *Podcast) CanPublish() bool {
	return p.AudioURL != ""
}
