package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// OPERATION ENDPOINT DTOs
// =====================================================

// Mutation actions accepted by the content-mutation endpoint.
const (
	ActionCreate  = "create"
	ActionPublish = "publish"
	ActionFeature = "feature"
	ActionDelete  = "delete"
)

// ArticleData carries the writable article fields for create/update.
type ArticleData struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	CategoryID       string   `json:"categoryId"`
	Tags             []string `json:"tags"`
	FeaturedImageURL string   `json:"featuredImageUrl"`
}

// ContentMutationRequest is the action-discriminated body of the
// content-mutation endpoint.
type ContentMutationRequest struct {
	Action    string       `json:"action"`
	ArticleID string       `json:"articleId"`
	Data      *ArticleData `json:"data"`
}

func (r ContentMutationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action,
			validation.Required.Error("action is required"),
			validation.In(ActionCreate, ActionPublish, ActionFeature, ActionDelete).
				Error("invalid action"),
		),
		validation.Field(&r.ArticleID,
			validation.When(r.Action != ActionCreate,
				validation.Required.Error("article ID required"),
				is.UUIDv4.Error("article ID must be a UUID"),
			),
		),
	)
}

// CreateArticleRequest validates the create payload.
type CreateArticleRequest struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	CategoryID       string   `json:"category_id"`
	Tags             []string `json:"tags"`
	FeaturedImageURL string   `json:"featured_image_url"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != "", is.UUIDv4),
		),
		validation.Field(&r.FeaturedImageURL,
			validation.When(r.FeaturedImageURL != "", is.URL),
		),
	)
}

// =====================================================
// REST DTOs
// =====================================================

// UpdateArticleRequest updates editable fields; zero values are ignored
// except Tags, which replaces the list when non-nil.
type UpdateArticleRequest struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	CategoryID       string   `json:"category_id"`
	Tags             []string `json:"tags"`
	FeaturedImageURL string   `json:"featured_image_url"`
	Status           string   `json:"status"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(0, 300)),
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

// ListArticlesRequest filters public and admin listings.
type ListArticlesRequest struct {
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	CategorySlug string `form:"category"`
	Status       string `form:"status"` // admin only; public listings force published
}

func (r ListArticlesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.When(r.Status != "",
				validation.In(StatusDraft, StatusPublished, StatusArchived),
			),
		),
	)
}
