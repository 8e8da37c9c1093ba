package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"newsportal-backend/internal/infrastructure/storage"
)

// =====================================================
// MEDIA SERVICE
// =====================================================

// UploadResult points at the stored original and, for images, the
// social-card variant.
type UploadResult struct {
	URL       string `json:"url"`
	SocialURL string `json:"social_url,omitempty"`
	Key       string `json:"key"`
}

type ServiceInterface interface {
	// UploadImage validates, stores the original, and derives the
	// 1200x630 social variant.
	UploadImage(ctx context.Context, filename string, data []byte) (*UploadResult, error)

	// UploadAudio stores a podcast episode file.
	UploadAudio(ctx context.Context, filename string, data []byte, contentType string) (*UploadResult, error)

	Delete(ctx context.Context, key string) error
}

type mediaService struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewMediaService(store *storage.MinIOStorage, processor *storage.ImageProcessor) ServiceInterface {
	return &mediaService{
		storage:   store,
		processor: processor,
	}
}

const maxAudioSize = 200 * 1024 * 1024

func (s *mediaService) UploadImage(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	// Step 1: Validate format and size
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	id := uuid.New().String()
	originalKey := "images/" + id + "/original" + ext
	socialKey := "images/" + id + "/social.jpg"

	// Step 2: Store the original
	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	url, err := s.storage.Upload(ctx, originalKey, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	// Step 3: Derive and store the social card variant
	variant, err := s.processor.SocialVariant(data)
	if err != nil {
		return nil, fmt.Errorf("failed to build social variant: %w", err)
	}

	socialURL, err := s.storage.Upload(ctx, socialKey, variant, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to store social variant: %w", err)
	}

	return &UploadResult{
		URL:       url,
		SocialURL: socialURL,
		Key:       originalKey,
	}, nil
}

func (s *mediaService) UploadAudio(ctx context.Context, filename string, data []byte, contentType string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty audio file")
	}
	if len(data) > maxAudioSize {
		return nil, fmt.Errorf("audio exceeds %dMB", maxAudioSize/(1024*1024))
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".mp3"
	}
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	key := "audio/" + uuid.New().String() + ext

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}

	return &UploadResult{URL: url, Key: key}, nil
}

func (s *mediaService) Delete(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}
