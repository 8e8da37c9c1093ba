package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Social preview dimensions expected by Open Graph consumers.
const (
	SocialImageWidth  = 1200
	SocialImageHeight = 630
)

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: 5 * 1024 * 1024} // 5MB
}

// ValidateImage checks size and format (JPEG/PNG only).
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return nil
	default:
		return fmt.Errorf("image format %s not allowed (only jpeg/png)", format)
	}
}

// SocialVariant crops/resizes an image to the fixed 1200x630 aspect used
// by link-preview cards, encoded as JPEG quality 85.
func (p *ImageProcessor) SocialVariant(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fill(img, SocialImageWidth, SocialImageHeight, imaging.Center, imaging.Lanczos)

	b := new(bytes.Buffer)
	if err := jpeg.Encode(b, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("cannot encode social variant: %w", err)
	}
	return b.Bytes(), nil
}
