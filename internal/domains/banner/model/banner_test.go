package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisibleAt(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		banner  Banner
		visible bool
	}{
		{
			name:    "active without window",
			banner:  Banner{IsActive: true},
			visible: true,
		},
		{
			name:    "inactive is never visible",
			banner:  Banner{IsActive: false, StartsAt: &before, EndsAt: &after},
			visible: false,
		},
		{
			name:    "inside window",
			banner:  Banner{IsActive: true, StartsAt: &before, EndsAt: &after},
			visible: true,
		},
		{
			name:    "before window opens",
			banner:  Banner{IsActive: true, StartsAt: &after},
			visible: false,
		},
		{
			name:    "after window closes",
			banner:  Banner{IsActive: true, EndsAt: &before},
			visible: false,
		},
		{
			name:    "open ended start only",
			banner:  Banner{IsActive: true, StartsAt: &before},
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.banner.VisibleAt(now))
		})
	}
}

func TestCreateBannerRequestValidate(t *testing.T) {
	valid := CreateBannerRequest{
		Title:    "Campanha de Assinaturas",
		ImageURL: "https://cdn.example.com/banner.png",
		Position: PositionTop,
	}
	assert.NoError(t, valid.Validate())

	missingImage := valid
	missingImage.ImageURL = ""
	assert.Error(t, missingImage.Validate())

	badPosition := valid
	badPosition.Position = "footer"
	assert.Error(t, badPosition.Validate())
}
