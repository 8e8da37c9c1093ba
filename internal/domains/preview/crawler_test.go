package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCrawler(t *testing.T) {
	detector := NewCrawlerDetector([]string{
		"bot", "crawler", "facebook", "whatsapp", "telegram",
	})

	tests := []struct {
		name      string
		userAgent string
		isCrawler bool
	}{
		{
			name:      "whatsapp link preview",
			userAgent: "WhatsApp/2.23.20.0",
			isCrawler: true,
		},
		{
			name:      "facebook external hit",
			userAgent: "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
			isCrawler: true,
		},
		{
			name:      "telegram bot",
			userAgent: "TelegramBot (like TwitterBot)",
			isCrawler: true,
		},
		{
			name:      "google crawler",
			userAgent: "Mozilla/5.0 (compatible; Googlebot/2.1)",
			isCrawler: true,
		},
		{
			name:      "desktop chrome",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			isCrawler: false,
		},
		{
			name:      "mobile safari",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1",
			isCrawler: false,
		},
		{
			name:      "empty user agent treated as crawler",
			userAgent: "",
			isCrawler: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isCrawler, detector.IsCrawler(tt.userAgent))
		})
	}
}

func TestNewCrawlerDetectorNormalizesSignatures(t *testing.T) {
	detector := NewCrawlerDetector([]string{" Bot ", "", "CRAWLER"})

	assert.True(t, detector.IsCrawler("SomeBot/1.0"))
	assert.True(t, detector.IsCrawler("web-crawler"))
	assert.False(t, detector.IsCrawler("Mozilla/5.0"))
}
