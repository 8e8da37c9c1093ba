package preview

import "strings"

// CrawlerDetector matches user agents against configured crawler
// signatures by case-insensitive substring.
type CrawlerDetector struct {
	signatures []string
}

func NewCrawlerDetector(signatures []string) *CrawlerDetector {
	lowered := make([]string, 0, len(signatures))
	for _, sig := range signatures {
		sig = strings.ToLower(strings.TrimSpace(sig))
		if sig != "" {
			lowered = append(lowered, sig)
		}
	}
	return &CrawlerDetector{signatures: lowered}
}

// IsCrawler reports whether the user agent belongs to a link-preview
// crawler. An empty user agent is treated as a crawler, matching how
// some scrapers omit the header entirely.
func (d *CrawlerDetector) IsCrawler(userAgent string) bool {
	if userAgent == "" {
		return true
	}

	ua := strings.ToLower(userAgent)
	for _, sig := range d.signatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}
	return false
}
