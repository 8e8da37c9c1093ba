package utils

import "strings"

// Excerpt derives a short summary from content: the first max runes,
// with an ellipsis when the content was cut.
func Excerpt(content string, max int) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}

// NormalizePagination clamps page/limit to sane values.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
