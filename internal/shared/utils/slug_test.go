package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "portuguese title with diacritics",
			input:    "Município Aprova Nova Lei",
			expected: "municipio-aprova-nova-lei",
		},
		{
			name:     "cedilla and tilde",
			input:    "Eleições na Região",
			expected: "eleicoes-na-regiao",
		},
		{
			name:     "punctuation stripped",
			input:    "Economia: inflação sobe 0,5%!",
			expected: "economia-inflacao-sobe-05",
		},
		{
			name:     "multiple spaces collapse",
			input:    "Título   com    espaços",
			expected: "titulo-com-espacos",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    " - Notícia - ",
			expected: "noticia",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugCapsLength(t *testing.T) {
	long := strings.Repeat("palavra ", 30)
	slug := GenerateSlug(long)

	assert.LessOrEqual(t, len(slug), 50)
	assert.False(t, strings.HasSuffix(slug, "-"))
	assert.False(t, strings.HasPrefix(slug, "-"))
}

func TestSlugWithTimestamp(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	slug := SlugWithTimestamp("Município Aprova Nova Lei", now)

	assert.Equal(t, "municipio-aprova-nova-lei-1700000000000", slug)
}

func TestExcerpt(t *testing.T) {
	t.Run("short content returned as is", func(t *testing.T) {
		assert.Equal(t, "curto", Excerpt("  curto  ", 200))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		content := strings.Repeat("a", 250)
		got := Excerpt(content, 200)

		assert.Len(t, []rune(got), 203)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("truncation counts runes not bytes", func(t *testing.T) {
		content := strings.Repeat("ã", 210)
		got := Excerpt(content, 200)

		assert.Equal(t, strings.Repeat("ã", 200)+"...", got)
	})
}

func TestNormalizePagination(t *testing.T) {
	page, limit := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	page, limit = NormalizePagination(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, limit)
}
