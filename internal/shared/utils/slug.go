package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// slugMaxLen caps the normalized part of a slug before the uniqueness
// suffix is appended.
const slugMaxLen = 50

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	multiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug normalizes a title into a URL-safe slug:
// "Município Aprova Nova Lei" -> "municipio-aprova-nova-lei"
func GenerateSlug(input string) string {
	// Fold accented characters to ASCII first, Portuguese titles are
	// full of them.
	ascii := RemoveDiacritics(input)

	lower := strings.ToLower(ascii)

	hyphenated := strings.ReplaceAll(lower, " ", "-")

	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	normalized := multiHyphen.ReplaceAllString(cleaned, "-")

	trimmed := strings.Trim(normalized, "-")

	if len(trimmed) > slugMaxLen {
		trimmed = strings.Trim(trimmed[:slugMaxLen], "-")
	}

	return trimmed
}

// SlugWithTimestamp appends the epoch millisecond count to guarantee
// uniqueness across repeated titles.
func SlugWithTimestamp(input string, now time.Time) string {
	return GenerateSlug(input) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// RemoveDiacritics maps accented characters to their base form.
// Covers the Portuguese alphabet plus the few extras that show up in
// borrowed words.
func RemoveDiacritics(input string) string {
	mappings := map[rune]rune{
		// Vowel A
		'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',

		// Vowel E
		'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',

		// Vowel I
		'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',

		// Vowel O
		'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',

		// Vowel U
		'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',

		// Consonants
		'ç': 'c', 'ñ': 'n',

		// UPPERCASE
		'Á': 'A', 'À': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A',
		'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
		'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
		'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O',
		'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
		'Ç': 'C', 'Ñ': 'N',
	}

	result := make([]rune, 0, len(input))
	for _, r := range input {
		if replacement, ok := mappings[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}

	return string(result)
}
