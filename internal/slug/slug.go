// Package slug provides URL-friendly slug generation and accent folding for
// Portuguese text. "Pensão Alimentícia" becomes "pensao-alimenticia".
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string. Accented
// characters are transliterated to ASCII before the usual lowercase /
// hyphenate / collapse pipeline.
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Normalize lowercases and strips diacritics without touching word
// boundaries. Article search folds both the query and the searched fields
// through this, so "pensao" matches "Pensão".
func Normalize(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}
