package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug: "Concrete Jungle (Blind Box)" → "concrete-jungle-blind-box"
func GenerateSlug(input string) string {
	// Step 1: strip diacritics ("Études" → "Etudes")
	ascii := RemoveDiacritics(input)

	// Step 2: lowercase, spaces to hyphens
	hyphenated := strings.ReplaceAll(strings.ToLower(ascii), " ", "-")

	// Step 3: keep only a-z, 0-9, hyphens
	cleaned := nonSlugChars.ReplaceAllString(hyphenated, "")

	// Step 4: collapse and trim hyphens
	return strings.Trim(repeatHyphens.ReplaceAllString(cleaned, "-"), "-")
}

// RemoveDiacritics decomposes and drops combining marks
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
