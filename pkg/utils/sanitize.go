package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

// SanitizeFilename strips diacritics, drops whatever is left outside ASCII and
// replaces every character outside [A-Za-z0-9_-] with an underscore.
func SanitizeFilename(text string) string {
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}

	return unsafeFileChars.ReplaceAllString(b.String(), "_")
}
