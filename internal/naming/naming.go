package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizeTitle converts a free-form document title into an identifier-shaped
// namespace prefix. Words separated by whitespace, underscores, hyphens,
// dots, or slashes are title-cased and concatenated; characters that are not
// letters or digits are dropped.
//
// Example: "My Pet API" -> "MyPetAPI"
// Example: "users-service v2" -> "UsersServiceV2"
func SanitizeTitle(s string) string {
	if s == "" {
		return ""
	}

	// Use golang.org/x/text/cases for proper Unicode title casing
	// (strings.Title is deprecated). NoLower keeps acronyms like "API" intact.
	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r) {
			capitalizeNext = true
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
