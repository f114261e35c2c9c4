package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug    = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
	slugFormat = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Slugify converts a display title into a URL-safe identifier: accents are
// stripped, everything else outside [a-z0-9] collapses to single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	out = strings.ToLower(out)
	out = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, out)
	out = nonSlug.ReplaceAllString(out, "-")
	out = multiDash.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// IsSlug reports whether s is already in canonical slug form.
func IsSlug(s string) bool {
	return slugFormat.MatchString(s)
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
