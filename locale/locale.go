// Package locale resolves the active UI locale against the fixed supported
// set and provides localized message printers for page rendering.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is a supported language identifier, always present as a URL path
// prefix on page routes.
type Locale string

const (
	Spanish Locale = "es"
	English Locale = "en"

	// Default is the locale used whenever resolution finds nothing better
	Default = Spanish
)

// CookieName stores the visitor's language preference across sessions
const CookieName = "locale"

var supported = []Locale{Spanish, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

// Supported returns the fixed supported locale set, default first
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Parse returns the locale matching s, reporting whether s is supported
func Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, candidate := range supported {
		if l == candidate {
			return candidate, true
		}
	}
	return Default, false
}

// Tag returns the BCP 47 tag for the locale
func (l Locale) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	default:
		return language.Spanish
	}
}

// Label is the native display name used by the language toggle
func (l Locale) Label() string {
	switch l {
	case English:
		return "English"
	default:
		return "Español"
	}
}

// Short is the compact toggle label
func (l Locale) Short() string {
	return strings.ToUpper(string(l))
}

// SplitPath separates the locale prefix from a request path. It returns the
// resolved locale, the logical route with the prefix stripped, and whether a
// supported prefix was present. Paths without a supported prefix resolve to
// the default locale and are returned unchanged.
func SplitPath(path string) (Locale, string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	segment, rest, _ := strings.Cut(trimmed, "/")
	l, ok := Parse(segment)
	if !ok {
		return Default, path, false
	}
	logical := "/" + rest
	return l, logical, true
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header value, falling back to the default.
func MatchAcceptLanguage(header string) Locale {
	if strings.TrimSpace(header) == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	if index >= 0 && index < len(supported) {
		return supported[index]
	}
	return Default
}

// Printer returns a message printer bound to the locale's catalog
func Printer(l Locale) *message.Printer {
	return message.NewPrinter(l.Tag())
}
