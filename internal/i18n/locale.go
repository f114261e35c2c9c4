package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported display languages.
type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

// Default is used when nothing in the request expresses a preference.
const Default = English

// Locales lists the closed set of supported locales in display order.
var Locales = []Locale{Arabic, English}

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Parse validates a raw route or cookie value against the supported set.
func Parse(raw string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case Arabic:
		return Arabic, true
	case English:
		return English, true
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// IsRTL reports whether the locale is written right-to-left.
func (l Locale) IsRTL() bool { return l == Arabic }

// Direction maps the locale to its text direction.
func (l Locale) Direction() Direction {
	if l.IsRTL() {
		return RTL
	}
	return LTR
}

// Other returns the locale the language toggle switches to.
func (l Locale) Other() Locale {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// OGLocale returns the OpenGraph locale (e.g. en_US).
func (l Locale) OGLocale() string {
	if l == Arabic {
		return "ar_MA"
	}
	return "en_US"
}
