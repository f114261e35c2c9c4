package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Bundle holds the validated translation table of every supported locale.
type Bundle struct {
	tables   map[Locale]Table
	fallback Locale
	matcher  language.Matcher
}

// Load reads <dir>/<locale>.yaml for every supported locale.
func Load(dir string) (*Bundle, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads <locale>.yaml files from the root of fsys. A missing file or
// a table that is not key-isomorphic with the others is an error: partial
// tables are never served.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	tables := make(map[Locale]Table, len(Locales))
	for _, l := range Locales {
		raw, err := fs.ReadFile(fsys, string(l)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", l, err)
		}
		var t Table
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		if len(t) == 0 {
			return nil, fmt.Errorf("load locale %s: empty table", l)
		}
		tables[l] = t
	}
	return New(tables)
}

// New builds a bundle from already decoded tables.
func New(tables map[Locale]Table) (*Bundle, error) {
	for _, l := range Locales {
		if _, ok := tables[l]; !ok {
			return nil, fmt.Errorf("i18n: locale %s not loaded", l)
		}
	}
	if err := Validate(tables); err != nil {
		return nil, err
	}
	// first tag is the matcher's default
	tags := []language.Tag{Default.Tag()}
	for _, l := range Locales {
		if l != Default {
			tags = append(tags, l.Tag())
		}
	}
	return &Bundle{
		tables:   tables,
		fallback: Default,
		matcher:  language.NewMatcher(tags),
	}, nil
}

// Supported returns the supported locales.
func (b *Bundle) Supported() []Locale {
	return append([]Locale(nil), Locales...)
}

// Fallback returns the configured fallback locale.
func (b *Bundle) Fallback() Locale { return b.fallback }

// Table returns the complete table for l. Unsupported locales get the
// fallback table.
func (b *Bundle) Table(l Locale) Table {
	if t, ok := b.tables[l]; ok {
		return t
	}
	return b.tables[b.fallback]
}

// T returns the translation for key in l, or the key itself when absent.
func (b *Bundle) T(l Locale, key string) string {
	return Lookup(b.Table(l), key)
}

// List returns a list-valued translation.
func (b *Bundle) List(l Locale, key string) []string {
	return Strings(b.Table(l), key)
}

// Resolve chooses the best locale from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string) Locale {
	acceptLang = strings.TrimSpace(acceptLang)
	if acceptLang == "" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	if idx == 0 {
		return Default
	}
	// non-default tags were appended in Locales order
	i := 0
	for _, l := range Locales {
		if l == Default {
			continue
		}
		i++
		if i == idx {
			return l
		}
	}
	return b.fallback
}

// IsMissing reports whether err came from an incomplete translation table.
func IsMissing(err error) bool {
	var mk *MissingKeysError
	return errors.As(err, &mk)
}
