package i18n

import (
	"fmt"
	"sort"
	"strings"
)

// Table is a nested translation mapping: section -> key -> ... -> string.
// Leaves are strings or lists of strings.
type Table map[string]any

// Lookup resolves a dot-separated path through the table. When any segment
// is absent, or the path ends on something other than a string, the path
// itself is returned so untranslated copy stays visible on the page.
func Lookup(t Table, path string) string {
	v, ok := walk(t, path)
	if !ok {
		return path
	}
	s, ok := v.(string)
	if !ok {
		return path
	}
	return s
}

// Strings resolves a path to a list of strings. A scalar string is returned
// as a single-element list; anything else yields nil.
func Strings(t Table, path string) []string {
	v, ok := walk(t, path)
	if !ok {
		return nil
	}
	switch vv := v.(type) {
	case string:
		return []string{vv}
	case []string:
		return append([]string(nil), vv...)
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func walk(t Table, path string) (any, bool) {
	if t == nil || path == "" {
		return nil, false
	}
	var cur any = map[string]any(t)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		next, ok := m[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Table:
		return map[string]any(m), true
	}
	return nil, false
}

// Keys returns every leaf path in the table, sorted.
func (t Table) Keys() []string {
	var out []string
	collect(map[string]any(t), "", &out)
	sort.Strings(out)
	return out
}

func collect(m map[string]any, prefix string, out *[]string) {
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := asMap(v); ok {
			collect(child, path, out)
			continue
		}
		*out = append(*out, path)
	}
}

// MissingKeysError lists key paths present in some locale but absent in another.
type MissingKeysError struct {
	Missing map[Locale][]string
}

func (e *MissingKeysError) Error() string {
	locales := make([]string, 0, len(e.Missing))
	for l := range e.Missing {
		locales = append(locales, string(l))
	}
	sort.Strings(locales)
	parts := make([]string, 0, len(locales))
	for _, l := range locales {
		parts = append(parts, fmt.Sprintf("%s: %s", l, strings.Join(e.Missing[Locale(l)], ", ")))
	}
	return "i18n: incomplete translation tables (" + strings.Join(parts, "; ") + ")"
}

// Validate checks that the tables are key-isomorphic: every leaf path that
// exists in one locale exists in all of them.
func Validate(tables map[Locale]Table) error {
	union := map[string]struct{}{}
	present := make(map[Locale]map[string]struct{}, len(tables))
	for l, t := range tables {
		set := map[string]struct{}{}
		for _, k := range t.Keys() {
			set[k] = struct{}{}
			union[k] = struct{}{}
		}
		present[l] = set
	}
	missing := map[Locale][]string{}
	for l, set := range present {
		for k := range union {
			if _, ok := set[k]; !ok {
				missing[l] = append(missing[l], k)
			}
		}
		sort.Strings(missing[l])
	}
	for l, keys := range missing {
		if len(keys) == 0 {
			delete(missing, l)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Missing: missing}
	}
	return nil
}
