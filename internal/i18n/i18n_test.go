package i18n

import (
	"errors"
	"testing"
	"testing/fstest"
)

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../content/locales")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestShippedTablesAreKeyIsomorphic(t *testing.T) {
	b := loadBundle(t)
	en := b.Table(English).Keys()
	if len(en) == 0 {
		t.Fatal("expected english keys")
	}
	for _, l := range Locales {
		for _, k := range en {
			if got := b.T(l, k); got == k {
				if list := b.List(l, k); len(list) == 0 {
					t.Fatalf("%s: key %q resolves to itself", l, k)
				}
			}
		}
	}
	ar := b.Table(Arabic).Keys()
	if len(ar) != len(en) {
		t.Fatalf("expected same key count, ar=%d en=%d", len(ar), len(en))
	}
}

func TestLookupMissingPathReturnsKey(t *testing.T) {
	b := loadBundle(t)
	if got := Lookup(b.Table(English), "nonexistent.path"); got != "nonexistent.path" {
		t.Fatalf("expected key fallback, got %q", got)
	}
	// valid prefix, missing leaf
	if got := b.T(English, "cv.nope"); got != "cv.nope" {
		t.Fatalf("expected partial path fallback, got %q", got)
	}
	// path ending on a section rather than a string
	if got := b.T(English, "cv"); got != "cv" {
		t.Fatalf("expected section fallback, got %q", got)
	}
	// path walking through a string leaf
	if got := b.T(English, "cv.title.extra"); got != "cv.title.extra" {
		t.Fatalf("expected fallback when descending into a string, got %q", got)
	}
}

func TestLookupResolvesNestedKeys(t *testing.T) {
	b := loadBundle(t)
	if got := b.T(English, "work.filters.night"); got != "Night" {
		t.Fatalf("expected Night, got %q", got)
	}
	if got := b.T(Arabic, "artwork.next"); got != "التالي" {
		t.Fatalf("expected arabic next, got %q", got)
	}
	if got := b.List(English, "cv.aboutText"); len(got) != 3 {
		t.Fatalf("expected three about paragraphs, got %d", len(got))
	}
	// list values are not strings
	if got := b.T(English, "cv.aboutText"); got != "cv.aboutText" {
		t.Fatalf("expected list to fall back to key, got %q", got)
	}
}

func TestValidateReportsMissingKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"ar.yaml": {Data: []byte("nav:\n  home: \"الرئيسية\"\n")},
		"en.yaml": {Data: []byte("nav:\n  home: \"Home\"\n  work: \"Work\"\n")},
	}
	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var mk *MissingKeysError
	if !errors.As(err, &mk) {
		t.Fatalf("expected MissingKeysError, got %T: %v", err, err)
	}
	if got := mk.Missing[Arabic]; len(got) != 1 || got[0] != "nav.work" {
		t.Fatalf("expected ar to miss nav.work, got %v", got)
	}
	if !IsMissing(err) {
		t.Fatal("IsMissing should match")
	}
}

func TestLoadFSRequiresEveryLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("nav:\n  home: \"Home\"\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected error for missing ar.yaml")
	}
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadBundle(t)
	cases := map[string]Locale{
		"":                         English,
		"ar-MA,ar;q=0.9,en;q=0.8":  Arabic,
		"en;q=0.5, ar;q=0.9":       Arabic,
		"fr-FR, de;q=0.7":          English,
		"en-GB":                    English,
		"not a header ;;; q=wrong": English,
	}
	for header, want := range cases {
		if got := b.Resolve(header); got != want {
			t.Errorf("Resolve(%q) = %s, want %s", header, got, want)
		}
	}
}

func TestLocaleHelpers(t *testing.T) {
	if Arabic.Direction() != RTL || English.Direction() != LTR {
		t.Fatal("unexpected directions")
	}
	for _, l := range Locales {
		if l.Other().Other() != l {
			t.Fatalf("Other is not an involution for %s", l)
		}
		if l.Other() == l {
			t.Fatalf("Other(%s) returned itself", l)
		}
	}
	if _, ok := Parse("fr"); ok {
		t.Fatal("fr must not parse")
	}
	if l, ok := Parse(" AR "); !ok || l != Arabic {
		t.Fatalf("expected ar, got %q %v", l, ok)
	}
}
