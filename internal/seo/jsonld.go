package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding in a <script type="application/ld+json">
// block. encoding/json escapes <, > and &, so the payload cannot close the tag.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Person returns the schema for the artist.
func Person(name, url, jobTitle, email string, sameAs []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if jobTitle != "" {
		m["jobTitle"] = jobTitle
	}
	if email != "" {
		m["email"] = "mailto:" + email
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, lang string) map[string]any {
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       name,
		"inLanguage": lang,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// VisualArtwork describes one photograph.
type VisualArtwork struct {
	Name        string
	URL         string
	Image       string
	Description string
	Creator     string
	Year        int
	Lang        string
	Series      string
}

// Artwork returns the schema.org VisualArtwork payload for a.
func Artwork(a VisualArtwork) map[string]any {
	m := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "VisualArtwork",
		"name":       a.Name,
		"artform":    "Photograph",
		"inLanguage": a.Lang,
		"url":        a.URL,
		"image":      a.Image,
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	if a.Creator != "" {
		m["creator"] = map[string]any{"@type": "Person", "name": a.Creator}
	}
	if a.Year > 0 {
		m["dateCreated"] = a.Year
	}
	if a.Series != "" {
		m["isPartOf"] = map[string]any{"@type": "CreativeWorkSeries", "name": a.Series}
	}
	return m
}

// Gallery returns an ImageGallery schema listing item URLs in order.
func Gallery(name, url, description string, items []string) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"url":      it,
		})
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "ImageGallery",
		"name":     name,
		"url":      url,
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"numberOfItems":   len(items),
			"itemListElement": el,
		},
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
