package normalize

import (
	"fmt"
	"strconv"
)

// NoImage is the explicit placeholder for records with no usable image
// field, so card UIs render a placeholder instead of a broken image tag.
const NoImage = "no-image"

// DefaultAuthor is the display name used when a record carries none.
const DefaultAuthor = "RagaDecode"

// Article is the canonical card shape consumed by every list view.
type Article struct {
	DocumentID       string `json:"document_id"`
	Title            string `json:"title"`
	Image            string `json:"image"`
	ShortDescription string `json:"short_description"`
	Author           string `json:"author"`
	Country          string `json:"country,omitempty"`
	State            string `json:"state,omitempty"`
	City             string `json:"city,omitempty"`
	PublishedAt      string `json:"published_at,omitempty"`
	Slug             string `json:"slug,omitempty"`
}

// Articles normalizes a list payload of raw article records. Records without
// a resolvable title are dropped; everything else degrades to defaults.
func Articles(payload any) []Article {
	raw := PickList(payload)
	items := make([]Article, 0, len(raw))
	for i, rec := range raw {
		if a, ok := ArticleRecord(rec, i); ok {
			items = append(items, a)
		}
	}
	return items
}

// ArticleRecord normalizes one raw record. idx feeds the positional
// identifier fallback. ok is false when the record has no title.
func ArticleRecord(raw map[string]any, idx int) (Article, bool) {
	title := firstString(raw, "title", "Title", "headline")
	if title == "" {
		return Article{}, false
	}

	return Article{
		DocumentID:       resolveID(raw, idx),
		Title:            title,
		Image:            PickImage(raw),
		ShortDescription: firstString(raw, "short_description", "summary"),
		Author:           AuthorName(raw),
		Country:          locationLabel(raw, "country", "countries"),
		State:            locationLabel(raw, "state", "states"),
		City:             locationLabel(raw, "city", "cities"),
		PublishedAt:      firstString(raw, "published_at", "publishedAt"),
		Slug:             firstString(raw, "slug"),
	}, true
}

// resolveID tries identifier candidates in priority order: explicit document
// id, generic id coerced to string, slug-derived, then positional.
func resolveID(raw map[string]any, idx int) string {
	if id := firstString(raw, "document_id", "documentId"); id != "" {
		return id
	}
	switch id := raw["id"].(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatInt(int64(id), 10)
	}
	if slug := firstString(raw, "slug"); slug != "" {
		return "slug:" + slug
	}
	return fmt.Sprintf("row-%d", idx)
}

// PickImage resolves an image URL: direct string field, then cover object
// url, then formats.small.url, then formats.thumbnail.url. All-empty yields
// the NoImage sentinel.
func PickImage(raw map[string]any) string {
	for _, key := range []string{"image", "cover_image", "coverimage"} {
		switch v := raw[key].(type) {
		case string:
			if trim(v) != "" {
				return trim(v)
			}
		case map[string]any:
			if u := imageURL(v); u != "" {
				return u
			}
		}
	}
	return NoImage
}

func imageURL(cover map[string]any) string {
	if u := firstString(cover, "url"); u != "" {
		return u
	}
	formats, ok := cover["formats"].(map[string]any)
	if !ok {
		return ""
	}
	for _, size := range []string{"small", "thumbnail"} {
		if f, ok := formats[size].(map[string]any); ok {
			if u := firstString(f, "url"); u != "" {
				return u
			}
		}
	}
	return ""
}

// AuthorName resolves the author display name from a plain string field or a
// nested object's name, defaulting to the site name.
func AuthorName(raw map[string]any) string {
	switch a := raw["author"].(type) {
	case string:
		if trim(a) != "" {
			return trim(a)
		}
	case map[string]any:
		if name := firstString(a, "name"); name != "" {
			return name
		}
	}
	return DefaultAuthor
}

// locationLabel prefers a singular object field and falls back to joining up
// to two entries of the plural array field.
func locationLabel(raw map[string]any, singular, plural string) string {
	if obj, ok := raw[singular].(map[string]any); ok {
		if s := firstString(obj, "title", "name"); s != "" {
			return s
		}
	}
	if s, ok := raw[singular].(string); ok && trim(s) != "" {
		return trim(s)
	}
	return joinTexts(raw[plural], 2)
}
