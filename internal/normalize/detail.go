package normalize

import "strings"

// ArticleDetail is the full single-article shape. Body is raw markdown;
// rendering it is the client's concern.
type ArticleDetail struct {
	Title            string `json:"title"`
	Slug             string `json:"slug,omitempty"`
	ShortDescription string `json:"short_description,omitempty"`
	Body             string `json:"body,omitempty"`
	CoverURL         string `json:"cover_url,omitempty"`
	Author           string `json:"author"`
	AuthorID         string `json:"author_id,omitempty"`
	PublishedAt      string `json:"published_at,omitempty"`
	CategorySlug     string `json:"category_slug,omitempty"`
	LocationLine     string `json:"location_line,omitempty"`
}

// ArticleDetailRecord normalizes a single-article payload. ok is false when
// the payload holds no object or the object has no title.
func ArticleDetailRecord(payload any) (ArticleDetail, bool) {
	raw := PickObject(payload)
	if raw == nil {
		return ArticleDetail{}, false
	}
	title := firstString(raw, "Title", "title")
	if title == "" {
		return ArticleDetail{}, false
	}

	d := ArticleDetail{
		Title:            title,
		Slug:             firstString(raw, "slug"),
		ShortDescription: firstString(raw, "short_description"),
		Body:             firstString(raw, "Description_in_detail", "description_in_detail", "content"),
		Author:           AuthorName(raw),
		PublishedAt:      firstString(raw, "publishedAt", "published_at"),
		LocationLine:     LocationLine(raw),
	}

	if cover := PickImage(raw); cover != NoImage {
		d.CoverURL = cover
	}
	if author, ok := raw["author"].(map[string]any); ok {
		d.AuthorID = firstString(author, "documentId", "document_id")
	}
	if cat, ok := raw["category"].(map[string]any); ok {
		d.CategorySlug = firstString(cat, "slug")
	}
	return d, true
}

// LocationLine joins the first country, state and city labels with a bullet
// separator, skipping whatever is absent.
func LocationLine(raw map[string]any) string {
	var parts []string
	for _, field := range []string{"countries", "states", "cities"} {
		if s := firstText(raw[field]); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " • ")
}

// Author is a normalized author profile.
type Author struct {
	Name         string `json:"name"`
	Nick         string `json:"nick,omitempty"`
	Slug         string `json:"slug,omitempty"`
	Email        string `json:"email,omitempty"`
	Bio          string `json:"bio,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Twitter      string `json:"twitter,omitempty"`
	Instagram    string `json:"instagram,omitempty"`
	Facebook     string `json:"facebook,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
}

// AuthorRecord normalizes a single-author payload. ok is false when no named
// author can be resolved.
func AuthorRecord(payload any) (Author, bool) {
	raw := PickObject(payload)
	if raw == nil {
		return Author{}, false
	}
	name := firstString(raw, "name")
	if name == "" {
		return Author{}, false
	}

	a := Author{
		Name:      name,
		Nick:      firstString(raw, "nick"),
		Slug:      firstString(raw, "slug"),
		Email:     firstString(raw, "email"),
		Bio:       firstString(raw, "bio"),
		Twitter:   firstString(raw, "twitter"),
		Instagram: firstString(raw, "instagram"),
		Facebook:  firstString(raw, "facebook"),
		LinkedIn:  firstString(raw, "linkedin"),
	}
	if img, ok := raw["profile_image"].(map[string]any); ok {
		a.ProfileImage = imageURL(img)
	}
	return a, true
}

// StaticPage is a normalized static content page.
type StaticPage struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content,omitempty"`
	CreatedDate string `json:"created_date,omitempty"`
}

// StaticPages normalizes the static page listing; pages without a slug are
// dropped since they cannot be routed to.
func StaticPages(payload any) []StaticPage {
	raw := PickList(payload)
	items := make([]StaticPage, 0, len(raw))
	for _, rec := range raw {
		slug := firstString(rec, "slug")
		if slug == "" {
			continue
		}
		items = append(items, StaticPage{
			Title:       firstString(rec, "title"),
			Slug:        slug,
			Content:     firstString(rec, "content"),
			CreatedDate: firstString(rec, "created_date"),
		})
	}
	return items
}
