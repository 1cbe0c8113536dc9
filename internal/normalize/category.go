package normalize

// Category is a normalized content category.
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ShortDescription string `json:"short_description,omitempty"`
	CoverImage       string `json:"cover_image,omitempty"`
}

// Categories normalizes a category list payload. Entries without both a name
// and a slug are dropped.
func Categories(payload any) []Category {
	raw := PickList(payload)
	items := make([]Category, 0, len(raw))
	for _, rec := range raw {
		name := firstString(rec, "name", "title")
		slug := firstString(rec, "slug")
		if name == "" || slug == "" {
			continue
		}
		items = append(items, Category{
			ID:               resolveID(rec, len(items)),
			Name:             name,
			Slug:             slug,
			ShortDescription: firstString(rec, "short_description"),
			CoverImage:       firstString(rec, "cover_image"),
		})
	}
	return items
}
