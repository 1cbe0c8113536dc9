package normalize

// State is a normalized geographic region record.
type State struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country,omitempty"`
}

// States normalizes a state list payload. Records are unwrapped through an
// optional attributes envelope; entries missing a name or slug are dropped.
func States(payload any) []State {
	raw := PickList(payload)
	items := make([]State, 0, len(raw))
	for _, rec := range raw {
		attrs := rec
		if a, ok := rec["attributes"].(map[string]any); ok {
			attrs = a
		}

		name := firstString(attrs, "title", "name")
		if name == "" {
			name = firstString(rec, "title", "name")
		}
		slug := firstString(attrs, "slug")
		if slug == "" {
			slug = firstString(rec, "slug")
		}
		if name == "" || slug == "" {
			continue
		}

		id := resolveID(rec, len(items))
		items = append(items, State{
			ID:      id,
			Name:    name,
			Slug:    slug,
			Country: stateCountry(attrs),
		})
	}
	return items
}

// stateCountry prefers the country slug over its title, reaching through the
// nested data/attributes envelope some payloads use.
func stateCountry(attrs map[string]any) string {
	country, ok := attrs["country"].(map[string]any)
	if !ok {
		return ""
	}
	if s := firstString(country, "slug", "title"); s != "" {
		return s
	}
	if data, ok := country["data"].(map[string]any); ok {
		if a, ok := data["attributes"].(map[string]any); ok {
			return firstString(a, "slug", "title")
		}
	}
	return ""
}
