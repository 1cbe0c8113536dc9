// Package normalize absorbs the variance in upstream CMS response shapes into
// the stable item types the views consume. Lookups are ordered candidate
// lists that return on first match; nothing in this package panics, and a
// payload matching no known shape normalizes to an empty result.
package normalize

import "strings"

// PickList locates the payload array of a list response. Known envelopes are
// tried in order: {data: [...]}, {results: {data: [...]}}, {results: [...]}.
// A bare top-level array is also accepted. Order matters: callers depend on
// the first matching shape winning.
func PickList(payload any) []map[string]any {
	if arr := asObjects(payload); arr != nil {
		return arr
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}

	if arr := asObjects(obj["data"]); arr != nil {
		return arr
	}
	if results, ok := obj["results"].(map[string]any); ok {
		if arr := asObjects(results["data"]); arr != nil {
			return arr
		}
	}
	if arr := asObjects(obj["results"]); arr != nil {
		return arr
	}
	return nil
}

// PickObject unwraps a single-entity response, preferring {data: {...}} and
// falling back to the bare object.
func PickObject(payload any) map[string]any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	if data, ok := obj["data"].(map[string]any); ok {
		return data
	}
	return obj
}

func asObjects(v any) []map[string]any {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// firstString returns the first non-blank string among the named fields.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && trim(s) != "" {
			return trim(s)
		}
	}
	return ""
}

// firstText takes the first entry of an array-of-objects field and returns
// its first non-blank title/name value.
func firstText(v any) string {
	arr := asObjects(v)
	if len(arr) == 0 {
		return ""
	}
	return firstString(arr[0], "title", "name")
}

// joinTexts collects title/name values from an array-of-objects field, up to
// max entries, joined with ", ".
func joinTexts(v any, max int) string {
	arr := asObjects(v)
	var out string
	n := 0
	for _, item := range arr {
		if n >= max {
			break
		}
		s := firstString(item, "title", "name")
		if s == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += s
		n++
	}
	return out
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
