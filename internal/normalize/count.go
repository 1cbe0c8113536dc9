package normalize

// CountValue probes a count response for its numeric value. The upstream
// contract is not pinned down, so known shapes are tried in order: a plain
// number, {count: n}, {meta: {count: n}}, {total: n}. Anything else is zero.
func CountValue(payload any) int {
	if n, ok := asInt(payload); ok {
		return n
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return 0
	}
	if n, ok := asInt(obj["count"]); ok {
		return n
	}
	if meta, ok := obj["meta"].(map[string]any); ok {
		if n, ok := asInt(meta["count"]); ok {
			return n
		}
	}
	if n, ok := asInt(obj["total"]); ok {
		return n
	}
	return 0
}

// ListLength is the count fallback when no dedicated count field exists:
// the length of whatever envelope the payload carries.
func ListLength(payload any) int {
	return len(PickList(payload))
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
