// Package geo maps upstream region names onto the exact names used by the
// India geometry dataset and assembles the per-state incident heatmap.
package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// apiToGeoName maps known upstream spelling variants to the canonical
// geometry name. Checked before any loose matching so quirks stay explicit.
var apiToGeoName = map[string]string{
	"Tamilnadu":                            "Tamil Nadu",
	"NCT of Delhi":                         "Delhi",
	"Andaman & Nicobar Islands":            "Andaman and Nicobar Islands",
	"Dadra & Nagar Haveli and Daman & Diu": "Dadra and Nagar Haveli and Daman and Diu",
	"Uttaranchal":                          "Uttarakhand",
	"Jammu & Kashmir":                      "Jammu and Kashmir",
	"Orissa":                               "Odisha",
	"Pondicherry":                          "Puducherry",
	"Daman and Diu":                        "Dadra and Nagar Haveli and Daman and Diu",
	"Dadra and Nagar Haveli":               "Dadra and Nagar Haveli and Daman and Diu",
}

// geometryNames is the fixed set of region names the geometry dataset keys on.
var geometryNames = []string{
	"Andaman and Nicobar Islands", "Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chandigarh",
	"Chhattisgarh", "Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Goa", "Gujarat", "Haryana",
	"Himachal Pradesh", "Jammu and Kashmir", "Jharkhand", "Karnataka", "Kerala", "Ladakh", "Lakshadweep",
	"Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Puducherry",
	"Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal",
}

var geometrySet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(geometryNames))
	for _, n := range geometryNames {
		s[n] = struct{}{}
	}
	return s
}()

// canonical index so loosely spelled inputs ("tam il-nadu") still resolve
var geometryIndex = func() map[string]string {
	m := make(map[string]string, len(geometryNames))
	for _, n := range geometryNames {
		m[canon(n)] = n
	}
	return m
}()

// ToGeoName converts an upstream region title to the exact geometry name.
// Exact variant replacements are applied first, then a loose canonical match.
// Unrecognized input comes back unchanged; such a region simply stays
// uncolored rather than failing.
func ToGeoName(apiTitle string) string {
	if apiTitle == "" {
		return ""
	}
	replaced := apiTitle
	if mapped, ok := apiToGeoName[apiTitle]; ok {
		replaced = mapped
	}
	if _, ok := geometrySet[replaced]; ok {
		return replaced
	}
	if name, ok := geometryIndex[canon(replaced)]; ok {
		return name
	}
	return replaced
}

// canon lowercases, strips whitespace, dashes and ampersands, and drops
// diacritics so minor upstream spelling drift still matches.
func canon(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(strings.ToLower(s)) {
		if unicode.IsSpace(r) || r == '-' || r == '&' || unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
