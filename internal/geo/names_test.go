package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToGeoName_KnownVariants(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tamilnadu", "Tamil Nadu"},
		{"Orissa", "Odisha"},
		{"NCT of Delhi", "Delhi"},
		{"Jammu & Kashmir", "Jammu and Kashmir"},
		{"Pondicherry", "Puducherry"},
		{"Uttaranchal", "Uttarakhand"},
		{"Daman and Diu", "Dadra and Nagar Haveli and Daman and Diu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGeoName(tt.in), tt.in)
	}
}

func TestToGeoName_ExactGeometryNamePassesThrough(t *testing.T) {
	assert.Equal(t, "Kerala", ToGeoName("Kerala"))
	assert.Equal(t, "Tamil Nadu", ToGeoName("Tamil Nadu"))
}

func TestToGeoName_LooseCanonicalMatch(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tamil nadu", "Tamil Nadu"},
		{"TAMIL-NADU", "Tamil Nadu"},
		{"andaman and nicobar islands", "Andaman and Nicobar Islands"},
		{"west  bengal", "West Bengal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToGeoName(tt.in), tt.in)
	}
}

func TestToGeoName_UnrecognizedReturnedUnchanged(t *testing.T) {
	assert.Equal(t, "Atlantis", ToGeoName("Atlantis"))
	assert.Equal(t, "", ToGeoName(""))
}

func TestCanon(t *testing.T) {
	assert.Equal(t, "tamilnadu", canon("Tamil Nadu"))
	assert.Equal(t, "jammukashmir", canon("Jammu & Kashmir"))
	assert.Equal(t, "goa", canon("Góa"))
}
