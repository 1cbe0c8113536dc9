package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestPickList_EnvelopeShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"data", `{"data":[{"title":"a"},{"title":"b"}]}`},
		{"results.data", `{"results":{"data":[{"title":"a"},{"title":"b"}]}}`},
		{"results", `{"results":[{"title":"a"},{"title":"b"}]}`},
		{"bare array", `[{"title":"a"},{"title":"b"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := PickList(decode(t, tt.raw))
			require.Len(t, list, 2)
			assert.Equal(t, "a", list[0]["title"])
			assert.Equal(t, "b", list[1]["title"])
		})
	}
}

func TestPickList_PrefersDataOverResults(t *testing.T) {
	payload := decode(t, `{"data":[{"title":"from-data"}],"results":[{"title":"from-results"}]}`)

	list := PickList(payload)
	require.Len(t, list, 1)
	assert.Equal(t, "from-data", list[0]["title"])
}

func TestPickList_UnknownShapesAreEmpty(t *testing.T) {
	for _, raw := range []string{`{}`, `{"data":"nope"}`, `{"results":5}`, `"str"`, `null`, `42`} {
		assert.Empty(t, PickList(decode(t, raw)), raw)
	}
}

func TestPickList_SkipsNonObjectEntries(t *testing.T) {
	list := PickList(decode(t, `{"data":[{"title":"a"},"junk",7,{"title":"b"}]}`))
	require.Len(t, list, 2)
}

func TestPickObject(t *testing.T) {
	wrapped := PickObject(decode(t, `{"data":{"title":"x"}}`))
	require.NotNil(t, wrapped)
	assert.Equal(t, "x", wrapped["title"])

	bare := PickObject(decode(t, `{"title":"y"}`))
	require.NotNil(t, bare)
	assert.Equal(t, "y", bare["title"])

	assert.Nil(t, PickObject(decode(t, `[1,2]`)))
	assert.Nil(t, PickObject(decode(t, `null`)))
}
