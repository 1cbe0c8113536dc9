package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ragadecode/ragadecode/internal/upstream"
)

func heatmapUpstream(t *testing.T, countStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/states":
			fmt.Fprint(w, `{"data":[
				{"id":1,"title":"Tamilnadu","slug":"tamilnadu","country":{"slug":"india"}},
				{"id":2,"title":"Kerala","slug":"kerala","country":{"slug":"india"}},
				{"id":3,"title":"Texas","slug":"texas","country":{"slug":"usa"}}
			]}`)
		case r.URL.Query().Get("count") == "true":
			if countStatus != http.StatusOK {
				w.WriteHeader(countStatus)
				return
			}
			// deterministic: murder=2, everything else 1
			if r.URL.Query().Get("hashtag") == "murder" {
				fmt.Fprint(w, `{"count":2}`)
			} else {
				fmt.Fprint(w, `1`)
			}
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestHeatmapService_Build(t *testing.T) {
	ts := heatmapUpstream(t, http.StatusOK)
	defer ts.Close()

	svc := NewHeatmapService(upstream.NewClient(upstream.Config{BaseURL: ts.URL, APIKey: "k"}), nil)

	hm, err := svc.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, hm.Data, 2, "non-India states excluded")

	tn, ok := hm.Data["Tamil Nadu"]
	require.True(t, ok, "state keyed by canonical geometry name")
	assert.Equal(t, 5, tn.Value)
	assert.Equal(t, 2, tn.Metrics["murder"])
	assert.Equal(t, 1, tn.Metrics["suicide"])
	assert.Equal(t, "/locations/india/tamilnadu", tn.Meta.Href)
	assert.Equal(t, "Tamilnadu", tn.Meta.Label, "label keeps the upstream spelling")

	assert.Equal(t, 5, hm.Min)
	assert.Equal(t, 5, hm.Max)
}

func TestHeatmapService_FailedCountsReadAsZero(t *testing.T) {
	ts := heatmapUpstream(t, http.StatusInternalServerError)
	defer ts.Close()

	svc := NewHeatmapService(upstream.NewClient(upstream.Config{BaseURL: ts.URL, APIKey: "k"}), nil)

	hm, err := svc.Build(context.Background())
	require.NoError(t, err, "count failures never propagate")

	for name, d := range hm.Data {
		assert.Equal(t, 0, d.Value, name)
	}
}

func TestHeatmapService_StatesFetchFailurePropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	svc := NewHeatmapService(upstream.NewClient(upstream.Config{BaseURL: ts.URL, APIKey: "k"}), nil)

	_, err := svc.Build(context.Background())
	require.Error(t, err)
	assert.Equal(t, "HTTP 502", err.Error())
}
