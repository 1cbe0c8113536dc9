package geo

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/ragadecode/ragadecode/internal/normalize"
	"github.com/ragadecode/ragadecode/internal/upstream"
)

// DefaultTags are the incident categories aggregated per state.
var DefaultTags = []string{"murder", "rape", "accident", "suicide"}

const maxCountFetches = 8

// HeatDatum is one region's aggregate: total value, per-tag breakdown and
// drill-down metadata. Keyed in the heatmap by the exact geometry name.
type HeatDatum struct {
	Value   int            `json:"value"`
	Metrics map[string]int `json:"metrics"`
	Meta    HeatMeta       `json:"meta"`
}

type HeatMeta struct {
	Href  string `json:"href,omitempty"`
	Label string `json:"label,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

// Heatmap carries the per-region data plus the numeric range of the
// aggregate values, the domain a client color scale interpolates over.
type Heatmap struct {
	Data map[string]HeatDatum `json:"data"`
	Min  int                  `json:"min"`
	Max  int                  `json:"max"`
}

type HeatmapService struct {
	client *upstream.Client
	tags   []string
}

func NewHeatmapService(client *upstream.Client, tags []string) *HeatmapService {
	if len(tags) == 0 {
		tags = DefaultTags
	}
	return &HeatmapService{client: client, tags: tags}
}

// Build fetches the state list, then one count per Indian state per tag. The
// count fetches run concurrently with bounded parallelism and never
// short-circuit each other: a failed count reads as zero.
func (s *HeatmapService) Build(ctx context.Context) (Heatmap, error) {
	hm := Heatmap{Data: map[string]HeatDatum{}}

	var payload any
	if err := s.client.GetJSON(ctx, "/states?populate[country]=true", upstream.RevalidateList, &payload); err != nil {
		return hm, err
	}

	var india []normalize.State
	for _, st := range normalize.States(payload) {
		if canon(st.Country) == "india" {
			india = append(india, st)
		}
	}

	counts := make([][]int, len(india))
	for i := range counts {
		counts[i] = make([]int, len(s.tags))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCountFetches)
	for i, st := range india {
		for j, tag := range s.tags {
			i, j, slug := i, j, st.Slug
			g.Go(func() error {
				counts[i][j] = s.fetchCount(gctx, slug, tag)
				return nil
			})
		}
	}
	// tasks only record their own slot, so the join cannot fail
	_ = g.Wait()

	for i, st := range india {
		metrics := make(map[string]int, len(s.tags))
		total := 0
		for j, tag := range s.tags {
			metrics[tag] = counts[i][j]
			total += counts[i][j]
		}

		hm.Data[ToGeoName(st.Name)] = HeatDatum{
			Value:   total,
			Metrics: metrics,
			Meta: HeatMeta{
				Href:  "/locations/india/" + st.Slug,
				Label: st.Name,
				Slug:  st.Slug,
			},
		}
	}

	first := true
	for _, d := range hm.Data {
		if first || d.Value < hm.Min {
			hm.Min = d.Value
		}
		if first || d.Value > hm.Max {
			hm.Max = d.Value
		}
		first = false
	}

	return hm, nil
}

func (s *HeatmapService) fetchCount(ctx context.Context, stateSlug, tag string) int {
	path := "/news-articles/?country=india&state=" + url.QueryEscape(stateSlug) +
		"&hashtag=" + url.QueryEscape(tag) + "&count=true"

	var payload any
	if err := s.client.GetJSON(ctx, path, upstream.NoStore, &payload); err != nil {
		return 0
	}
	return normalize.CountValue(payload)
}
