package incidents

import (
	"context"
	"time"

	"github.com/ragadecode/ragadecode/internal/dates"
	"github.com/ragadecode/ragadecode/internal/normalize"
	"github.com/ragadecode/ragadecode/internal/timeline"
	"github.com/ragadecode/ragadecode/internal/upstream"
)

// noIncidentsDetail is the upstream marker for a day without content; it is
// an empty digest, not an error.
const noIncidentsDetail = "No incidents found for this date"

type Service struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *Service {
	return &Service{client: client}
}

type digestPayload struct {
	Detail string          `json:"detail"`
	Data   []CategoryGroup `json:"data"`
	Meta   map[string]int  `json:"meta"`
}

// DigestForDate fetches the digest for a /{year}/{month-name}/{day} route.
func (s *Service) DigestForDate(ctx context.Context, year, monthName, day string) (Digest, error) {
	path := "/incidents/" + year + "/" + monthName + "/" + day + "/"

	var payload digestPayload
	if err := s.client.GetJSON(ctx, path, upstream.RevalidateList, &payload); err != nil {
		return Digest{Data: []CategoryGroup{}, Meta: map[string]int{}}, err
	}
	if payload.Detail == noIncidentsDetail {
		return Digest{Data: []CategoryGroup{}, Meta: map[string]int{}}, nil
	}

	d := Digest{Data: payload.Data, Meta: payload.Meta}
	if d.Data == nil {
		d.Data = []CategoryGroup{}
	}
	if d.Meta == nil {
		d.Meta = map[string]int{}
	}
	fillDefaults(&d)
	return d, nil
}

// fillDefaults applies display fallbacks: absent counts fall back to list
// lengths, images to the no-image sentinel, authors to the site default.
// Counts present upstream are trusted as-is.
func fillDefaults(d *Digest) {
	for ci := range d.Data {
		cat := &d.Data[ci]
		if cat.ArticleCount == 0 {
			for _, hg := range cat.Hashtags {
				cat.ArticleCount += len(hg.Articles)
			}
		}
		for hi := range cat.Hashtags {
			hg := &cat.Hashtags[hi]
			if hg.Count == 0 {
				hg.Count = len(hg.Articles)
			}
			for ai := range hg.Articles {
				a := &hg.Articles[ai]
				if a.Image == "" {
					a.Image = normalize.NoImage
				}
				if a.Author == "" {
					a.Author = normalize.DefaultAuthor
				}
			}
		}
	}
}

// TimelineCounts fetches sparse per-day counts spanning [base-before,
// base+after]. The endpoint's availability is best-effort: any failure
// yields an empty list so the strip renders with zero badges.
func (s *Service) TimelineCounts(ctx context.Context, base time.Time, before, after int) []timeline.Count {
	from := dates.LocalKey(base.AddDate(0, 0, -before))
	to := dates.LocalKey(base.AddDate(0, 0, after))

	var counts []timeline.Count
	if err := s.client.GetJSON(ctx, "/incidents/counts?from="+from+"&to="+to, upstream.NoStore, &counts); err != nil {
		return nil
	}
	return counts
}
