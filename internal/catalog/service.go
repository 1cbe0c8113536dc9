// Package catalog serves the non-date content surfaces: categories, article
// lists and details, authors and static pages.
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/ragadecode/ragadecode/internal/normalize"
	"github.com/ragadecode/ragadecode/internal/upstream"
)

type Service struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *Service {
	return &Service{client: client}
}

// Categories returns the category list sorted alphabetically by name.
func (s *Service) Categories(ctx context.Context) ([]normalize.Category, error) {
	var payload any
	if err := s.client.GetJSON(ctx, "/categories/", upstream.RevalidateList, &payload); err != nil {
		return nil, err
	}

	cats := normalize.Categories(payload)
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}

// CategoryCounts fetches the article count per category slug, all slugs in
// parallel. Failures read as zero; one failing slug never blocks another.
func (s *Service) CategoryCounts(ctx context.Context, slugs []string) map[string]int {
	counts := make([]int, len(slugs))

	var wg sync.WaitGroup
	for i, slug := range slugs {
		wg.Add(1)
		go func(i int, slug string) {
			defer wg.Done()

			path := "/news-articles/?category__slug=" + url.QueryEscape(slug)
			var payload any
			if err := s.client.GetJSON(ctx, path, upstream.RevalidateCounts, &payload); err != nil {
				return
			}
			if n := normalize.CountValue(payload); n > 0 {
				counts[i] = n
				return
			}
			counts[i] = normalize.ListLength(payload)
		}(i, slug)
	}
	wg.Wait()

	out := make(map[string]int, len(slugs))
	for i, slug := range slugs {
		out[slug] = counts[i]
	}
	return out
}

// ArticlesByCategory returns newest-first normalized articles for a slug.
func (s *Service) ArticlesByCategory(ctx context.Context, slug string) ([]normalize.Article, error) {
	q := url.Values{}
	q.Set("category__slug", slug)
	q.Set("ordering", "-published_at")

	var payload any
	if err := s.client.GetJSON(ctx, "/news-articles/?"+q.Encode(), upstream.NoStore, &payload); err != nil {
		return nil, err
	}
	return normalize.Articles(payload), nil
}

// hashtagPopulate expands the relations the article cards render.
const hashtagPopulate = "populate[coverimage]=true&populate[author]=true" +
	"&populate[countries]=true&populate[states]=true&populate[cities]=true"

// ArticlesByHashtag returns up to limit normalized articles for a hashtag.
func (s *Service) ArticlesByHashtag(ctx context.Context, hashtag string, limit int) ([]normalize.Article, error) {
	path := "/news-articles/?hashtag=" + url.QueryEscape(hashtag) + "&" + hashtagPopulate

	var payload any
	if err := s.client.GetJSON(ctx, path, upstream.RevalidateList, &payload); err != nil {
		return nil, err
	}

	items := normalize.Articles(payload)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Deck is one hashtag's article list with its own fetch outcome.
type Deck struct {
	Hashtag  string              `json:"hashtag"`
	Articles []normalize.Article `json:"articles"`
	Error    string              `json:"error,omitempty"`
}

// Decks fetches one deck per hashtag concurrently. Results are joined
// without short-circuiting: each deck carries its own error, in input order.
func (s *Service) Decks(ctx context.Context, hashtags []string, limit int) []Deck {
	decks := make([]Deck, len(hashtags))

	var wg sync.WaitGroup
	for i, h := range hashtags {
		wg.Add(1)
		go func(i int, h string) {
			defer wg.Done()
			items, err := s.ArticlesByHashtag(ctx, h, limit)
			decks[i] = Deck{Hashtag: h, Articles: items}
			if err != nil {
				decks[i].Error = err.Error()
				decks[i].Articles = []normalize.Article{}
			}
		}(i, h)
	}
	wg.Wait()

	return decks
}

// ArticleByID fetches one article document.
func (s *Service) ArticleByID(ctx context.Context, id string) (normalize.ArticleDetail, error) {
	var payload any
	if err := s.client.GetJSON(ctx, "/news-articles/"+url.PathEscape(id), upstream.RevalidateList, &payload); err != nil {
		return normalize.ArticleDetail{}, err
	}
	d, ok := normalize.ArticleDetailRecord(payload)
	if !ok {
		return normalize.ArticleDetail{}, fmt.Errorf("article %s: no renderable record", id)
	}
	return d, nil
}

// AuthorByID fetches one author profile.
func (s *Service) AuthorByID(ctx context.Context, id string) (normalize.Author, error) {
	var payload any
	if err := s.client.GetJSON(ctx, "/authors/"+url.PathEscape(id), upstream.RevalidateCounts, &payload); err != nil {
		return normalize.Author{}, err
	}
	a, ok := normalize.AuthorRecord(payload)
	if !ok {
		return normalize.Author{}, fmt.Errorf("author %s: no renderable record", id)
	}
	return a, nil
}

// StaticPages fetches the static page listing.
func (s *Service) StaticPages(ctx context.Context) ([]normalize.StaticPage, error) {
	var payload any
	if err := s.client.GetJSON(ctx, "/static-pages", upstream.RevalidatePages, &payload); err != nil {
		return nil, err
	}
	return normalize.StaticPages(payload), nil
}

// StaticPageBySlug finds a page by slug within the listing; ok is false when
// no page matches.
func (s *Service) StaticPageBySlug(ctx context.Context, slug string) (normalize.StaticPage, bool, error) {
	pages, err := s.StaticPages(ctx)
	if err != nil {
		return normalize.StaticPage{}, false, err
	}
	for _, p := range pages {
		if p.Slug == slug {
			return p, true, nil
		}
	}
	return normalize.StaticPage{}, false, nil
}

// HueFromSlug derives a stable display hue (0-359) from a category slug.
func HueFromSlug(slug string) int {
	var h uint32
	for i := 0; i < len(slug); i++ {
		h = h*31 + uint32(slug[i])
	}
	return int(h % 360)
}
