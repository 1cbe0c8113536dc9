// Package incidents fetches the per-day incident digest: categories, their
// hashtag groups and the articles inside each group.
package incidents

// Item is one article entry of a digest. The digest endpoint returns these
// pre-flattened; normalization only fills display defaults.
type Item struct {
	Title            string `json:"title"`
	DocumentID       string `json:"document_id"`
	Slug             string `json:"slug"`
	Category         string `json:"category"`
	CategorySlug     string `json:"category_slug"`
	Country          string `json:"country"`
	State            string `json:"state"`
	City             string `json:"city"`
	Image            string `json:"image"`
	ShortDescription string `json:"short_description"`
	Author           string `json:"author"`
}

// HashtagGroup is a sub-grouping of articles sharing a hashtag. Count is a
// trusted display value from upstream; it is only recomputed from the list
// length when the field is absent.
type HashtagGroup struct {
	Hashtag  string `json:"hashtag"`
	Count    int    `json:"count"`
	Articles []Item `json:"articles"`
}

// CategoryGroup is the top grouping level of a digest.
type CategoryGroup struct {
	Category     string         `json:"category"`
	ArticleCount int            `json:"article_count"`
	Hashtags     []HashtagGroup `json:"hashtags"`
}

// Digest is the full payload for one calendar day.
type Digest struct {
	Data []CategoryGroup `json:"data"`
	Meta map[string]int  `json:"meta"`
}
