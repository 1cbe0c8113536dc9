package router

import (
	"github.com/ragadecode/ragadecode/internal/catalog"
	"github.com/ragadecode/ragadecode/internal/geo"
	"github.com/ragadecode/ragadecode/internal/incidents"
	"github.com/ragadecode/ragadecode/internal/normalize"
	"github.com/ragadecode/ragadecode/internal/timeline"
	"github.com/ragadecode/ragadecode/pkg/pagination"
)

// DayView is the digest page model for one /{year}/{month}/{day} route.
// A failed digest fetch degrades to empty data plus Error; the route itself
// still renders.
type DayView struct {
	Date      string           `json:"date"`
	Title     string           `json:"title"`
	Path      string           `json:"path"`
	TodayPath string           `json:"today_path"`
	Timeline  timeline.Window  `json:"timeline"`
	Incidents incidents.Digest `json:"incidents"`
	Error     string           `json:"error,omitempty"`
}

// HomeView aggregates the home surfaces. Each section carries its own error
// so one failing upstream call never blanks the rest.
type HomeView struct {
	Today      string          `json:"today"`
	TodayPath  string          `json:"today_path"`
	ShowSplash bool            `json:"show_splash"`
	Timeline   timeline.Window `json:"timeline"`
	Categories CategoryList    `json:"categories"`
	Decks      []catalog.Deck  `json:"decks"`
	Heatmap    HeatmapSection  `json:"heatmap"`
}

type CategoryList struct {
	Items []normalize.Category `json:"items"`
	Error string               `json:"error,omitempty"`
}

type HeatmapSection struct {
	geo.Heatmap
	Error string `json:"error,omitempty"`
}

// CategoryEntry decorates a category with its article count and display hue.
type CategoryEntry struct {
	normalize.Category
	Count int `json:"count"`
	Hue   int `json:"hue"`
}

type CategoriesView struct {
	Items []CategoryEntry `json:"items"`
	Error string          `json:"error,omitempty"`
}

// CategoryArticlesView is the paged article feed for one category slug.
type CategoryArticlesView struct {
	Slug   string                                        `json:"slug"`
	Result *pagination.OffsetResult[normalize.Article]   `json:"result"`
	Error  string                                        `json:"error,omitempty"`
}

// ArticleView is the single-article page model.
type ArticleView struct {
	normalize.ArticleDetail
	PublishedLabel string `json:"published_label,omitempty"`
}

type StaticPagesView struct {
	Items []normalize.StaticPage `json:"items"`
	Error string                 `json:"error,omitempty"`
}
