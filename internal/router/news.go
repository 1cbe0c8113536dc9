package router

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ragadecode/ragadecode/internal/apperr"
	"github.com/ragadecode/ragadecode/internal/catalog"
	"github.com/ragadecode/ragadecode/internal/dates"
	"github.com/ragadecode/ragadecode/internal/geo"
	"github.com/ragadecode/ragadecode/internal/incidents"
	"github.com/ragadecode/ragadecode/internal/normalize"
	"github.com/ragadecode/ragadecode/internal/session"
	"github.com/ragadecode/ragadecode/internal/timeline"
	"github.com/ragadecode/ragadecode/pkg/pagination"
)

type NewsRouterOption func(*NewsRouter)

// WithWindow overrides the timeline window magnitudes.
func WithWindow(before, after int) NewsRouterOption {
	return func(r *NewsRouter) {
		r.daysBefore = before
		r.daysAfter = after
	}
}

// WithDecks overrides the hashtags rendered as home swipe decks.
func WithDecks(hashtags []string, limit int) NewsRouterOption {
	return func(r *NewsRouter) {
		r.deckTags = hashtags
		r.deckLimit = limit
	}
}

func WithClock(now func() time.Time) NewsRouterOption {
	return func(r *NewsRouter) {
		r.now = now
	}
}

type NewsRouter struct {
	e         *echo.Echo
	incidents *incidents.Service
	catalog   *catalog.Service
	heatmap   *geo.HeatmapService

	daysBefore int
	daysAfter  int
	deckTags   []string
	deckLimit  int
	now        func() time.Time
}

func NewNewsRouter(e *echo.Echo, inc *incidents.Service, cat *catalog.Service, hm *geo.HeatmapService, opts ...NewsRouterOption) *NewsRouter {
	r := &NewsRouter{
		e:          e,
		incidents:  inc,
		catalog:    cat,
		heatmap:    hm,
		daysBefore: timeline.DefaultDaysBefore,
		daysAfter:  timeline.DefaultDaysAfter,
		deckTags:   geo.DefaultTags,
		deckLimit:  12,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *NewsRouter) Bind() {
	r.e.GET("/", r.rootHandler)
	r.e.GET("/home", r.homeHandler)
	r.e.GET("/categories", r.categoriesHandler)
	r.e.GET("/categories/:slug", r.categoryArticlesHandler)
	r.e.GET("/article/:id", r.articleHandler)
	r.e.GET("/author/:id", r.authorHandler)
	r.e.GET("/static-pages", r.staticPagesHandler)
	r.e.GET("/static-pages/:slug", r.staticPageHandler)
	r.e.GET("/:year/:month/:day", r.dayHandler)
}

// rootHandler redirects to today's digest path, the server half of
// "navigate to today".
func (r *NewsRouter) rootHandler(c echo.Context) error {
	return c.Redirect(http.StatusFound, dates.ToPathSegments(r.now()))
}

func (r *NewsRouter) dayHandler(c echo.Context) error {
	year, month, day := c.Param("year"), c.Param("month"), c.Param("day")

	if !dates.IsValidMonthName(month) {
		return apperr.NewNotFound("unknown month: " + month)
	}
	selected, ok := dates.FromPathSegments(year, month, day)
	if !ok {
		return apperr.NewNotFound("invalid date path")
	}

	ctx := c.Request().Context()

	// digest and counts are independent fetches, joined without
	// short-circuiting
	var (
		wg     sync.WaitGroup
		digest incidents.Digest
		digErr error
		counts []timeline.Count
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		digest, digErr = r.incidents.DigestForDate(ctx, year, month, dates.FormatDay(selected.Day()))
	}()
	go func() {
		defer wg.Done()
		counts = r.incidents.TimelineCounts(ctx, selected, r.daysBefore, r.daysAfter)
	}()
	wg.Wait()

	view := DayView{
		Date:      dates.LocalKey(selected),
		Title:     dates.FormatLong(selected),
		Path:      dates.ToPathSegments(selected),
		TodayPath: dates.ToPathSegments(r.now()),
		Timeline:  timeline.Compute(selected, r.now(), r.daysBefore, r.daysAfter, counts),
		Incidents: digest,
	}
	if digErr != nil {
		view.Error = digErr.Error()
	}
	return c.JSON(http.StatusOK, view)
}

func (r *NewsRouter) homeHandler(c echo.Context) error {
	ctx := c.Request().Context()
	today := r.now()

	var (
		wg      sync.WaitGroup
		counts  []timeline.Count
		cats    []normalize.Category
		catErr  error
		decks   []catalog.Deck
		heat    geo.Heatmap
		heatErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		counts = r.incidents.TimelineCounts(ctx, today, r.daysBefore, r.daysAfter)
	}()
	go func() {
		defer wg.Done()
		cats, catErr = r.catalog.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		decks = r.catalog.Decks(ctx, r.deckTags, r.deckLimit)
	}()
	go func() {
		defer wg.Done()
		heat, heatErr = r.heatmap.Build(ctx)
	}()
	wg.Wait()

	view := HomeView{
		Today:      dates.LocalKey(today),
		TodayPath:  dates.ToPathSegments(today),
		ShowSplash: !session.SplashSeen(c),
		Timeline:   timeline.Compute(today, today, r.daysBefore, r.daysAfter, counts),
		Categories: CategoryList{Items: cats},
		Decks:      decks,
		Heatmap:    HeatmapSection{Heatmap: heat},
	}
	if view.Categories.Items == nil {
		view.Categories.Items = []normalize.Category{}
	}
	if catErr != nil {
		view.Categories.Error = catErr.Error()
	}
	if heatErr != nil {
		view.Heatmap.Error = heatErr.Error()
	}
	return c.JSON(http.StatusOK, view)
}

func (r *NewsRouter) categoriesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	cats, err := r.catalog.Categories(ctx)
	if err != nil {
		return c.JSON(http.StatusOK, CategoriesView{Items: []CategoryEntry{}, Error: err.Error()})
	}

	slugs := make([]string, len(cats))
	for i, cat := range cats {
		slugs[i] = cat.Slug
	}
	counts := r.catalog.CategoryCounts(ctx, slugs)

	entries := make([]CategoryEntry, len(cats))
	for i, cat := range cats {
		entries[i] = CategoryEntry{
			Category: cat,
			Count:    counts[cat.Slug],
			Hue:      catalog.HueFromSlug(cat.Slug),
		}
	}
	return c.JSON(http.StatusOK, CategoriesView{Items: entries})
}

func (r *NewsRouter) categoryArticlesHandler(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return apperr.NewValidation("category slug is required")
	}

	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination params", err)
	}
	_ = req.Validate()

	items, err := r.catalog.ArticlesByCategory(c.Request().Context(), slug)
	if err != nil {
		// degraded view, not a crash: the page renders its empty state
		return c.JSON(http.StatusOK, CategoryArticlesView{
			Slug:   slug,
			Result: pagination.NewOffsetResult([]normalize.Article{}, 0, req.Page, req.Size),
			Error:  err.Error(),
		})
	}

	page := pagination.Slice(items, req.Page, req.Size)
	return c.JSON(http.StatusOK, CategoryArticlesView{
		Slug:   slug,
		Result: pagination.NewOffsetResult(page, int64(len(items)), req.Page, req.Size),
	})
}

func (r *NewsRouter) articleHandler(c echo.Context) error {
	detail, err := r.catalog.ArticleByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.NewNotFound("article not found")
	}

	view := ArticleView{ArticleDetail: detail}
	if ts, perr := time.Parse(time.RFC3339, detail.PublishedAt); perr == nil {
		view.PublishedLabel = dates.FormatWithSuffix(ts)
	}
	return c.JSON(http.StatusOK, view)
}

func (r *NewsRouter) authorHandler(c echo.Context) error {
	author, err := r.catalog.AuthorByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.NewNotFound("author not found")
	}
	return c.JSON(http.StatusOK, author)
}

func (r *NewsRouter) staticPagesHandler(c echo.Context) error {
	pages, err := r.catalog.StaticPages(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, StaticPagesView{Items: []normalize.StaticPage{}, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, StaticPagesView{Items: pages})
}

func (r *NewsRouter) staticPageHandler(c echo.Context) error {
	page, ok, err := r.catalog.StaticPageBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil || !ok {
		return apperr.NewNotFound("page not found")
	}
	return c.JSON(http.StatusOK, page)
}
