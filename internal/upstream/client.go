// Package upstream is the read-only client for the headless CMS API. Every
// request carries the x-api-key header. Responses can be held in a per-URL
// revalidation cache for a caller-chosen window, with in-flight requests to
// the same URL deduplicated, mirroring the fetch semantics the original
// frontend relied on.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 15 * time.Second

// Revalidation windows used across the views.
const (
	RevalidateList    = 60 * time.Second
	RevalidatePages   = 120 * time.Second
	RevalidateCounts  = 300 * time.Second
	NoStore           = 0
	maxErrorBodyBytes = 4096
)

type cacheEntry struct {
	body    []byte
	expires time.Time
}

type Client struct {
	cfg  Config
	http *http.Client

	group singleflight.Group

	mu    sync.Mutex
	cache map[string]cacheEntry
	now   func() time.Time
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: defaultTimeout},
		cache: make(map[string]cacheEntry),
		now:   time.Now,
	}
}

// GetJSON fetches path (relative to the configured base URL, query string
// included) and decodes the body into out. A revalidate window above zero
// serves repeat requests from cache until the window lapses; NoStore always
// hits the upstream. Non-2xx statuses are reported as "HTTP <code>" errors
// and are never cached.
func (c *Client) GetJSON(ctx context.Context, path string, revalidate time.Duration, out any) error {
	url := c.cfg.BaseURL + path

	if revalidate > 0 {
		if body, ok := c.cached(url); ok {
			return json.Unmarshal(body, out)
		}
	}

	v, err, _ := c.group.Do(url, func() (any, error) {
		return c.fetch(ctx, url)
	})
	if err != nil {
		return err
	}
	body := v.([]byte)

	if revalidate > 0 {
		c.store(url, body, revalidate)
	}

	return json.Unmarshal(body, out)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) cached(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.cache[url]
	if !ok || c.now().After(e.expires) {
		return nil, false
	}
	return e.body, true
}

func (c *Client) store(url string, body []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[url] = cacheEntry{body: body, expires: c.now().Add(ttl)}
}
