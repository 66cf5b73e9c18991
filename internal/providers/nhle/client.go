package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nhl-watchability-service/internal/domain"
	"nhl-watchability-service/internal/providers"
)

// Config controls how the client reaches the NHL web API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Today anchors the "future game" cutoff. Zero means the construction
	// time; the cutoff is fixed for the client's lifetime so a run spanning
	// midnight keeps a consistent filter.
	Today time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches club schedules from the NHL web API and maps them to
// parsed schedules.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
	today      time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		today:      cfg.Today,
	}
	if c.today.IsZero() {
		c.today = c.now().UTC()
	}
	return c
}

// FetchSchedule retrieves the team's season schedule and returns its future
// regular-season games.
func (c *Client) FetchSchedule(ctx context.Context, team string) (domain.ParsedSchedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.scheduleURL(team), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nhle: fetching schedule for %s: %w", team, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("nhle: unexpected status %d for %s: %s", resp.StatusCode, team, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nhle: decoding schedule for %s: %w", team, err)
	}

	return mapSchedule(payload, c.today), nil
}

func (c *Client) scheduleURL(team string) string {
	return fmt.Sprintf("%s/v1/club-schedule-season/%s/now", c.baseURL, url.PathEscape(team))
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
