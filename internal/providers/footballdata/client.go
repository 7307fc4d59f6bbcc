package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/providers"
	"football-fan-service/internal/timeutil"
)

// Config controls how the client reaches the competitions API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches competitions and matches from the football-data API and
// maps them to domain models. The competition list is cached for the
// lifetime of the instance; construct a new client for fresh data.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer

	mu           sync.Mutex
	competitions []domain.Competition
}

// NewClient constructs a football-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Competitions returns all competitions known to the upstream API. Repeated
// calls return the cached list without a new network round-trip.
func (c *Client) Competitions(ctx context.Context) ([]domain.Competition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.competitionsLocked(ctx)
}

func (c *Client) competitionsLocked(ctx context.Context) ([]domain.Competition, error) {
	if c.competitions != nil {
		return c.competitions, nil
	}

	var payload competitionsResponse
	if err := c.getJSON(ctx, c.baseURL+"/competitions", nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch competitions: %w", err)
	}
	if payload.Competitions == nil {
		payload.Competitions = []domain.Competition{}
	}
	c.competitions = payload.Competitions
	return c.competitions, nil
}

// MatchesForMonth fetches a competition's matches for a calendar month.
// The competition name must match exactly one cached competition; the date
// range sent upstream is the literal month (day 1 through day 31).
func (c *Client) MatchesForMonth(ctx context.Context, competitionName string, month, year int) ([]domain.Match, error) {
	if month < 1 || month > 12 {
		return nil, &providers.InvalidArgumentError{Field: "month", Reason: "must be between 1 and 12"}
	}

	c.mu.Lock()
	competitions, err := c.competitionsLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var competition *domain.Competition
	for i := range competitions {
		if competitions[i].Name == competitionName {
			competition = &competitions[i]
			break
		}
	}
	if competition == nil {
		return nil, &providers.NotFoundError{Kind: "competition", Name: competitionName}
	}

	from, to := timeutil.MonthRange(month, year)
	params := map[string]string{
		"season":   strconv.Itoa(year),
		"dateFrom": from,
		"dateTo":   to,
	}

	var payload matchesResponse
	url := fmt.Sprintf("%s/competitions/%s/matches", c.baseURL, competition.ID)
	if err := c.getJSON(ctx, url, params, &payload); err != nil {
		return nil, fmt.Errorf("fetch matches: %w", err)
	}
	if payload.Matches == nil {
		payload.Matches = []domain.Match{}
	}
	return payload.Matches, nil
}

func (c *Client) getJSON(ctx context.Context, url string, params map[string]string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		q := req.URL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	if c.apiKey != "" {
		req.Header.Set(authHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}
