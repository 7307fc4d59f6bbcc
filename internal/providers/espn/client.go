package espn

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
)

// Config controls how the client reaches ESPN's site and API hosts.
type Config struct {
	BaseURL    string
	APIBaseURL string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client scrapes team fixtures from ESPN. It degrades gracefully: unknown
// teams, network failures and malformed payloads yield empty results rather
// than errors, so a broken upstream never takes callers down with it.
type Client struct {
	baseURL    string
	apiBaseURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	apiBaseURL := cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		apiBaseURL: apiBaseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Schedule fetches a team's season schedule from the site API and returns it
// sorted by kickoff time. Failures are logged and surface as an empty slice.
func (c *Client) Schedule(ctx context.Context, team string) []domain.ScheduledMatch {
	data, ok := c.ScheduleData(ctx, team)
	if !ok {
		return []domain.ScheduledMatch{}
	}
	return c.ParseSchedule(data)
}

// ScheduleData fetches the raw schedule payload for a team. The second return
// reports whether a payload was obtained at all.
func (c *Client) ScheduleData(ctx context.Context, team string) (ScheduleData, bool) {
	url := c.apiURL(team)
	if url == "" {
		logging.Warn(c.logger, "unknown team for schedule fetch",
			logging.FieldSource, sourceName, logging.FieldTeam, team)
		return ScheduleData{}, false
	}

	body, ok := c.fetch(ctx, url)
	if !ok {
		return ScheduleData{}, false
	}

	var data ScheduleData
	if err := json.Unmarshal(body, &data); err != nil {
		logging.Error(c.logger, "decode schedule payload", err,
			logging.FieldSource, sourceName, logging.FieldTeam, team)
		return ScheduleData{}, false
	}
	return data, true
}

// ParseSchedule converts a raw schedule payload into scheduled matches,
// skipping events it cannot make sense of. The result is sorted by date.
func (c *Client) ParseSchedule(data ScheduleData) []domain.ScheduledMatch {
	matches := make([]domain.ScheduledMatch, 0, len(data.Events))
	for _, raw := range data.Events {
		var event scheduleEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logging.Warn(c.logger, "skipping undecodable schedule event",
				logging.FieldSource, sourceName, "error", err)
			continue
		}
		match, ok := c.scheduledMatch(event)
		if !ok {
			continue
		}
		matches = append(matches, match)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
	return matches
}

func (c *Client) scheduledMatch(event scheduleEvent) (domain.ScheduledMatch, bool) {
	date, ok := parseEventDate(event.Date)
	if !ok {
		logging.Warn(c.logger, "skipping schedule event with unparseable date",
			logging.FieldSource, sourceName, "date", event.Date)
		return domain.ScheduledMatch{}, false
	}

	// An absent or empty competitions array counts as zero competitors.
	var competition scheduleCompetition
	if len(event.Competitions) > 0 {
		competition = event.Competitions[0]
	}
	if len(competition.Competitors) < 2 {
		logging.Warn(c.logger, "skipping schedule event with missing competitors",
			logging.FieldSource, sourceName, "date", event.Date)
		return domain.ScheduledMatch{}, false
	}

	match := domain.ScheduledMatch{
		Date:        date,
		RawDate:     event.Date,
		HomeTeam:    defaultTeamName,
		AwayTeam:    defaultTeamName,
		Competition: defaultCompetition,
		Venue:       domain.DefaultVenue,
		Status:      defaultStatus,
	}

	if competition.Name != "" {
		match.Competition = competition.Name
	}
	if name := competition.Competitors[0].Team.DisplayName; name != "" {
		match.HomeTeam = name
	}
	if name := competition.Competitors[1].Team.DisplayName; name != "" {
		match.AwayTeam = name
	}
	if competition.Venue.FullName != "" {
		match.Venue = competition.Venue.FullName
	}
	if event.Status.Type.Name != "" {
		match.Status = event.Status.Type.Name
	}
	return match, true
}

// parseEventDate accepts the two timestamp shapes the API is known to emit.
func parseEventDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logging.Error(c.logger, "build fixture request", err,
			logging.FieldSource, sourceName)
		return nil, false
	}
	// The site serves bot traffic a degraded page, so look like a browser.
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error(c.logger, "fixture fetch failed", err,
			logging.FieldSource, sourceName)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn(c.logger, "fixture fetch returned non-200",
			logging.FieldSource, sourceName, logging.FieldStatusCode, resp.StatusCode)
		return nil, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Error(c.logger, "read fixture response", err,
			logging.FieldSource, sourceName)
		return nil, false
	}
	return body, true
}
