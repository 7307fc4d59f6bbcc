package espn

import (
	"bytes"
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
)

// windowAssignRE pulls `window['NAME'] = {...};` assignments out of the
// page's inline configuration script. The object match is non-greedy, so a
// blob containing a nested `};` sequence is truncated at that point; in
// practice the fixtures payload decodes cleanly.
var windowAssignRE = regexp.MustCompile(`(?s)window\['([^']+)'\]\s*=\s*(\{.*?\});`)

// UpcomingMatches fetches a team's fixtures page and extracts the upcoming
// matches embedded in it. Any failure along the way yields an empty slice.
func (c *Client) UpcomingMatches(ctx context.Context, team string) []domain.UpcomingMatch {
	data := c.FixturesData(ctx, team)
	return c.ParseFixtures(data)
}

// FixturesData fetches the fixtures page and returns the named JSON blobs
// found in its configuration script. Unknown teams, fetch failures and pages
// without the marker script all return an empty map.
func (c *Client) FixturesData(ctx context.Context, team string) FixturesData {
	url := c.websiteURL(team)
	if url == "" {
		logging.Warn(c.logger, "unknown team for fixtures fetch",
			logging.FieldSource, sourceName, logging.FieldTeam, team)
		return FixturesData{}
	}

	body, ok := c.fetch(ctx, url)
	if !ok {
		return FixturesData{}
	}
	return c.extractConfigBlobs(body)
}

func (c *Client) extractConfigBlobs(body []byte) FixturesData {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logging.Error(c.logger, "parse fixtures page", err,
			logging.FieldSource, sourceName)
		return FixturesData{}
	}

	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if strings.Contains(text, configMarker) {
			script = text
			return false
		}
		return true
	})
	if script == "" {
		logging.Warn(c.logger, "fixtures page missing config script",
			logging.FieldSource, sourceName)
		return FixturesData{}
	}

	data := FixturesData{}
	for _, m := range windowAssignRE.FindAllStringSubmatch(script, -1) {
		data[m[1]] = json.RawMessage(m[2])
	}
	return data
}

// ParseFixtures converts extracted page blobs into upcoming matches. A map
// without the fixtures blob, or one that does not decode, yields an empty
// slice.
func (c *Client) ParseFixtures(data FixturesData) []domain.UpcomingMatch {
	raw, ok := data[fittKey]
	if !ok {
		return []domain.UpcomingMatch{}
	}

	var payload fittPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logging.Error(c.logger, "decode fixtures payload", err,
			logging.FieldSource, sourceName)
		return []domain.UpcomingMatch{}
	}

	events := payload.Page.Content.Fixtures.Events
	matches := make([]domain.UpcomingMatch, 0, len(events))
	for _, event := range events {
		matches = append(matches, c.upcomingMatch(event))
	}
	return matches
}

func (c *Client) upcomingMatch(event fixtureEvent) domain.UpcomingMatch {
	match := domain.UpcomingMatch{
		Date:        event.Date,
		DateDetail:  event.Status.Detail,
		Completed:   event.Completed,
		Competition: event.League,
		Stadium:     event.Venue.FullName,
		Link:        c.resolveLink(event.Link),
	}
	if match.Competition == "" {
		match.Competition = defaultCompetition
	}
	if match.Stadium == "" {
		match.Stadium = domain.DefaultVenue
	}
	for _, competitor := range event.Competitors {
		team := domain.TeamInfo{
			Abbrev:      competitor.Abbrev,
			DisplayName: competitor.DisplayName,
			Link:        c.resolveLink(competitor.Links),
			Logo:        competitor.Logo,
		}
		if team.DisplayName == "" {
			team.DisplayName = defaultTeamName
		}
		if competitor.IsHome {
			match.HomeTeam = team
		} else {
			match.AwayTeam = team
		}
	}
	if match.HomeTeam.DisplayName == "" {
		match.HomeTeam.DisplayName = defaultTeamName
	}
	if match.AwayTeam.DisplayName == "" {
		match.AwayTeam.DisplayName = defaultTeamName
	}
	return match
}

// resolveLink qualifies site-relative links against the configured base URL.
func (c *Client) resolveLink(link string) string {
	if strings.HasPrefix(link, "/") {
		return c.baseURL + link
	}
	return link
}
