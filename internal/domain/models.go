package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// DefaultVenue is used when an upstream source does not name a stadium.
const DefaultVenue = "TBD"

// Competition is a named tournament or league identified by the upstream
// provider's opaque id. Fields the provider sends beyond id/name are carried
// through untouched in Extra so repeated load/save cycles are lossless.
type Competition struct {
	ID    string
	Name  string
	Extra map[string]json.RawMessage
}

// MatchTeam is one side of a fixture.
type MatchTeam struct {
	Name  string
	Extra map[string]json.RawMessage
}

// CompetitionRef names the competition a match belongs to.
type CompetitionRef struct {
	Name string `json:"name"`
}

// Match is the normalized fixture shape shared by both source adapters,
// the store, and the calendar sink.
type Match struct {
	ID          string
	UTCDate     string
	HomeTeam    MatchTeam
	AwayTeam    MatchTeam
	Competition CompetitionRef
	Venue       string
	Extra       map[string]json.RawMessage
}

// KickoffTime parses the match's UTC timestamp.
func (m Match) KickoffTime() (time.Time, error) {
	return time.Parse(time.RFC3339, m.UTCDate)
}

// TeamInfo is one side of a scraped upcoming fixture.
type TeamInfo struct {
	Abbrev      string `json:"abbrev"`
	DisplayName string `json:"display_name"`
	Link        string `json:"link,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// UpcomingMatch is the shape returned by the fixtures scrape and by the
// /matches/{team_name}/upcoming endpoint.
type UpcomingMatch struct {
	Date        string   `json:"date"`
	DateDetail  string   `json:"date_detail,omitempty"`
	Completed   bool     `json:"completed"`
	Competition string   `json:"competition"`
	HomeTeam    TeamInfo `json:"home_team"`
	AwayTeam    TeamInfo `json:"away_team"`
	Stadium     string   `json:"stadium"`
	Link        string   `json:"link,omitempty"`
}

// ScheduledMatch is the normalized record produced by the schedule JSON
// strategy of the scrape adapter.
type ScheduledMatch struct {
	Date        time.Time `json:"date"`
	RawDate     string    `json:"raw_date"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Competition string    `json:"competition"`
	Venue       string    `json:"venue"`
	Status      string    `json:"status"`
}

// UnmarshalJSON keeps unknown provider fields in Extra. Numeric ids are
// normalized to their decimal string form.
func (c *Competition) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.ID = takeID(raw)
	c.Name = takeString(raw, "name")
	c.Extra = raw
	return nil
}

// MarshalJSON merges id/name back with the carried-through fields.
func (c Competition) MarshalJSON() ([]byte, error) {
	return mergeFields(c.Extra, map[string]any{"id": c.ID, "name": c.Name})
}

func (t *MatchTeam) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.Name = takeString(raw, "name")
	t.Extra = raw
	return nil
}

func (t MatchTeam) MarshalJSON() ([]byte, error) {
	return mergeFields(t.Extra, map[string]any{"name": t.Name})
}

func (m *Match) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID = takeID(raw)
	m.UTCDate = takeString(raw, "utcDate")
	m.Venue = takeString(raw, "venue")
	if v, ok := raw["homeTeam"]; ok {
		if err := json.Unmarshal(v, &m.HomeTeam); err != nil {
			return err
		}
		delete(raw, "homeTeam")
	}
	if v, ok := raw["awayTeam"]; ok {
		if err := json.Unmarshal(v, &m.AwayTeam); err != nil {
			return err
		}
		delete(raw, "awayTeam")
	}
	if v, ok := raw["competition"]; ok {
		if err := json.Unmarshal(v, &m.Competition); err != nil {
			return err
		}
		delete(raw, "competition")
	}
	m.Extra = raw
	return nil
}

func (m Match) MarshalJSON() ([]byte, error) {
	named := map[string]any{
		"utcDate":     m.UTCDate,
		"homeTeam":    m.HomeTeam,
		"awayTeam":    m.AwayTeam,
		"competition": m.Competition,
	}
	if m.ID != "" {
		named["id"] = m.ID
	}
	if m.Venue != "" {
		named["venue"] = m.Venue
	}
	return mergeFields(m.Extra, named)
}

func takeString(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		// Keep non-string values in Extra rather than dropping them.
		return ""
	}
	delete(raw, key)
	return s
}

// takeID accepts both string and numeric ids from upstream payloads.
func takeID(raw map[string]json.RawMessage) string {
	v, ok := raw["id"]
	if !ok {
		return ""
	}
	delete(raw, "id")
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(bytes.TrimSpace(v), &n); err == nil {
		return n.String()
	}
	return ""
}

func mergeFields(extra map[string]json.RawMessage, named map[string]any) ([]byte, error) {
	out := make(map[string]json.RawMessage, len(extra)+len(named))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range named {
		enc, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = enc
	}
	return json.Marshal(out)
}
