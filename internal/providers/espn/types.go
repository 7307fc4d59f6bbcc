package espn

import "encoding/json"

// ScheduleData is the raw schedule API payload; events are kept raw so a
// malformed event can be skipped without discarding the batch.
type ScheduleData struct {
	Events []json.RawMessage `json:"events"`
}

type scheduleEvent struct {
	Date         string                `json:"date"`
	Competitions []scheduleCompetition `json:"competitions"`
	Status       struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"status"`
}

type scheduleCompetition struct {
	Name        string `json:"name"`
	Competitors []struct {
		Team struct {
			DisplayName string `json:"displayName"`
		} `json:"team"`
	} `json:"competitors"`
	Venue struct {
		FullName string `json:"fullName"`
	} `json:"venue"`
}

// FixturesData holds the named JSON blobs extracted from the inline
// configuration script of a fixtures page.
type FixturesData map[string]json.RawMessage

type fittPayload struct {
	Page struct {
		Content struct {
			Fixtures struct {
				Events []fixtureEvent `json:"events"`
			} `json:"fixtures"`
		} `json:"content"`
	} `json:"page"`
}

type fixtureEvent struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	League    string `json:"league"`
	Link      string `json:"link"`
	Status    struct {
		Detail string `json:"detail"`
	} `json:"status"`
	Venue struct {
		FullName string `json:"fullName"`
	} `json:"venue"`
	Competitors []fixtureCompetitor `json:"competitors"`
}

type fixtureCompetitor struct {
	Abbrev      string `json:"abbrev"`
	DisplayName string `json:"displayName"`
	Links       string `json:"links"`
	Logo        string `json:"logo"`
	IsHome      bool   `json:"isHome"`
}
