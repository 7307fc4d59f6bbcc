package espn

import "time"

const (
	sourceName = "espn"

	defaultBaseURL    = "https://www.espn.com"
	defaultAPIBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

	defaultHTTPTimeout = 15 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// configMarker identifies the inline script carrying the page's
	// embedded configuration JSON.
	configMarker = "window['__CONFIG__']"

	// fittKey is the blob holding the fixtures payload.
	fittKey = "__espnfitt__"

	defaultTeamName    = "Unknown"
	defaultCompetition = "Unknown"
	defaultStatus      = "Scheduled"
)
