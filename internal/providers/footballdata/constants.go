package footballdata

import "time"

const (
	sourceName = "football-data"

	defaultBaseURL     = "https://api.football-data.org/v4"
	defaultHTTPTimeout = 15 * time.Second

	authHeader = "X-Auth-Token"
)
