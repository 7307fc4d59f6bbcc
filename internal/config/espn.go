package config

const (
	envESPNBaseURL    = "ESPN_BASE_URL"
	envESPNAPIBaseURL = "ESPN_API_BASE_URL"

	defaultESPNBaseURL    = "https://www.espn.com"
	defaultESPNAPIBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
)

// ESPNConfig controls the fixtures scrape adapter.
type ESPNConfig struct {
	BaseURL    string
	APIBaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL:    envOrDefault(envESPNBaseURL, defaultESPNBaseURL),
		APIBaseURL: envOrDefault(envESPNAPIBaseURL, defaultESPNAPIBaseURL),
	}
}
