package config

const (
	envFootballDataAPIKey  = "FOOTBALL_DATA_API_KEY"
	envFootballDataBaseURL = "FOOTBALL_DATA_API_BASE_URL"

	defaultFootballDataBaseURL = "https://api.football-data.org/v4"
)

// FootballDataConfig controls the structured competitions API client.
type FootballDataConfig struct {
	APIKey  string
	BaseURL string
}

func loadFootballData() FootballDataConfig {
	return FootballDataConfig{
		APIKey:  envOrDefault(envFootballDataAPIKey, ""),
		BaseURL: envOrDefault(envFootballDataBaseURL, defaultFootballDataBaseURL),
	}
}
