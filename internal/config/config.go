package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	DatabaseDir  string
	Competitions []string
	AdminToken   string
	LoadInterval Duration
	LoadOnBoot   bool
	FootballData FootballDataConfig
	ESPN         ESPNConfig
	Calendar     CalendarConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		DatabaseDir:  envOrDefault(envDatabaseDir, defaultDatabaseDir),
		Competitions: listEnvOrDefault(envCompetitions, defaultCompetitions),
		AdminToken:   envOrDefault(envAdminToken, ""),
		LoadInterval: durationEnvOrDefault(envLoadInterval, defaultLoadInterval),
		LoadOnBoot:   boolEnvOrDefault(envLoadOnBoot, false),
		FootballData: loadFootballData(),
		ESPN:         loadESPN(),
		Calendar:     loadCalendar(),
		Metrics:      loadMetrics(),
	}
}
