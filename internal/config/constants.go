package config

import "time"

const (
	envPort         = "PORT"
	envDatabaseDir  = "DATABASE_DIR"
	envCompetitions = "COMPETITIONS_TO_LOAD"
	envAdminToken   = "ADMIN_TOKEN"
	envLoadInterval = "LOAD_INTERVAL"
	envLoadOnBoot   = "LOAD_ON_BOOT"

	defaultPort         = "8080"
	defaultDatabaseDir  = "db"
	defaultLoadInterval = 24 * time.Hour
)

var defaultCompetitions = []string{
	"Campeonato Brasileiro Série A",
	"Copa Libertadores",
}
