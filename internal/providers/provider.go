package providers

import (
	"context"

	"football-fan-service/internal/domain"
)

// CompetitionProvider fetches competitions and their normalized matches from
// a structured data API. Implementations may cache the competition list for
// the lifetime of the instance; callers needing fresh data construct a new
// provider.
type CompetitionProvider interface {
	Competitions(ctx context.Context) ([]domain.Competition, error)
	// MatchesForMonth resolves competitionName by exact match against the
	// provider's competition list and fetches that competition's matches for
	// the given calendar month. Month must be in [1,12].
	MatchesForMonth(ctx context.Context, competitionName string, month, year int) ([]domain.Match, error)
}

// FixtureScraper fetches a team's fixtures from a scraped source. Both
// methods are tolerant-by-design: upstream failures degrade to empty results
// rather than errors.
type FixtureScraper interface {
	UpcomingMatches(ctx context.Context, team string) []domain.UpcomingMatch
	Schedule(ctx context.Context, team string) []domain.ScheduledMatch
}
