// Package jobs holds the service's two units of work: loading the match
// database from the competitions API and publishing a team's fixtures to a
// calendar.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
	"football-fan-service/internal/providers"
)

// LoadStore is the slice of the store the load job writes to.
type LoadStore interface {
	SaveCompetitions(competitions []domain.Competition) error
	SaveMatches(matches []domain.Match, competitionID string) error
}

// LoadJob refreshes the stored competitions and the matches of the
// configured competitions for one calendar month.
type LoadJob struct {
	provider     providers.CompetitionProvider
	store        LoadStore
	competitions []string
	logger       *slog.Logger
}

// NewLoadJob builds a load job covering the given competition names.
func NewLoadJob(provider providers.CompetitionProvider, store LoadStore, competitions []string, logger *slog.Logger) *LoadJob {
	return &LoadJob{
		provider:     provider,
		store:        store,
		competitions: competitions,
		logger:       logger,
	}
}

// Run refreshes the database for the current month.
func (j *LoadJob) Run(ctx context.Context) error {
	now := time.Now().UTC()
	return j.RunMonth(ctx, int(now.Month()), now.Year())
}

// RunMonth refreshes the database for the given month. A competitions fetch
// failure aborts the run; a configured competition that the provider does not
// know is logged and skipped. Each competition's matches replace its stored
// entry wholesale; there is no rollback on partial failure.
func (j *LoadJob) RunMonth(ctx context.Context, month, year int) error {
	started := time.Now()
	competitions, err := j.provider.Competitions(ctx)
	if err != nil {
		return fmt.Errorf("fetch competitions: %w", err)
	}
	if err := j.store.SaveCompetitions(competitions); err != nil {
		return fmt.Errorf("save competitions: %w", err)
	}

	for _, wanted := range j.competitions {
		competition, ok := resolveCompetition(competitions, wanted)
		if !ok {
			logging.Warn(j.logger, "configured competition not offered upstream",
				logging.FieldCompetition, wanted)
			continue
		}

		matches, err := j.provider.MatchesForMonth(ctx, competition.Name, month, year)
		if err != nil {
			return fmt.Errorf("fetch matches for %q: %w", competition.Name, err)
		}
		if err := j.store.SaveMatches(matches, competition.ID); err != nil {
			return fmt.Errorf("save matches for %q: %w", competition.Name, err)
		}
		logging.Info(j.logger, "competition matches loaded",
			logging.FieldCompetition, competition.Name,
			logging.FieldMonth, month,
			logging.FieldYear, year,
			logging.FieldCount, len(matches))
	}

	logging.Info(j.logger, "database load finished",
		logging.FieldMonth, month,
		logging.FieldYear, year,
		logging.FieldDurationMS, time.Since(started).Milliseconds())
	return nil
}

// resolveCompetition matches a configured name against the provider's list by
// substring, so "Libertadores" finds "Copa Libertadores". The match is
// case-sensitive: configured names must use the provider's casing.
func resolveCompetition(competitions []domain.Competition, wanted string) (domain.Competition, bool) {
	for _, competition := range competitions {
		if strings.Contains(competition.Name, wanted) {
			return competition, true
		}
	}
	return domain.Competition{}, false
}
