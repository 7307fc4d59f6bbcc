package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"football-fan-service/internal/calendar"
	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
	"football-fan-service/internal/metrics"
)

// MatchSource is the slice of the store the calendar job reads from.
type MatchSource interface {
	MatchesForTeam(team string) ([]domain.Match, error)
}

// CalendarJob publishes a team's stored matches to a calendar sink. Its Run
// method never returns an error; every outcome is folded into the
// BatchResult so callers at the CLI and HTTP boundaries can render it
// directly.
type CalendarJob struct {
	store   MatchSource
	sink    calendar.Sink
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewCalendarJob builds a calendar job over the given store and sink. The
// recorder may be nil.
func NewCalendarJob(store MatchSource, sink calendar.Sink, recorder *metrics.Recorder, logger *slog.Logger) *CalendarJob {
	return &CalendarJob{store: store, sink: sink, metrics: recorder, logger: logger}
}

// Run looks up the team's matches and creates one calendar event per match.
// Individual event failures are recorded and the batch continues; only a
// store or authentication failure fails the run as a whole.
func (j *CalendarJob) Run(ctx context.Context, team, calendarID string) calendar.BatchResult {
	result := calendar.BatchResult{Team: team}

	matches, err := j.store.MatchesForTeam(team)
	if err != nil {
		logging.Error(j.logger, "match lookup failed", err, logging.FieldTeam, team)
		result.Error = fmt.Sprintf("look up matches: %v", err)
		return result
	}
	result.MatchesFound = len(matches)

	if len(matches) == 0 {
		logging.Info(j.logger, "no stored matches for team", logging.FieldTeam, team)
		result.Success = true
		return result
	}

	if err := j.sink.Authenticate(ctx); err != nil {
		logging.Error(j.logger, "calendar authentication failed", err, logging.FieldTeam, team)
		result.Error = fmt.Sprintf("authenticate calendar: %v", err)
		return result
	}

	for _, match := range matches {
		link, err := j.sink.CreateMatchEvent(ctx, match, calendarID)
		j.metrics.RecordCalendarEvent(team, err)
		if err != nil {
			logging.Warn(j.logger, "event creation failed",
				logging.FieldTeam, team, "match_id", match.ID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("match %s: %v", match.ID, err))
			continue
		}
		result.EventsCreated++
		logging.Info(j.logger, "calendar event created",
			logging.FieldTeam, team, "match_id", match.ID, "event_link", link)
	}

	result.Success = true
	return result
}
