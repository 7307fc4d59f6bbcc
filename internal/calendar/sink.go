// Package calendar turns stored matches into calendar events and defines the
// sink contract implemented by the Google Calendar client.
package calendar

import (
	"context"
	"errors"
	"fmt"

	"football-fan-service/internal/domain"
)

// ErrReadOnlyAuth is returned for write operations when the sink was
// authenticated with a credential that can only read public calendars.
var ErrReadOnlyAuth = errors.New("calendar credential is read-only")

// AuthError reports that no usable calendar credential could be established.
type AuthError struct {
	Attempted []string
	Err       error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("calendar authentication failed (tried %v): %v", e.Attempted, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// AsAuthError unwraps err as an AuthError if it is one.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

// Sink creates events in an external calendar.
type Sink interface {
	// Authenticate establishes credentials. It must be called before any
	// event operation.
	Authenticate(ctx context.Context) error
	// CreateMatchEvent inserts an event for the match into the named
	// calendar and returns the created event's link.
	CreateMatchEvent(ctx context.Context, match domain.Match, calendarID string) (string, error)
}

// BatchResult summarizes one add-to-calendar run for a team.
type BatchResult struct {
	Success       bool     `json:"success"`
	Team          string   `json:"team"`
	MatchesFound  int      `json:"matches_found"`
	EventsCreated int      `json:"events_created"`
	Errors        []string `json:"errors,omitempty"`
	Error         string   `json:"error,omitempty"`
}
