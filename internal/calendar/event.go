package calendar

import (
	"fmt"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"

	"football-fan-service/internal/domain"
)

const (
	eventDuration    = 2 * time.Hour
	eventColorID     = "1"
	eventDescription = "Powered by Football Fan Service"
)

// BuildEvent renders a stored match as a calendar event: a two-hour slot at
// kickoff with popup reminders at 30 and 60 minutes. Match metadata rides
// along in the event's private extended properties.
func BuildEvent(match domain.Match) (*gcalendar.Event, error) {
	if match.UTCDate == "" {
		return nil, fmt.Errorf("match %s has no kickoff date", match.ID)
	}
	kickoff, err := match.KickoffTime()
	if err != nil {
		return nil, fmt.Errorf("parse kickoff for match %s: %w", match.ID, err)
	}
	kickoff = kickoff.UTC()

	venue := match.Venue
	if venue == "" {
		venue = domain.DefaultVenue
	}

	return &gcalendar.Event{
		Summary: fmt.Sprintf("⚽️ %s: %s x %s",
			match.Competition.Name, match.HomeTeam.Name, match.AwayTeam.Name),
		Description: eventDescription,
		Location:    venue,
		ColorId:     eventColorID,
		Start: &gcalendar.EventDateTime{
			DateTime: kickoff.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &gcalendar.EventDateTime{
			DateTime: kickoff.Add(eventDuration).Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &gcalendar.EventReminders{
			UseDefault: false,
			Overrides: []*gcalendar.EventReminder{
				{Method: "popup", Minutes: 30},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ExtendedProperties: &gcalendar.EventExtendedProperties{
			Private: map[string]string{
				"matchId":     match.ID,
				"competition": match.Competition.Name,
				"homeTeam":    match.HomeTeam.Name,
				"awayTeam":    match.AwayTeam.Name,
			},
		},
	}, nil
}
