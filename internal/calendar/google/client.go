// Package google implements the calendar sink against the Google Calendar
// API. Credentials are resolved in priority order: application default
// credentials, a service account key file, an OAuth client with a stored
// token, and finally an API key. An API key can only read public calendars,
// so a sink authenticated that way refuses event writes.
package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	googleauth "golang.org/x/oauth2/google"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"football-fan-service/internal/calendar"
	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
)

// Config selects the credential sources the client may use.
type Config struct {
	// UseADC enables application default credentials as the first choice.
	UseADC bool
	// ServiceAccountPath points at a service account key file.
	ServiceAccountPath string
	// CredentialsPath points at an OAuth client secret file; TokenPath is
	// the stored token obtained from a prior consent flow.
	CredentialsPath string
	TokenPath       string
	// APIKey is the read-only fallback.
	APIKey string

	Logger *slog.Logger
}

// Client is a calendar.Sink backed by the Google Calendar API.
type Client struct {
	cfg      Config
	logger   *slog.Logger
	service  *gcalendar.Service
	readOnly bool
}

// NewClient constructs an unauthenticated client. Call Authenticate before
// using it.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg, logger: cfg.Logger}
}

// Authenticate walks the credential sources in priority order and keeps the
// first one that yields a working service.
func (c *Client) Authenticate(ctx context.Context) error {
	var attempted []string
	var lastErr error

	try := func(name string, build func() (*gcalendar.Service, bool, error)) bool {
		attempted = append(attempted, name)
		service, readOnly, err := build()
		if err != nil {
			lastErr = err
			logging.Warn(c.logger, "calendar credential source failed",
				"auth_method", name, "error", err)
			return false
		}
		c.service = service
		c.readOnly = readOnly
		logging.Info(c.logger, "calendar authenticated", "auth_method", name)
		return true
	}

	if c.cfg.UseADC {
		if try("application_default", func() (*gcalendar.Service, bool, error) {
			service, err := gcalendar.NewService(ctx, option.WithScopes(gcalendar.CalendarScope))
			return service, false, err
		}) {
			return nil
		}
	}
	if c.cfg.ServiceAccountPath != "" {
		if try("service_account", func() (*gcalendar.Service, bool, error) {
			service, err := gcalendar.NewService(ctx,
				option.WithCredentialsFile(c.cfg.ServiceAccountPath),
				option.WithScopes(gcalendar.CalendarScope))
			return service, false, err
		}) {
			return nil
		}
	}
	if c.cfg.CredentialsPath != "" {
		if try("oauth_client", func() (*gcalendar.Service, bool, error) {
			service, err := c.oauthService(ctx)
			return service, false, err
		}) {
			return nil
		}
	}
	if c.cfg.APIKey != "" {
		if try("api_key", func() (*gcalendar.Service, bool, error) {
			service, err := gcalendar.NewService(ctx, option.WithAPIKey(c.cfg.APIKey))
			return service, true, err
		}) {
			return nil
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no credential source configured")
	}
	return &calendar.AuthError{Attempted: attempted, Err: lastErr}
}

// oauthService builds a service from an OAuth client secret plus a token
// stored by a prior consent flow. There is no interactive flow here; a
// missing token is an error telling the operator to run the consent step.
func (c *Client) oauthService(ctx context.Context) (*gcalendar.Service, error) {
	secret, err := os.ReadFile(c.cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth client secret: %w", err)
	}
	oauthCfg, err := googleauth.ConfigFromJSON(secret, gcalendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse oauth client secret: %w", err)
	}

	token, err := readToken(c.cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth token (run the consent flow first): %w", err)
	}

	return gcalendar.NewService(ctx,
		option.WithHTTPClient(oauthCfg.Client(ctx, token)))
}

func readToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

// CreateMatchEvent inserts a calendar event for the match and returns its
// HTML link.
func (c *Client) CreateMatchEvent(ctx context.Context, match domain.Match, calendarID string) (string, error) {
	if c.service == nil {
		return "", errors.New("calendar sink is not authenticated")
	}
	if c.readOnly {
		return "", calendar.ErrReadOnlyAuth
	}

	event, err := calendar.BuildEvent(match)
	if err != nil {
		return "", err
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event for match %s: %w", match.ID, err)
	}
	return created.HtmlLink, nil
}

// DeleteEvent removes an event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if c.service == nil {
		return errors.New("calendar sink is not authenticated")
	}
	if c.readOnly {
		return calendar.ErrReadOnlyAuth
	}
	if err := c.service.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}
	return nil
}

// Calendars lists the calendars visible to the authenticated credential.
func (c *Client) Calendars(ctx context.Context) ([]*gcalendar.CalendarListEntry, error) {
	if c.service == nil {
		return nil, errors.New("calendar sink is not authenticated")
	}
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	return list.Items, nil
}
