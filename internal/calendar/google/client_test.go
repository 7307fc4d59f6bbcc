package google

import (
	"context"
	"errors"
	"testing"

	"football-fan-service/internal/calendar"
	"football-fan-service/internal/domain"
)

func TestAuthenticateWithoutSources(t *testing.T) {
	client := NewClient(Config{})
	err := client.Authenticate(context.Background())
	if _, ok := calendar.AsAuthError(err); !ok {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestAuthenticateFallsThroughToAPIKey(t *testing.T) {
	client := NewClient(Config{
		CredentialsPath: "/nonexistent/credentials.json",
		APIKey:          "test-key",
	})
	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("expected api key fallback to succeed, got %v", err)
	}
	if !client.readOnly {
		t.Fatal("api key auth must mark the client read-only")
	}
}

func TestAPIKeyAuthRejectsWrites(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key"})
	if err := client.Authenticate(context.Background()); err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	match := domain.Match{
		ID:      "1",
		UTCDate: "2025-08-10T19:00:00Z",
	}
	_, err := client.CreateMatchEvent(context.Background(), match, "primary")
	if !errors.Is(err, calendar.ErrReadOnlyAuth) {
		t.Fatalf("expected read-only rejection, got %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "primary", "evt"); !errors.Is(err, calendar.ErrReadOnlyAuth) {
		t.Fatalf("expected read-only rejection, got %v", err)
	}
}

func TestUnauthenticatedClientRefusesOperations(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.CreateMatchEvent(context.Background(), domain.Match{}, "primary"); err == nil {
		t.Fatal("expected error before authentication")
	}
	if _, err := client.Calendars(context.Background()); err == nil {
		t.Fatal("expected error before authentication")
	}
}
