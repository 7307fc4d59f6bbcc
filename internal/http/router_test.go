package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/http/handlers"
)

type routerScraper struct {
	lastTeam string
}

func (s *routerScraper) UpcomingMatches(ctx context.Context, team string) []domain.UpcomingMatch {
	s.lastTeam = team
	return []domain.UpcomingMatch{}
}

func (s *routerScraper) Schedule(ctx context.Context, team string) []domain.ScheduledMatch {
	return []domain.ScheduledMatch{}
}

func TestRouterRoutes(t *testing.T) {
	scraper := &routerScraper{}
	handler := handlers.NewHandler(scraper, nil, nil)
	router := NewRouter(handler, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/up", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("/up: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/matches/flamengo/upcoming", nil))
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("/matches: expected 200, got %d", rec.Code)
	}
	if scraper.lastTeam != "flamengo" {
		t.Fatalf("expected path variable extracted, got %q", scraper.lastTeam)
	}

	// Admin route is absent when no admin handler is mounted.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/admin/load", nil))
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("/admin/load: expected 404 without admin handler, got %d", rec.Code)
	}
}

func TestRouterMountsAdminWhenConfigured(t *testing.T) {
	handler := handlers.NewHandler(&routerScraper{}, nil, nil)
	admin := handlers.NewAdminHandler(nil, "secret", nil)
	router := NewRouter(handler, admin)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/admin/load", nil))
	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401 from mounted admin route, got %d", rec.Code)
	}
}
