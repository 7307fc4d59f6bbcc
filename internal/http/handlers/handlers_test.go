package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/scheduler"
)

type stubScraper struct {
	upcoming []domain.UpcomingMatch
	schedule []domain.ScheduledMatch
	lastTeam string
}

func (s *stubScraper) UpcomingMatches(ctx context.Context, team string) []domain.UpcomingMatch {
	s.lastTeam = team
	return s.upcoming
}

func (s *stubScraper) Schedule(ctx context.Context, team string) []domain.ScheduledMatch {
	s.lastTeam = team
	return s.schedule
}

func TestUpAlwaysOK(t *testing.T) {
	h := NewHandler(&stubScraper{}, nil, nil)
	rec := httptest.NewRecorder()
	h.Up(rec, httptest.NewRequest(http.MethodGet, "/up", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestUpRejectsPost(t *testing.T) {
	h := NewHandler(&stubScraper{}, nil, nil)
	rec := httptest.NewRecorder()
	h.Up(rec, httptest.NewRequest(http.MethodPost, "/up", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyReflectsSchedulerStatus(t *testing.T) {
	status := scheduler.Status{}
	h := NewHandler(&stubScraper{}, nil, func() scheduler.Status { return status })

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first success, got %d", rec.Code)
	}

	status.LastSuccess = time.Now()
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after success, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h := NewHandler(&stubScraper{}, nil, nil)
	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without status source, got %d", rec.Code)
	}
}

func TestUpcomingMatchesServesScrape(t *testing.T) {
	scraper := &stubScraper{upcoming: []domain.UpcomingMatch{
		{
			Date:        "Sun, August 10",
			Competition: "Brasileirão",
			HomeTeam:    domain.TeamInfo{DisplayName: "Flamengo"},
			AwayTeam:    domain.TeamInfo{DisplayName: "Palmeiras"},
			Stadium:     "Maracanã",
		},
	}}
	h := NewHandler(scraper, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches/flamengo/upcoming", nil)
	req = mux.SetURLVars(req, map[string]string{"team_name": "flamengo"})
	rec := httptest.NewRecorder()
	h.UpcomingMatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if scraper.lastTeam != "flamengo" {
		t.Fatalf("unexpected team %q", scraper.lastTeam)
	}
	var matches []domain.UpcomingMatch
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(matches) != 1 || matches[0].HomeTeam.DisplayName != "Flamengo" {
		t.Fatalf("unexpected matches %+v", matches)
	}
}

func TestUpcomingMatchesEmptyResultIsEmptyList(t *testing.T) {
	h := NewHandler(&stubScraper{upcoming: []domain.UpcomingMatch{}}, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/matches/flamengo/upcoming", nil)
	req = mux.SetURLVars(req, map[string]string{"team_name": "flamengo"})
	rec := httptest.NewRecorder()
	h.UpcomingMatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestUpcomingMatchesMissingTeam(t *testing.T) {
	h := NewHandler(&stubScraper{}, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/matches//upcoming", nil)
	rec := httptest.NewRecorder()
	h.UpcomingMatches(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
