package footballdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"football-fan-service/internal/providers"
)

const competitionsPayload = `{
	"competitions": [
		{"id": 2013, "name": "Campeonato Brasileiro Série A", "code": "BSA"},
		{"id": 2152, "name": "Copa Libertadores", "code": "CLI"}
	]
}`

func TestCompetitionsAreCachedPerInstance(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/competitions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get(authHeader) != "test-key" {
			t.Fatalf("missing auth header")
		}
		calls.Add(1)
		w.Write([]byte(competitionsPayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})

	for i := 0; i < 3; i++ {
		competitions, err := client.Competitions(context.Background())
		if err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
		if len(competitions) != 2 || competitions[0].ID != "2013" {
			t.Fatalf("unexpected competitions %+v", competitions)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single upstream call, got %d", calls.Load())
	}

	// A new instance has a fresh cache.
	fresh := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	if _, err := fresh.Competitions(context.Background()); err != nil {
		t.Fatalf("fresh fetch failed: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected second upstream call from new instance, got %d", calls.Load())
	}
}

func TestCompetitionsUpstreamErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("restricted resource"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.Competitions(context.Background())
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if upErr.StatusCode != http.StatusForbidden || upErr.Body != "restricted resource" {
		t.Fatalf("unexpected upstream error %+v", upErr)
	}
}

func TestMatchesForMonthValidatesMonth(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused.invalid"})

	for _, month := range []int{0, 13, -1} {
		_, err := client.MatchesForMonth(context.Background(), "Campeonato Brasileiro Série A", month, 2025)
		if _, ok := providers.AsInvalidArgumentError(err); !ok {
			t.Fatalf("month %d: expected invalid-argument error, got %v", month, err)
		}
	}
}

func TestMatchesForMonthResolvesCompetitionExactly(t *testing.T) {
	var matchesPath string
	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/competitions":
			w.Write([]byte(competitionsPayload))
		default:
			matchesPath = r.URL.Path
			query = map[string]string{
				"season":   r.URL.Query().Get("season"),
				"dateFrom": r.URL.Query().Get("dateFrom"),
				"dateTo":   r.URL.Query().Get("dateTo"),
			}
			w.Write([]byte(`{"matches": [
				{"id": 1, "utcDate": "2025-02-08T19:00:00Z",
				 "homeTeam": {"name": "CR Flamengo"}, "awayTeam": {"name": "Santos FC"}}
			]}`))
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	matches, err := client.MatchesForMonth(context.Background(), "Campeonato Brasileiro Série A", 2, 2025)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(matches) != 1 || matches[0].HomeTeam.Name != "CR Flamengo" {
		t.Fatalf("unexpected matches %+v", matches)
	}
	if matchesPath != "/competitions/2013/matches" {
		t.Fatalf("unexpected path %s", matchesPath)
	}
	if query["season"] != "2025" || query["dateFrom"] != "2025-02-01" || query["dateTo"] != "2025-02-31" {
		t.Fatalf("unexpected query %v", query)
	}
}

func TestMatchesForMonthUnknownCompetition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(competitionsPayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	// Substring of a real name must not resolve; the lookup is exact.
	_, err := client.MatchesForMonth(context.Background(), "Brasileiro", 2, 2025)
	nfErr, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nfErr.Name != "Brasileiro" {
		t.Fatalf("unexpected not-found %+v", nfErr)
	}
}

func TestMatchesForMonthUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/competitions" {
			w.Write([]byte(competitionsPayload))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.MatchesForMonth(context.Background(), "Copa Libertadores", 8, 2025)
	upErr, ok := providers.AsUpstreamError(err)
	if !ok || upErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected upstream error with status, got %v", err)
	}
}
