package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const fixturesBlob = `{
	"page": {"content": {"fixtures": {"events": [
		{
			"date": "Sun, August 10",
			"completed": false,
			"league": "Brasileirão",
			"link": "/football/match?gameId=733360",
			"status": {"detail": "8/10 - 4:00 PM"},
			"venue": {"fullName": "Maracanã"},
			"competitors": [
				{"abbrev": "FLA", "displayName": "Flamengo", "links": "/soccer/team/_/id/819", "logo": "https://a.espncdn.com/819.png", "isHome": true},
				{"abbrev": "PAL", "displayName": "Palmeiras", "links": "https://www.espn.com/soccer/team/_/id/2029", "logo": "https://a.espncdn.com/2029.png", "isHome": false}
			]
		},
		{
			"date": "Sun, August 17",
			"completed": true,
			"status": {"detail": "FT"},
			"venue": {},
			"competitors": [
				{"displayName": "Santos", "isHome": false}
			]
		}
	]}}}
}`

func fixturesPage(blob string) string {
	return fmt.Sprintf(`<!doctype html>
<html><head>
<script>var unrelated = 1;</script>
<script>
window['__CONFIG__'] = {"feature": true};
window['__espnfitt__'] = %s;
</script>
</head><body></body></html>`, blob)
}

func TestUpcomingMatchesExtractsFixtures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/soccer/team/fixtures/_/id/819/FLAMENGO" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(fixturesPage(fixturesBlob)))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	matches := client.UpcomingMatches(context.Background(), "flamengo")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.Competition != "Brasileirão" || first.Stadium != "Maracanã" || first.DateDetail != "8/10 - 4:00 PM" {
		t.Fatalf("unexpected match %+v", first)
	}
	if first.HomeTeam.DisplayName != "Flamengo" || first.AwayTeam.DisplayName != "Palmeiras" {
		t.Fatalf("home/away split wrong: %+v", first)
	}
	// Relative links are qualified against the base URL; absolute ones pass through.
	if first.Link != srv.URL+"/football/match?gameId=733360" {
		t.Fatalf("unexpected match link %q", first.Link)
	}
	if first.HomeTeam.Link != srv.URL+"/soccer/team/_/id/819" {
		t.Fatalf("unexpected home link %q", first.HomeTeam.Link)
	}
	if first.AwayTeam.Link != "https://www.espn.com/soccer/team/_/id/2029" {
		t.Fatalf("unexpected away link %q", first.AwayTeam.Link)
	}

	second := matches[1]
	if !second.Completed || second.Competition != "Unknown" || second.Stadium != "TBD" {
		t.Fatalf("expected defaults for sparse event, got %+v", second)
	}
	if second.HomeTeam.DisplayName != "Unknown" || second.AwayTeam.DisplayName != "Santos" {
		t.Fatalf("unexpected teams %+v", second)
	}
}

func TestFixturesDataOnNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	data := client.FixturesData(context.Background(), "Flamengo")
	if len(data) != 0 {
		t.Fatalf("expected empty data on 404, got %v", data)
	}
	if matches := client.ParseFixtures(data); len(matches) != 0 {
		t.Fatalf("expected no matches from empty data, got %+v", matches)
	}
}

func TestFixturesDataWithoutConfigScript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><script>var x = 1;</script></head></html>`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if data := client.FixturesData(context.Background(), "Flamengo"); len(data) != 0 {
		t.Fatalf("expected empty data without config script, got %v", data)
	}
}

func TestExtractConfigBlobsNamesEveryAssignment(t *testing.T) {
	client := NewClient(Config{})
	data := client.extractConfigBlobs([]byte(fixturesPage(`{"page": {}}`)))

	if len(data) != 2 {
		t.Fatalf("expected 2 blobs, got %d: %v", len(data), data)
	}
	for _, name := range []string{"__CONFIG__", "__espnfitt__"} {
		raw, ok := data[name]
		if !ok {
			t.Fatalf("missing blob %s", name)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("blob %s does not decode: %v", name, err)
		}
	}
}

func TestParseFixturesWithoutFittBlob(t *testing.T) {
	client := NewClient(Config{})
	data := FixturesData{"__CONFIG__": json.RawMessage(`{}`)}
	if matches := client.ParseFixtures(data); len(matches) != 0 {
		t.Fatalf("expected no matches without fixtures blob, got %+v", matches)
	}
}

func TestUpcomingMatchesUnknownTeam(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused.invalid"})
	if matches := client.UpcomingMatches(context.Background(), "Barcelona"); len(matches) != 0 {
		t.Fatalf("expected no matches for unknown team, got %+v", matches)
	}
}
