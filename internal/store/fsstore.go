package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"football-fan-service/internal/domain"
	"football-fan-service/internal/logging"
)

const (
	competitionsFilename = "competitions.json"
	matchesFilename      = "matches.json"
)

// FSStore persists competitions and matches as indented JSON documents in a
// database directory. Every operation re-reads from disk so concurrent
// processes observe each other's writes; there is no in-process cache.
//
// SaveMatches is a read-modify-write of the whole matches document and is not
// atomic across processes: the last writer observed at save time wins.
// Callers in a multi-process deployment must serialize writes themselves.
type FSStore struct {
	dir    string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewFSStore constructs a store rooted at dir, creating the directory if
// absent. Missing documents are treated as empty, not as errors.
func NewFSStore(dir string, logger *slog.Logger) (*FSStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store: database directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating database directory: %w", err)
	}

	s := &FSStore{dir: dir, logger: logger}

	// Eager load validates that existing documents are readable.
	if _, err := s.loadCompetitions(); err != nil {
		return nil, err
	}
	if _, err := s.loadMatches(); err != nil {
		return nil, err
	}
	logging.Info(logger, "store initialized", slog.String("dir", dir))
	return s, nil
}

// Dir returns the database directory path.
func (s *FSStore) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// SaveCompetitions overwrites the competitions document wholesale.
func (s *FSStore) SaveCompetitions(competitions []domain.Competition) error {
	if s == nil {
		return fmt.Errorf("store not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if competitions == nil {
		competitions = []domain.Competition{}
	}
	if err := s.writeDocument(competitionsFilename, competitions); err != nil {
		return err
	}
	logging.Info(s.logger, "competitions saved", slog.Int(logging.FieldCount, len(competitions)))
	return nil
}

// SaveMatches replaces the stored matches for one competition id. The
// matches document is re-read first to pick up external writes.
func (s *FSStore) SaveMatches(matches []domain.Match, competitionID string) error {
	if s == nil {
		return fmt.Errorf("store not configured")
	}
	if competitionID == "" {
		return fmt.Errorf("store: competition id required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadMatches()
	if err != nil {
		return err
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	doc[competitionID] = matches
	if err := s.writeDocument(matchesFilename, doc); err != nil {
		return err
	}
	logging.Info(s.logger, "matches saved",
		slog.String(logging.FieldCompetition, competitionID),
		slog.Int(logging.FieldCount, len(matches)),
	)
	return nil
}

// Competitions returns the stored competitions list.
func (s *FSStore) Competitions() ([]domain.Competition, error) {
	if s == nil {
		return nil, fmt.Errorf("store not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCompetitions()
}

// MatchesForTeam collects every stored match where the team name is a
// case-insensitive substring of either side's name. Competitions missing a
// name or id are skipped, as are match groups keyed by an id absent from the
// competitions document. Ordering follows competition order then stored
// match order.
func (s *FSStore) MatchesForTeam(team string) ([]domain.Match, error) {
	if s == nil {
		return nil, fmt.Errorf("store not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	competitions, err := s.loadCompetitions()
	if err != nil {
		return nil, err
	}
	matchDoc, err := s.loadMatches()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(team)
	found := []domain.Match{}
	for _, competition := range competitions {
		if competition.ID == "" || competition.Name == "" {
			logging.Warn(s.logger, "skipping competition with missing name or id",
				slog.String(logging.FieldCompetition, competition.ID))
			continue
		}
		group, ok := matchDoc[competition.ID]
		if !ok {
			continue
		}
		for _, match := range group {
			home := strings.ToLower(match.HomeTeam.Name)
			away := strings.ToLower(match.AwayTeam.Name)
			if strings.Contains(home, needle) || strings.Contains(away, needle) {
				found = append(found, match)
			}
		}
	}
	logging.Info(s.logger, "team matches collected",
		slog.String(logging.FieldTeam, team),
		slog.Int(logging.FieldCount, len(found)),
	)
	return found, nil
}

func (s *FSStore) loadCompetitions() ([]domain.Competition, error) {
	var competitions []domain.Competition
	ok, err := s.readDocument(competitionsFilename, &competitions)
	if err != nil {
		return nil, err
	}
	if !ok || competitions == nil {
		return []domain.Competition{}, nil
	}
	return competitions, nil
}

func (s *FSStore) loadMatches() (map[string][]domain.Match, error) {
	var doc map[string][]domain.Match
	ok, err := s.readDocument(matchesFilename, &doc)
	if err != nil {
		return nil, err
	}
	if !ok || doc == nil {
		return map[string][]domain.Match{}, nil
	}
	return doc, nil
}

func (s *FSStore) readDocument(filename string, payload any) (bool, error) {
	path := filepath.Join(s.dir, filename)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("store: opening %s: %w", filename, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return false, fmt.Errorf("store: decoding %s: %w", filename, err)
	}
	return true, nil
}

// writeDocument writes indented JSON via a temp file and rename so readers
// never observe a partial document.
func (s *FSStore) writeDocument(filename string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", filename, err)
	}

	target := filepath.Join(s.dir, filename)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", filename, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("store: replacing %s: %w", filename, err)
	}
	return nil
}
