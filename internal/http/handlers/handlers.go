package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gorilla/mux"

	"football-fan-service/internal/logging"
	"football-fan-service/internal/providers"
	"football-fan-service/internal/scheduler"
)

// Handler wires HTTP routes to the fixture scraper.
type Handler struct {
	scraper  providers.FixtureScraper
	logger   *slog.Logger
	statusFn func() scheduler.Status
}

// NewHandler constructs a Handler.
func NewHandler(scraper providers.FixtureScraper, logger *slog.Logger, statusFn func() scheduler.Status) *Handler {
	return &Handler{
		scraper:  scraper,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Up reports the service liveness. It answers 200 as long as the process
// serves requests.
func (h *Handler) Up(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic based on the scheduler's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// UpcomingMatches serves a team's upcoming fixtures from the scrape source.
// The scraper is tolerant, so an upstream outage renders as an empty list.
func (h *Handler) UpcomingMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	team := strings.TrimSpace(mux.Vars(r)["team_name"])
	if team == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing team name", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	matches := h.scraper.UpcomingMatches(r.Context(), team)
	logging.Info(logger, "served upcoming matches",
		logging.FieldTeam, team,
		logging.FieldCount, len(matches),
	)
	writeJSON(w, nethttp.StatusOK, matches, logger)
}
