package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"football-fan-service/internal/logging"
)

// LoadRunner runs the database load for a given month.
type LoadRunner interface {
	RunMonth(ctx context.Context, month, year int) error
}

// AdminHandler exposes admin-only endpoints (on-demand database load).
type AdminHandler struct {
	loader LoadRunner
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(loader LoadRunner, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		loader: loader,
		token:  token,
		logger: logger,
	}
}

// Load refreshes the stored competitions and matches for the requested month
// (defaults to the current one). Guarded by ADMIN_TOKEN; returns 401 if
// missing/invalid.
func (h *AdminHandler) Load(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", r.RemoteAddr),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.loader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "load job not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	now := time.Now().UTC()
	month, year := int(now.Month()), now.Year()

	var err error
	if raw := strings.TrimSpace(r.URL.Query().Get("month")); raw != "" {
		if month, err = strconv.Atoi(raw); err != nil || month < 1 || month > 12 {
			logging.Warn(logger, "admin load invalid month", slog.String("month", raw))
			writeError(w, r, http.StatusBadRequest, "invalid month", logger)
			return
		}
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
		if year, err = strconv.Atoi(raw); err != nil {
			logging.Warn(logger, "admin load invalid year", slog.String("year", raw))
			writeError(w, r, http.StatusBadRequest, "invalid year", logger)
			return
		}
	}

	if err := h.loader.RunMonth(r.Context(), month, year); err != nil {
		logging.Warn(logger, "admin load failed",
			slog.Int(logging.FieldMonth, month),
			slog.Int(logging.FieldYear, year),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to load database", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"month":  month,
		"year":   year,
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin load finished",
		slog.Int(logging.FieldMonth, month),
		slog.Int(logging.FieldYear, year),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
