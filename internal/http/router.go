// Package http builds the service's HTTP router.
package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"football-fan-service/internal/http/handlers"
)

// NewRouter registers the HTTP routes. The admin route is only mounted when
// an admin handler is provided.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/up", handler.Up).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/matches/{team_name}/upcoming", handler.UpcomingMatches).Methods(nethttp.MethodGet)
	if admin != nil {
		r.HandleFunc("/admin/load", admin.Load).Methods(nethttp.MethodPost)
	}
	return r
}
