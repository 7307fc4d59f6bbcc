package server

import (
	"context"
	"net/http"
)

// httpServer is the slice of *http.Server the run loop depends on, kept as
// an interface so tests can drive startup and shutdown without binding
// sockets.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// netHTTPServer adapts *http.Server: ListenAndServe and Shutdown are
// promoted, while Addr and Handler lift the struct fields into methods.
type netHTTPServer struct {
	*http.Server
}

func (s netHTTPServer) Addr() string          { return s.Server.Addr }
func (s netHTTPServer) Handler() http.Handler { return s.Server.Handler }
