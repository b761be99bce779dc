// Package rest exposes the Assignment Core over HTTP: POST /solve runs
// the full normalize → build → solve → extract pipeline against
// already-parsed rows and returns the resulting Solution; GET /health
// and GET /ready are plain liveness/readiness probes.
package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flightops/rostercore/internal/infrastructure/auth"
	"github.com/flightops/rostercore/internal/infrastructure/storage"
)

// Server is the REST surface. It is intentionally thin: every request
// runs the stateless pipeline directly and, when store is non-nil,
// records a SolveRun audit row after the fact.
type Server struct {
	auth   auth.Authenticator
	store  storage.Store
	cache  *idempotencyCache
	mux    *http.ServeMux
	logger *slog.Logger
}

func NewServer(authenticator auth.Authenticator, store storage.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		auth:   authenticator,
		store:  store,
		cache:  newIdempotencyCache(),
		mux:    http.NewServeMux(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /ready", s.handleReady)
	s.mux.Handle("POST /solve", s.requireAuth(http.HandlerFunc(s.handleSolve)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("request received", "method", r.Method, "path", r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth == nil {
			next.ServeHTTP(w, r)
			return
		}
		if _, err := s.auth.Authenticate(r); err != nil {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			writeJSONError(w, http.StatusServiceUnavailable, "storage not ready", err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}
