package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/infrastructure/monitoring"
	"github.com/flightops/rostercore/internal/infrastructure/storage"
	"github.com/flightops/rostercore/internal/normalizer"
	"github.com/flightops/rostercore/internal/solverdriver"
)

// solveRequest is the inbound shape of an already-parsed input
// bundle: the four row slices the Input Normalizer expects, plus the
// Solver Driver options spec.md §6 exposes.
type solveRequest struct {
	Skills    []normalizer.SkillRow     `json:"skills"`
	Schedule  []normalizer.ScheduleRow  `json:"schedule"`
	Cost      []normalizer.CostRow      `json:"cost"`
	Avoidance []normalizer.AvoidanceRow `json:"avoidance"`
	Options   struct {
		SolverPreference []string `json:"solverPreference"`
		TimeLimitSeconds float64  `json:"timeLimitSeconds"`
	} `json:"options"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 16<<20))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "could not read request body", err)
		return
	}

	key := fingerprint(body)
	if cached, ok := s.cache.get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	var req solveRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed request body", err)
		return
	}

	ctx, endNormalize := monitoring.StartStage(r.Context(), "normalize",
		attribute.Int("mechanics", len(req.Skills)), attribute.Int("slots", len(req.Schedule)))
	d, err := normalizer.Normalize(req.Skills, req.Schedule, req.Cost, req.Avoidance)
	endNormalize(err)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "schema error", err)
		return
	}

	sol, err := solverdriver.Solve(ctx, d, solverdriver.Options{
		SolverPreference: req.Options.SolverPreference,
		TimeLimitSeconds: req.Options.TimeLimitSeconds,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if domain.IsCode(err, domain.ErrSolverUnavailable) {
			status = http.StatusServiceUnavailable
		}
		writeJSONError(w, status, "solve failed", err)
		return
	}

	s.cache.put(key, sol)
	s.recordRun(r, key, d, sol)
	writeJSON(w, http.StatusOK, sol)
}

// recordRun persists an audit row. Failures are logged, not surfaced
// to the caller — the solve already succeeded and that result is what
// matters to them.
func (s *Server) recordRun(r *http.Request, inputFingerprint string, d *domain.Domain, sol *domain.Solution) {
	if s.store == nil {
		return
	}
	payload, err := msgpack.Marshal(sol)
	if err != nil {
		s.logger.Error("failed to encode solution payload", "error", err)
		return
	}
	run := &storage.SolveRun{
		ID:               uuid.New(),
		InputFingerprint: inputFingerprint,
		Backend:          "", // the Solver Driver doesn't report which backend won; left blank
		Status:           sol.Status,
		ObjectiveValue:   sol.ObjectiveValue,
		SolveSeconds:     sol.SolveSeconds,
		SolutionPayload:  payload,
		CreatedAt:        time.Now(),
	}
	if err := s.store.SaveRun(r.Context(), run); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Error("failed to save solve run", "error", err)
	}
}
