// Package solverdriver owns the build → solve → extract cycle
// (spec.md §3's Lifecycles, §4.3): it resolves a backend from a small
// preference-ordered registry, builds the model against it, enforces
// the time limit, and hands the solved model to the extractor.
package solverdriver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/extractor"
	"github.com/flightops/rostercore/internal/infrastructure/monitoring"
	"github.com/flightops/rostercore/internal/mip"
	"github.com/flightops/rostercore/internal/mip/bnb"
	"github.com/flightops/rostercore/internal/mip/golpabackend"
	"github.com/flightops/rostercore/internal/modelbuilder"
)

// Options configures a single solve call (spec.md §4.3, §6).
type Options struct {
	// SolverPreference is tried in order; the first backend that
	// constructs successfully is used. Defaults to
	// [golpabackend.Name, bnb.Name] when empty.
	SolverPreference []string
	// TimeLimitSeconds bounds solver wall-clock time. Zero means no limit.
	TimeLimitSeconds float64
}

func defaultPreference() []string {
	return []string{golpabackend.Name, bnb.Name}
}

func registry() map[string]mip.Backend {
	return map[string]mip.Backend{
		golpabackend.Name: golpabackend.New(),
		bnb.Name:          bnb.New(),
	}
}

// Solve runs the full build → solve → extract cycle for d and returns
// the resulting Solution. Backend construction failures are skipped in
// preference order; if none construct, it fails with
// kSolverUnavailable (spec.md §7).
func Solve(ctx context.Context, d *domain.Domain, opts Options) (*domain.Solution, error) {
	preference := opts.SolverPreference
	if len(preference) == 0 {
		preference = defaultPreference()
	}
	backends := registry()

	var model mip.Model
	var chosen string
	var constructErrs []error
	for _, name := range preference {
		backend, ok := backends[name]
		if !ok {
			constructErrs = append(constructErrs, fmt.Errorf("unknown solver backend %q", name))
			continue
		}
		m, err := backend.NewModel("roster", mip.Minimize)
		if err != nil {
			slog.Warn("solver backend unavailable, trying next preference", "backend", name, "error", err)
			constructErrs = append(constructErrs, err)
			continue
		}
		model, chosen = m, name
		break
	}
	if model == nil {
		return nil, domain.NewRosterError(domain.ErrSolverUnavailable,
			"no configured solver backend could be constructed", joinErrs(constructErrs))
	}

	buildCtx, endBuild := monitoring.StartStage(ctx, "build",
		attribute.Int("mechanics", len(d.Mechanics)), attribute.String("backend", chosen))
	built, err := modelbuilder.Build(model, d)
	endBuild(err)
	if err != nil {
		return nil, err
	}

	solveCtx, endSolve := monitoring.StartStage(buildCtx, "solve", attribute.String("backend", chosen))
	start := time.Now()
	result, err := built.Model.Solve(solveCtx, mip.SolveOptions{TimeLimitSeconds: opts.TimeLimitSeconds})
	elapsed := time.Since(start).Seconds()
	endSolve(err)
	if err != nil {
		return nil, fmt.Errorf("solverdriver: backend %s: %w", chosen, err)
	}

	status := translateStatus(result.Status())
	_, endExtract := monitoring.StartStage(solveCtx, "extract", attribute.String("status", string(status)))
	sol, err := extractor.Extract(built, d, result, status)
	endExtract(err)
	if err != nil {
		return nil, err
	}
	sol.SolveSeconds = elapsed
	return sol, nil
}

func translateStatus(s mip.Status) domain.SolveStatus {
	switch s {
	case mip.StatusOptimal:
		return domain.StatusOptimal
	case mip.StatusFeasible:
		return domain.StatusFeasible
	case mip.StatusInfeasible:
		return domain.StatusInfeasible
	case mip.StatusUnbounded:
		return domain.StatusUnbounded
	case mip.StatusAbnormal:
		return domain.StatusAbnormal
	default:
		return domain.StatusNotSolved
	}
}

func joinErrs(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	msg := errs[0].Error()
	for _, e := range errs[1:] {
		msg += "; " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
