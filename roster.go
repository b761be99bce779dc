// Package rostercore is the public entry point into the mechanics
// roster Assignment Core: canonicalize tabular rows into a typed
// domain, synthesize a 0/1 MIP, drive a solver, and return a verified
// Solution. Callers that only need the pipeline import this package;
// everything under internal/ is plumbing they never have to touch.
package rostercore

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/infrastructure/monitoring"
	"github.com/flightops/rostercore/internal/normalizer"
	"github.com/flightops/rostercore/internal/solverdriver"
)

// Re-exported row types so a caller never has to import internal/normalizer directly.
type (
	SkillRow     = normalizer.SkillRow
	ScheduleRow  = normalizer.ScheduleRow
	CostRow      = normalizer.CostRow
	AvoidanceRow = normalizer.AvoidanceRow
)

// Re-exported outcome types.
type (
	Solution    = domain.Solution
	Assignment  = domain.Assignment
	SolveStatus = domain.SolveStatus
)

// Re-exported solve status values (spec.md §6).
const (
	StatusOptimal    = domain.StatusOptimal
	StatusFeasible   = domain.StatusFeasible
	StatusInfeasible = domain.StatusInfeasible
	StatusUnbounded  = domain.StatusUnbounded
	StatusAbnormal   = domain.StatusAbnormal
	StatusNotSolved  = domain.StatusNotSolved
)

// Options configures a single solve call.
type Options struct {
	// SolverPreference is tried in order; defaults to the golpa (native)
	// backend falling back to the pure-Go branch-and-bound backend.
	SolverPreference []string
	// TimeLimitSeconds bounds solver wall-clock time. Zero means no limit.
	TimeLimitSeconds float64
}

// Solve runs the full normalize → build → solve → extract pipeline
// over the four raw row sets and returns the resulting Solution.
func Solve(ctx context.Context, skills []SkillRow, schedule []ScheduleRow, cost []CostRow, avoidance []AvoidanceRow, opts Options) (*Solution, error) {
	ctx, endNormalize := monitoring.StartStage(ctx, "normalize",
		attribute.Int("mechanics", len(skills)), attribute.Int("slots", len(schedule)))
	d, err := normalizer.Normalize(skills, schedule, cost, avoidance)
	endNormalize(err)
	if err != nil {
		return nil, err
	}
	return solverdriver.Solve(ctx, d, solverdriver.Options{
		SolverPreference: opts.SolverPreference,
		TimeLimitSeconds: opts.TimeLimitSeconds,
	})
}
