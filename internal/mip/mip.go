// Package mip defines the abstract mixed-integer programming model the
// Model Builder emits into and the Solver Driver solves. Concrete
// backends (golpabackend, bnb) implement this interface; the Model
// Builder never imports a backend package, and the Solver Driver
// imports them only to fill a small registry it resolves a backend
// from by name (spec.md §4.3).
package mip

import "context"

// Sense is the optimization direction. The Assignment Core only ever
// minimizes (spec.md §4.2), but the interface carries both directions
// since every backend's native API does.
type Sense int

const (
	Minimize Sense = iota
	Maximize
)

// Status is a backend-independent solve outcome. Backends translate
// their own native status codes into one of these; callers never see
// a raw backend integer (spec.md §9: "Solver-status enum").
type Status int

const (
	StatusOptimal Status = iota
	StatusFeasible
	StatusInfeasible
	StatusUnbounded
	StatusAbnormal
	StatusNotSolved
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusAbnormal:
		return "ABNORMAL"
	default:
		return "NOT_SOLVED"
	}
}

// Var is an opaque handle to a decision variable, scoped to the model
// that created it. Backends pass around their own concrete type behind
// this interface (e.g. golpabackend wraps *golpa.Variable).
type Var interface {
	Name() string
}

// SolveOptions configures a single solve call.
type SolveOptions struct {
	// TimeLimitSeconds bounds solver wall-clock time. Zero means no limit.
	TimeLimitSeconds float64
}

// Result is a solved (or partially solved) model's outcome.
type Result interface {
	Status() Status
	ObjectiveValue() float64
	// Value returns v's value in this result. Binary variables may come
	// back as near-integer reals; callers threshold at > 0.5
	// (spec.md §4.4).
	Value(v Var) float64
}

// Model is the abstract MIP the Model Builder constructs into. Each
// backend's Model wraps its native problem representation.
type Model interface {
	SetSense(sense Sense)

	// AddBinaryVariable adds a 0/1 decision variable and returns its
	// handle. name is for diagnostics only and is passed to the
	// backend unchanged; no backend makes a duplicate name unique.
	AddBinaryVariable(name string) (Var, error)

	// SetObjectiveCoefficient sets v's coefficient in the objective.
	// Calling it more than once for the same v overwrites the
	// coefficient rather than accumulating it.
	SetObjectiveCoefficient(v Var, coef float64)

	// AddConstraint adds lower <= Σ coefs[i]*vars[i] <= upper. Use
	// math.Inf(-1) or math.Inf(1) to drop one side, matching a
	// one-sided (<= or >=) constraint.
	AddConstraint(lower, upper float64, vars []Var, coefs []float64) error

	// Solve runs the solver. ctx governs cancellation and, combined
	// with opts.TimeLimitSeconds, the wall-clock bound; backends that
	// cannot honor cancellation mid-solve still respect it between
	// solver calls.
	Solve(ctx context.Context, opts SolveOptions) (Result, error)
}

// Backend constructs fresh Model values. A backend that cannot be
// constructed in the running binary (e.g. a cgo-linked solver absent
// from the build) returns a non-nil error from NewModel so the Solver
// Driver can fall through to its next preference (spec.md §4.3).
type Backend interface {
	Name() string
	NewModel(name string, sense Sense) (Model, error)
}
