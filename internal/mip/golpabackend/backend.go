//go:build cgo

// Package golpabackend adapts github.com/costela/golpa (a cgo binding
// to lp_solve) to the mip.Backend interface. It is the Solver Driver's
// preferred backend (spec.md §4.3): golpa's AddConstraint(lower, upper,
// vars, coefs) and binary-variable API map onto mip.Model almost
// directly.
package golpabackend

import (
	"context"
	"fmt"
	"time"

	"github.com/costela/golpa"

	"github.com/flightops/rostercore/internal/mip"
)

// Name is the backend identifier used in Options.SolverPreference.
const Name = "golpa"

type backend struct{}

// New returns the golpa-backed mip.Backend. On a build where cgo is
// disabled, the !cgo variant of this package is compiled instead and
// its NewModel always fails — that is how the Solver Driver's preference list
// falls through to the pure-Go fallback without any runtime probing.
func New() mip.Backend {
	return backend{}
}

func (backend) Name() string { return Name }

func (backend) NewModel(name string, sense mip.Sense) (mip.Model, error) {
	dir := golpa.Minimize
	if sense == mip.Maximize {
		dir = golpa.Maximize
	}
	m, err := golpa.NewModel(name, dir)
	if err != nil {
		return nil, fmt.Errorf("golpabackend: constructing model: %w", err)
	}
	return &model{m: m, vars: make(map[string]*golpa.Variable)}, nil
}

type model struct {
	m    *golpa.Model
	vars map[string]*golpa.Variable
	n    int
}

func (md *model) SetSense(sense mip.Sense) {
	dir := golpa.Minimize
	if sense == mip.Maximize {
		dir = golpa.Maximize
	}
	md.m.SetDirection(dir)
}

func (md *model) AddBinaryVariable(name string) (mip.Var, error) {
	v, err := md.m.AddBinaryVariable(name)
	if err != nil {
		return nil, fmt.Errorf("golpabackend: adding binary variable %q: %w", name, err)
	}
	md.n++
	return variable{v: v, name: name}, nil
}

func (md *model) SetObjectiveCoefficient(v mip.Var, coef float64) {
	gv := v.(variable).v
	gv.SetObjectiveCoefficient(coef)
}

func (md *model) AddConstraint(lower, upper float64, vars []mip.Var, coefs []float64) error {
	gvars := make([]*golpa.Variable, len(vars))
	for i, v := range vars {
		gvars[i] = v.(variable).v
	}
	if err := md.m.AddConstraint(lower, upper, gvars, coefs); err != nil {
		return fmt.Errorf("golpabackend: adding constraint: %w", err)
	}
	return nil
}

func (md *model) Solve(ctx context.Context, opts mip.SolveOptions) (mip.Result, error) {
	if opts.TimeLimitSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeLimitSeconds*float64(time.Second)))
		defer cancel()
	}
	res, err := md.m.SolveWithContext(ctx)
	if err != nil {
		return &result{status: translateSolveError(err)}, nil
	}
	return &result{res: res, model: md}, nil
}

type variable struct {
	v    *golpa.Variable
	name string
}

func (v variable) Name() string { return v.name }

type result struct {
	res    *golpa.SolveResult
	model  *model
	status mip.Status
}

func (r *result) Status() mip.Status {
	if r.res == nil {
		return r.status
	}
	switch r.res.Status() {
	case golpa.SolutionOptimal:
		return mip.StatusOptimal
	case golpa.SolutionSuboptimal:
		return mip.StatusFeasible
	default:
		return mip.StatusAbnormal
	}
}

func (r *result) ObjectiveValue() float64 {
	if r.res == nil {
		return 0
	}
	return r.res.ObjectiveValue()
}

func (r *result) Value(v mip.Var) float64 {
	if r.res == nil {
		return 0
	}
	return r.res.Value(v.(variable).v)
}

func translateSolveError(err error) mip.Status {
	switch {
	case err == context.DeadlineExceeded:
		return mip.StatusNotSolved
	default:
		return mip.StatusInfeasible
	}
}
