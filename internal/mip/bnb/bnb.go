// Package bnb is a pure-Go branch-and-bound solver for 0/1 integer
// programs. It needs no native library and is always buildable, which
// makes it the Assignment Core's CBC-class fallback backend
// (spec.md §4.3, §9) — the one exercised by the test suite, since the
// preferred golpabackend needs cgo and lp_solve to even link.
//
// It is not competitive with a real branch-and-cut solver on large
// instances; it is sized for the modest instance counts spec.md §5
// describes (a few dozen mechanics, a handful of bases/periods/shifts).
package bnb

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/flightops/rostercore/internal/mip"
)

// Name is the backend identifier used in Options.SolverPreference.
const Name = "bnb"

type backendImpl struct{}

// New returns the pure-Go branch-and-bound mip.Backend.
func New() mip.Backend {
	return backendImpl{}
}

func (backendImpl) Name() string { return Name }

func (backendImpl) NewModel(name string, sense mip.Sense) (mip.Model, error) {
	return &model{name: name, sense: sense}, nil
}

type variable struct {
	id   int
	name string
}

func (v *variable) Name() string { return v.name }

type constraint struct {
	lower, upper float64
	idx          []int
	coefs        []float64
}

type model struct {
	name        string
	sense       mip.Sense
	vars        []*variable
	objCoef     []float64
	constraints []constraint
}

func (m *model) SetSense(sense mip.Sense) { m.sense = sense }

func (m *model) AddBinaryVariable(name string) (mip.Var, error) {
	v := &variable{id: len(m.vars), name: name}
	m.vars = append(m.vars, v)
	m.objCoef = append(m.objCoef, 0)
	return v, nil
}

func (m *model) SetObjectiveCoefficient(v mip.Var, coef float64) {
	vv, ok := v.(*variable)
	if !ok {
		return
	}
	m.objCoef[vv.id] = coef
}

func (m *model) AddConstraint(lower, upper float64, vars []mip.Var, coefs []float64) error {
	if len(vars) != len(coefs) {
		return fmt.Errorf("bnb: inconsistent number of variables and coefficients: %d != %d", len(vars), len(coefs))
	}
	idx := make([]int, len(vars))
	for i, v := range vars {
		vv, ok := v.(*variable)
		if !ok {
			return fmt.Errorf("bnb: variable %v was not created by this model", v)
		}
		idx[i] = vv.id
	}
	m.constraints = append(m.constraints, constraint{
		lower: lower,
		upper: upper,
		idx:   idx,
		coefs: append([]float64(nil), coefs...),
	})
	return nil
}

func (m *model) Solve(ctx context.Context, opts mip.SolveOptions) (mip.Result, error) {
	if opts.TimeLimitSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(opts.TimeLimitSeconds*float64(time.Second)))
		defer cancel()
	}

	negate := m.sense == mip.Maximize
	obj := m.objCoef
	if negate {
		obj = make([]float64, len(m.objCoef))
		for i, c := range m.objCoef {
			obj[i] = -c
		}
	}

	s := &search{
		ctx:         ctx,
		n:           len(m.vars),
		obj:         obj,
		constraints: m.constraints,
		assigned:    make([]int8, len(m.vars)),
		best:        nil,
		bestObj:     math.Inf(1),
	}
	for i := range s.assigned {
		s.assigned[i] = -1
	}

	s.run()

	if s.best == nil {
		if ctx.Err() != nil {
			return &result{status: mip.StatusNotSolved}, nil
		}
		return &result{status: mip.StatusInfeasible}, nil
	}

	objective := s.bestObj
	if negate {
		objective = -objective
	}

	status := mip.StatusOptimal
	if s.truncated {
		status = mip.StatusFeasible
	}

	values := make([]float64, len(s.best))
	for i, v := range s.best {
		values[i] = float64(v)
	}

	return &result{status: status, objective: objective, values: values}, nil
}

type result struct {
	status    mip.Status
	objective float64
	values    []float64
}

func (r *result) Status() mip.Status      { return r.status }
func (r *result) ObjectiveValue() float64 { return r.objective }
func (r *result) Value(v mip.Var) float64 {
	vv, ok := v.(*variable)
	if !ok || vv.id >= len(r.values) {
		return 0
	}
	return r.values[vv.id]
}
