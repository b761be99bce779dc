//go:build !cgo

package golpabackend

import (
	"fmt"

	"github.com/flightops/rostercore/internal/mip"
)

// Name is the backend identifier used in Options.SolverPreference.
const Name = "golpa"

type backend struct{}

// New returns a backend whose NewModel always fails: golpa is a cgo
// binding to lp_solve, and this file is only compiled into a
// CGO_ENABLED=0 build. Its presence is what lets the Solver Driver's
// preference list fall through to the pure-Go bnb backend without any
// runtime probing (spec.md §4.3).
func New() mip.Backend {
	return backend{}
}

func (backend) Name() string { return Name }

func (backend) NewModel(name string, sense mip.Sense) (mip.Model, error) {
	return nil, fmt.Errorf("golpabackend: unavailable in a cgo-disabled build")
}
