package modelbuilder

import (
	"fmt"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip"
)

// Build emits variables, the five constraint families, and the
// objective into model, which the caller (the Solver Driver) has
// already constructed from its chosen backend (spec.md §4.2, §4.3).
func Build(model mip.Model, d *domain.Domain) (*Built, error) {
	x, y, err := addVariables(model, d)
	if err != nil {
		return nil, err
	}
	if err := addConstraints(model, d, x, y); err != nil {
		return nil, fmt.Errorf("modelbuilder: %w", err)
	}
	addObjective(model, d, x, y)

	return &Built{Model: model, X: x, Y: y}, nil
}
