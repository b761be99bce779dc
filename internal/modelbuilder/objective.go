package modelbuilder

import (
	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip"
)

// addObjective sets the movement-cost and avoidance-penalty
// coefficients (spec.md §4.2). The movement term depends only on
// (mechanic, base) — never on period or shift, by design (spec.md §9
// "Cost shape").
func addObjective(model mip.Model, d *domain.Domain, x map[XKey]mip.Var, y map[YKey]mip.Var) {
	model.SetSense(mip.Minimize)

	for key, v := range x {
		model.SetObjectiveCoefficient(v, d.Cost.Get(key.Mechanic, key.Base))
	}
	for key, v := range y {
		penalty, _ := d.Avoid.Lookup(key.Pair.Low, key.Pair.High)
		model.SetObjectiveCoefficient(v, penalty)
	}
}
