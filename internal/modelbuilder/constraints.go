package modelbuilder

import (
	"fmt"
	"math"
	"strings"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip"
)

func addConstraints(model mip.Model, d *domain.Domain, x map[XKey]mip.Var, y map[YKey]mip.Var) error {
	if err := addSingleAssignment(model, d, x); err != nil {
		return err
	}
	if err := addSkillCoverage(model, d, x); err != nil {
		return err
	}
	if err := addInspectorCoverage(model, d, x); err != nil {
		return err
	}
	if err := addNoSelfInspection(model, d, x); err != nil {
		return err
	}
	if err := addAvoidanceLinearization(model, d, x, y); err != nil {
		return err
	}
	return nil
}

// addSingleAssignment is constraint family 1: each mechanic appears in
// at most one assignment (spec.md §4.2, invariant 2).
func addSingleAssignment(model mip.Model, d *domain.Domain, x map[XKey]mip.Var) error {
	for _, m := range d.Mechanics {
		var vars []mip.Var
		var coefs []float64
		for _, slot := range d.Slots() {
			vars = append(vars, x[XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}])
			coefs = append(coefs, 1)
		}
		if err := model.AddConstraint(math.Inf(-1), 1, vars, coefs); err != nil {
			return fmt.Errorf("modelbuilder: single assignment constraint for mechanic %s: %w", m, err)
		}
	}
	return nil
}

// addSkillCoverage is constraint family 2: every slot with positive
// aircraft demand needs at least one mechanic per discipline holding
// that aircraft's regular skill (spec.md §4.2, invariant 3). The
// aircraft count itself never scales the right-hand side — see
// spec.md §9 "Coverage RHS = 1".
func addSkillCoverage(model mip.Model, d *domain.Domain, x map[XKey]mip.Var) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		for _, a := range domain.AircraftTypes {
			if !sd.AircraftActive(a) {
				continue
			}
			for _, disc := range domain.Disciplines {
				skillName := domain.SkillName(a, disc)
				candidates := d.MechanicsWithRegular(skillName)
				vars := make([]mip.Var, len(candidates))
				coefs := make([]float64, len(candidates))
				for i, m := range candidates {
					vars[i] = x[XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}]
					coefs[i] = 1
				}
				if err := model.AddConstraint(1, math.Inf(1), vars, coefs); err != nil {
					return fmt.Errorf("modelbuilder: skill coverage %s at %s: %w", skillName, slot, err)
				}
			}
		}
	}
	return nil
}

// addInspectorCoverage is constraint family 3: every slot with a
// positive inspector requirement needs at least one mechanic holding
// that inspector skill (spec.md §4.2, invariant 4).
func addInspectorCoverage(model mip.Model, d *domain.Domain, x map[XKey]mip.Var) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		for _, col := range d.InspectorColumns {
			if !sd.InspectorActive(col) {
				continue
			}
			candidates := d.MechanicsWithInspector(col)
			vars := make([]mip.Var, len(candidates))
			coefs := make([]float64, len(candidates))
			for i, m := range candidates {
				vars[i] = x[XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}]
				coefs[i] = 1
			}
			if err := model.AddConstraint(1, math.Inf(1), vars, coefs); err != nil {
				return fmt.Errorf("modelbuilder: inspector coverage %s at %s: %w", col, slot, err)
			}
		}
	}
	return nil
}

// addNoSelfInspection is constraint family 4: an inspector placed at a
// slot requires some other mechanic with the matching regular skill
// also placed there — but only when such an "other" mechanic exists in
// the pool at all (spec.md §4.2, §9 "Self-inspection conditional": an
// acknowledged gap, not silently tightened here).
func addNoSelfInspection(model mip.Model, d *domain.Domain, x map[XKey]mip.Var) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		for _, col := range d.InspectorColumns {
			if !sd.InspectorActive(col) {
				continue
			}
			regularName := strings.TrimSuffix(col, "_inspec")
			regularHolders := d.MechanicsWithRegular(regularName)

			for _, inspector := range d.MechanicsWithInspector(col) {
				var others []domain.Mechanic
				for _, m := range regularHolders {
					if m != inspector {
						others = append(others, m)
					}
				}
				if len(others) == 0 {
					continue
				}

				vars := make([]mip.Var, 0, 1+len(others))
				coefs := make([]float64, 0, 1+len(others))
				vars = append(vars, x[XKey{Mechanic: inspector, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}])
				coefs = append(coefs, 1)
				for _, m := range others {
					vars = append(vars, x[XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}])
					coefs = append(coefs, -1)
				}
				if err := model.AddConstraint(math.Inf(-1), 0, vars, coefs); err != nil {
					return fmt.Errorf("modelbuilder: no-self-inspection %s at %s: %w", col, slot, err)
				}
			}
		}
	}
	return nil
}

// addAvoidanceLinearization is constraint family 5: forces each y
// variable to equal the product of its two x variables at integer
// solutions (spec.md §4.2).
func addAvoidanceLinearization(model mip.Model, d *domain.Domain, x map[XKey]mip.Var, y map[YKey]mip.Var) error {
	for _, pair := range d.Avoid.Pairs() {
		for _, slot := range d.Slots() {
			yv := y[YKey{Pair: pair, Slot: slot}]
			x1 := x[XKey{Mechanic: pair.Low, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}]
			x2 := x[XKey{Mechanic: pair.High, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}]

			if err := model.AddConstraint(math.Inf(-1), 0, []mip.Var{yv, x1}, []float64{1, -1}); err != nil {
				return fmt.Errorf("modelbuilder: avoidance y<=x1 for %v at %s: %w", pair, slot, err)
			}
			if err := model.AddConstraint(math.Inf(-1), 0, []mip.Var{yv, x2}, []float64{1, -1}); err != nil {
				return fmt.Errorf("modelbuilder: avoidance y<=x2 for %v at %s: %w", pair, slot, err)
			}
			if err := model.AddConstraint(-1, math.Inf(1), []mip.Var{yv, x1, x2}, []float64{1, -1, -1}); err != nil {
				return fmt.Errorf("modelbuilder: avoidance y>=x1+x2-1 for %v at %s: %w", pair, slot, err)
			}
		}
	}
	return nil
}
