// Package extractor reads a solved mip.Model back into a
// domain.Solution, validates it against the invariants of spec.md §3,
// and accounts for movement cost and avoidance penalty from the
// domain's own tables rather than the solver's raw objective
// (spec.md §4.4).
package extractor

import (
	"fmt"
	"strings"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip"
	"github.com/flightops/rostercore/internal/modelbuilder"
)

// assignedThreshold is the cutoff above which a binary variable's
// (possibly near-integer, LP-relaxation-flavored) value is treated as
// chosen (spec.md §4.4).
const assignedThreshold = 0.5

// Extract reads built's variables out of result and produces a
// verified domain.Solution. If status is not Optimal or Feasible, it
// returns an empty-assignment Solution carrying that status without
// touching result's values (spec.md §4.4).
func Extract(built *modelbuilder.Built, d *domain.Domain, result mip.Result, status domain.SolveStatus) (*domain.Solution, error) {
	if !status.IsSolved() {
		return &domain.Solution{Status: status}, nil
	}

	var assignments []domain.Assignment
	for _, m := range d.Mechanics {
		for _, slot := range d.Slots() {
			v, ok := built.X[modelbuilder.XKey{Mechanic: m, Base: slot.Base, Period: slot.Period, Shift: slot.Shift}]
			if !ok || result.Value(v) <= assignedThreshold {
				continue
			}
			assignments = append(assignments, domain.Assignment{
				Mechanic: m,
				Base:     slot.Base,
				Period:   slot.Period,
				Shift:    slot.Shift,
				Cost:     d.Cost.Get(m, slot.Base),
			})
		}
	}

	var movementCost float64
	for _, a := range assignments {
		movementCost += a.Cost
	}

	var avoidancePenalty float64
	for _, pair := range d.Avoid.Pairs() {
		for _, slot := range d.Slots() {
			yv, ok := built.Y[modelbuilder.YKey{Pair: pair, Slot: slot}]
			if !ok || result.Value(yv) <= assignedThreshold {
				continue
			}
			penalty, _ := d.Avoid.Lookup(pair.Low, pair.High)
			avoidancePenalty += penalty
		}
	}

	sol := &domain.Solution{
		Assignments:         assignments,
		MovementCost:        movementCost,
		AvoidancePenalty:    avoidancePenalty,
		ObjectiveValue:      movementCost + avoidancePenalty,
		Status:              status,
		UnassignedMechanics: len(d.Mechanics) - len(assignments),
	}

	if err := validate(d, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

// validate checks invariants 2-5 of spec.md §3 against the extracted
// solution, guarding against solver bugs or precision issues
// (spec.md §4.4, §7: kInvariantViolation).
func validate(d *domain.Domain, sol *domain.Solution) error {
	if err := validateSingleAssignment(sol); err != nil {
		return err
	}
	if err := validateSkillCoverage(d, sol); err != nil {
		return err
	}
	if err := validateInspectorCoverage(d, sol); err != nil {
		return err
	}
	if err := validateNoSelfInspection(d, sol); err != nil {
		return err
	}
	return nil
}

func validateSingleAssignment(sol *domain.Solution) error {
	counts := make(map[domain.Mechanic]int)
	for _, a := range sol.Assignments {
		counts[a.Mechanic]++
		if counts[a.Mechanic] > 1 {
			return domain.NewRosterError(domain.ErrInvariantViolation,
				fmt.Sprintf("mechanic %s has more than one assignment", a.Mechanic), nil)
		}
	}
	return nil
}

func validateSkillCoverage(d *domain.Domain, sol *domain.Solution) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		assigned := sol.AssignmentsAt(slot)
		for _, a := range domain.AircraftTypes {
			if !sd.AircraftActive(a) {
				continue
			}
			for _, disc := range domain.Disciplines {
				skillName := domain.SkillName(a, disc)
				if !anyHoldsRegular(d, assigned, skillName) {
					return domain.NewRosterError(domain.ErrInvariantViolation,
						fmt.Sprintf("slot %s missing skill coverage for %s", slot, skillName), nil)
				}
			}
		}
	}
	return nil
}

func validateInspectorCoverage(d *domain.Domain, sol *domain.Solution) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		assigned := sol.AssignmentsAt(slot)
		for _, col := range d.InspectorColumns {
			if !sd.InspectorActive(col) {
				continue
			}
			if !anyHoldsInspector(d, assigned, col) {
				return domain.NewRosterError(domain.ErrInvariantViolation,
					fmt.Sprintf("slot %s missing inspector coverage for %s", slot, col), nil)
			}
		}
	}
	return nil
}

func validateNoSelfInspection(d *domain.Domain, sol *domain.Solution) error {
	for _, slot := range d.Slots() {
		sd := d.Demand[slot]
		assigned := sol.AssignmentsAt(slot)
		for _, col := range d.InspectorColumns {
			if !sd.InspectorActive(col) {
				continue
			}
			regularName := strings.TrimSuffix(col, "_inspec")
			for _, a := range assigned {
				if !d.Skills[a.Mechanic].HasInspector(col) {
					continue
				}
				if !anyOtherPoolMemberHoldsRegular(d, a.Mechanic, regularName) {
					continue // no eligible "other" exists at all; spec.md §9 acknowledged gap
				}
				if !anyOtherAssigneeHoldsRegular(d, assigned, a.Mechanic, regularName) {
					return domain.NewRosterError(domain.ErrInvariantViolation,
						fmt.Sprintf("mechanic %s self-inspects %s at slot %s", a.Mechanic, col, slot), nil)
				}
			}
		}
	}
	return nil
}

func anyHoldsRegular(d *domain.Domain, assigned []domain.Assignment, skillName string) bool {
	for _, a := range assigned {
		if d.Skills[a.Mechanic].HasRegular(skillName) {
			return true
		}
	}
	return false
}

func anyHoldsInspector(d *domain.Domain, assigned []domain.Assignment, col string) bool {
	for _, a := range assigned {
		if d.Skills[a.Mechanic].HasInspector(col) {
			return true
		}
	}
	return false
}

func anyOtherPoolMemberHoldsRegular(d *domain.Domain, self domain.Mechanic, regularName string) bool {
	for _, m := range d.Mechanics {
		if m != self && d.Skills[m].HasRegular(regularName) {
			return true
		}
	}
	return false
}

func anyOtherAssigneeHoldsRegular(d *domain.Domain, assigned []domain.Assignment, self domain.Mechanic, regularName string) bool {
	for _, a := range assigned {
		if a.Mechanic != self && d.Skills[a.Mechanic].HasRegular(regularName) {
			return true
		}
	}
	return false
}
