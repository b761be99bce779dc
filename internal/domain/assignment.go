package domain

// Assignment is a chosen placement of one mechanic at one
// (base, period, shift) slot (spec.md Glossary: Assignment).
type Assignment struct {
	Mechanic Mechanic
	Base     BaseID
	Period   PeriodID
	Shift    ShiftID
	Cost     float64
}

// Slot returns the slot this assignment occupies.
func (a Assignment) Slot() Slot {
	return Slot{Base: a.Base, Period: a.Period, Shift: a.Shift}
}

// ShiftName returns the presentation-only shift name ("Day"/"Night").
func (a Assignment) ShiftName() string {
	return ShiftName(a.Shift)
}

// Solution is the outcome of one build → solve → extract cycle.
type Solution struct {
	Assignments         []Assignment
	MovementCost        float64
	AvoidancePenalty    float64
	ObjectiveValue      float64
	Status              SolveStatus
	SolveSeconds        float64
	UnassignedMechanics int
}

// AssignmentsAt returns the assignments occupying a given slot, in the
// order they appear in Assignments (which is itself deterministic —
// see modelbuilder/extractor for the sort order).
func (s Solution) AssignmentsAt(slot Slot) []Assignment {
	var out []Assignment
	for _, a := range s.Assignments {
		if a.Slot() == slot {
			out = append(out, a)
		}
	}
	return out
}
