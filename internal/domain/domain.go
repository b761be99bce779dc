package domain

import "sort"

// Domain is the immutable, normalized bundle the Input Normalizer
// produces and everything downstream consumes. It is built once per
// build → solve → extract cycle and never mutated afterwards
// (spec.md §3 Lifecycles: "Domain values are immutable once normalized.").
type Domain struct {
	Mechanics []Mechanic
	Bases     []BaseID
	Periods   []PeriodID
	Shifts    []ShiftID

	Skills map[Mechanic]SkillSet
	Demand map[Slot]SlotDemand
	Cost   CostTable
	Avoid  AvoidanceMap

	// InspectorColumns is the sorted, duplicate-free set of inspector
	// column names that appear active (positive requirement) in at
	// least one slot. Derived once here so the Model Builder never
	// has to rescan every schedule row per constraint family.
	InspectorColumns []string
}

// New assembles a Domain from already-canonicalized pieces. Normalize
// is the only intended caller; it is exported so tests can build a
// Domain directly without going through row parsing.
func New(mechanics []Mechanic, bases []BaseID, periods []PeriodID, shifts []ShiftID,
	skills map[Mechanic]SkillSet, demand map[Slot]SlotDemand, cost CostTable, avoid AvoidanceMap) *Domain {

	d := &Domain{
		Mechanics: sortedMechanics(mechanics),
		Bases:     sortedBases(bases),
		Periods:   sortedPeriods(periods),
		Shifts:    sortedShifts(shifts),
		Skills:    skills,
		Demand:    demand,
		Cost:      cost,
		Avoid:     avoid,
	}
	d.InspectorColumns = d.activeInspectorColumns()
	return d
}

func (d *Domain) activeInspectorColumns() []string {
	seen := make(map[string]bool)
	for _, sd := range d.Demand {
		for col, count := range sd.Inspector {
			if count > 0 {
				seen[col] = true
			}
		}
	}
	cols := make([]string, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Slots returns every (base, period, shift) triple in the schedule, in
// deterministic (base, period, shift) order — the order constraint
// generation must iterate in for reproducible model dumps (spec.md §5).
func (d *Domain) Slots() []Slot {
	slots := make([]Slot, 0, len(d.Bases)*len(d.Periods)*len(d.Shifts))
	for _, b := range d.Bases {
		for _, g := range d.Periods {
			for _, s := range d.Shifts {
				slots = append(slots, Slot{Base: b, Period: g, Shift: s})
			}
		}
	}
	return slots
}

// MechanicsWithRegular returns, in sorted mechanic-id order, every
// mechanic holding the named regular skill. Precomputing this list per
// skill name (rather than scanning all mechanics inside every
// constraint loop) is the sparse-index optimization spec.md §9 calls
// for.
func (d *Domain) MechanicsWithRegular(skillName string) []Mechanic {
	var out []Mechanic
	for _, m := range d.Mechanics {
		if d.Skills[m].HasRegular(skillName) {
			out = append(out, m)
		}
	}
	return out
}

// MechanicsWithInspector returns, in sorted mechanic-id order, every
// mechanic holding the named inspector skill.
func (d *Domain) MechanicsWithInspector(col string) []Mechanic {
	var out []Mechanic
	for _, m := range d.Mechanics {
		if d.Skills[m].HasInspector(col) {
			out = append(out, m)
		}
	}
	return out
}

func sortedMechanics(in []Mechanic) []Mechanic {
	out := dedupe(in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedBases(in []BaseID) []BaseID {
	seen := make(map[BaseID]bool)
	var out []BaseID
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedPeriods(in []PeriodID) []PeriodID {
	seen := make(map[PeriodID]bool)
	var out []PeriodID
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedShifts(in []ShiftID) []ShiftID {
	seen := make(map[ShiftID]bool)
	var out []ShiftID
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func dedupe(in []Mechanic) []Mechanic {
	seen := make(map[Mechanic]bool, len(in))
	out := make([]Mechanic, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
