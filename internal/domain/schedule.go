package domain

import "fmt"

// Slot is the (base, period, shift) triple: the unit of demand
// (spec.md Glossary: Slot).
type Slot struct {
	Base   BaseID
	Period PeriodID
	Shift  ShiftID
}

func (s Slot) String() string {
	return fmt.Sprintf("b%s_g%s_s%s", s.Base, s.Period, s.Shift)
}

// SlotDemand is the per-slot demand derived from one schedule row: how
// many aircraft of each type are present, and how many inspectors each
// inspector column requires. A zero or absent entry means inactive —
// the Model Builder generates no constraint for it (spec.md §7: "a
// demand row whose aircraft column is zero generates no constraint,
// not a vacuously satisfied one").
type SlotDemand struct {
	Aircraft  map[AircraftType]int
	Inspector map[string]int // keyed by inspector column name, e.g. "aw139_af_inspec"
}

// NewSlotDemand returns an empty SlotDemand ready for the normalizer to
// populate from a parsed schedule row.
func NewSlotDemand() SlotDemand {
	return SlotDemand{
		Aircraft:  make(map[AircraftType]int),
		Inspector: make(map[string]int),
	}
}

// AircraftActive reports whether aircraft a has positive demand at this slot.
func (d SlotDemand) AircraftActive(a AircraftType) bool {
	return d.Aircraft[a] > 0
}

// InspectorActive reports whether inspector column col has positive
// requirement at this slot.
func (d SlotDemand) InspectorActive(col string) bool {
	return d.Inspector[col] > 0
}
