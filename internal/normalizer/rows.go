// Package normalizer canonicalizes raw tabular rows into the typed
// domain.Domain everything downstream consumes. It is the only layer
// that ever looks at a bare column name; past this package every value
// is a typed Go structure (spec.md §9: "Dynamic tabular inputs → typed
// domain").
package normalizer

// SkillRow is one row of the mechanic skills table: the certifications
// a single mechanic holds. Regular and Inspector are keyed by the
// input column name (e.g. "aw139_af", "aw139_af_inspec"); an absent key
// means the mechanic does not hold that skill.
type SkillRow struct {
	MechanicID int            `json:"mechanicId"`
	Regular    map[string]int `json:"regular"`
	Inspector  map[string]int `json:"inspector"`
}

// ScheduleRow is one row of the base schedule table: the demand at a
// single (base, period, shift) slot. Aircraft is keyed by aircraft tag
// ("aw139", "h175", "sk92"); Inspector is keyed by inspector column
// name ("aw139_af_inspec", ...). A missing or non-positive entry means
// inactive.
type ScheduleRow struct {
	BaseID    int            `json:"baseId"`
	Period    int            `json:"period"`
	Shift     int            `json:"shift"`
	Aircraft  map[string]int `json:"aircraft"`
	Inspector map[string]int `json:"inspector"`
}

// CostRow is one row of the cost matrix: a mechanic's relocation cost
// to each base, keyed by the base's display letter ("A", "B", "C").
type CostRow struct {
	MechanicID int                `json:"mechanicId"`
	ByLetter   map[string]float64 `json:"byLetter"`
}

// AvoidanceRow is one row of the optional avoidance table: a penalty
// for co-assigning two specific mechanics to the same slot.
type AvoidanceRow struct {
	MechanicID      int     `json:"mechanicId"`
	AvoidMechanicID int     `json:"avoidMechanicId"`
	Penalty         float64 `json:"penalty"`
}
