package domain

// CostTable maps (mechanic, base) to a non-negative relocation cost.
// A missing entry is zero (spec.md §3: "Missing entry ⇒ 0").
type CostTable map[MechanicBase]float64

// MechanicBase is the key type for CostTable.
type MechanicBase struct {
	Mechanic Mechanic
	Base     BaseID
}

// Get returns the cost of placing m at b, defaulting to zero.
func (t CostTable) Get(m Mechanic, b BaseID) float64 {
	return t[MechanicBase{Mechanic: m, Base: b}]
}
