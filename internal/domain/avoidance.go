package domain

import "sort"

// MechanicPair is an unordered pair of distinct mechanics, always
// stored with Low < High. This is the sole canonical key avoidance
// data lives under; the "symmetric" map described in spec.md §3 is a
// convenience view over it, not a second copy of the data
// (spec.md §9: "Internally store a single canonical entry (min,max);
// the symmetric duplicate is a convenience for ad-hoc lookups, not a
// semantic requirement.").
type MechanicPair struct {
	Low  Mechanic
	High Mechanic
}

// NewMechanicPair orders m1, m2 into a canonical MechanicPair.
func NewMechanicPair(m1, m2 Mechanic) MechanicPair {
	if m1 <= m2 {
		return MechanicPair{Low: m1, High: m2}
	}
	return MechanicPair{Low: m2, High: m1}
}

// AvoidanceMap holds one penalty per unordered mechanic pair.
type AvoidanceMap struct {
	byPair map[MechanicPair]float64
}

// NewAvoidanceMap returns an empty AvoidanceMap.
func NewAvoidanceMap() AvoidanceMap {
	return AvoidanceMap{byPair: make(map[MechanicPair]float64)}
}

// Set records a penalty for the pair (m1, m2), regardless of the order
// the caller passes them in.
func (a AvoidanceMap) Set(m1, m2 Mechanic, penalty float64) {
	a.byPair[NewMechanicPair(m1, m2)] = penalty
}

// Lookup returns the penalty for (m1, m2) in either order, and whether
// an avoidance entry exists for that pair at all. This is the
// "symmetric" accessor of spec.md §3 — both (m1,m2) and (m2,m1) resolve
// to the same value through it.
func (a AvoidanceMap) Lookup(m1, m2 Mechanic) (float64, bool) {
	p, ok := a.byPair[NewMechanicPair(m1, m2)]
	return p, ok
}

// Pairs returns the canonical (Low < High) pairs with a nonzero
// penalty, in deterministic order (sorted by Low then High). Only
// these pairs get a linearization variable in the Model Builder
// (spec.md §4.2: "for each unordered avoidance pair (m1 < m2) with
// nonzero penalty").
func (a AvoidanceMap) Pairs() []MechanicPair {
	pairs := make([]MechanicPair, 0, len(a.byPair))
	for p, penalty := range a.byPair {
		if penalty != 0 {
			pairs = append(pairs, p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Low != pairs[j].Low {
			return pairs[i].Low < pairs[j].Low
		}
		return pairs[i].High < pairs[j].High
	})
	return pairs
}

// Len returns the number of distinct pairs recorded, including
// zero-penalty ones.
func (a AvoidanceMap) Len() int { return len(a.byPair) }
