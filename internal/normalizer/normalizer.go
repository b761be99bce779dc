package normalizer

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/flightops/rostercore/internal/domain"
)

// Normalize canonicalizes the four raw row sets into a domain.Domain:
// sorted, duplicate-free ID sequences, per-mechanic skill sets,
// per-slot demand, a cost table, and a symmetric avoidance map
// (spec.md §4.1).
//
// avoidanceRows may be nil or empty; any row that fails validation
// causes the entire avoidance table to be discarded — logged as a
// warning, never fatal (spec.md §7: kAvoidanceParse).
func Normalize(skillRows []SkillRow, scheduleRows []ScheduleRow, costRows []CostRow, avoidanceRows []AvoidanceRow) (*domain.Domain, error) {
	mechanicSet := make(map[domain.Mechanic]bool)
	skills := make(map[domain.Mechanic]domain.SkillSet)

	for _, row := range skillRows {
		m := domain.Mechanic(row.MechanicID)
		if _, dup := skills[m]; dup {
			return nil, domain.NewRosterError(domain.ErrInputSchema,
				fmt.Sprintf("duplicate mechanic_id %d in skills table", row.MechanicID), nil)
		}
		set := domain.NewSkillSet()
		for col, v := range row.Regular {
			if v != 0 {
				set.Regular[col] = true
			}
		}
		for col, v := range row.Inspector {
			if v != 0 {
				set.Inspector[col] = true
			}
		}
		skills[m] = set
		mechanicSet[m] = true
	}

	cost := make(domain.CostTable)
	for _, row := range costRows {
		m := domain.Mechanic(row.MechanicID)
		mechanicSet[m] = true
		for letter, amount := range row.ByLetter {
			b, ok := domain.BaseIDForLetter(letter)
			if !ok {
				continue
			}
			cost[domain.MechanicBase{Mechanic: m, Base: b}] = amount
		}
	}

	baseSet := make(map[domain.BaseID]bool)
	periodSet := make(map[domain.PeriodID]bool)
	shiftSet := make(map[domain.ShiftID]bool)
	demand := make(map[domain.Slot]domain.SlotDemand)

	for _, row := range scheduleRows {
		slot := domain.Slot{
			Base:   domain.BaseID(row.BaseID),
			Period: domain.PeriodID(row.Period),
			Shift:  domain.ShiftID(row.Shift),
		}
		if _, dup := demand[slot]; dup {
			return nil, domain.NewRosterError(domain.ErrInputSchema,
				fmt.Sprintf("duplicate schedule row for slot %s", slot), nil)
		}
		baseSet[slot.Base] = true
		periodSet[slot.Period] = true
		shiftSet[slot.Shift] = true

		sd := domain.NewSlotDemand()
		for _, a := range domain.AircraftTypes {
			if count, ok := row.Aircraft[string(a)]; ok {
				sd.Aircraft[a] = count
			}
		}
		for col, count := range row.Inspector {
			sd.Inspector[col] = count
		}
		demand[slot] = sd
	}

	for key := range cost {
		baseSet[key.Base] = true
	}

	mechanics := make([]domain.Mechanic, 0, len(mechanicSet))
	for m := range mechanicSet {
		mechanics = append(mechanics, m)
	}
	bases := make([]domain.BaseID, 0, len(baseSet))
	for b := range baseSet {
		bases = append(bases, b)
	}
	periods := make([]domain.PeriodID, 0, len(periodSet))
	for g := range periodSet {
		periods = append(periods, g)
	}
	shifts := make([]domain.ShiftID, 0, len(shiftSet))
	for s := range shiftSet {
		shifts = append(shifts, s)
	}

	avoid := buildAvoidance(mechanicSet, avoidanceRows)

	return domain.New(mechanics, bases, periods, shifts, skills, demand, cost, avoid), nil
}

// buildAvoidance validates and inserts every avoidance row. Any single
// invalid row discards the whole table — logged, never fatal
// (spec.md §4.1, §7: kAvoidanceParse).
func buildAvoidance(mechanicSet map[domain.Mechanic]bool, rows []AvoidanceRow) domain.AvoidanceMap {
	avoid := domain.NewAvoidanceMap()
	for _, row := range rows {
		m1 := domain.Mechanic(row.MechanicID)
		m2 := domain.Mechanic(row.AvoidMechanicID)
		if err := validateAvoidanceRow(mechanicSet, m1, m2, row.Penalty); err != nil {
			log.Warn().Err(err).Msg("could not load avoidance list, treating as empty")
			return domain.NewAvoidanceMap()
		}
		avoid.Set(m1, m2, row.Penalty)
	}
	return avoid
}

func validateAvoidanceRow(mechanicSet map[domain.Mechanic]bool, m1, m2 domain.Mechanic, penalty float64) error {
	if m1 == m2 {
		return fmt.Errorf("mechanic %s cannot avoid itself", m1)
	}
	if !mechanicSet[m1] || !mechanicSet[m2] {
		return fmt.Errorf("avoidance pair (%s,%s) references an unknown mechanic", m1, m2)
	}
	if penalty < 0 {
		return fmt.Errorf("avoidance penalty for (%s,%s) must be non-negative, got %v", m1, m2, penalty)
	}
	return nil
}
