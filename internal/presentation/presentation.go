// Package presentation exposes pure derived attributes over
// (domain.Domain, domain.Assignment) so a renderer never has to
// reimplement roster display logic (spec.md §4.5). It is a direct
// distillation of the original workbook generator's get_position and
// has_skill_type helpers.
package presentation

import (
	"strings"

	"github.com/flightops/rostercore/internal/domain"
)

// DisplayPosition classifies a as Inspector, Avionic, or Mechanic.
// slotAssignments is every assignment sharing a's slot, including a
// itself — needed to tell whether a genuinely fills an inspector role
// (an active requirement at that slot, with some other co-assigned
// mechanic covering the regular counterpart).
func DisplayPosition(d *domain.Domain, slotAssignments []domain.Assignment, a domain.Assignment) domain.Position {
	if actsAsInspector(d, slotAssignments, a) {
		return domain.PositionInspector
	}

	hasAirframe := HasDiscipline(d, a.Mechanic, domain.DisciplineAirframe)
	hasEngine := HasDiscipline(d, a.Mechanic, domain.DisciplineEngine)
	hasAvionics := HasDiscipline(d, a.Mechanic, domain.DisciplineAvionics)

	if hasAvionics && !(hasAirframe && hasEngine) {
		return domain.PositionAvionic
	}
	return domain.PositionMechanic
}

// HasDiscipline reports whether m holds disc's regular skill for at
// least one aircraft type.
func HasDiscipline(d *domain.Domain, m domain.Mechanic, disc domain.SkillDiscipline) bool {
	for _, a := range domain.AircraftTypes {
		if d.Skills[m].HasRegular(domain.SkillName(a, disc)) {
			return true
		}
	}
	return false
}

func actsAsInspector(d *domain.Domain, slotAssignments []domain.Assignment, a domain.Assignment) bool {
	slot := a.Slot()
	sd := d.Demand[slot]
	for _, col := range d.InspectorColumns {
		if !sd.InspectorActive(col) {
			continue
		}
		if !d.Skills[a.Mechanic].HasInspector(col) {
			continue
		}
		regularName := strings.TrimSuffix(col, "_inspec")
		for _, other := range slotAssignments {
			if other.Mechanic != a.Mechanic && d.Skills[other.Mechanic].HasRegular(regularName) {
				return true
			}
		}
	}
	return false
}
