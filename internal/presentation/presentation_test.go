package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightops/rostercore/internal/domain"
)

func skills(af, r, av, afInspec int) domain.SkillSet {
	s := domain.NewSkillSet()
	if af == 1 {
		s.Regular["aw139_af"] = true
	}
	if r == 1 {
		s.Regular["aw139_r"] = true
	}
	if av == 1 {
		s.Regular["aw139_av"] = true
	}
	if afInspec == 1 {
		s.Inspector["aw139_af_inspec"] = true
	}
	return s
}

func TestDisplayPosition_InspectorWithPartner(t *testing.T) {
	slot := domain.Slot{Base: 1, Period: 1, Shift: 1}
	d := domain.New(
		[]domain.Mechanic{1, 2}, []domain.BaseID{1}, []domain.PeriodID{1}, []domain.ShiftID{1},
		map[domain.Mechanic]domain.SkillSet{
			1: skills(1, 0, 0, 1),
			2: skills(1, 0, 0, 0),
		},
		map[domain.Slot]domain.SlotDemand{
			slot: {Aircraft: map[domain.AircraftType]int{domain.AircraftAW139: 1}, Inspector: map[string]int{"aw139_af_inspec": 1}},
		},
		domain.CostTable{}, domain.NewAvoidanceMap(),
	)

	assignments := []domain.Assignment{
		{Mechanic: 1, Base: 1, Period: 1, Shift: 1},
		{Mechanic: 2, Base: 1, Period: 1, Shift: 1},
	}
	pos := DisplayPosition(d, assignments, assignments[0])
	assert.Equal(t, domain.PositionInspector, pos)
}

func TestDisplayPosition_InspectorWithoutPartnerFallsThrough(t *testing.T) {
	slot := domain.Slot{Base: 1, Period: 1, Shift: 1}
	d := domain.New(
		[]domain.Mechanic{1}, []domain.BaseID{1}, []domain.PeriodID{1}, []domain.ShiftID{1},
		map[domain.Mechanic]domain.SkillSet{1: skills(1, 0, 0, 1)},
		map[domain.Slot]domain.SlotDemand{
			slot: {Aircraft: map[domain.AircraftType]int{domain.AircraftAW139: 1}, Inspector: map[string]int{"aw139_af_inspec": 1}},
		},
		domain.CostTable{}, domain.NewAvoidanceMap(),
	)

	assignments := []domain.Assignment{{Mechanic: 1, Base: 1, Period: 1, Shift: 1}}
	pos := DisplayPosition(d, assignments, assignments[0])
	assert.Equal(t, domain.PositionMechanic, pos)
}

func TestDisplayPosition_Avionic(t *testing.T) {
	d := domain.New(
		[]domain.Mechanic{1}, []domain.BaseID{1}, []domain.PeriodID{1}, []domain.ShiftID{1},
		map[domain.Mechanic]domain.SkillSet{1: skills(0, 0, 1, 0)},
		map[domain.Slot]domain.SlotDemand{}, domain.CostTable{}, domain.NewAvoidanceMap(),
	)
	a := domain.Assignment{Mechanic: 1, Base: 1, Period: 1, Shift: 1}
	assert.Equal(t, domain.PositionAvionic, DisplayPosition(d, []domain.Assignment{a}, a))
}

func TestDisplayPosition_MechanicDefault(t *testing.T) {
	d := domain.New(
		[]domain.Mechanic{1}, []domain.BaseID{1}, []domain.PeriodID{1}, []domain.ShiftID{1},
		map[domain.Mechanic]domain.SkillSet{1: domain.NewSkillSet()},
		map[domain.Slot]domain.SlotDemand{}, domain.CostTable{}, domain.NewAvoidanceMap(),
	)
	a := domain.Assignment{Mechanic: 1, Base: 1, Period: 1, Shift: 1}
	assert.Equal(t, domain.PositionMechanic, DisplayPosition(d, []domain.Assignment{a}, a))
}

func TestHasDiscipline(t *testing.T) {
	d := domain.New(
		[]domain.Mechanic{1}, []domain.BaseID{1}, []domain.PeriodID{1}, []domain.ShiftID{1},
		map[domain.Mechanic]domain.SkillSet{1: skills(1, 0, 0, 0)},
		map[domain.Slot]domain.SlotDemand{}, domain.CostTable{}, domain.NewAvoidanceMap(),
	)
	assert.True(t, HasDiscipline(d, 1, domain.DisciplineAirframe))
	assert.False(t, HasDiscipline(d, 1, domain.DisciplineEngine))
}
