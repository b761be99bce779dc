package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightops/rostercore/internal/domain"
)

func s1Rows() ([]SkillRow, []ScheduleRow, []CostRow) {
	skills := []SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
		{MechanicID: 2, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
	}
	schedule := []ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
	}
	cost := []CostRow{
		{MechanicID: 1, ByLetter: map[string]float64{"A": 10}},
		{MechanicID: 2, ByLetter: map[string]float64{"A": 20}},
	}
	return skills, schedule, cost
}

func TestNormalize_S1(t *testing.T) {
	skills, schedule, cost := s1Rows()
	d, err := Normalize(skills, schedule, cost, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.Mechanic{1, 2}, d.Mechanics)
	assert.Equal(t, []domain.BaseID{1}, d.Bases)
	assert.Equal(t, []domain.PeriodID{1}, d.Periods)
	assert.Equal(t, []domain.ShiftID{1}, d.Shifts)
	assert.True(t, d.Skills[1].HasRegular("aw139_af"))
	assert.Equal(t, 10.0, d.Cost.Get(1, 1))
	assert.Equal(t, 20.0, d.Cost.Get(2, 1))
	assert.True(t, d.Demand[domain.Slot{Base: 1, Period: 1, Shift: 1}].AircraftActive(domain.AircraftAW139))
}

func TestNormalize_DuplicateMechanicIsSchemaError(t *testing.T) {
	skills := []SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1}},
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1}},
	}
	_, err := Normalize(skills, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrInputSchema))
}

func TestNormalize_DuplicateSlotIsSchemaError(t *testing.T) {
	schedule := []ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
	}
	_, err := Normalize(nil, schedule, nil, nil)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrInputSchema))
}

func TestNormalize_AvoidanceSymmetry(t *testing.T) {
	skills, schedule, cost := s1Rows()
	avoidance := []AvoidanceRow{{MechanicID: 1, AvoidMechanicID: 2, Penalty: 50}}
	d, err := Normalize(skills, schedule, cost, avoidance)
	require.NoError(t, err)

	p1, ok1 := d.Avoid.Lookup(1, 2)
	p2, ok2 := d.Avoid.Lookup(2, 1)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, 50.0, p1)
	assert.Equal(t, 50.0, p2)
}

func TestNormalize_MalformedAvoidanceYieldsEmptyMap(t *testing.T) {
	skills, schedule, cost := s1Rows()
	// self-avoidance is invalid and discards the whole table.
	avoidance := []AvoidanceRow{{MechanicID: 1, AvoidMechanicID: 1, Penalty: 10}}
	d, err := Normalize(skills, schedule, cost, avoidance)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Avoid.Len())
}

func TestNormalize_InactiveDemandGeneratesNoActiveSlot(t *testing.T) {
	schedule := []ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 0}},
	}
	d, err := Normalize(nil, schedule, nil, nil)
	require.NoError(t, err)
	sd := d.Demand[domain.Slot{Base: 1, Period: 1, Shift: 1}]
	assert.False(t, sd.AircraftActive(domain.AircraftAW139))
}
