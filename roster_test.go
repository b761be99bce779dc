package rostercore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_S1_EndToEnd(t *testing.T) {
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

	sol, err := Solve(context.Background(), skills, schedule, cost, nil, Options{SolverPreference: []string{"bnb"}})
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, sol.Status)
	assert.Equal(t, 10.0, sol.ObjectiveValue)
}

func TestSolve_SchemaErrorSurfacesErrCode(t *testing.T) {
	skills := []SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1}},
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1}},
	}
	_, err := Solve(context.Background(), skills, nil, nil, nil, Options{})
	require.Error(t, err)
	assert.True(t, IsCode(err, ErrInputSchema))
}
