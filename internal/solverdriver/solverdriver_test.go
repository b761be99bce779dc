package solverdriver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightops/rostercore/internal/domain"
	"github.com/flightops/rostercore/internal/mip/bnb"
	"github.com/flightops/rostercore/internal/normalizer"
)

// bnbOnly is the preference used throughout these tests: golpabackend
// needs cgo and lp_solve linked in, neither of which this test binary
// can assume, so every end-to-end test here pins the pure-Go fallback.
var bnbOnly = []string{bnb.Name}

func TestSolve_S1_SingleSlotSingleAssignment(t *testing.T) {
	skills := []normalizer.SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
		{MechanicID: 2, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
	}
	schedule := []normalizer.ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
	}
	cost := []normalizer.CostRow{
		{MechanicID: 1, ByLetter: map[string]float64{"A": 10}},
		{MechanicID: 2, ByLetter: map[string]float64{"A": 20}},
	}
	d, err := normalizer.Normalize(skills, schedule, cost, nil)
	require.NoError(t, err)

	sol, err := Solve(context.Background(), d, Options{SolverPreference: bnbOnly})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOptimal, sol.Status)
	assert.Equal(t, 10.0, sol.ObjectiveValue)
	require.Len(t, sol.Assignments, 1)
	assert.Equal(t, domain.Mechanic(1), sol.Assignments[0].Mechanic)
	assert.GreaterOrEqual(t, sol.SolveSeconds, 0.0)
}

func TestSolve_S3_Infeasible(t *testing.T) {
	skills := []normalizer.SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1}, Inspector: map[string]int{"aw139_af_inspec": 1}},
	}
	schedule := []normalizer.ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}, Inspector: map[string]int{"aw139_af_inspec": 1}},
	}
	d, err := normalizer.Normalize(skills, schedule, nil, nil)
	require.NoError(t, err)

	sol, err := Solve(context.Background(), d, Options{SolverPreference: bnbOnly})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInfeasible, sol.Status)
	assert.Empty(t, sol.Assignments)
}

func TestSolve_S5_MalformedAvoidanceStillSolves(t *testing.T) {
	skills := []normalizer.SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
		{MechanicID: 2, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
	}
	schedule := []normalizer.ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
	}
	cost := []normalizer.CostRow{
		{MechanicID: 1, ByLetter: map[string]float64{"A": 10}},
		{MechanicID: 2, ByLetter: map[string]float64{"A": 20}},
	}
	malformedAvoidance := []normalizer.AvoidanceRow{{MechanicID: 1, AvoidMechanicID: 1, Penalty: -5}}
	d, err := normalizer.Normalize(skills, schedule, cost, malformedAvoidance)
	require.NoError(t, err)
	require.Equal(t, 0, d.Avoid.Len())

	sol, err := Solve(context.Background(), d, Options{SolverPreference: bnbOnly})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOptimal, sol.Status)
	assert.Equal(t, 10.0, sol.ObjectiveValue)
}

func TestSolve_UnknownBackendFallsThroughToNextPreference(t *testing.T) {
	skills := []normalizer.SkillRow{
		{MechanicID: 1, Regular: map[string]int{"aw139_af": 1, "aw139_r": 1, "aw139_av": 1}},
	}
	schedule := []normalizer.ScheduleRow{
		{BaseID: 1, Period: 1, Shift: 1, Aircraft: map[string]int{"aw139": 1}},
	}
	d, err := normalizer.Normalize(skills, schedule, nil, nil)
	require.NoError(t, err)

	sol, err := Solve(context.Background(), d, Options{SolverPreference: []string{"not-a-backend", bnb.Name}})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOptimal, sol.Status)
}
