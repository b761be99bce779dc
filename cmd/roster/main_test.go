package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightops/rostercore"
)

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"golpa", "bnb"}, splitCSV("golpa,bnb"))
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"bnb"}, splitCSV("bnb"))
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, 0, exitCodeFor(rostercore.StatusOptimal))
	assert.Equal(t, 0, exitCodeFor(rostercore.StatusFeasible))
	assert.Equal(t, 1, exitCodeFor(rostercore.StatusInfeasible))
	assert.Equal(t, 3, exitCodeFor(rostercore.StatusAbnormal))
	assert.Equal(t, 3, exitCodeFor(rostercore.StatusNotSolved))
}
