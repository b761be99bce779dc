// Command roster reads a JSON input bundle (a thin stand-in for the
// out-of-scope spreadsheet adapter), runs the Assignment Core, prints
// a summary, and maps the outcome onto a process exit code (spec.md
// §6): {Optimal,Feasible} → 0, Infeasible → 1, schema errors → 2,
// everything else → 3.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/flightops/rostercore"
)

type inputBundle struct {
	Skills    []rostercore.SkillRow     `json:"skills"`
	Schedule  []rostercore.ScheduleRow  `json:"schedule"`
	Cost      []rostercore.CostRow      `json:"cost"`
	Avoidance []rostercore.AvoidanceRow `json:"avoidance"`
}

func main() {
	var (
		inputPath        = flag.String("input", "", "path to a JSON input bundle; defaults to stdin")
		solver           = flag.String("solver", "", "solver preference, comma-separated (e.g. golpa,bnb)")
		timeLimitSeconds = flag.Float64("time-limit", 0, "solver wall-clock cap in seconds; 0 means no limit")
		logLevel         = flag.String("log-level", "INFO", "log verbosity: DEBUG..CRITICAL")
	)
	flag.Parse()

	rostercore.SetupLogger(*logLevel)

	body, err := readInput(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "roster: could not read input:", err)
		os.Exit(3)
	}

	var bundle inputBundle
	if err := json.Unmarshal(body, &bundle); err != nil {
		fmt.Fprintln(os.Stderr, "roster: malformed input bundle:", err)
		os.Exit(2)
	}

	opts := rostercore.Options{TimeLimitSeconds: *timeLimitSeconds}
	if *solver != "" {
		opts.SolverPreference = splitCSV(*solver)
	}

	sol, err := rostercore.Solve(context.Background(), bundle.Skills, bundle.Schedule, bundle.Cost, bundle.Avoidance, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "roster: solve failed:", err)
		if rostercore.IsCode(err, rostercore.ErrInputSchema) || rostercore.IsCode(err, rostercore.ErrInputType) {
			os.Exit(2)
		}
		os.Exit(3)
	}

	printSummary(sol)
	os.Exit(exitCodeFor(sol.Status))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

func printSummary(sol *rostercore.Solution) {
	fmt.Printf("status: %s\n", sol.Status)
	fmt.Printf("assignments: %d\n", len(sol.Assignments))
	fmt.Printf("unassignedMechanics: %d\n", sol.UnassignedMechanics)
	fmt.Printf("movementCost: %v\n", sol.MovementCost)
	fmt.Printf("avoidancePenalty: %v\n", sol.AvoidancePenalty)
	fmt.Printf("objectiveValue: %v\n", sol.ObjectiveValue)
	fmt.Printf("solveSeconds: %v\n", sol.SolveSeconds)
}

func exitCodeFor(status rostercore.SolveStatus) int {
	switch status {
	case rostercore.StatusOptimal, rostercore.StatusFeasible:
		return 0
	case rostercore.StatusInfeasible:
		return 1
	default:
		return 3
	}
}
